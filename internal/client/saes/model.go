package saes

// Response is the envelope wrapping every backend response.
type Response[T any] struct {
	// Code is 0 on success.
	Code int `json:"code"`
	// Message is "success" or the failure reason.
	Message string `json:"message"`
	// Data holds the payload of a successful response.
	Data *T `json:"data,omitempty"`
}

// EncryptRequest is the body of every encryption endpoint.
type EncryptRequest struct {
	// Plaintext is a 16-bit binary block for binary mode, or ASCII text for base64 and CBC modes.
	Plaintext string `json:"plaintext"`
	// Key is the 16-bit key, or a 32/48-bit key for double and triple encryption, in binary.
	Key string `json:"key"`
}

// DecryptRequest is the body of the binary and base64 decryption endpoints.
type DecryptRequest struct {
	// Ciphertext is a 16-bit binary block, or base64 text.
	Ciphertext string `json:"ciphertext"`
	// Key is the binary key used for encryption.
	Key string `json:"key"`
}

// DecryptCBCRequest is the body of the CBC decryption endpoint.
type DecryptCBCRequest struct {
	// Ciphertext is base64 text produced by CBC encryption.
	Ciphertext string `json:"ciphertext"`
	// Key is the binary key used for encryption.
	Key string `json:"key"`
	// IV is the initialization vector returned by CBC encryption.
	IV string `json:"iv"`
}

// EncryptResult is the payload returned by the encryption endpoints.
type EncryptResult struct {
	// Ciphertext is the encrypted block or base64 text.
	Ciphertext string `json:"ciphertext"`
	// IV is the initialization vector; it is set only by CBC encryption.
	IV string `json:"iv,omitempty"`
}

// DecryptResult is the payload returned by the decryption endpoints.
type DecryptResult struct {
	// Plaintext is the decrypted block or ASCII text.
	Plaintext string `json:"plaintext"`
}

// PlainCipherPair is one known plaintext/ciphertext block pair.
// Blocks are 16-bit binary strings or 0x-prefixed 4-digit hex strings.
type PlainCipherPair struct {
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

// MeetInTheMiddleRequest is the body of the meet-in-the-middle endpoint.
type MeetInTheMiddleRequest struct {
	Pairs []PlainCipherPair `json:"pairs"`
}

// KeyCandidate is one (K1, K2) key pair consistent with every supplied pair.
type KeyCandidate struct {
	K1Hex       string `json:"k1_hex"`
	K1Bin       string `json:"k1_bin"`
	K2Hex       string `json:"k2_hex"`
	K2Bin       string `json:"k2_bin"`
	CombinedHex string `json:"combined_hex"`
	CombinedBin string `json:"combined_bin"`
}

// MeetInTheMiddleResult is the payload returned by the meet-in-the-middle endpoint.
type MeetInTheMiddleResult struct {
	// Count is the number of candidates found.
	Count int `json:"count"`
	// Keys lists every candidate key pair.
	Keys []KeyCandidate `json:"keys"`
}
