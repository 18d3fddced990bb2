package saes

const (
	// encryptURI is the URI path for 16-bit binary block encryption.
	encryptURI = "/encrypt"
	// decryptURI is the URI path for 16-bit binary block decryption.
	decryptURI = "/decrypt"
	// encryptBase64URI is the URI path for ASCII text encryption with base64 output.
	encryptBase64URI = "/encrypt/base64"
	// decryptBase64URI is the URI path for base64 ciphertext decryption to ASCII.
	decryptBase64URI = "/decrypt/base64"
	// encryptCBCURI is the URI path for CBC mode encryption.
	encryptCBCURI = "/encrypt/cbc"
	// decryptCBCURI is the URI path for CBC mode decryption.
	decryptCBCURI = "/decrypt/cbc"
	// meetInTheMiddleURI is the URI path for the meet-in-the-middle attack.
	meetInTheMiddleURI = "/attack/meet-in-the-middle"
)

// successCode is the envelope code of a successful response.
const successCode = 0
