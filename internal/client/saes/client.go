package saes

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"

	http_transport "github.com/oshokin/saes-client/internal/transport/http"
)

// Client defines the interface for interacting with the S-AES backend.
type Client interface {
	// EncryptBinary encrypts a 16-bit binary block.
	EncryptBinary(ctx context.Context, plaintext, key string, opts ...RequestOption) (*EncryptResult, error)
	// DecryptBinary decrypts a 16-bit binary block.
	DecryptBinary(ctx context.Context, ciphertext, key string, opts ...RequestOption) (*DecryptResult, error)
	// EncryptBase64 encrypts ASCII text and returns base64 ciphertext.
	EncryptBase64(ctx context.Context, plaintext, key string, opts ...RequestOption) (*EncryptResult, error)
	// DecryptBase64 decrypts base64 ciphertext to ASCII text.
	DecryptBase64(ctx context.Context, ciphertext, key string, opts ...RequestOption) (*DecryptResult, error)
	// EncryptCBC encrypts ASCII text in CBC mode; the result carries the generated IV.
	EncryptCBC(ctx context.Context, plaintext, key string, opts ...RequestOption) (*EncryptResult, error)
	// DecryptCBC decrypts CBC ciphertext with the IV returned by EncryptCBC.
	DecryptCBC(ctx context.Context, ciphertext, key, iv string, opts ...RequestOption) (*DecryptResult, error)
	// MeetInTheMiddle recovers double S-AES key candidates from known pairs.
	MeetInTheMiddle(
		ctx context.Context,
		pairs []PlainCipherPair,
		opts ...RequestOption,
	) (*MeetInTheMiddleResult, error)
	// GetBaseURL returns the base URL of the backend.
	GetBaseURL() string
}

// ClientImpl implements the Client interface on top of the shared HTTP client.
type ClientImpl struct {
	// httpClient issues every request.
	httpClient *http_transport.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// A nil httpClient selects the process-wide http_transport.Shared client.
func NewClient(httpClient *http_transport.Client) Client {
	if httpClient == nil {
		httpClient = http_transport.Shared()
	}

	return &ClientImpl{httpClient: httpClient}
}

// EncryptBinary encrypts a 16-bit binary block.
func (c *ClientImpl) EncryptBinary(
	ctx context.Context,
	plaintext, key string,
	opts ...RequestOption,
) (*EncryptResult, error) {
	return postJSON[EncryptResult](c, ctx, encryptURI, &EncryptRequest{Plaintext: plaintext, Key: key}, opts)
}

// DecryptBinary decrypts a 16-bit binary block.
func (c *ClientImpl) DecryptBinary(
	ctx context.Context,
	ciphertext, key string,
	opts ...RequestOption,
) (*DecryptResult, error) {
	return postJSON[DecryptResult](c, ctx, decryptURI, &DecryptRequest{Ciphertext: ciphertext, Key: key}, opts)
}

// EncryptBase64 encrypts ASCII text and returns base64 ciphertext.
func (c *ClientImpl) EncryptBase64(
	ctx context.Context,
	plaintext, key string,
	opts ...RequestOption,
) (*EncryptResult, error) {
	return postJSON[EncryptResult](c, ctx, encryptBase64URI, &EncryptRequest{Plaintext: plaintext, Key: key}, opts)
}

// DecryptBase64 decrypts base64 ciphertext to ASCII text.
func (c *ClientImpl) DecryptBase64(
	ctx context.Context,
	ciphertext, key string,
	opts ...RequestOption,
) (*DecryptResult, error) {
	return postJSON[DecryptResult](c, ctx, decryptBase64URI, &DecryptRequest{Ciphertext: ciphertext, Key: key}, opts)
}

// EncryptCBC encrypts ASCII text in CBC mode.
func (c *ClientImpl) EncryptCBC(
	ctx context.Context,
	plaintext, key string,
	opts ...RequestOption,
) (*EncryptResult, error) {
	return postJSON[EncryptResult](c, ctx, encryptCBCURI, &EncryptRequest{Plaintext: plaintext, Key: key}, opts)
}

// DecryptCBC decrypts CBC ciphertext.
func (c *ClientImpl) DecryptCBC(
	ctx context.Context,
	ciphertext, key, iv string,
	opts ...RequestOption,
) (*DecryptResult, error) {
	return postJSON[DecryptResult](c, ctx, decryptCBCURI,
		&DecryptCBCRequest{Ciphertext: ciphertext, Key: key, IV: iv}, opts)
}

// MeetInTheMiddle recovers double S-AES key candidates from known pairs.
// It fails with ErrNoPairs without contacting the backend when pairs is empty.
func (c *ClientImpl) MeetInTheMiddle(
	ctx context.Context,
	pairs []PlainCipherPair,
	opts ...RequestOption,
) (*MeetInTheMiddleResult, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	return postJSON[MeetInTheMiddleResult](c, ctx, meetInTheMiddleURI, &MeetInTheMiddleRequest{Pairs: pairs}, opts)
}

// GetBaseURL returns the base URL of the backend.
func (c *ClientImpl) GetBaseURL() string {
	return c.httpClient.BaseURL()
}
