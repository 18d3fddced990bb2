package saes

import "errors"

// Common errors for the service layer.
var (
	// ErrInvalidMode indicates that the cipher mode is not one of binary, base64 or cbc.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrMissingIV indicates that CBC decryption was requested without an initialization vector.
	ErrMissingIV = errors.New("cbc decryption requires an initialization vector")
	// ErrInvalidPair indicates that a known pair is not in PLAIN:CIPHER form.
	ErrInvalidPair = errors.New("invalid plaintext/ciphertext pair")
	// ErrEmptyInput indicates that the text to process is empty.
	ErrEmptyInput = errors.New("input text cannot be empty")
	// ErrEmptyKey indicates that the key is empty.
	ErrEmptyKey = errors.New("key cannot be empty")
)

var (
	errMissingSeparator = errors.New("expected PLAIN:CIPHER")
	errMalformedHalves  = errors.New("plaintext and ciphertext must both be present exactly once")
)
