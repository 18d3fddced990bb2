package saes

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oshokin/saes-client/internal/client/saes"
	"github.com/oshokin/saes-client/internal/logger"
)

// EncryptOutput is the outcome of an encryption.
type EncryptOutput struct {
	// Ciphertext is the encrypted block or text.
	Ciphertext string
	// IV is the initialization vector; it is set only in CBC mode and is needed to decrypt.
	IV string
}

// Service provides the operations exposed by the command line.
type Service interface {
	// Encrypt encrypts plaintext with key in the given mode.
	Encrypt(ctx context.Context, mode Mode, plaintext, key string) (*EncryptOutput, error)
	// Decrypt decrypts ciphertext with key in the given mode. iv is required in CBC mode and ignored otherwise.
	Decrypt(ctx context.Context, mode Mode, ciphertext, key, iv string) (string, error)
	// Attack runs a meet-in-the-middle attack over PLAIN:CIPHER pairs.
	Attack(ctx context.Context, rawPairs []string) (*saes.MeetInTheMiddleResult, error)
	// Statistics returns a snapshot of the session statistics.
	Statistics() Statistics
	// PrintSummary logs the session statistics.
	PrintSummary(ctx context.Context)
}

// ServiceImpl implements Service on top of the S-AES API client.
type ServiceImpl struct {
	// client issues the backend calls.
	client saes.Client
	// stats tracks request statistics for the current session.
	stats *sessionStatistics
}

// NewService creates a service instance that uses the given client.
func NewService(client saes.Client) Service {
	return &ServiceImpl{
		client: client,
		stats:  newSessionStatistics(),
	}
}

// Encrypt encrypts plaintext with key in the given mode.
func (s *ServiceImpl) Encrypt(ctx context.Context, mode Mode, plaintext, key string) (*EncryptOutput, error) {
	key = strings.TrimSpace(key)
	if err := validateInput(plaintext, key); err != nil {
		return nil, err
	}

	ctx = logger.WithKV(ctx, "mode", mode.String())
	logger.Debugf(ctx, "Encrypting %d characters", len(plaintext))

	var (
		result *saes.EncryptResult
		err    error
	)

	started := time.Now()

	switch mode {
	case ModeBinary:
		result, err = s.client.EncryptBinary(ctx, strings.TrimSpace(plaintext), key)
	case ModeBase64:
		result, err = s.client.EncryptBase64(ctx, plaintext, key)
	case ModeCBC:
		result, err = s.client.EncryptCBC(ctx, plaintext, key)
	default:
		return nil, invalidModeError(mode)
	}

	s.stats.record(time.Since(started), err)

	if err != nil {
		return nil, err
	}

	return &EncryptOutput{
		Ciphertext: result.Ciphertext,
		IV:         result.IV,
	}, nil
}

// Decrypt decrypts ciphertext with key in the given mode.
func (s *ServiceImpl) Decrypt(ctx context.Context, mode Mode, ciphertext, key, iv string) (string, error) {
	key = strings.TrimSpace(key)
	ciphertext = strings.TrimSpace(ciphertext)

	if err := validateInput(ciphertext, key); err != nil {
		return "", err
	}

	iv = strings.TrimSpace(iv)
	if mode == ModeCBC && iv == "" {
		return "", ErrMissingIV
	}

	ctx = logger.WithKV(ctx, "mode", mode.String())
	logger.Debugf(ctx, "Decrypting %d characters", len(ciphertext))

	var (
		result *saes.DecryptResult
		err    error
	)

	started := time.Now()

	switch mode {
	case ModeBinary:
		result, err = s.client.DecryptBinary(ctx, ciphertext, key)
	case ModeBase64:
		result, err = s.client.DecryptBase64(ctx, ciphertext, key)
	case ModeCBC:
		result, err = s.client.DecryptCBC(ctx, ciphertext, key, iv)
	default:
		return "", invalidModeError(mode)
	}

	s.stats.record(time.Since(started), err)

	if err != nil {
		return "", err
	}

	return result.Plaintext, nil
}

// Attack runs a meet-in-the-middle attack over PLAIN:CIPHER pairs.
func (s *ServiceImpl) Attack(ctx context.Context, rawPairs []string) (*saes.MeetInTheMiddleResult, error) {
	pairs, err := ParsePairs(rawPairs)
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, saes.ErrNoPairs
	}

	logger.Infof(ctx, "Searching for keys consistent with %d known pair(s)", len(pairs))

	started := time.Now()
	result, err := s.client.MeetInTheMiddle(ctx, pairs)
	s.stats.record(time.Since(started), err)

	if err != nil {
		return nil, err
	}

	return result, nil
}

func validateInput(text, key string) error {
	if text == "" {
		return ErrEmptyInput
	}

	if key == "" {
		return ErrEmptyKey
	}

	return nil
}

func invalidModeError(mode Mode) error {
	return fmt.Errorf("%w: '%s' (expected one of %s)", ErrInvalidMode, mode, joinModes())
}
