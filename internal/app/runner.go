package app

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	saes_service "github.com/oshokin/saes-client/internal/service/saes"
)

// Runner executes one CLI operation and prints its result.
type Runner struct {
	// service performs the backend calls.
	service saes_service.Service
	// out receives the results.
	out io.Writer
	// progress receives the spinner shown while waiting for long calls; nil disables it.
	progress io.Writer
}

// NewRunner creates a Runner.
func NewRunner(service saes_service.Service, out, progress io.Writer) *Runner {
	return &Runner{
		service:  service,
		out:      out,
		progress: progress,
	}
}

// Encrypt encrypts plaintext and prints the ciphertext, and the IV in CBC mode.
func (r *Runner) Encrypt(ctx context.Context, mode saes_service.Mode, plaintext, key string) error {
	output, err := r.service.Encrypt(ctx, mode, plaintext, key)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(r.out, "ciphertext: %s\n", output.Ciphertext); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	if output.IV == "" {
		return nil
	}

	if _, err = fmt.Fprintf(r.out, "iv: %s\n", output.IV); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

// Decrypt decrypts ciphertext and prints the plaintext.
func (r *Runner) Decrypt(ctx context.Context, mode saes_service.Mode, ciphertext, key, iv string) error {
	plaintext, err := r.service.Decrypt(ctx, mode, ciphertext, key, iv)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(r.out, "plaintext: %s\n", plaintext); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

// Attack runs a meet-in-the-middle attack and prints every key candidate.
func (r *Runner) Attack(ctx context.Context, rawPairs []string) error {
	stopSpinner := startSpinner(r.progress, "Searching key space")
	result, err := r.service.Attack(ctx, rawPairs)

	stopSpinner()

	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(r.out, "found %s key candidate(s)\n", humanize.Comma(int64(result.Count))); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	for i, key := range result.Keys {
		_, err = fmt.Fprintf(r.out, "%d. K1=%s (%s) K2=%s (%s) combined=%s\n",
			i+1, key.K1Hex, key.K1Bin, key.K2Hex, key.K2Bin, key.CombinedHex)
		if err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}

	return nil
}

// PrintSummary logs the session statistics.
func (r *Runner) PrintSummary(ctx context.Context) {
	r.service.PrintSummary(ctx)
}
