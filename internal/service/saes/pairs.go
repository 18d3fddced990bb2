package saes

import (
	"fmt"
	"strings"

	"github.com/oshokin/saes-client/internal/client/saes"
	"github.com/oshokin/saes-client/internal/utils"
)

const pairSeparator = ":"

// ParsePairs converts PLAIN:CIPHER strings into known pairs.
// Whitespace inside a pair is ignored. Errors name the 1-based position of the bad pair.
func ParsePairs(rawPairs []string) ([]saes.PlainCipherPair, error) {
	pairs := make([]saes.PlainCipherPair, 0, len(rawPairs))

	for i, rawPair := range rawPairs {
		pair, err := parsePair(rawPair)
		if err != nil {
			return nil, fmt.Errorf("%w #%d '%s': %w", ErrInvalidPair, i+1, rawPair, err)
		}

		pairs = append(pairs, pair)
	}

	return pairs, nil
}

func parsePair(rawPair string) (saes.PlainCipherPair, error) {
	plaintext, ciphertext, found := strings.Cut(utils.RemoveWhitespace(rawPair), pairSeparator)
	if !found {
		return saes.PlainCipherPair{}, errMissingSeparator
	}

	if plaintext == "" || ciphertext == "" || strings.Contains(ciphertext, pairSeparator) {
		return saes.PlainCipherPair{}, errMalformedHalves
	}

	return saes.PlainCipherPair{
		Plaintext:  plaintext,
		Ciphertext: ciphertext,
	}, nil
}
