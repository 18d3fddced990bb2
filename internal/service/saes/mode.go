package saes

import (
	"strings"

	"github.com/oshokin/saes-client/internal/utils"
)

// Mode selects the backend endpoint family used for encryption and decryption.
type Mode string

const (
	// ModeBinary works on a single 16-bit block written in binary.
	ModeBinary Mode = "binary"
	// ModeBase64 works on ASCII text; ciphertext is base64.
	ModeBase64 Mode = "base64"
	// ModeCBC works on ASCII text in cipher block chaining mode with a server-generated IV.
	ModeCBC Mode = "cbc"
)

// Modes lists every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeBinary, ModeBase64, ModeCBC}
}

// ParseMode converts text into a Mode. Matching is case-insensitive.
func ParseMode(text string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(text)))

	switch mode {
	case ModeBinary, ModeBase64, ModeCBC:
		return mode, nil
	default:
		return "", invalidModeError(Mode(text))
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

func joinModes() string {
	return strings.Join(utils.Map(Modes(), Mode.String), ", ")
}
