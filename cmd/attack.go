package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/saes-client/internal/app"
	"github.com/oshokin/saes-client/internal/logger"
	"github.com/oshokin/saes-client/internal/utils"
)

var (
	//nolint:gochecknoglobals // Bound to the attack command flags.
	pairsFilename string

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	attackCmd = &cobra.Command{
		Use:   "attack [flags] {plain:cipher ...}",
		Short: "Recover double S-AES keys with a meet-in-the-middle attack.",
		Long: `Recover double S-AES keys with a meet-in-the-middle attack.

Each known pair is PLAIN:CIPHER, where both blocks are 16-bit binary strings
or 0x-prefixed 4-digit hex numbers. More pairs narrow down the candidates.
Pairs can also be read from a file, one per line; lines starting with # are ignored.`,
		Example: `  saes-client attack 0x1234:0xABCD 0x5678:0x9F3C
  saes-client attack --pairs-file pairs.txt`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			pairs, err := collectPairs(args, pairsFilename)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to read pairs: %v", err)
			}

			app.ExecuteAttackCommand(cmd.Context(), appConfig, pairs)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	attackCmd.Flags().StringVarP(
		&pairsFilename,
		"pairs-file",
		"p",
		"",
		"file with one PLAIN:CIPHER pair per line.")

	rootCmd.AddCommand(attackCmd)
}

// collectPairs returns the pairs from args followed by the pairs read from filename.
func collectPairs(args []string, filename string) ([]string, error) {
	pairs := append([]string(nil), args...)

	if filename == "" {
		return pairs, nil
	}

	linesFromFile, err := utils.ReadUniqueLinesFromFile(filename)
	if err != nil {
		return nil, err
	}

	return append(pairs, linesFromFile...), nil
}
