package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/saes-client/internal/app"
	saes_service "github.com/oshokin/saes-client/internal/service/saes"
)

// cryptFlags holds the flags shared by encrypt and decrypt.
type cryptFlags struct {
	mode string
	key  string
	iv   string
}

var (
	//nolint:gochecknoglobals // Bound to the encrypt command flags.
	encryptFlags cryptFlags

	//nolint:gochecknoglobals // Bound to the decrypt command flags.
	decryptFlags cryptFlags

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	encryptCmd = &cobra.Command{
		Use:   "encrypt [flags] {text}",
		Short: "Encrypt text with S-AES.",
		Long: `Encrypt text with S-AES.

Binary mode expects one 16-bit block such as 0110111101101011.
Base64 and CBC modes accept ASCII text; CBC also prints the IV needed to decrypt.
Multiple arguments are joined with single spaces.`,
		Example: `  saes-client encrypt -k 1010011100111011 0110111101101011
  saes-client encrypt -m cbc -k 1010011100111011 "hello world"`,
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteEncryptCommand(cmd.Context(), appConfig,
				encryptFlags.mode, encryptFlags.key, strings.Join(args, " "))
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	decryptCmd = &cobra.Command{
		Use:   "decrypt [flags] {text}",
		Short: "Decrypt text with S-AES.",
		Long: `Decrypt text with S-AES.

Binary mode expects one 16-bit block; base64 and CBC modes expect base64 text.
CBC mode requires the IV printed by encrypt.`,
		Example: `  saes-client decrypt -k 1010011100111011 0000011100111000
  saes-client decrypt -m cbc -k 1010011100111011 --iv 1100110011001100 AbCdEf==`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteDecryptCommand(cmd.Context(), appConfig,
				decryptFlags.mode, decryptFlags.key, decryptFlags.iv, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	registerCryptFlags(encryptCmd.Flags(), &encryptFlags)
	registerCryptFlags(decryptCmd.Flags(), &decryptFlags)

	decryptCmd.Flags().StringVar(
		&decryptFlags.iv,
		"iv",
		"",
		"initialization vector printed by 'encrypt -m cbc' (required in CBC mode).")

	_ = encryptCmd.MarkFlagRequired("key")
	_ = decryptCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(encryptCmd, decryptCmd)
}

func registerCryptFlags(flags *pflag.FlagSet, target *cryptFlags) {
	flags.StringVarP(
		&target.mode,
		"mode",
		"m",
		saes_service.ModeBinary.String(),
		"cipher mode: binary, base64 or cbc.")

	flags.StringVarP(
		&target.key,
		"key",
		"k",
		"",
		"binary key: 16 bits, or 32/48 bits for double/triple encryption.")
}
