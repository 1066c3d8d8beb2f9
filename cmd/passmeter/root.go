package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passmeter/internal/crypto"
)

// NewRootCmd creates the root command for the passmeter CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passmeter",
		Short: "Check password strength and generate passwords",
		Long: `passmeter scores passwords against five rules (length, uppercase,
lowercase, digit, special character) and generates random or themed
passwords that satisfy them.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newThemedCmd())
	cmd.AddCommand(newTipsCmd())

	return cmd
}

// sourceFlags are shared by the generating commands.
type sourceFlags struct {
	seed  uint64
	count int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for reproducible output")
	cmd.Flags().IntVar(&f.count, "count", 1, "number of passwords to generate")
}

// source returns a seeded source when --seed was given and the system CSPRNG otherwise.
func (f *sourceFlags) source(cmd *cobra.Command) crypto.Source {
	if cmd.Flags().Changed("seed") {
		return crypto.NewSeededSource(f.seed)
	}
	return crypto.SecureSource{}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
