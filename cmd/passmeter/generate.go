package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

var errCountRange = errors.New("--count must be at least 1")

type generateConfig struct {
	sourceFlags
	length     int
	jsonOutput bool
}

func newGenerateCmd() *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate passwords drawn uniformly from letters, digits and punctuation.
Every generated password contains at least one character of each class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	policy := service.DefaultLengthPolicy()
	cfg.register(cmd)
	cmd.Flags().IntVar(&cfg.length, "length", policy.Min, fmt.Sprintf("password length (%d-%d)", policy.Min, policy.Max))
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output passwords as JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *generateConfig) error {
	if cfg.count < 1 {
		return errCountRange
	}

	svc := service.NewGeneratorService(cfg.source(cmd), service.DefaultLengthPolicy(), nil, nil)

	// --length always names a length; zero is not a request for the default here.
	if policy := svc.Policy(); cfg.length < policy.Min || cfg.length > policy.Max {
		return fmt.Errorf("%w: must be between %d and %d", service.ErrLengthOutOfRange, policy.Min, policy.Max)
	}

	results := make([]model.GenerateResponse, 0, cfg.count)
	for range cfg.count {
		resp, err := svc.Generate(cmd.Context(), "", model.GenerateRequest{Length: cfg.length})
		if err != nil {
			return err
		}
		results = append(results, resp)
	}

	return printPasswords(cmd, results, cfg.jsonOutput)
}

type themedConfig struct {
	sourceFlags
	strict     bool
	jsonOutput bool
}

func newThemedCmd() *cobra.Command {
	cfg := &themedConfig{}

	cmd := &cobra.Command{
		Use:   "themed",
		Short: "Generate memorable themed passwords",
		Long: `Generate passwords built from a security word with random letter case, a
four digit number and a special character, such as "VaUlT4821!".
Without --strict a word can come out in a single case and score 4.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemed(cmd, cfg)
		},
	}

	cfg.register(cmd)
	cmd.Flags().BoolVar(&cfg.strict, "strict", false, "always mix upper and lower case")
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output passwords as JSON")

	return cmd
}

func runThemed(cmd *cobra.Command, cfg *themedConfig) error {
	if cfg.count < 1 {
		return errCountRange
	}

	svc := service.NewGeneratorService(cfg.source(cmd), service.DefaultLengthPolicy(), nil, nil)
	results := make([]model.GenerateResponse, 0, cfg.count)
	for range cfg.count {
		results = append(results, svc.GenerateThemed(cmd.Context(), "", model.ThemedRequest{Strict: cfg.strict}))
	}

	return printPasswords(cmd, results, cfg.jsonOutput)
}

func printPasswords(cmd *cobra.Command, results []model.GenerateResponse, jsonOutput bool) error {
	if jsonOutput {
		return printJSON(cmd, results)
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%d/5)\n", r.Password, r.Band, r.Score)
	}
	return nil
}
