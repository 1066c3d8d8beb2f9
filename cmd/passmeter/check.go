package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

const progressWidth = 20

type checkConfig struct {
	jsonOutput bool
}

func newCheckCmd() *cobra.Command {
	cfg := &checkConfig{}

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Score a password and suggest improvements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, args[0])
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output the report as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, cfg *checkConfig, password string) error {
	resp, err := service.NewStrengthService(nil, nil).Check(cmd.Context(), "", model.StrengthRequest{Password: password})
	if err != nil {
		return err
	}

	if cfg.jsonOutput {
		return printJSON(cmd, resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Strength: %s (%d/%d)\n", resp.Band, resp.Score, resp.MaxScore)
	fmt.Fprintln(out, progressBar(resp.Progress, progressWidth))
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(out, "Suggestions:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(out, "  - %s\n", s.Message)
		}
	}
	return nil
}

// progressBar renders progress in [0, 1] as a fixed-width bar.
func progressBar(progress float64, width int) string {
	filled := int(progress*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
