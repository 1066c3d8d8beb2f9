package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passmeter/internal/service"
)

func newTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show password hygiene tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i, tip := range service.Tips() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s: %s\n", i+1, tip.Title, tip.Text)
			}
			return nil
		},
	}
}
