package main

import (
	"github.com/dhamidi/parsnip/config"
	"github.com/dhamidi/parsnip/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(settings *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server reporting syntax errors for the configured grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParser(settings, "")
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, p, settings.Start)
			return server.RunStdio()
		},
	}
}
