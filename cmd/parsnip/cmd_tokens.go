package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/parsnip/config"
	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/dhamidi/parsnip/ebnf/lex"
	"github.com/dhamidi/parsnip/format"
	"github.com/spf13/cobra"
)

func newTokensCmd(settings *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens the grammar's lexical productions find in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			if settings.Grammar == "" {
				return fmt.Errorf("no grammar given")
			}
			g, err := grammar.Load(settings.Grammar)
			if err != nil {
				printErrors(err)
				return fmt.Errorf("%s: invalid grammar", settings.Grammar)
			}
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			l, err := lex.NewLexer(g, data, filename)
			if err != nil {
				return err
			}
			tokens, err := l.Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "text":
				encoder = format.NewTextEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return encoder.EncodeTokens(tokens)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, text)")

	return cmd
}
