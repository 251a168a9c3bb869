package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <grammar>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			g, err := grammar.Load(filename)
			if err != nil {
				printErrors(err)
				return fmt.Errorf("%s: invalid grammar", filename)
			}

			if startProduction != "" {
				if err := grammar.Verify(g, startProduction); err != nil {
					printErrors(err)
					return fmt.Errorf("%s: grammar does not verify from %q", filename, startProduction)
				}
			}

			log.Infof("%s: %d productions, %d lexical", filename, len(g.Names()), len(g.LexicalNames()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", filename, color.GreenString("ok"))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func printErrors(err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Fprintln(os.Stderr, e)
	}
}
