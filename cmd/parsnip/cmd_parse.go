package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/parsnip/comb"
	"github.com/dhamidi/parsnip/config"
	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/dhamidi/parsnip/ebnf/parse"
	"github.com/dhamidi/parsnip/format"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newParseCmd(settings *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file with an EBNF grammar and print the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			p, err := loadParser(settings, filename)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "report":
				root, err := p.Rule(settings.Start)
				if err != nil {
					return err
				}
				report := comb.Parse(root, string(data))
				if err := format.NewJSONEncoder(out).EncodeReport(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				if !report.Status {
					return fmt.Errorf("%s: syntax error", filename)
				}
				return nil
			case "json", "text":
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			node, err := p.Parse(settings.Start, data)
			if err != nil {
				var perr *comb.Error
				if errors.As(err, &perr) {
					return fmt.Errorf("%s:%s", filename, perr.ErrorAtPosition(string(data)))
				}
				return err
			}
			log.Infof("parsed %s (%s) from %q", filename, humanize.Bytes(uint64(len(data))), settings.Start)

			var encoder format.Encoder = format.NewJSONEncoder(out)
			if outputFormat == "text" {
				encoder = format.NewTextEncoder(out)
			}
			if err := encoder.EncodeNode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text, report)")

	return cmd
}

// traceVerbosity is the -v count at which commonlog emits debug output.
const traceVerbosity = 2

// loadParser builds a parser from the configured grammar. Errors and
// positions name filename.
func loadParser(settings *config.Config, filename string) (*parse.Parser, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g, err := grammar.Load(settings.Grammar)
	if err != nil {
		printErrors(err)
		return nil, fmt.Errorf("%s: invalid grammar", settings.Grammar)
	}
	opts := []parse.Option{
		parse.WithSkip(settings.Skip...),
		parse.WithFilename(filename),
	}
	if settings.Log.Verbosity >= traceVerbosity {
		opts = append(opts, parse.WithTrace())
	}
	p, err := parse.NewParser(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}
	return p, nil
}
