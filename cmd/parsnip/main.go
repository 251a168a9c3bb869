package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/parsnip/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("parsnip")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Settings come from Default, then the
// --config file, then flags given on the command line.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Config
	)
	settings := config.Default()

	rootCmd := &cobra.Command{
		Use:           "parsnip",
		Short:         "Parse text with EBNF grammars",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				*settings = *loaded
			}
			if !cmd.Flags().Changed("skip") {
				flags.Skip = nil
			}
			settings.Override(flags)

			var logFile *string
			if settings.Log.File != "" {
				logFile = &settings.Log.File
			}
			commonlog.Configure(settings.Log.Verbosity, logFile)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "configuration file (.yaml, .yml or .toml)")
	pf.StringVarP(&flags.Grammar, "grammar", "g", "", "EBNF grammar file")
	pf.StringVarP(&flags.Start, "start", "s", "", "start production")
	pf.StringSliceVar(&flags.Skip, "skip", nil, "lexical productions skipped between tokens")
	pf.CountVarP(&flags.Log.Verbosity, "verbose", "v", "log more, repeat for debug output")
	pf.StringVar(&flags.Log.File, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newParseCmd(settings))
	rootCmd.AddCommand(newTokensCmd(settings))
	rootCmd.AddCommand(newLSPCmd(settings))

	return rootCmd
}
