package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "Brandkit derives design tokens from a handful of brand seeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON lines instead of console text")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes to the command's stderr so stdout only ever carries tokens.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Verbose:       f.verbose,
		HumanReadable: !f.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
}
