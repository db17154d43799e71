package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

// options shared by every subcommand.
type options struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "keyer",
		Short:        "Morse encoder and multi-channel keyer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetFlags(log.Lmicroseconds)
			if !opts.verbose {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")

	cmd.AddCommand(
		encodeCmd(),
		playCmd(opts),
		runCmd(opts),
		scoreCmd(opts),
	)

	return cmd
}
