package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the "casefmt" command with one subcommand per
// format kind.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casefmt",
		Short: "Normalize the casing of names, addresses and company names",
		Long: `casefmt turns inconsistently cased, human-entered text into a canonical
display form. Each subcommand formats one kind of text: arguments are
formatted and printed one per line, and without arguments every line of
standard input is formatted.

Examples:
  casefmt name "O'SHEA" MACLEOD          # O'Shea, MacLeod
  casefmt address < addresses.txt        # one address per line
  casefmt entity --workers 8 < orgs.txt  # format in parallel, order kept`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Int("workers", 1, "Goroutines used to format standard input (order is preserved)")
	cmd.PersistentFlags().Bool("verbose", false, "Log formatting activity to standard error")

	for _, spec := range kindCommands {
		cmd.AddCommand(newFormatCommand(spec))
	}

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
