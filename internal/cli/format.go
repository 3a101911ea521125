package cli

import (
	"fmt"

	casefmt "github.com/baditaflorin/go_casefmt"
	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/pkg/streaming"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

type kindCommand struct {
	use     string
	aliases []string
	short   string
	kind    casefmt.Kind
}

var kindCommands = []kindCommand{
	{use: "name", aliases: []string{"person"}, short: "Format personal names", kind: casefmt.KindName},
	{use: "address", short: "Format comma-separated postal addresses", kind: casefmt.KindAddress},
	{use: "city", short: "Format city names", kind: casefmt.KindCity},
	{use: "entity", aliases: []string{"company", "legal-entity"}, short: "Format company and organization names", kind: casefmt.KindLegalEntity},
	{use: "postal", aliases: []string{"zip"}, short: "Format Canadian postal codes and US ZIP codes", kind: casefmt.KindPostalCode},
	{use: "country", short: "Format country codes and names", kind: casefmt.KindCountry},
}

func newFormatCommand(spec kindCommand) *cobra.Command {
	return &cobra.Command{
		Use:     spec.use + " [text...]",
		Aliases: spec.aliases,
		Short:   spec.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, spec.kind, args)
		},
		SilenceUsage: true,
	}
}

func runFormat(cmd *cobra.Command, kind casefmt.Kind, args []string) error {
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return fmt.Errorf("read --workers: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("read --verbose: %w", err)
	}
	if workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", workers)
	}

	var (
		formatter  = casefmt.Default()
		streamOpts = []streaming.StreamingOption{streaming.WithStreamingWorkers(workers)}
	)
	if verbose {
		cfg := logger.DefaultConfig()
		cfg.Output = cmd.ErrOrStderr()
		// synchronous, so log lines and the summary share stderr in order
		cfg.AsyncWrite = false
		lg, err := l.NewStandardFactory().CreateLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer lg.Close()
		formatter = casefmt.New(casefmt.WithLogger(lg))
		streamOpts = append(streamOpts, streaming.WithStreamingLogger(lg))
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, arg := range args {
			if _, err := fmt.Fprintln(out, formatter.Format(kind, arg)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}

	streamOpts = append(streamOpts, streaming.WithStreamingFormatter(formatter))
	result, err := streaming.FormatLines(cmd.Context(), kind, cmd.InOrStdin(), out, streamOpts...)
	if err != nil {
		return fmt.Errorf("format %s lines: %w", kind, err)
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "formatted %d lines in %s\n", result.Lines, result.ProcessingTime)
	}
	return nil
}
