// Package streaming formats newline-delimited records read from an io.Reader,
// one record per line, writing the results in input order.
package streaming

import (
	"context"
	"io"
	"strings"

	casefmt "github.com/baditaflorin/go_casefmt"
	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/internal/adapters/stream/lineprocessor"
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/baditaflorin/l"
)

// StreamResult summarizes a completed run.
type StreamResult struct {
	Kind           string
	Lines          int
	BytesProcessed int64
	BytesWritten   int64
	ProcessingTime string // Duration as string for easy display
}

// StreamingOption defines a functional option for configuring a LineFormatter
type StreamingOption func(*streamingConfig)

type streamingConfig struct {
	ChunkSize   int
	BatchSize   int
	Workers     int
	UseParallel bool
	Logger      ports.Logger
	Formatter   *casefmt.Formatter
}

// WithStreamingChunkSize sets the read and write buffer size
func WithStreamingChunkSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ChunkSize = size
	}
}

// WithStreamingBatchSize sets how many lines a worker formats at once
func WithStreamingBatchSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.BatchSize = size
	}
}

// WithStreamingWorkers formats lines on n goroutines. Output order is kept.
// Values below 2 select sequential processing.
func WithStreamingWorkers(n int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Workers = n
		cfg.UseParallel = n > 1
	}
}

// WithStreamingLogger sets a custom logger
func WithStreamingLogger(lg l.Logger) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.ForComponent(lg, "stream")
	}
}

// WithStreamingFormatter sets the Formatter used for every line. The
// package-level default is used otherwise.
func WithStreamingFormatter(f *casefmt.Formatter) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Formatter = f
	}
}

// LineFormatter formats streams of a single kind.
type LineFormatter struct {
	kind      casefmt.Kind
	processor *lineprocessor.Processor
}

// NewLineFormatter creates a LineFormatter for kind.
func NewLineFormatter(kind casefmt.Kind, opts ...StreamingOption) (*LineFormatter, error) {
	config := &streamingConfig{
		ChunkSize: lineprocessor.DefaultChunkSize,
		BatchSize: lineprocessor.DefaultBatchSize,
		Workers:   1,
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		config.Logger = logger.NewNopLogger()
	}
	if config.Formatter == nil {
		config.Formatter = casefmt.Default()
	}

	processor, err := lineprocessor.NewProcessor(config.Logger, config.Formatter.For(kind), lineprocessor.ProcessingConfig{
		ChunkSize:   config.ChunkSize,
		BatchSize:   config.BatchSize,
		Workers:     config.Workers,
		UseParallel: config.UseParallel,
	})
	if err != nil {
		return nil, err
	}

	return &LineFormatter{kind: kind, processor: processor}, nil
}

// FormatReader formats every line of r into w. On error the result covers
// the lines read before it.
func (lf *LineFormatter) FormatReader(ctx context.Context, r io.Reader, w io.Writer) (StreamResult, error) {
	stats, err := lf.processor.ProcessLines(ctx, r, w)
	return StreamResult{
		Kind:           lf.kind.String(),
		Lines:          stats.Lines,
		BytesProcessed: stats.BytesProcessed,
		BytesWritten:   stats.BytesWritten,
		ProcessingTime: stats.ProcessingTime.String(),
	}, err
}

// FormatString formats a multi-line string and returns the formatted text.
func (lf *LineFormatter) FormatString(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	if _, err := lf.FormatReader(ctx, strings.NewReader(text), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatLines formats every line of r as kind and writes the results to w.
func FormatLines(ctx context.Context, kind casefmt.Kind, r io.Reader, w io.Writer, opts ...StreamingOption) (StreamResult, error) {
	lf, err := NewLineFormatter(kind, opts...)
	if err != nil {
		return StreamResult{}, err
	}
	return lf.FormatReader(ctx, r, w)
}
