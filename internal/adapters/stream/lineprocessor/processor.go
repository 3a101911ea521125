package lineprocessor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/baditaflorin/go_casefmt/internal/ports"
)

// Constants for line processing
const (
	// DefaultChunkSize defines the read buffer size
	DefaultChunkSize = 64 * 1024 // 64KB

	// DefaultBatchSize defines how many lines a worker formats at once
	DefaultBatchSize = 100

	// ContextCheckFrequency defines how often the sequential path checks for cancellation
	ContextCheckFrequency = 500 // lines
)

// ProcessingConfig defines configuration for line processing
type ProcessingConfig struct {
	ChunkSize   int
	BatchSize   int
	Workers     int
	UseParallel bool
}

// DefaultConfig returns the default processing configuration.
func DefaultConfig() ProcessingConfig {
	return ProcessingConfig{
		ChunkSize:   DefaultChunkSize,
		BatchSize:   DefaultBatchSize,
		Workers:     runtime.NumCPU(),
		UseParallel: false,
	}
}

// Validate checks if the configuration is valid.
func (c ProcessingConfig) Validate() error {
	if c.ChunkSize < 0 {
		return errors.New("chunk size must not be negative")
	}
	if c.BatchSize < 0 {
		return errors.New("batch size must not be negative")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// Processor formats a stream one line at a time.
type Processor struct {
	logger    ports.Logger
	formatter ports.Formatter
	config    ProcessingConfig
}

var _ ports.LineProcessor = (*Processor)(nil)

// NewProcessor creates a new line processor. Zero values in config are
// replaced with defaults.
func NewProcessor(logger ports.Logger, formatter ports.Formatter, config ProcessingConfig) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if config.ChunkSize == 0 {
		config.ChunkSize = defaults.ChunkSize
	}
	if config.BatchSize == 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.Workers == 0 {
		config.Workers = defaults.Workers
	}

	return &Processor{
		logger:    logger,
		formatter: formatter,
		config:    config,
	}, nil
}

// ProcessLines formats every line of reader and writes the results to writer
// in input order, one per line.
func (p *Processor) ProcessLines(ctx context.Context, reader io.Reader, writer io.Writer) (ports.LineStats, error) {
	if p.config.UseParallel && p.config.Workers > 1 {
		return p.processLinesParallel(ctx, reader, writer)
	}
	return p.processLinesSequential(ctx, reader, writer)
}

func (p *Processor) processLinesSequential(ctx context.Context, reader io.Reader, writer io.Writer) (ports.LineStats, error) {
	startTime := time.Now()
	var stats ports.LineStats

	br := bufio.NewReaderSize(reader, p.config.ChunkSize)
	bw := bufio.NewWriterSize(writer, p.config.ChunkSize)

	for {
		if stats.Lines%ContextCheckFrequency == 0 {
			select {
			case <-ctx.Done():
				p.logger.Warn("Processing cancelled by context", "error", ctx.Err(), "lines", stats.Lines)
				return stats, ctx.Err()
			default:
			}
		}

		raw, readErr := br.ReadString('\n')
		if len(raw) > 0 {
			stats.Lines++
			stats.BytesProcessed += int64(len(raw))

			n, err := bw.WriteString(p.formatter.Format(trimEOL(raw)) + "\n")
			stats.BytesWritten += int64(n)
			if err != nil {
				return stats, fmt.Errorf("write line %d: %w", stats.Lines, err)
			}
		}

		if readErr != nil {
			if readErr != io.EOF {
				p.logger.Warn("Error reading from input", "error", readErr)
				return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, readErr)
			}
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}

	stats.ProcessingTime = time.Since(startTime)
	p.logger.Debug("Line processing completed",
		"lines", stats.Lines,
		"bytes_processed", stats.BytesProcessed,
		"duration", stats.ProcessingTime,
	)

	return stats, nil
}

// trimEOL strips a trailing LF or CRLF.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
