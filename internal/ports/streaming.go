package ports

import (
	"context"
	"io"
	"time"
)

// LineProcessor formats a stream one record per line.
type LineProcessor interface {
	// ProcessLines reads lines from reader, formats each one and writes the
	// results, in input order, to writer.
	ProcessLines(ctx context.Context, reader io.Reader, writer io.Writer) (LineStats, error)
}

// LineStats summarizes one ProcessLines call.
type LineStats struct {
	Lines          int
	BytesProcessed int64
	BytesWritten   int64
	ProcessingTime time.Duration
}
