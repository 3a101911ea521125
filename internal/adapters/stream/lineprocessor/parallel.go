package lineprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/errgroup"
)

// lineBatch is a run of consecutive input lines. The worker that formats it
// hands the result back through out, which has room for exactly one buffer.
type lineBatch struct {
	lines []string
	out   chan *bytebufferpool.ByteBuffer
}

// processLinesParallel formats batches on a worker pool. Every batch is also
// queued in read order on a second channel, so the writer emits results in
// input order while later batches are still being formatted.
func (p *Processor) processLinesParallel(ctx context.Context, reader io.Reader, writer io.Writer) (ports.LineStats, error) {
	startTime := time.Now()
	workers := p.config.Workers

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan *lineBatch, workers)
	ordered := make(chan *lineBatch, workers*2)

	// The reader goroutine owns lines and bytesProcessed, the writer owns
	// bytesWritten. g.Wait orders both before they are read below.
	var lines int
	var bytesProcessed, bytesWritten int64

	g.Go(func() error {
		defer close(jobs)
		defer close(ordered)

		br := bufio.NewReaderSize(reader, p.config.ChunkSize)
		pending := make([]string, 0, p.config.BatchSize)

		send := func() error {
			if len(pending) == 0 {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			b := &lineBatch{lines: pending, out: make(chan *bytebufferpool.ByteBuffer, 1)}
			pending = make([]string, 0, p.config.BatchSize)
			// ordered first, so the writer never waits on a batch no worker can see
			for _, ch := range []chan *lineBatch{ordered, jobs} {
				select {
				case ch <- b:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		}

		for {
			raw, err := br.ReadString('\n')
			if len(raw) > 0 {
				lines++
				bytesProcessed += int64(len(raw))
				pending = append(pending, trimEOL(raw))
				if len(pending) >= p.config.BatchSize {
					if sendErr := send(); sendErr != nil {
						return sendErr
					}
				}
			}
			if err != nil {
				if err != io.EOF {
					p.logger.Warn("Error reading from input", "error", err)
					return fmt.Errorf("read line %d: %w", lines+1, err)
				}
				return send()
			}
		}
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for b := range jobs {
				buf := bytebufferpool.Get()
				for _, line := range b.lines {
					buf.WriteString(p.formatter.Format(line))
					buf.WriteByte('\n')
				}
				b.out <- buf
			}
			return nil
		})
	}

	g.Go(func() error {
		for b := range ordered {
			select {
			case buf := <-b.out:
				n, err := writer.Write(buf.B)
				bytesWritten += int64(n)
				bytebufferpool.Put(buf)
				if err != nil {
					return fmt.Errorf("write batch: %w", err)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	err := g.Wait()
	stats := ports.LineStats{
		Lines:          lines,
		BytesProcessed: bytesProcessed,
		BytesWritten:   bytesWritten,
		ProcessingTime: time.Since(startTime),
	}
	if err != nil {
		p.logger.Warn("Parallel line processing failed", "error", err, "lines", lines)
		return stats, err
	}

	p.logger.Debug("Parallel line processing completed",
		"lines", lines,
		"bytes_processed", bytesProcessed,
		"workers", workers,
		"duration", stats.ProcessingTime,
	)

	return stats, nil
}
