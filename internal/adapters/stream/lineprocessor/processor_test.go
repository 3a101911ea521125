package lineprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/google/go-cmp/cmp"
)

var upper = ports.FormatterFunc(strings.ToUpper)

func newTestProcessor(t *testing.T, cfg ProcessingConfig) *Processor {
	t.Helper()
	p, err := NewProcessor(logger.NewNopLogger(), upper, cfg)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}
	return p
}

func numberedLines(n int) (in, want string) {
	var ib, wb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&ib, "line %d\n", i)
		fmt.Fprintf(&wb, "LINE %d\n", i)
	}
	return ib.String(), wb.String()
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProcessingConfig
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero", ProcessingConfig{}, false},
		{"negative chunk", ProcessingConfig{ChunkSize: -1}, true},
		{"negative batch", ProcessingConfig{BatchSize: -1}, true},
		{"negative workers", ProcessingConfig{Workers: -2}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if _, err := NewProcessor(logger.NewNopLogger(), upper, tc.cfg); (err != nil) != tc.wantErr {
				t.Errorf("NewProcessor() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestProcessLines(t *testing.T) {
	manyIn, manyWant := numberedLines(1000)

	configs := []struct {
		name string
		cfg  ProcessingConfig
	}{
		{"sequential", ProcessingConfig{}},
		{"sequential small chunks", ProcessingConfig{ChunkSize: 16}},
		{"parallel", ProcessingConfig{Workers: 4, BatchSize: 7, UseParallel: true}},
		{"parallel single line batches", ProcessingConfig{Workers: 3, BatchSize: 1, UseParallel: true}},
	}
	inputs := []struct {
		name  string
		in    string
		want  string
		lines int
	}{
		{"empty", "", "", 0},
		{"single without newline", "o'shea", "O'SHEA\n", 1},
		{"crlf", "a\r\nb\r\n", "A\nB\n", 2},
		{"blank lines kept", "a\n\nb\n", "A\n\nB\n", 3},
		{"many", manyIn, manyWant, 1000},
	}

	for _, c := range configs {
		for _, in := range inputs {
			t.Run(c.name+"/"+in.name, func(t *testing.T) {
				p := newTestProcessor(t, c.cfg)
				var out bytes.Buffer
				stats, err := p.ProcessLines(context.Background(), strings.NewReader(in.in), &out)
				if err != nil {
					t.Fatalf("ProcessLines() error = %v", err)
				}
				if diff := cmp.Diff(in.want, out.String()); diff != "" {
					t.Errorf("output mismatch (-want +got):\n%s", diff)
				}
				if stats.Lines != in.lines {
					t.Errorf("Lines = %d, want %d", stats.Lines, in.lines)
				}
				if stats.BytesProcessed != int64(len(in.in)) {
					t.Errorf("BytesProcessed = %d, want %d", stats.BytesProcessed, len(in.in))
				}
				if stats.BytesWritten != int64(out.Len()) {
					t.Errorf("BytesWritten = %d, want %d", stats.BytesWritten, out.Len())
				}
			})
		}
	}
}

func TestProcessLinesCancelled(t *testing.T) {
	in, _ := numberedLines(100)
	for _, cfg := range []ProcessingConfig{
		{},
		{Workers: 4, BatchSize: 10, UseParallel: true},
	} {
		t.Run(fmt.Sprintf("parallel=%v", cfg.UseParallel), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := newTestProcessor(t, cfg).ProcessLines(ctx, strings.NewReader(in), io.Discard)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("ProcessLines() error = %v, want context.Canceled", err)
			}
		})
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestProcessLinesErrors(t *testing.T) {
	errBoom := errors.New("boom")
	in, _ := numberedLines(500)

	for _, cfg := range []ProcessingConfig{
		{},
		{Workers: 2, BatchSize: 10, UseParallel: true},
	} {
		t.Run(fmt.Sprintf("write/parallel=%v", cfg.UseParallel), func(t *testing.T) {
			_, err := newTestProcessor(t, cfg).ProcessLines(context.Background(), strings.NewReader(in), failingWriter{errBoom})
			if !errors.Is(err, errBoom) {
				t.Errorf("ProcessLines() error = %v, want %v", err, errBoom)
			}
		})
		t.Run(fmt.Sprintf("read/parallel=%v", cfg.UseParallel), func(t *testing.T) {
			_, err := newTestProcessor(t, cfg).ProcessLines(context.Background(), failingReader{errBoom}, io.Discard)
			if !errors.Is(err, errBoom) {
				t.Errorf("ProcessLines() error = %v, want %v", err, errBoom)
			}
		})
	}
}
