package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/google/go-cmp/cmp"
)

func TestNopLogger(t *testing.T) {
	lg := NewNopLogger()
	lg.Debug("debug", "k", 1)
	lg.Info("info")
	lg.Warn("warn", "k", "v")
	lg.Error("error")
	if err := lg.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func TestStdLoggerWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf
	cfg.AsyncWrite = false

	base, err := l.NewStandardFactory().CreateLogger(cfg)
	if err != nil {
		t.Fatalf("CreateLogger() error = %v", err)
	}
	lg := ForComponent(base, "stream")
	lg.Info("formatted batch", "lines", 3)
	lg.Error("formatting failed", "kind", "address")
	if err := lg.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"formatted batch", "formatting failed", "component", "stream", "address"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestForComponentArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []interface{}
		want []interface{}
	}{
		{"no args", nil, []interface{}{"component", "server"}},
		{"appended", []interface{}{"kind", "city"}, []interface{}{"component", "server", "kind", "city"}},
	}
	lg := ForComponent(nil, "server")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, lg.args(tc.in)); diff != "" {
				t.Errorf("args() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
