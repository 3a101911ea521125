package logger

import (
	"os"

	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts an l.Logger to ports.Logger. Every record it writes starts
// with the fields it was created with, so log lines from the formatter, the
// stream processor and the server can be told apart.
type StdLogger struct {
	logger l.Logger
	fields []interface{}
}

var _ ports.Logger = (*StdLogger)(nil)

// DefaultConfig returns the logger configuration used when the caller does not
// supply one: human-readable output on stdout with asynchronous writes.
func DefaultConfig() l.Config {
	return l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// ForComponent wraps lg so that every record carries component=name.
func ForComponent(lg l.Logger, name string) *StdLogger {
	return &StdLogger{logger: lg, fields: []interface{}{"component", name}}
}

func (s *StdLogger) args(keysAndValues []interface{}) []interface{} {
	if len(s.fields) == 0 {
		return keysAndValues
	}
	out := make([]interface{}, 0, len(s.fields)+len(keysAndValues))
	out = append(out, s.fields...)
	return append(out, keysAndValues...)
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, s.args(keysAndValues)...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, s.args(keysAndValues)...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, s.args(keysAndValues)...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, s.args(keysAndValues)...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}
