package casefmt

import (
	"io"
	"os"

	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// NewLogger creates an l.Logger writing to output, or to stdout when output
// is nil. It is the logger the bundled server and CLI use.
func NewLogger(output io.Writer, jsonFormat bool) (l.Logger, error) {
	if output == nil {
		output = os.Stdout
	}
	cfg := logger.DefaultConfig()
	cfg.Output = output
	cfg.JsonFormat = jsonFormat
	return l.NewStandardFactory().CreateLogger(cfg)
}
