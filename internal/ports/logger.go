package ports

// Logger defines the structured logging interface used across the module.
// Key/value pairs follow the message, as in Info("msg", "key", value).
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}
