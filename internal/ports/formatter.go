package ports

// Formatter renders one raw string in its canonical display form. Formatters
// are total: they never fail and return blank input unchanged.
type Formatter interface {
	Format(text string) string
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(text string) string

// Format calls f(text).
func (f FormatterFunc) Format(text string) string {
	return f(text)
}
