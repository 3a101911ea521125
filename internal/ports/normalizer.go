package ports

// Normalizer defines the interface for text pre-normalization applied before
// formatting.
type Normalizer interface {
	Normalize(text string) string
}
