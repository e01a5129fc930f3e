package interpret

// Config holds reading generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for reading generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.6,
	}
}
