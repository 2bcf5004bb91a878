package gateway

// Config holds the sampling profiles for generative answers. Math
// questions get a lower temperature and a tighter output ceiling; the
// general profile allows longer, more varied answers.
type Config struct {
	Temperature     float64
	MaxTokens       int
	MathTemperature float64
	MathMaxTokens   int
}

// DefaultConfig returns the standard sampling profiles.
func DefaultConfig() Config {
	return Config{
		Temperature:     0.7,
		MaxTokens:       1200,
		MathTemperature: 0.2,
		MathMaxTokens:   800,
	}
}
