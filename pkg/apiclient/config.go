package apiclient

import "time"

// Config holds transport configuration.
type Config struct {
	// BaseURL is the backend base address.
	BaseURL string `env:"SHADOWGRAPH_API_BASE_URL" envDefault:"http://127.0.0.1:8000"`

	// Timeout applies per request attempt.
	Timeout time.Duration `env:"SHADOWGRAPH_API_TIMEOUT" envDefault:"8s"`
}

// DefaultConfig returns the loopback development defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 8 * time.Second,
	}
}
