// Package config loads typed application configuration from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process, then environment variables
// are parsed into any struct using `env` field tags. Each configuration type
// is parsed at most once and served from an in-memory cache afterwards, which
// keeps repeated loads cheap and consistent across goroutines.
//
//	type TransportConfig struct {
//		BaseURL string        `env:"SHADOWGRAPH_API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
//		Timeout time.Duration `env:"SHADOWGRAPH_API_TIMEOUT" envDefault:"8s"`
//	}
//
//	var cfg TransportConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// Reset clears the cache, which tests use after mutating the environment.
package config
