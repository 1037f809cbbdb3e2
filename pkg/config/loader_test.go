package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgraph/shadowgraph-go/pkg/config"
)

type transportConfig struct {
	BaseURL string        `env:"TEST_API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	Timeout time.Duration `env:"TEST_API_TIMEOUT" envDefault:"8s"`
}

type strictConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()

		var cfg transportConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
		assert.Equal(t, 8*time.Second, cfg.Timeout)
	})

	t.Run("reads the environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_BASE_URL", "http://backend.internal:9000")
		t.Setenv("TEST_API_TIMEOUT", "30s")

		var cfg transportConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://backend.internal:9000", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_BASE_URL", "http://first:8000")

		var first transportConfig
		require.NoError(t, config.Load(&first))

		// Environment changes after the first load are not observed.
		t.Setenv("TEST_API_BASE_URL", "http://second:8000")
		var second transportConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "http://first:8000", second.BaseURL)
	})

	t.Run("rejects a nil pointer", func(t *testing.T) {
		err := config.Load[transportConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		config.Reset()

		var cfg strictConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoadPanics(t *testing.T) {
	config.Reset()

	var cfg strictConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
