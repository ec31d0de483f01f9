package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("loads_from_environment", func(t *testing.T) {
		type serverConfig struct {
			Port int    `env:"TEST_LOAD_PORT" envDefault:"8080"`
			Host string `env:"TEST_LOAD_HOST" envDefault:"localhost"`
		}

		t.Setenv("TEST_LOAD_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("caches_per_type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_CACHE_VALUE" envDefault:"first"`
		}

		t.Setenv("TEST_CACHE_VALUE", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		// A later load of the same type returns the cached value even after
		// the environment changes.
		t.Setenv("TEST_CACHE_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("required_variable_missing_fails", func(t *testing.T) {
		type strictConfig struct {
			Secret string `env:"TEST_LOAD_MISSING_SECRET,required"`
		}

		var cfg strictConfig
		assert.Error(t, config.Load(&cfg))
	})

	t.Run("nil_pointer_fails", func(t *testing.T) {
		var cfg *struct{}
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics_on_missing_required", func(t *testing.T) {
		type strictConfig struct {
			Token string `env:"TEST_MUSTLOAD_MISSING_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg strictConfig
			config.MustLoad(&cfg)
		})
	})
}
