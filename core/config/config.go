package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load is called with a nil pointer.
var ErrNilConfig = errors.New("config: nil config pointer")

var (
	mu    sync.Mutex
	cache = map[reflect.Type]any{}

	loadDotenv sync.Once
)

// Load populates cfg from environment variables, loading .env files on
// first use. Each configuration type is parsed once per process; later
// calls for the same type copy the cached value so all callers observe
// identical configuration.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// Missing .env files are not an error; real deployments configure the
	// environment directly.
	loadDotenv.Do(func() { _ = godotenv.Load() })

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load panicking on failure, for process startup paths where a
// missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
