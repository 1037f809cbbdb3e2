package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into
	// the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided")
)

var (
	mu     sync.Mutex
	cache  = make(map[string]any)
	dotenv sync.Once
)

// Load parses environment variables into v. The first call for a given type
// does the parsing; later calls return the cached copy. The default .env file
// is loaded once per process and may be absent.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenv.Do(func() { _ = godotenv.Load() })

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	// Cache a copy so callers cannot mutate what later loads receive.
	cache[key] = *v
	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %s: %v", typeName[T](), err))
	}
}

// Reset clears the configuration cache. Intended for tests that mutate the
// environment between loads.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
