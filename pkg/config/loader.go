package config

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per config type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

// EnvFileVariable names a comma-separated list of .env files that replaces
// the default ./.env lookup.
const EnvFileVariable = "ENV_FILE"

var (
	global = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
	defaultEnvErr    error
)

// Load parses environment variables into v using `env` struct tags.
//
// The first call loads a .env file from the working directory if one exists,
// or the files listed in ENV_FILE, which must exist. Variables already set in the process environment take precedence over the
// file. Each config type is parsed once; later calls for the same type copy
// the cached value into v.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		defaultEnvErr = loadDefaultEnv()
	})
	if defaultEnvErr != nil {
		return defaultEnvErr
	}

	key := reflect.TypeFor[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

// LoadEnv loads variables from the given .env files without overriding
// variables that are already set. Cached configs are not refreshed; call
// ResetCache to reparse them.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

func loadDefaultEnv() error {
	if files := os.Getenv(EnvFileVariable); files != "" {
		return LoadEnv(strings.Split(files, ",")...)
	}
	// A missing .env file is fine.
	_ = godotenv.Load()
	return nil
}

// ResetCache drops every cached config so the next Load parses again.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[reflect.Type]any)
}
