package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present and no explicit files are given.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles reads the given .env files instead of the default one.
// Every file must exist. Later files override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			if p != "" {
				o.files = append(o.files, p)
			}
		}
	}
}

// WithPrefix prepends prefix to every variable name, e.g. "JWTCLI_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load populates v from .env files and the process environment using `env`
// struct tags. Process variables take precedence over file values and the
// process environment is never modified.
//
// Example:
//
//	type Settings struct {
//		URL      string `env:"URL,required"`
//		ClientID string `env:"CLIENT_ID"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("JWTCLI_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := readEnvFiles(o.files)
	if err != nil {
		return err
	}
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			vars[key] = value
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// readEnvFiles merges the given files. With no files the default .env is
// read if it exists; a missing default file is not an error.
func readEnvFiles(files []string) (map[string]string, error) {
	vars := make(map[string]string)

	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return vars, nil
		}
		files = []string{DefaultEnvFile}
	}

	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadingEnvFile, f, err)
		}
		for k, val := range values {
			vars[k] = val
		}
	}

	return vars, nil
}
