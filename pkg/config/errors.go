package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")

	// ErrReadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrReadingEnvFile = errors.New("config: failed to read env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)
