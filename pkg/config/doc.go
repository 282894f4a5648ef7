// Package config loads settings from environment variables and optional
// .env files into tagged structs.
//
// It combines github.com/joho/godotenv for reading .env files with
// github.com/caarlos0/env/v11 for struct parsing. Values are resolved in
// this order, later sources winning:
//
//  1. .env files (the default ".env" if it exists, or the files passed to
//     WithEnvFiles, in order);
//  2. the process environment.
//
// Files are read, not exported: Load never calls os.Setenv.
//
// # Usage
//
//	type Settings struct {
//		tokenclient.Configuration
//		tokenclient.Credentials
//		Output string `env:"OUTPUT" envDefault:"json"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("JWTCLI_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
//   - ErrReadingEnvFile – a file given to WithEnvFiles could not be read.
//   - ErrParsingConfig  – caarlos0/env rejected the values (missing required
//     variable, bad number, ...). The parser's error is joined to it.
package config
