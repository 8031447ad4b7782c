// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with github.com/caarlos0/env tags. A .env
// file in the working directory is read once with github.com/joho/godotenv
// before the first parse; real environment variables take precedence.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches the result per type, so packages may call it independently and
// share one parse. Parse skips the cache.
package config
