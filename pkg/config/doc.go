// Package config loads typed configuration from environment variables.
//
// Load wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Each config type is parsed once
// and cached for the life of the process; ResetCache clears the cache in
// tests. Set ENV_FILE to load specific .env files instead of ./.env.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Bucket   string `env:"S3_BUCKET,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
