package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string `validate:"required"`
	}
	Database struct {
		Driver string `validate:"oneof=sqlite postgres"`
		Path   string `validate:"required_if=Driver sqlite"`
		DSN    string `validate:"required_if=Driver postgres"`
	}
	Registry struct {
		DefaultUniversityScore int `validate:"gte=0,lte=100"`
	}
	Seed struct {
		Enabled            bool
		MaxUsers           int `validate:"gte=0"`
		UsersPerUniversity int `validate:"gte=1"`
		RandSeed           uint64
	}
	Storage struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
	}
	AWS struct {
		Profile string
	}
	Log struct {
		Level  string `validate:"oneof=debug info warn error"`
		Format string `validate:"oneof=text json"`
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	// an optional .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SCHOLAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8088")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "data/scholar.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("registry.defaultuniversityscore", 75)
	v.SetDefault("seed.enabled", false)
	v.SetDefault("seed.maxusers", 50)
	v.SetDefault("seed.usersperuniversity", 6)
	v.SetDefault("seed.randseed", 0)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "roster-exports")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for missing or out-of-range values.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
