package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration, loaded from CHIRP_-prefixed
// environment variables. A local .env file is honored when present.
type Config struct {
	Addr          string `envconfig:"ADDR" default:":8080"`
	DBDriver      string `envconfig:"DB_DRIVER" default:"sqlite3"`
	DBDSN         string `envconfig:"DB_DSN" default:"chirp.db"`
	HashPasswords bool   `envconfig:"HASH_PASSWORDS" default:"false"`
	LogJSON       bool   `envconfig:"LOG_JSON" default:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("chirp", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
