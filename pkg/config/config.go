package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries everything the library service reads from the environment.
type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"postgres"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"program"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"test"`
	DBName     string `env:"DB_NAME" envDefault:"library"`
	ListenAddr string `env:"LIBRARY_ADDR" envDefault:":8060"`
	Seed       bool   `env:"LIBRARY_SEED" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
