package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. Every field
// is infrastructure wiring; nothing here changes business behavior.
type Config struct {
	Mode          string `env:"MODE" env-default:"dev"`
	Port          string `env:"PORT" env-default:"8080"`
	SessionSecret string `env:"SESSION_SECRET" env-default:"dev-secret-key-change-me"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"console"`

	DB Database
}

type Database struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `env:"DB_NAME" env-default:"academico"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Dev reports whether the dev-only surface (the seed endpoint) is enabled.
func (c *Config) Dev() bool { return c.Mode == "dev" }

// MustLoad reads a local .env when present, then the environment.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
