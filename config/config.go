package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
// MongoURL and DBName are mandatory; the process must not start without them.
type Config struct {
	MongoURL string
	DBName   string
	Port     string
	Env      string

	// Optional email notification settings. Notifications are skipped
	// entirely when either value is empty.
	SendGridAPIKey string
	NotifyEmail    string
}

func Load() (Config, error) {
	// Best effort: a missing .env file is fine, the real environment wins.
	_ = godotenv.Load()

	cfg := Config{
		MongoURL:       os.Getenv("MONGO_URL"),
		DBName:         os.Getenv("DB_NAME"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("APP_ENV"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		NotifyEmail:    os.Getenv("NOTIFY_EMAIL"),
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL environment variable not set")
	}
	if cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_NAME environment variable not set")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	return cfg, nil
}
