// Loads envs from .env, validates required settings, provides defaults.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	GeminiAPIKey string

	// Gmail sender identity and OAuth file locations.
	GmailFrom        string
	GmailCredentials string
	GmailTokenFile   string

	// S3-compatible object storage for uploaded PDFs.
	S3Region    string
	S3Endpoint  string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseDSN:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GmailFrom:        os.Getenv("GMAIL_FROM"),
		GmailCredentials: os.Getenv("GMAIL_CREDENTIALS_FILE"),
		GmailTokenFile:   os.Getenv("GMAIL_TOKEN_FILE"),
		S3Region:         os.Getenv("S3_REGION"),
		S3Endpoint:       os.Getenv("S3_ENDPOINT"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3AccessKey:      os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:      os.Getenv("S3_SECRET_KEY"),
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.GmailCredentials == "" {
		cfg.GmailCredentials = "credential.json"
	}
	if cfg.GmailTokenFile == "" {
		cfg.GmailTokenFile = "token.json"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "internlink"
	}

	// Required settings
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	if cfg.GmailFrom == "" {
		log.Fatal("GMAIL_FROM is required")
	}
	if cfg.S3Endpoint == "" {
		log.Fatal("S3_ENDPOINT is required")
	}

	return cfg
}
