package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Seed credentials for the admin account.
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	// Secret key behind the hidden admin login trigger.
	ADMIN_GATE_KEY string

	// Order notification mail.
	SMTP_FROM       string
	SMTP_PASSWORD   string
	SMTP_HOST       string
	SMTP_PORT       string
	ORDER_NOTIFY_TO string

	// Object storage for admin image uploads.
	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_USE_SSL    bool
	MINIO_PUBLIC_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
	ADMIN_GATE_KEY = mustEnv("ADMIN_GATE_KEY")

	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	ORDER_NOTIFY_TO = getEnv("ORDER_NOTIFY_TO", SMTP_FROM)

	MINIO_ENDPOINT = getEnv("MINIO_ENDPOINT", "")
	MINIO_ACCESS_KEY = getEnv("MINIO_ACCESS_KEY", "")
	MINIO_SECRET_KEY = getEnv("MINIO_SECRET_KEY", "")
	MINIO_BUCKET = getEnv("MINIO_BUCKET", "artworks")
	MINIO_USE_SSL = getEnv("MINIO_USE_SSL", "true") == "true"
	MINIO_PUBLIC_URL = getEnv("MINIO_PUBLIC_URL", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
