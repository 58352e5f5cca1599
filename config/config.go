package config

import (
	"os"
	"strings"
	"time"
)

// Config collects everything the site needs from the environment.
// It is built once in main and threaded through the constructors.
type Config struct {
	Port              string
	DatabaseDSN       string
	SecretKey         []byte
	UploadDir         string
	UploadPrefix      string
	AllowedExtensions []string
	SessionLifetime   time.Duration
	RememberLifetime  time.Duration
	ConfirmTokenTTL   time.Duration
	TemplateGlob      string
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "8080"),
		DatabaseDSN:       getenv("DATABASE_DSN", "host=localhost port=5432 user=tactify password=tactify dbname=tactify sslmode=disable"),
		SecretKey:         []byte(getenv("SECRET_KEY", "change-this-secret-in-production")),
		UploadDir:         getenv("UPLOAD_FOLDER", "./uploads"),
		UploadPrefix:      getenv("UPLOAD_PREFIX", "tactify_"),
		AllowedExtensions: strings.Split(getenv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,pdf"), ","),
		SessionLifetime:   24 * time.Hour,
		RememberLifetime:  30 * 24 * time.Hour,
		ConfirmTokenTTL:   time.Hour,
		TemplateGlob:      getenv("TEMPLATE_GLOB", "templates/*"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
