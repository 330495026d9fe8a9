package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Import   ImportConfig
}

type AppConfig struct {
	Env  string
	Port string
	URL  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Enabled   bool // gates best-effort archiving of uploaded spreadsheets
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	Origins []string
}

type ImportConfig struct {
	ChunkSize   int // rows sent per import request
	MaxUploadMB int // cap on spreadsheet upload size
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	expiry, _ := time.ParseDuration(getEnv("JWT_EXPIRY", "8h"))

	cfg := &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("APP_PORT", "8080"),
			URL:  getEnv("APP_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "mesas"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "mesas_examen"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "mesas-examen"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			Enabled:   getEnvBool("MINIO_ENABLED", false),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Expiry: expiry,
		},
		CORS: CORSConfig{
			Origins: func() []string {
				raw := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
				var normalized []string
				for _, o := range raw {
					o = strings.TrimSpace(o)
					o = strings.TrimSuffix(o, "/")
					if o != "" {
						normalized = append(normalized, o)
					}
				}
				return normalized
			}(),
		},
		Import: ImportConfig{
			ChunkSize:   getEnvInt("IMPORT_CHUNK_SIZE", 1000),
			MaxUploadMB: getEnvInt("IMPORT_MAX_UPLOAD_MB", 5),
		},
	}

	if cfg.App.Env == "production" && cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be configured in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
