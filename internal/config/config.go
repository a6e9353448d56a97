package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"os"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	Port string

	// StoreBackend selects which PostStore implementation backs the blog.
	StoreBackend string
	RedisURL     string
	SQLitePath   string
	DataFile     string

	UploadDir      string
	MaxUploadBytes int64

	AdminToken string

	SheetsWebhookURL string
	SignupLogPath    string

	// StaticFallback controls whether listings degrade to the compiled-in
	// posts when the store is unreachable, instead of failing the request.
	StaticFallback bool

	CORSAllowedOrigins []string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		StoreBackend:       getEnv("STORE_BACKEND", BackendFile),
		RedisURL:           getEnv("REDIS_URL", ""),
		SQLitePath:         getEnv("SQLITE_DB_PATH", "./studio.db"),
		DataFile:           getEnv("BLOG_DATA_FILE", "./data/blog_posts.json"),
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		SheetsWebhookURL:   getEnv("SHEETS_WEBHOOK_URL", ""),
		SignupLogPath:      getEnv("SIGNUP_LOG_PATH", "./data/signups.jsonl"),
		StaticFallback:     getEnvBool("STATIC_FALLBACK", true),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	switch cfg.StoreBackend {
	case BackendRedis, BackendSQLite, BackendFile, BackendMemory:
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("Unknown STORE_BACKEND")
	}

	if cfg.StoreBackend == BackendRedis && cfg.RedisURL == "" {
		log.Fatal().Msg("REDIS_URL is required when STORE_BACKEND=redis")
	}
	if cfg.AdminToken == "" {
		log.Fatal().Msg("ADMIN_TOKEN is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt64(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", value).Msg("Invalid integer environment variable")
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", value).Msg("Invalid boolean environment variable")
	}
	return b
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
