package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"

	StorageLocal = "local"
	StorageGCS   = "gcs"
)

type Config struct {
	Port       string
	Env        string
	CORSOrigin string

	StoreDriver string
	MongoURI    string
	MongoDB     string
	MongoTLS    MongoTLS
	PostgresURI string

	StorageDriver      string
	UploadDir          string
	GCSBucket          string
	GCSCredentialsFile string
	GCSPublic          bool

	ResumeRequired bool
	ResumeMaxBytes int64

	RedisAddr    string
	EventsStream string
	EventsMaxLen int64

	ShutdownTimeout time.Duration
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "5000"),
		Env:        getEnv("APP_ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", "https://sustainhireenterprise.netlify.app"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "sustainhire"),
		MongoTLS: MongoTLS{
			Force:    getBool("MONGO_FORCE_TLS_CONFIG", false),
			Insecure: getBool("MONGO_INSECURE_TLS", false),
		},
		PostgresURI: os.Getenv("POSTGRES_URI"),

		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageLocal)),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
		GCSPublic:          getBool("GCS_PUBLIC", false),

		ResumeRequired: getBool("RESUME_REQUIRED", true),
		ResumeMaxBytes: getInt64("RESUME_MAX_BYTES", 10<<20),

		RedisAddr:    firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		EventsStream: getEnv("EVENTS_STREAM", "internship:submitted"),
		EventsMaxLen: getInt64("EVENTS_MAXLEN", 0),

		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI environment variable is not set"))
		}
	case StorePostgres:
		if c.PostgresURI == "" {
			errs = append(errs, errors.New("POSTGRES_URI environment variable is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q is not supported (mongo|postgres)", c.StoreDriver))
	}

	switch c.StorageDriver {
	case StorageLocal:
		if c.UploadDir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR must not be empty"))
		}
	case StorageGCS:
		if c.GCSBucket == "" {
			errs = append(errs, errors.New("GCS_BUCKET environment variable is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not supported (local|gcs)", c.StorageDriver))
	}

	if c.ResumeMaxBytes <= 0 {
		errs = append(errs, errors.New("RESUME_MAX_BYTES must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(strings.TrimSpace(value))
		if err == nil {
			return parsed
		}
	}
	return fallback
}
