package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultBodyLimitBytes bounds request bodies. Form layouts can be large, so this is well above
// Fiber's 4 MiB default.
const DefaultBodyLimitBytes = 64 << 20

// DatabaseConfig holds the PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds the object storage settings used by export.
// An empty Endpoint disables export.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is everything the service reads from its environment.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	// BodyLimitBytes is the largest accepted request body.
	BodyLimitBytes int
	// ExportURLExpirySec is the lifetime of presigned export download URLs.
	ExportURLExpirySec int

	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables. main imports
// github.com/joho/godotenv/autoload so a .env file fills in whatever the real environment
// leaves unset.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            envString("APP_HOST", "localhost:8080"),
		Port:               envString("PORT", "8080"),
		Timezone:           envString("APP_TIMEZONE", "UTC"),
		LogLevel:           envString("LOG_LEVEL", "info"),
		BodyLimitBytes:     envInt("BODY_LIMIT_BYTES", DefaultBodyLimitBytes),
		ExportURLExpirySec: envInt("EXPORT_URL_EXPIRY_SEC", 900),
		Database:           loadDatabase(),
		MinIO:              loadMinIO(),
	}
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:               envString("DB_HOST", ""),
		Port:               envString("DB_PORT", "5432"),
		User:               envString("DB_USER", ""),
		Password:           envString("DB_PASSWORD", ""),
		Name:               envString("DB_NAME", ""),
		SSLMode:            envString("DB_SSLMODE", "disable"),
		MaxOpenConns:       envInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:       envInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetimeSec: envInt("DB_CONN_MAX_LIFETIME_SEC", 300),
	}
}

func loadMinIO() MinIOConfig {
	return MinIOConfig{
		Endpoint:  envString("MINIO_ENDPOINT", ""),
		AccessKey: envString("MINIO_ACCESS_KEY", ""),
		SecretKey: envString("MINIO_SECRET_KEY", ""),
		Bucket:    envString("MINIO_BUCKET", "form-structures"),
		UseSSL:    envBool("MINIO_USE_SSL", false),
	}
}

// Validate reports every setting the service cannot start without.
func (c *AppConfig) Validate() error {
	var errs []error
	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a number", c.Port))
	}
	if c.BodyLimitBytes <= 0 {
		errs = append(errs, errors.New("BODY_LIMIT_BYTES must be positive"))
	}

	var missing []string
	for _, kv := range [][2]string{
		{"DB_HOST", c.Database.Host},
		{"DB_USER", c.Database.User},
		{"DB_NAME", c.Database.Name},
	} {
		if kv[1] == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}

	if c.MinIO.Enabled() && (c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "") {
		errs = append(errs, errors.New("MINIO_ENDPOINT is set but MINIO_ACCESS_KEY or MINIO_SECRET_KEY is empty"))
	}
	return errors.Join(errs...)
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(envString(key, "")); err == nil {
		return b
	}
	return def
}

func envInt(key string, def int) int {
	if i, err := strconv.Atoi(envString(key, "")); err == nil {
		return i
	}
	return def
}
