package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *AppConfig {
	return &AppConfig{
		Port:           "8080",
		BodyLimitBytes: DefaultBodyLimitBytes,
		Database:       DatabaseConfig{Host: "db", User: "forms", Name: "forms"},
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("EXPORT_URL_EXPIRY_SEC", "60")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("BODY_LIMIT_BYTES", "1048576")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 60, cfg.ExportURLExpirySec)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.Equal(t, 1<<20, cfg.BodyLimitBytes)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "APP_TIMEZONE", "EXPORT_URL_EXPIRY_SEC", "BODY_LIMIT_BYTES",
		"MINIO_ENDPOINT", "MINIO_BUCKET", "DB_SSLMODE", "DB_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 900, cfg.ExportURLExpirySec)
	assert.Equal(t, DefaultBodyLimitBytes, cfg.BodyLimitBytes)
	assert.Greater(t, cfg.BodyLimitBytes, 4<<20)
	assert.Equal(t, "form-structures", cfg.MinIO.Bucket)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("BODY_LIMIT_BYTES", "lots")
	t.Setenv("DB_MAX_IDLE_CONNS", "  ")
	t.Setenv("MINIO_USE_SSL", "maybe")

	cfg := Load()

	assert.Equal(t, DefaultBodyLimitBytes, cfg.BodyLimitBytes)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.False(t, cfg.MinIO.UseSSL)
}

func TestMinIOConfig_Enabled(t *testing.T) {
	assert.False(t, MinIOConfig{}.Enabled())
	assert.True(t, MinIOConfig{Endpoint: "localhost:9000"}.Enabled())
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr []string
	}{
		{
			name:   "valid",
			mutate: func(c *AppConfig) {},
		},
		{
			name:    "port not numeric",
			mutate:  func(c *AppConfig) { c.Port = "http" },
			wantErr: []string{`PORT "http" is not a number`},
		},
		{
			name:    "non-positive body limit",
			mutate:  func(c *AppConfig) { c.BodyLimitBytes = 0 },
			wantErr: []string{"BODY_LIMIT_BYTES must be positive"},
		},
		{
			name:    "missing database settings are listed together",
			mutate:  func(c *AppConfig) { c.Database = DatabaseConfig{} },
			wantErr: []string{"missing DB_HOST, DB_USER, DB_NAME"},
		},
		{
			name:    "minio without credentials",
			mutate:  func(c *AppConfig) { c.MinIO = MinIOConfig{Endpoint: "minio:9000"} },
			wantErr: []string{"MINIO_ACCESS_KEY"},
		},
		{
			name: "errors are joined",
			mutate: func(c *AppConfig) {
				c.Port = ""
				c.Database.Name = ""
			},
			wantErr: []string{"PORT", "missing DB_NAME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FORMAPI_TEST_STR", "  value ")
	t.Setenv("FORMAPI_TEST_INT", "123")
	t.Setenv("FORMAPI_TEST_BOOL", "true")

	assert.Equal(t, "value", envString("FORMAPI_TEST_STR", "default"))
	assert.Equal(t, "default", envString("FORMAPI_TEST_UNSET", "default"))
	assert.Equal(t, 123, envInt("FORMAPI_TEST_INT", 0))
	assert.Equal(t, 7, envInt("FORMAPI_TEST_UNSET", 7))
	assert.True(t, envBool("FORMAPI_TEST_BOOL", false))
	assert.True(t, envBool("FORMAPI_TEST_UNSET", true))
}
