package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "workshop")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.App.Timezone)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, StoreDriverMemory, cfg.App.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, StorageTypeLocal, cfg.Storage.Type)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://shop.example.com")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "2h")
	t.Setenv("DB_MAX_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://shop.example.com"}, cfg.App.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "APP_PORT", "eighty"},
		{"expiration", "JWT_ACCESS_EXPIRATION_TIME", "soon"},
		{"timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"store driver", "STORE_DRIVER", "sqlite"},
		{"storage type", "STORAGE_TYPE", "ftp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_DriverRequirements(t *testing.T) {
	base := func() Config {
		return Config{
			App:     AppConfig{Timezone: "UTC", StoreDriver: StoreDriverMemory},
			JWT:     JWTConfig{Secret: "s", AccessExpiration: time.Hour},
			Admin:   AdminConfig{Username: "admin", Password: "pw"},
			Storage: StorageConfig{Type: StorageTypeLocal, BasePath: "./uploads"},
		}
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.App.StoreDriver = StoreDriverPostgres
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD is required")

	cfg = base()
	cfg.Storage.Type = StorageTypeS3
	assert.EqualError(t, cfg.Validate(), "S3_BUCKET is required")

	cfg = base()
	cfg.Admin.Password = ""
	assert.EqualError(t, cfg.Validate(), "ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "fab", Password: "pw", Name: "fabtracko", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://fab:pw@db:5432/fabtracko?sslmode=disable", cfg.DatabaseURL())
}
