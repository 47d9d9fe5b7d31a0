package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoadPath(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
database:
  host: "db"
  port: 5433
  user: "registry"
  password: "secret"
  dbname: "events"
http_server:
  address: "0.0.0.0:8080"
  timeout: 10s
cors:
  allowed_origins: ["http://localhost:3000"]
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestMustLoadPathMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}

func TestDatabaseDSN(t *testing.T) {
	db := Database{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "events",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=events sslmode=disable", db.DSN())
}
