package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: "9090"
  shutdown_timeout: 5s
mongo:
  uri: mongodb://localhost:27017
  database: ledger_test
report:
  cache_ttl: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "ledger_test", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Second, cfg.Report.CacheTTL)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: mongodb://localhost:27017
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pocketledger", cfg.Mongo.Database)
	assert.Equal(t, 2*time.Minute, cfg.Report.CacheTTL)
}

func TestLoadMissingMongoURI(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo.uri is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
