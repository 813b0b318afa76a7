package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `
app:
  name: go-bank-sync
  env: local
postgres:
  write:
    db_host: localhost
    db_port: "5432"
    db_user: sync
    db_name: banksync
vendor:
  base_url: https://sync.example.com/v2
  email: user@example.com
  password: secret
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "go-bank-sync", cfg.App.Name)
	assert.Equal(t, "https://sync.example.com/v2", cfg.Vendor.BaseURL)
	assert.Equal(t, 200, cfg.Vendor.PageLimit)
	// read falls back to write when unset
	assert.Equal(t, "localhost", cfg.Postgres.Read.DbHost)
}

func TestLoad_MissingVendorCredentials(t *testing.T) {
	dir := writeConfig(t, `
app:
  name: go-bank-sync
postgres:
  write:
    db_host: localhost
    db_port: "5432"
    db_user: sync
    db_name: banksync
vendor:
  base_url: https://sync.example.com/v2
`)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestStringToEnvironment(t *testing.T) {
	assert.Equal(t, LOCAL_ENV, StringToEnvironment("local"))
	assert.Equal(t, PROD_ENV, StringToEnvironment("PROD"))
	assert.Equal(t, UNDEFINED_ENV, StringToEnvironment("staging"))
	assert.Equal(t, "dev", EnvironmentToString(DEV_ENV))
}
