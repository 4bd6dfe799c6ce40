package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SourceEmbedded, cfg.CatalogSource)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Nil(t, cfg.Origins())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("RATE_LIMIT", "0")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://edulearn.example, https://www.edulearn.example")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, SourcePostgres, cfg.CatalogSource)
	assert.Equal(t, 6543, cfg.Database().Port)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
	assert.Equal(t, []string{"https://edulearn.example", "https://www.edulearn.example"}, cfg.Origins())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("PORT=7000\nDB_NAME=catalog\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.ServerPort)
	assert.Equal(t, "catalog", cfg.Database().DBName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "embedded", cfg: Config{CatalogSource: SourceEmbedded}},
		{name: "file_with_path", cfg: Config{CatalogSource: SourceFile, CatalogFile: "catalog.yaml"}},
		{name: "file_without_path", cfg: Config{CatalogSource: SourceFile}, wantErr: true},
		{name: "unknown_source", cfg: Config{CatalogSource: "s3"}, wantErr: true},
		{name: "negative_limit", cfg: Config{CatalogSource: SourceEmbedded, RateLimit: -1}, wantErr: true},
		{name: "limit_without_window", cfg: Config{CatalogSource: SourceEmbedded, RateLimit: 10}, wantErr: true},
		{name: "limit_with_window", cfg: Config{CatalogSource: SourceEmbedded, RateLimit: 10, RateWindow: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDULEARN_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("EDULEARN_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("EDULEARN_TEST_DOTENV"))
}
