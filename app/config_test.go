package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeEnvFile(t, "PORT=:4000\nENVIRONMENT=production\n")

	cfg, err := loadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.production())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeEnvFile(t, "ENVIRONMENT=development\n")

	cfg, err := loadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Port)
	assert.False(t, cfg.production())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.env"))

	assert.Error(t, err)
}
