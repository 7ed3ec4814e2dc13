package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Конфиг-файл без блока admin получает те же дефолты, что и окружение:
// первый запуск никогда не сидит админа с пустым email или паролем
func TestLoadConfig_YamlWithoutAdminBlock(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfigFile(t, "server:\n  port: 8080\n"))

	LoadConfig()
	cfg := AppConfig

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.NotEmpty(t, cfg.Admin.Email)
	assert.NotEmpty(t, cfg.Admin.Password)
	assert.NotEmpty(t, cfg.Admin.Name)
	assert.Equal(t, "admin@portfolio.local", cfg.Admin.Email)
	assert.Equal(t, "portfolio.db", cfg.Database.DSN)
}

func TestLoadConfig_YamlAdminBlockWins(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfigFile(t,
		"admin:\n  email: owner@example.com\n  password: s3cret-pass\n  name: Owner\n"))

	LoadConfig()

	assert.Equal(t, "owner@example.com", AppConfig.Admin.Email)
	assert.Equal(t, "s3cret-pass", AppConfig.Admin.Password)
	assert.Equal(t, "Owner", AppConfig.Admin.Name)
}

func TestGetConfig_LoadsLazily(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfigFile(t, "server:\n  env: production\n"))
	AppConfig = nil

	cfg := GetConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Same(t, cfg, GetConfig())
}
