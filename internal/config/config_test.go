package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Empty(t, cfg.Auth.APIKeys)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4001"}, cfg.Cors.AllowedOrigins)
	assert.Empty(t, cfg.Model.PresetsFile)
}

func TestNewConfig_FromEnv(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_SECRET", "segredo")
	t.Setenv("AUTH_TOKEN_TTL", "90m")
	t.Setenv("AUTH_API_KEYS", "web:viewer:hash1,ops:admin:hash2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://model.example.com")
	t.Setenv("MODEL_DEFAULT_SCENARIO", "conservative")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "segredo", cfg.Auth.Secret)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"web:viewer:hash1", "ops:admin:hash2"}, cfg.Auth.APIKeys)
	assert.Equal(t, []string{"https://model.example.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "conservative", cfg.Model.DefaultScenario)
}

// chdir muda o diretório de trabalho durante o teste para não ler o .env do projeto
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
