package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, 100000.0, cfg.Dashboard.MonthlyIncome)
	assert.True(t, cfg.Store.SeedDemo)
	assert.False(t, cfg.OCR.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
llm:
  provider: openai
  model: gpt-4o-mini
  timeout: 45s
dashboard:
  monthly_income: 250000
`), 0o600))

	t.Setenv("FINGUIDE_SERVER_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 250000.0, cfg.Dashboard.MonthlyIncome)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestLoadConfigExplicitKeyWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FINGUIDE_LLM_API_KEY", "from-prefix")
	t.Setenv("GEMINI_API_KEY", "from-bare")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-prefix", cfg.LLM.APIKey)
}

func TestLoadConfigProviderSwitchLeavesModelUnset(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FINGUIDE_LLM_PROVIDER", "openai")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, LogConfig{Level: "debug"}.NewLogger().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, LogConfig{Level: "loud"}.NewLogger().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, LogConfig{}.NewLogger().GetLevel())
}
