package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "brand-assets", cfg.SupabaseStorageBucket)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 60, cfg.Redis.HistoryTTLSeconds)
	assert.False(t, cfg.HasSupabase())
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
supabase_url = "https://proj.supabase.co"
supabase_publishable_key = "pk-test"
port = "9090"

[llm]
base_url = "https://llm.internal/v1"
model = "brand-model"

[redis]
addr = "localhost:6379"
history_ttl_seconds = 120
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://llm.internal/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "brand-model", cfg.LLM.Model)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 120, cfg.Redis.HistoryTTLSeconds)
	assert.True(t, cfg.HasSupabase())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte(`port = "9090"`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_MODEL", "override-model")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "override-model", cfg.LLM.Model)
}

func TestValidate_RequiresLLM(t *testing.T) {
	cfg := &config.Config{}
	assert.Error(t, cfg.Validate())

	cfg.LLM.BaseURL = "https://llm.internal/v1"
	assert.Error(t, cfg.Validate())

	cfg.LLM.Model = "brand-model"
	assert.NoError(t, cfg.Validate())
}
