package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Supabase
	SupabaseURL            string `toml:"supabase_url"`
	SupabasePublishableKey string `toml:"supabase_publishable_key"`
	SupabaseJWTSecret      string `toml:"supabase_jwt_secret"`
	SupabaseStorageBucket  string `toml:"supabase_storage_bucket"`

	// Database
	DatabaseURL string `toml:"database_url"`

	// LLM
	LLM LLMConfig `toml:"llm"`

	// Redis (optional chat history cache)
	Redis RedisConfig `toml:"redis"`

	// Server
	Port        string `toml:"port"`
	Environment string `toml:"environment"`
	BaseURL     string `toml:"base_url"`
}

type LLMConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

type RedisConfig struct {
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	HistoryTTLSeconds int    `toml:"history_ttl_seconds"`
}

// Load reads the optional TOML file pointed to by CONFIG_FILE, then applies
// environment overrides. Missing Supabase or database settings do not fail
// the load: the server degrades to demo mode with stubbed backends.
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	return nil
}

// HasSupabase reports whether the backend credentials are configured.
// Without them every storage and auth call is served by the degraded stubs.
func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
}

func defaultConfig() *Config {
	return &Config{
		SupabaseStorageBucket: "brand-assets",
		LLM: LLMConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o",
		},
		Redis: RedisConfig{
			HistoryTTLSeconds: 60,
		},
		Port:        "8080",
		Environment: "development",
		BaseURL:     "http://localhost:8080",
	}
}

func overrideByEnv(cfg *Config) {
	cfg.SupabaseURL = getEnv("SUPABASE_URL", cfg.SupabaseURL)
	cfg.SupabasePublishableKey = getEnv("SUPABASE_PUBLISHABLE_KEY", cfg.SupabasePublishableKey)
	cfg.SupabaseJWTSecret = getEnv("SUPABASE_JWT_SECRET", cfg.SupabaseJWTSecret)
	cfg.SupabaseStorageBucket = getEnv("SUPABASE_STORAGE_BUCKET", cfg.SupabaseStorageBucket)

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)

	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.HistoryTTLSeconds = getEnvAsInt("REDIS_HISTORY_TTL_SECONDS", cfg.Redis.HistoryTTLSeconds)

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
