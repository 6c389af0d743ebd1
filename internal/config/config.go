package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port string

	// Supabase (optional: lead list, detail and report routes are disabled without it)
	SupabaseURL string
	SupabaseKey string

	LogLevel string
	GinMode  string

	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the peer address.
	TrustedProxies []string

	// Parse endpoints
	ParseRateLimitRPS float64
	ParseRateBurst    int
	MaxBatchSize      int
}

// fileConfig mirrors the optional YAML file named by CONFIG_PATH
type fileConfig struct {
	Port     string `yaml:"port"`
	Supabase struct {
		URL string `yaml:"url"`
		Key string `yaml:"key"`
	} `yaml:"supabase"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Gin struct {
		Mode           string   `yaml:"mode"`
		TrustedProxies []string `yaml:"trusted_proxies"`
	} `yaml:"gin"`
	Parse struct {
		RateLimitRPS float64 `yaml:"rate_limit_rps"`
		RateBurst    int     `yaml:"rate_burst"`
		MaxBatchSize int     `yaml:"max_batch_size"`
	} `yaml:"parse"`
}

func defaults() *Config {
	return &Config{
		Port:              "8080",
		LogLevel:          "info",
		GinMode:           "release",
		ParseRateLimitRPS: 5,
		ParseRateBurst:    10,
		MaxBatchSize:      500,
	}
}

// Load reads configuration from a .env file, the optional CONFIG_PATH YAML file
// and environment variables. Environment variables win over YAML values.
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.SupabaseURL = envOr("SUPABASE_URL", cfg.SupabaseURL)
	if key := getEnvWithFallback("SUPABASE_SECRET_KEY", "SUPABASE_KEY"); key != "" {
		cfg.SupabaseKey = key
	}
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.GinMode = envOr("GIN_MODE", cfg.GinMode)
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitList(v)
	}

	var err error
	if cfg.ParseRateLimitRPS, err = envFloat("PARSE_RATE_LIMIT_RPS", cfg.ParseRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.ParseRateBurst, err = envInt("PARSE_RATE_BURST", cfg.ParseRateBurst); err != nil {
		return nil, err
	}
	if cfg.MaxBatchSize, err = envInt("MAX_BATCH_SIZE", cfg.MaxBatchSize); err != nil {
		return nil, err
	}

	if cfg.MaxBatchSize <= 0 {
		return nil, fmt.Errorf("MAX_BATCH_SIZE must be positive, got %d", cfg.MaxBatchSize)
	}

	return cfg, nil
}

// applyFile overlays non-empty values from a YAML file. ${VAR} references are expanded first.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return fmt.Errorf("parse config YAML: %w", err)
	}

	c.Port = firstNonEmpty(raw.Port, c.Port)
	c.SupabaseURL = firstNonEmpty(raw.Supabase.URL, c.SupabaseURL)
	c.SupabaseKey = firstNonEmpty(raw.Supabase.Key, c.SupabaseKey)
	c.LogLevel = firstNonEmpty(raw.Log.Level, c.LogLevel)
	c.GinMode = firstNonEmpty(raw.Gin.Mode, c.GinMode)
	if len(raw.Gin.TrustedProxies) > 0 {
		c.TrustedProxies = raw.Gin.TrustedProxies
	}
	if raw.Parse.RateLimitRPS > 0 {
		c.ParseRateLimitRPS = raw.Parse.RateLimitRPS
	}
	if raw.Parse.RateBurst > 0 {
		c.ParseRateBurst = raw.Parse.RateBurst
	}
	if raw.Parse.MaxBatchSize > 0 {
		c.MaxBatchSize = raw.Parse.MaxBatchSize
	}
	return nil
}

// getEnvWithFallback returns the primary variable, or the fallback when the primary is empty
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

// splitList splits a comma-separated value, dropping blank entries
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
