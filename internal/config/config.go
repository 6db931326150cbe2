package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Upload UploadConfig
	Parser ParserConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds upload size and quota settings.
type UploadConfig struct {
	MaxFileSizeMB    int64 `mapstructure:"max_file_size_mb"`
	QuotaLimit       int   `mapstructure:"quota_limit"`
	QuotaWindowHours int   `mapstructure:"quota_window_hours"`
}

// QuotaWindow returns the quota window as a duration.
func (u *UploadConfig) QuotaWindow() time.Duration {
	return time.Duration(u.QuotaWindowHours) * time.Hour
}

// MaxFileSizeBytes returns the upload size ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ProviderConfig holds settings for a single LLM completion provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ParserConfig holds LLM completion settings with optional failover.
type ParserConfig struct {
	// Legacy flat fields (backwards-compatible)
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (p *ParserConfig) PrimaryConfig() *ProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return &ProviderConfig{
		Provider:     p.Provider,
		APIKey:       p.APIKey,
		DefaultModel: p.DefaultModel,
		TimeoutSecs:  p.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *ParserConfig) SecondaryConfig() *ProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// Load reads configuration from environment variables with the PROCURA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROCURA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 5)
	v.SetDefault("upload.quota_limit", 3)
	v.SetDefault("upload.quota_window_hours", 24)

	// Parser defaults (legacy flat)
	v.SetDefault("parser.provider", "openai")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gpt-4o-mini")
	v.SetDefault("parser.timeout_secs", 120)

	// Parser primary/secondary defaults
	v.SetDefault("parser.primary.provider", "")
	v.SetDefault("parser.primary.api_key", "")
	v.SetDefault("parser.primary.default_model", "")
	v.SetDefault("parser.primary.timeout_secs", 120)
	v.SetDefault("parser.secondary.provider", "")
	v.SetDefault("parser.secondary.api_key", "")
	v.SetDefault("parser.secondary.default_model", "")
	v.SetDefault("parser.secondary.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "PROCURA_SERVER_PORT",
		"server.read_timeout":            "PROCURA_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "PROCURA_SERVER_WRITE_TIMEOUT",
		"server.environment":             "PROCURA_SERVER_ENVIRONMENT",
		"log.level":                      "PROCURA_LOG_LEVEL",
		"log.format":                     "PROCURA_LOG_FORMAT",
		"cors.allowed_origins":           "PROCURA_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":        "PROCURA_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.quota_limit":             "PROCURA_UPLOAD_QUOTA_LIMIT",
		"upload.quota_window_hours":      "PROCURA_UPLOAD_QUOTA_WINDOW_HOURS",
		"parser.provider":                "PROCURA_PARSER_PROVIDER",
		"parser.api_key":                 "PROCURA_PARSER_API_KEY",
		"parser.default_model":           "PROCURA_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":            "PROCURA_PARSER_TIMEOUT_SECS",
		"parser.primary.provider":        "PROCURA_PARSER_PRIMARY_PROVIDER",
		"parser.primary.api_key":         "PROCURA_PARSER_PRIMARY_API_KEY",
		"parser.primary.default_model":   "PROCURA_PARSER_PRIMARY_DEFAULT_MODEL",
		"parser.primary.timeout_secs":    "PROCURA_PARSER_PRIMARY_TIMEOUT_SECS",
		"parser.secondary.provider":      "PROCURA_PARSER_SECONDARY_PROVIDER",
		"parser.secondary.api_key":       "PROCURA_PARSER_SECONDARY_API_KEY",
		"parser.secondary.default_model": "PROCURA_PARSER_SECONDARY_DEFAULT_MODEL",
		"parser.secondary.timeout_secs":  "PROCURA_PARSER_SECONDARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PROCURA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PROCURA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB:    v.GetInt64("upload.max_file_size_mb"),
		QuotaLimit:       v.GetInt("upload.quota_limit"),
		QuotaWindowHours: v.GetInt("upload.quota_window_hours"),
	}

	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
		Primary: ProviderConfig{
			Provider:     v.GetString("parser.primary.provider"),
			APIKey:       v.GetString("parser.primary.api_key"),
			DefaultModel: v.GetString("parser.primary.default_model"),
			TimeoutSecs:  v.GetInt("parser.primary.timeout_secs"),
		},
		Secondary: ProviderConfig{
			Provider:     v.GetString("parser.secondary.provider"),
			APIKey:       v.GetString("parser.secondary.api_key"),
			DefaultModel: v.GetString("parser.secondary.default_model"),
			TimeoutSecs:  v.GetInt("parser.secondary.timeout_secs"),
		},
	}

	return cfg, nil
}
