package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Database DatabaseConfig
	Auth     AuthConfig
	Planner  PlannerConfig
	LLM      LLMConfig

	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig points at the SQLite file backing the planner.
type DatabaseConfig struct {
	DSN string
}

// AuthConfig configures bearer-token verification against the auth backend.
type AuthConfig struct {
	BaseURL       string
	APIKey        string
	CacheTTL      time.Duration
	CacheSize     int
	RatePerMinute int // generation endpoints, per user
}

// PlannerConfig holds scheduling defaults.
type PlannerConfig struct {
	Timezone     string
	DayStart     string // "HH:MM", first block of a generated day
	DailyHours   int    // planned working hours per day
	RolloverTime string // "HH:MM", nightly rollover job
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.DSN = viper.GetString("database.dsn")

	cfg.Auth.BaseURL = viper.GetString("auth.base_url")
	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	cfg.Auth.CacheTTL = viper.GetDuration("auth.cache_ttl")
	cfg.Auth.CacheSize = viper.GetInt("auth.cache_size")
	cfg.Auth.RatePerMinute = viper.GetInt("auth.rate_per_minute")

	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DayStart = viper.GetString("planner.day_start")
	cfg.Planner.DailyHours = viper.GetInt("planner.daily_hours")
	cfg.Planner.RolloverTime = viper.GetString("planner.rollover_time")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("error parsing llm.providers: %w", err)
	}
	// Single-provider env shortcut for local runs
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" && len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:    "gemini",
			Enabled: true,
			APIKey:  geminiKey,
		}}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.dsn", "dayflow.db")

	viper.SetDefault("auth.cache_ttl", "5m")
	viper.SetDefault("auth.cache_size", 1024)
	viper.SetDefault("auth.rate_per_minute", 6)

	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.day_start", "09:00")
	viper.SetDefault("planner.daily_hours", 8)
	viper.SetDefault("planner.rollover_time", "00:05")

	viper.SetDefault("llm.fallback_enabled", true)
}
