package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// External services
	Anthropic      AnthropicConfig
	GoogleCalendar GoogleCalendarConfig
	TickTick       TickTickConfig

	// Pipeline & scheduling
	Pipeline  PipelineConfig
	Scheduler SchedulerConfig
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

type PostgresConfig struct {
	DSN string
}

type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	// RatePerMinute bounds outbound completion calls (cost control).
	RatePerMinute int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TickTickConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

type PipelineConfig struct {
	// Timeout bounds a single prompt-response pipeline invocation,
	// including the completion-service call.
	Timeout time.Duration
	// Timezone used for natural-language date resolution.
	Timezone string
}

type SchedulerConfig struct {
	Enabled     bool
	DailySpec   string
	WeeklySpec  string
	MonthlySpec string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Anthropic
	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.MaxTokens = viper.GetInt("anthropic.max_tokens")
	cfg.Anthropic.RatePerMinute = viper.GetInt("anthropic.rate_per_minute")
	if key := viper.GetString("anthropic_api_key"); key != "" {
		cfg.Anthropic.APIKey = key
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// TickTick
	cfg.TickTick.ClientID = viper.GetString("ticktick.client_id")
	cfg.TickTick.ClientSecret = viper.GetString("ticktick.client_secret")
	cfg.TickTick.RefreshToken = viper.GetString("ticktick.refresh_token")
	if tok := viper.GetString("ticktick_refresh_token"); tok != "" {
		cfg.TickTick.RefreshToken = tok
	}

	// Pipeline
	cfg.Pipeline.Timeout = viper.GetDuration("pipeline.timeout")
	cfg.Pipeline.Timezone = viper.GetString("pipeline.timezone")

	// Scheduler
	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.DailySpec = viper.GetString("scheduler.daily_spec")
	cfg.Scheduler.WeeklySpec = viper.GetString("scheduler.weekly_spec")
	cfg.Scheduler.MonthlySpec = viper.GetString("scheduler.monthly_spec")

	if cfg.Anthropic.APIKey == "" {
		return nil, fmt.Errorf("anthropic.api_key is required - set ANTHROPIC_API_KEY or add it to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("anthropic.model", "claude-3-5-haiku-latest")
	viper.SetDefault("anthropic.max_tokens", 1024)
	viper.SetDefault("anthropic.rate_per_minute", 30)

	viper.SetDefault("pipeline.timeout", "30s")
	viper.SetDefault("pipeline.timezone", "UTC")

	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.daily_spec", "0 9 * * *")
	viper.SetDefault("scheduler.weekly_spec", "0 9 * * 1")
	viper.SetDefault("scheduler.monthly_spec", "0 9 1 * *")
}
