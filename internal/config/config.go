package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Member API configuration
	MemberAPIURL        string `mapstructure:"MEMBER_API_URL"`
	MemberAPIToken      string `mapstructure:"MEMBER_API_TOKEN"`
	MemberAPITimeoutSec int    `mapstructure:"MEMBER_API_TIMEOUT_SEC"`

	// Cycle calendar fallback, used when the member API has no configuration
	DefaultWeeksPerCycle int    `mapstructure:"DEFAULT_WEEKS_PER_CYCLE"`
	DefaultWeekADate     string `mapstructure:"DEFAULT_WEEK_A_DATE"`

	// View sessions
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7010")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Member API defaults
	v.SetDefault("MEMBER_API_URL", "")
	v.SetDefault("MEMBER_API_TOKEN", "")
	v.SetDefault("MEMBER_API_TIMEOUT_SEC", 15)

	// Cycle defaults
	v.SetDefault("DEFAULT_WEEKS_PER_CYCLE", 4)
	v.SetDefault("DEFAULT_WEEK_A_DATE", "2025-01-13")

	v.SetDefault("SESSION_TTL_MIN", 30)
}

func validate(config *Config) error {
	if config.IsProduction() && config.MemberAPIURL == "" {
		return fmt.Errorf("MEMBER_API_URL must be set in production")
	}

	if config.MemberAPITimeoutSec <= 0 {
		return fmt.Errorf("MEMBER_API_TIMEOUT_SEC must be positive")
	}

	if _, err := config.DefaultCycleConfig(); err != nil {
		return fmt.Errorf("invalid default cycle configuration: %w", err)
	}

	return nil
}

// DefaultCycleConfig returns the fallback cycle configuration
func (c *Config) DefaultCycleConfig() (cycle.Config, error) {
	anchor, err := models.ParseDate(c.DefaultWeekADate)
	if err != nil {
		return cycle.Config{}, fmt.Errorf("DEFAULT_WEEK_A_DATE: %w", err)
	}
	cfg := cycle.Config{WeeksPerCycle: c.DefaultWeeksPerCycle, WeekADate: anchor}
	if err := cfg.Validate(); err != nil {
		return cycle.Config{}, err
	}
	return cfg, nil
}

// MemberAPITimeout returns the member API request timeout
func (c *Config) MemberAPITimeout() time.Duration {
	return time.Duration(c.MemberAPITimeoutSec) * time.Second
}

// SessionTTL returns how long an idle view session is kept
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
