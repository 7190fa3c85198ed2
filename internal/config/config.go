// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for dashboard.timezone

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Rates     RatesConfig
	Weather   WeatherConfig
	Prayer    PrayerConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
	ServeMetrics bool `mapstructure:"serve_metrics"`
}

// DatabaseConfig holds PostgreSQL connection settings for notes.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	SSLMode            string `mapstructure:"sslmode"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSec int    `mapstructure:"conn_max_lifetime_sec"`
	DSN                string
}

// RedisConfig holds settings for the shared conversion rate store.
// An empty Addr keeps the rate in process memory.
type RedisConfig struct {
	Addr    string `mapstructure:"addr"`
	RateKey string `mapstructure:"rate_key"`
}

// RatesConfig holds settings for the exchange-rates page source.
type RatesConfig struct {
	Mode       string `mapstructure:"mode"` // "proxy" or "direct"
	ProxyURL   string `mapstructure:"proxy_url"`
	TargetURL  string `mapstructure:"target_url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

// WeatherConfig holds settings for the open-meteo client.
type WeatherConfig struct {
	BaseURL    string  `mapstructure:"base_url"`
	Latitude   float64 `mapstructure:"latitude"`
	Longitude  float64 `mapstructure:"longitude"`
	TimeoutSec int     `mapstructure:"timeout_sec"`
}

// PrayerConfig holds the coordinates prayer times are calculated for.
type PrayerConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// DashboardConfig holds page settings.
type DashboardConfig struct {
	Timezone string `mapstructure:"timezone"`
	NoteKey  string `mapstructure:"note_key"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "dashboard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_sec", 300)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.rate_key", "dashboard:usd_rate")
	v.SetDefault("rates.mode", "proxy")
	v.SetDefault("rates.proxy_url", "https://api.allorigins.win")
	v.SetDefault("rates.target_url", "https://sarafi.af/fa/exchange-rates/sarai-shahzada")
	v.SetDefault("rates.timeout_sec", 10)
	v.SetDefault("weather.base_url", "https://api.open-meteo.com/v1")
	v.SetDefault("weather.latitude", 34.52)
	v.SetDefault("weather.longitude", 69.17)
	v.SetDefault("weather.timeout_sec", 5)
	v.SetDefault("prayer.latitude", 34.5553)
	v.SetDefault("prayer.longitude", 69.2075)
	v.SetDefault("dashboard.timezone", "Asia/Kabul")
	v.SetDefault("dashboard.note_key", "userNote")
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeSec <= 0 {
		cfg.Database.ConnMaxLifetimeSec = 300
	}

	cfg.Database.DSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.Name, cfg.Database.SSLMode)

	return &cfg, nil
}

// Location returns the dashboard time zone.
func (c *DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if c.Database.Port <= 0 {
		errs = append(errs, fmt.Errorf("database.port must be positive, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}
	if c.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}

	switch c.Rates.Mode {
	case "proxy":
		if c.Rates.ProxyURL == "" {
			errs = append(errs, fmt.Errorf("rates.proxy_url is required in proxy mode (set DASHBOARD_RATES_PROXY_URL)"))
		}
	case "direct":
	default:
		errs = append(errs, fmt.Errorf("rates.mode must be proxy or direct, got %q", c.Rates.Mode))
	}
	if c.Rates.TargetURL == "" {
		errs = append(errs, fmt.Errorf("rates.target_url is required"))
	}
	if c.Rates.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("rates.timeout_sec must be positive, got %d", c.Rates.TimeoutSec))
	}

	if c.Weather.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("weather.timeout_sec must be positive, got %d", c.Weather.TimeoutSec))
	}
	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		errs = append(errs, fmt.Errorf("weather.latitude out of range: %v", c.Weather.Latitude))
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		errs = append(errs, fmt.Errorf("weather.longitude out of range: %v", c.Weather.Longitude))
	}
	if c.Prayer.Latitude < -90 || c.Prayer.Latitude > 90 {
		errs = append(errs, fmt.Errorf("prayer.latitude out of range: %v", c.Prayer.Latitude))
	}
	if c.Prayer.Longitude < -180 || c.Prayer.Longitude > 180 {
		errs = append(errs, fmt.Errorf("prayer.longitude out of range: %v", c.Prayer.Longitude))
	}

	if _, err := c.Dashboard.Location(); err != nil {
		errs = append(errs, fmt.Errorf("dashboard.timezone: %w", err))
	}
	if c.Dashboard.NoteKey == "" {
		errs = append(errs, fmt.Errorf("dashboard.note_key is required"))
	}

	return errors.Join(errs...)
}
