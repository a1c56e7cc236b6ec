package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the process-wide static configuration. It is loaded once at
// startup and passed by reference into the services; nothing mutates it
// afterwards, so concurrent readers need no synchronization.
type Config struct {
	ReportingCurrency string             `mapstructure:"reporting_currency"`
	TopPerformers     int                `mapstructure:"top_performers"`
	Rates             map[string]float64 `mapstructure:"rates"`
	HTTP              HTTPConfig         `mapstructure:"http"`
	DB                DBConfig           `mapstructure:"db"`
}

// HTTPConfig holds the HTTP listener settings
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// DBConfig holds the PostgreSQL connection settings
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Load reads config.yaml from configPath and unmarshals it into a Config.
// A missing config file is not an error: defaults cover every key, and the
// DB settings additionally honor the DB_* environment variables
// (Docker friendly).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Rate lookups and reporting comparisons are done on upper-case codes
	cfg.ReportingCurrency = strings.ToUpper(cfg.ReportingCurrency)
	rates := make(map[string]float64, len(cfg.Rates))
	for code, rate := range cfg.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	cfg.Rates = rates

	// The rates default is applied here rather than via viper: viper merges
	// map defaults key-by-key into file-supplied maps, which would make the
	// default USD rate impossible to remove. A configured rate table is
	// authoritative as a whole.
	if len(cfg.Rates) == 0 {
		cfg.Rates = map[string]float64{"USD": 1.09}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("reporting_currency", "EUR")
	v.SetDefault("top_performers", 6)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "marketboard")
	v.SetDefault("db.sslmode", "disable")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("db.host", "DB_HOST")
	v.BindEnv("db.port", "DB_PORT")
	v.BindEnv("db.user", "DB_USER")
	v.BindEnv("db.password", "DB_PASSWORD")
	v.BindEnv("db.name", "DB_NAME")
	v.BindEnv("http.addr", "HTTP_ADDR")
}

// ConnString builds the PostgreSQL connection string from the DB settings
func (c *Config) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
}
