package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Messenger MessengerConfig `mapstructure:"messenger"`
	Store     StoreConfig     `mapstructure:"store"`
	Airtable  AirtableConfig  `mapstructure:"airtable"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
}

// ServerConfig holds webhook server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// MessengerConfig holds Messenger Send API configuration
type MessengerConfig struct {
	BaseURL           string `mapstructure:"base_url"`
	PageAccessToken   string `mapstructure:"page_access_token"`
	VerifyToken       string `mapstructure:"verify_token"`
	Timeout           int    `mapstructure:"timeout"`
	MaxRetries        int    `mapstructure:"max_retries"`
	MaxSendsPerSecond int    `mapstructure:"max_sends_per_second"`
}

// StoreConfig selects the record store backend
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "airtable" or "postgres"
}

// AirtableConfig holds Airtable REST API configuration
type AirtableConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Token      string `mapstructure:"token"`
	BaseID     string `mapstructure:"base_id"`
	Timeout    int    `mapstructure:"timeout"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// DatabaseConfig holds Postgres configuration for the postgres record store
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RedisConfig holds the product cache connection details
type RedisConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	Database   int    `mapstructure:"database"`
	ProductTTL int    `mapstructure:"product_ttl"`
}

// CatalogConfig holds menu pagination and refresh settings
type CatalogConfig struct {
	PageSize        int `mapstructure:"page_size"`
	RefreshInterval int `mapstructure:"refresh_interval"` // seconds, 0 disables
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.host", "0.0.0.0")

	viper.SetDefault("messenger.base_url", "https://graph.facebook.com/v2.6")
	viper.SetDefault("messenger.page_access_token", "")
	viper.SetDefault("messenger.verify_token", "")
	viper.SetDefault("messenger.timeout", 10)
	viper.SetDefault("messenger.max_retries", 0)
	viper.SetDefault("messenger.max_sends_per_second", 10)

	viper.SetDefault("store.backend", "airtable")

	viper.SetDefault("airtable.base_url", "https://api.airtable.com/v0")
	viper.SetDefault("airtable.token", "")
	viper.SetDefault("airtable.base_id", "")
	viper.SetDefault("airtable.timeout", 30)
	viper.SetDefault("airtable.max_retries", 3)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "fabricshop")
	viper.SetDefault("database.user", "fabricshop_user")
	viper.SetDefault("database.password", "fabricshop_pass")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.product_ttl", 300)

	viper.SetDefault("catalog.page_size", 2)
	viper.SetDefault("catalog.refresh_interval", 0)
}
