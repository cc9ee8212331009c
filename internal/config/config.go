package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sokastore/soka/internal/models"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Site     SiteConfig     `mapstructure:"site"`
	Session  SessionConfig  `mapstructure:"session"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

type GatewayConfig struct {
	Addr string `mapstructure:"addr"`
}

type CheckoutConfig struct {
	DeliveryZones []models.DeliveryZone `mapstructure:"delivery_zones"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.soka/")
	v.AddConfigPath("/etc/soka/")

	// Enable environment variable override with SOKA_ prefix
	v.SetEnvPrefix("SOKA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Everything has a default so the CLI works with no config file at all
	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("site.base_url", "http://localhost:3000")
	v.SetDefault("session.path", "")
	v.SetDefault("gateway.addr", ":8080")
	v.SetDefault("checkout.delivery_zones", []map[string]any{
		{"name": "pickup", "fee": 0.0},
		{"name": "city", "fee": 2.5},
		{"name": "upcountry", "fee": 5.0},
	})

	// Read config file if one exists; defaults and env cover the rest
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Zone looks up a configured delivery zone by name.
func (c *Config) Zone(name string) (models.DeliveryZone, bool) {
	for _, z := range c.Checkout.DeliveryZones {
		if z.Name == name {
			return z, true
		}
	}
	return models.DeliveryZone{}, false
}
