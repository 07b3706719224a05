// Package config loads portal client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultProxyURL   = "http://localhost:8788"
	defaultLogLevel   = "info"
	defaultEnv        = "local"
	defaultConfigDir  = ".cryptofolio"
	defaultPriceTTLMS = 60000
)

type Config struct {
	Env         string `mapstructure:"app_env"`
	ProxyURL    string `mapstructure:"proxy_url"`
	LogLevel    string `mapstructure:"log_level"`
	ConfigDir   string `mapstructure:"config_dir"`
	SessionPath string `mapstructure:"session_path"`
	CachePath   string `mapstructure:"cache_path"`
	PriceTTLMS  int    `mapstructure:"price_ttl_ms"`
	PriceAPIURL string `mapstructure:"price_api_url"`
	PriceAPIKey string `mapstructure:"price_api_key"`
}

// MustLoad reads .env (when present) plus the environment, and prepares
// the on-disk layout under the config dir.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("PROXY_URL", defaultProxyURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("PRICE_TTL_MS", defaultPriceTTLMS)
	viper.SetDefault("PRICE_API_URL", "https://api.coingecko.com/api/v3")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config dir: %v\n", err)
	}

	config := &Config{
		Env:         viper.GetString("APP_ENV"),
		ProxyURL:    viper.GetString("PROXY_URL"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		ConfigDir:   configDir,
		SessionPath: filepath.Join(configDir, "session.json"),
		CachePath:   filepath.Join(configDir, "cache.db"),
		PriceTTLMS:  viper.GetInt("PRICE_TTL_MS"),
		PriceAPIURL: viper.GetString("PRICE_API_URL"),
		PriceAPIKey: viper.GetString("PRICE_API_KEY"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("configuration error: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ProxyURL == "" {
		return fmt.Errorf("proxy_url must not be empty")
	}
	return nil
}

// IsLocal reports whether the environment is local (or unset).
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
