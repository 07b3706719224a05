// Package config loads proxy server configuration from the environment.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cryptofolio/internal/errs"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8788"
	defaultBranch     = "main"
	defaultDataDir    = "data"
	defaultAPIURL     = "https://api.github.com"
)

type Config struct {
	Env    string
	Server server
	Store  Store
	Logger logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// Store locates the content store repository. Token and Repo are required,
// but validation is deferred to request time: the proxy must answer 500
// with a structured body instead of refusing to start.
type Store struct {
	APIURL  string `env:"GITHUB_API_URL"`
	Token   string `env:"GITHUB_TOKEN"`
	Repo    string `env:"GITHUB_REPO"`
	Branch  string `env:"GITHUB_BRANCH"`
	DataDir string `env:"DATA_DIR"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads .env (when present) and the environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("GITHUB_BRANCH", defaultBranch)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("GITHUB_API_URL", defaultAPIURL)

	// The split owner/name form takes precedence over the combined variable.
	repo := viper.GetString("GITHUB_REPO")
	owner := viper.GetString("GITHUB_OWNER")
	name := viper.GetString("GITHUB_REPO_NAME")
	if owner != "" && name != "" {
		repo = owner + "/" + name
	}

	config := Config{
		Env:    viper.GetString("APP_ENV"),
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Store: Store{
			APIURL:  strings.TrimRight(viper.GetString("GITHUB_API_URL"), "/"),
			Token:   viper.GetString("GITHUB_TOKEN"),
			Repo:    repo,
			Branch:  viper.GetString("GITHUB_BRANCH"),
			DataDir: viper.GetString("DATA_DIR"),
		},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}

	return &config
}

// Validate reports the fatal, non-retryable misconfiguration case.
func (s Store) Validate() error {
	if s.Token == "" || s.Repo == "" {
		return fmt.Errorf("%w: missing GITHUB_TOKEN or repository info", errs.ErrMissingConfig)
	}
	return nil
}

// IsProd reports whether the environment is prod.
func (c *Config) IsProd() bool { return c.Env == EnvProd }

// IsLocal reports whether the environment is local (or unset).
func (c *Config) IsLocal() bool { return c.Env == EnvLocal || c.Env == "" }
