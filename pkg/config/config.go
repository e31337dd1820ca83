package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageTypeLocal = "local"
	StorageTypeMinIO = "minio"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Jira    JiraConfig
	Storage StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"5000"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"production"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	BodyLimit       string        `envconfig:"BODY_LIMIT" default:"10M"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// OpenAIConfig holds the chat completion service settings.
// APIKey may be empty at startup; the completion client reports it per run.
type OpenAIConfig struct {
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.openai.com/v1/"`
	Model       string        `envconfig:"MODEL" default:"gpt-3.5-turbo"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.3"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

// JiraConfig holds tracker transport settings. Credentials arrive with each request.
type JiraConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// StorageConfig holds transcript upload storage configuration
type StorageConfig struct {
	Type            string `envconfig:"TYPE" default:"local"` // "local" or "minio"
	UploadDir       string `envconfig:"UPLOAD_DIR" default:"uploads"`
	Endpoint        string `envconfig:"ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY"`
	SecretAccessKey string `envconfig:"SECRET_KEY"`
	BucketName      string `envconfig:"BUCKET" default:"meeting-transcripts"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the current process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("openai", &cfg.OpenAI); err != nil {
		return nil, fmt.Errorf("openai config: %w", err)
	}
	if err := envconfig.Process("jira", &cfg.Jira); err != nil {
		return nil, fmt.Errorf("jira config: %w", err)
	}
	if err := envconfig.Process("storage", &cfg.Storage); err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageTypeLocal:
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("STORAGE_UPLOAD_DIR is required for local storage")
		}
	case StorageTypeMinIO:
		if c.Storage.Endpoint == "" {
			return fmt.Errorf("STORAGE_ENDPOINT is required for minio storage")
		}
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET is required for minio storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q (want %q or %q)", c.Storage.Type, StorageTypeLocal, StorageTypeMinIO)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
