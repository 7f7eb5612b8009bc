// Package config loads runtime settings from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

const defaultHTTPPort = "8080"

// ErrInvalidConfig is returned when the environment does not describe a usable setup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting the binaries read.
type Config struct {
	HTTPPort       string
	StorageBackend string

	MintsTableName       string
	SettingsTableName    string
	ConnectionsTableName string

	// Empty when asynchronous rotation is disabled.
	SQSQueueURL string
	// Empty when websocket pushes go to local connections only.
	WebSocketAPIEndpoint string
}

// Load reads the .env file (if any) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		HTTPPort:             getenv("HTTP_PORT"),
		StorageBackend:       strings.ToLower(getenv("STORAGE_BACKEND")),
		MintsTableName:       getenv("DYNAMODB_MINTS_TABLE_NAME"),
		SettingsTableName:    getenv("DYNAMODB_SETTINGS_TABLE_NAME"),
		ConnectionsTableName: getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
		SQSQueueURL:          getenv("SQS_QUEUE_URL"),
		WebSocketAPIEndpoint: getenv("WEBSOCKET_API_ENDPOINT"),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = defaultHTTPPort
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = BackendDynamoDB
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
		return nil
	case BackendDynamoDB:
		var missing []string
		if c.MintsTableName == "" {
			missing = append(missing, "DYNAMODB_MINTS_TABLE_NAME")
		}
		if c.SettingsTableName == "" {
			missing = append(missing, "DYNAMODB_SETTINGS_TABLE_NAME")
		}
		if c.ConnectionsTableName == "" {
			missing = append(missing, "DYNAMODB_CONNECTIONS_TABLE_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown STORAGE_BACKEND %q", ErrInvalidConfig, c.StorageBackend)
	}
}

// RequireQueue returns an error unless an SQS queue is configured.
func (c *Config) RequireQueue() error {
	if c.SQSQueueURL == "" {
		return fmt.Errorf("%w: SQS_QUEUE_URL environment variable not set", ErrInvalidConfig)
	}
	return nil
}
