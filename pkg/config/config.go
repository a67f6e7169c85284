package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/trajlab/annotator-api/pkg/errors"
)

// Deployment environments recognized by the table-prefix mapping.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest1       = "test1"
)

// Annotation cap policies.
const (
	PolicyUnique = "unique"
	PolicyCapped = "capped"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("ANNOTATOR")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "invalid configuration")
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	env := viper.GetString("environment")
	switch env {
	case EnvDevelopment, EnvProduction, EnvTest1:
	default:
		return fmt.Errorf("unknown environment: %q", env)
	}

	policy := viper.GetString("annotations.policy")
	switch policy {
	case PolicyUnique, PolicyCapped:
	default:
		return fmt.Errorf("unknown annotation policy: %q", policy)
	}

	if viper.GetInt("annotations.max_per_video") <= 0 {
		return fmt.Errorf("annotations.max_per_video must be positive")
	}

	driver := viper.GetString("database.driver")
	switch driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}

	if driver == "mysql" && viper.GetString("database.dsn") == "" {
		return fmt.Errorf("database.dsn is required for the mysql driver")
	}

	// Auto-correct invalid rate limit values
	if viper.GetInt("rate_limiting.save_rps") <= 0 {
		viper.Set("rate_limiting.save_rps", 5)
	}
	if viper.GetInt("rate_limiting.save_burst") <= 0 {
		viper.Set("rate_limiting.save_burst", 10)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Environment {
	case EnvDevelopment, EnvProduction, EnvTest1:
	default:
		return fmt.Errorf("unknown environment: %q", c.Environment)
	}

	switch c.Annotations.Policy {
	case PolicyUnique, PolicyCapped:
	default:
		return fmt.Errorf("unknown annotation policy: %q", c.Annotations.Policy)
	}

	if c.Annotations.MaxPerVideo <= 0 {
		return fmt.Errorf("annotations.max_per_video must be positive")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", EnvDevelopment)

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/annotations.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.tls", false)
	viper.SetDefault("database.verbose", false)

	// Annotation policy defaults
	viper.SetDefault("annotations.policy", PolicyUnique)
	viper.SetDefault("annotations.max_per_video", 3)

	// Video catalog defaults
	viper.SetDefault("videos.catalog_path", "./public/videos.json")
	viper.SetDefault("videos.public_dir", "./public")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.save_rps", 5)
	viper.SetDefault("rate_limiting.save_burst", 10)
}
