package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Annotations  AnnotationsConfig `mapstructure:"annotations"`
	Videos       VideosConfig      `mapstructure:"videos"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver  string `mapstructure:"driver"` // sqlite or mysql
	Path    string `mapstructure:"path"`   // sqlite database file
	DSN     string `mapstructure:"dsn"`    // mysql connection string
	TLS     bool   `mapstructure:"tls"`    // require TLS on connect (mysql only)
	Verbose bool   `mapstructure:"verbose"`
}

// AnnotationsConfig contains annotation persistence policy settings
type AnnotationsConfig struct {
	// Policy controls how many annotations a single video may receive:
	// "unique" allows exactly one, "capped" allows up to MaxPerVideo.
	Policy      string `mapstructure:"policy"`
	MaxPerVideo int    `mapstructure:"max_per_video"`
}

// VideosConfig contains video catalog settings
type VideosConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
	PublicDir   string `mapstructure:"public_dir"`
}

// RateLimitConfig contains rate limiting settings for the save endpoint
type RateLimitConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	SaveRPS   int  `mapstructure:"save_rps"`
	SaveBurst int  `mapstructure:"save_burst"`
}
