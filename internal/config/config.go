package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Unknown-role policies accepted by Resolver.UnknownRoles.
const (
	UnknownRolesAdd    = "add"
	UnknownRolesReject = "reject"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the resolver, the HTTP
// server, the palette registry database and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum zap level that is written
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// Resolver contains the theme resolution settings
	Resolver struct {
		// UnknownRoles decides what happens when an override names a role its base palette lacks
		UnknownRoles string `env:"RESOLVER_UNKNOWN_ROLES" env-default:"add" yaml:"unknownRoles"`
		// CatalogPath is an optional palette catalog file merged over the built-in palettes
		CatalogPath string `env:"RESOLVER_CATALOG_PATH" yaml:"catalogPath"`
	} `yaml:"resolver"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"1m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes bounds the size of a declaration posted for resolution
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigin is the origin allowed to call the API from a browser
		CORSOrigin string `env:"HTTP_CORS_ORIGIN" env-default:"*" yaml:"corsOrigin"`
	} `yaml:"http"`

	// Auth contains the optional bearer token settings of the v1 API
	Auth struct {
		// PublicKey is the PEM encoded RSA key verifying tokens; empty disables authentication
		PublicKey string `env:"AUTH_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key the token command signs with
		PrivateKey string `env:"AUTH_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"auth"`

	// Database contains the optional palette registry connection settings
	Database struct {
		// Enabled merges the palettes stored in the registry database into the catalog
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"themeconf" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"themeconf" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections kept open while idle
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path, or a path that does not exist, reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" || !exists(configPath) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	switch c.Resolver.UnknownRoles {
	case UnknownRolesAdd, UnknownRolesReject:
	default:
		return fmt.Errorf("invalid unknown roles policy %q: expected %q or %q",
			c.Resolver.UnknownRoles, UnknownRolesAdd, UnknownRolesReject)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes %d: must be positive", c.HTTP.MaxBodyBytes)
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return errors.New("database is enabled but DATABASE_HOST is empty")
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, os.ErrNotExist)
}
