// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Model kinds.
const (
	ModelLinear = "linear"
	ModelRemote = "remote"
)

// Registration cache backends.
const (
	CacheNone     = "none"
	CacheMemory   = "memory"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of assessment request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists allowed origins; empty allows any origin
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
		// JWTPublicKey enables bearer authentication on /v1/assess when set (PEM encoded RSA key)
		JWTPublicKey string `env:"HTTP_JWT_PUBLIC_KEY" env-default:"" yaml:"jwtPublicKey"`
	} `yaml:"http"`

	// Model selects and locates the classifier artifacts
	Model struct {
		// Kind is either linear (local artifact) or remote (inference service)
		Kind string `env:"MODEL_KIND" env-default:"linear" yaml:"kind"`
		// ArtifactPath is the linear artifact; the remote kind reads its scaler from it
		ArtifactPath string `env:"MODEL_ARTIFACT_PATH" env-default:"artifacts/linear-model.yml" yaml:"artifactPath"`
		// TopFactors is the number of ranked attributions reported per assessment
		TopFactors int `env:"MODEL_TOP_FACTORS" env-default:"5" yaml:"topFactors"`
		Remote     struct {
			// Endpoint is the base URL of the inference service
			Endpoint string `env:"MODEL_REMOTE_ENDPOINT" env-default:"" yaml:"endpoint"`
			// APIKey is sent as a bearer token
			APIKey string `env:"MODEL_REMOTE_API_KEY" env-default:"" yaml:"apiKey"`
			// Timeout bounds each inference call
			Timeout time.Duration `env:"MODEL_REMOTE_TIMEOUT" env-default:"5s" yaml:"timeout"`
		} `yaml:"remote"`
	} `yaml:"model"`

	// Registry configures the domain registration lookups
	Registry struct {
		// Offline disables WHOIS lookups; every domain then counts as "no record"
		Offline bool `env:"REGISTRY_OFFLINE" env-default:"false" yaml:"offline"`
		// LookupTimeout bounds the lookup made while assessing a URL
		LookupTimeout time.Duration `env:"REGISTRY_LOOKUP_TIMEOUT" env-default:"5s" yaml:"lookupTimeout"`
		// WhoisTimeout bounds a single WHOIS connection
		WhoisTimeout time.Duration `env:"REGISTRY_WHOIS_TIMEOUT" env-default:"5s" yaml:"whoisTimeout"`
		// WhoisServer forces a WHOIS server instead of following referrals
		WhoisServer string `env:"REGISTRY_WHOIS_SERVER" env-default:"" yaml:"whoisServer"`
		Cache       struct {
			// Backend is one of none, memory, postgres, redis
			Backend string `env:"REGISTRY_CACHE_BACKEND" env-default:"memory" yaml:"backend"`
			// TTL is how long a cached answer is served without refreshing it
			TTL time.Duration `env:"REGISTRY_CACHE_TTL" env-default:"24h" yaml:"ttl"`
			// Retention is how long answers are kept at all
			Retention time.Duration `env:"REGISTRY_CACHE_RETENTION" env-default:"168h" yaml:"retention"`
			// MaxEntries caps the memory backend
			MaxEntries int `env:"REGISTRY_CACHE_MAX_ENTRIES" env-default:"10000" yaml:"maxEntries"`
		} `yaml:"cache"`
	} `yaml:"registry"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"phishguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the redis cache backend
	Redis struct {
		Host     string `env:"REDIS_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"REDIS_PORT" env-default:"6379" yaml:"port"`
		Username string `env:"REDIS_USERNAME" env-default:"" yaml:"username"`
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		Database int    `env:"REDIS_DATABASE" env-default:"0" yaml:"database"`
	} `yaml:"redis"`

	// Worker configures the background refresh of stale cache entries (postgres backend only)
	Worker struct {
		// Enabled starts the river workers next to the API server
		Enabled bool `env:"WORKER_ENABLED" env-default:"false" yaml:"enabled"`
		// MaxWorkers limits concurrent refresh jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// RefreshTimeout bounds a single refresh job
		RefreshTimeout time.Duration `env:"WORKER_REFRESH_TIMEOUT" env-default:"30s" yaml:"refreshTimeout"`
		// QueriesPerMinute paces WHOIS queries issued by refresh jobs
		QueriesPerMinute int `env:"WORKER_QUERIES_PER_MINUTE" env-default:"30" yaml:"queriesPerMinute"`
		// PruneInterval is how often expired cache entries are removed
		PruneInterval time.Duration `env:"WORKER_PRUNE_INTERVAL" env-default:"1h" yaml:"pruneInterval"`
	} `yaml:"worker"`

	// JWT holds the key used by the jwt command to mint API tokens
	JWT struct {
		// PrivateKey is a PEM encoded RSA private key
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Model.Kind {
	case ModelLinear:
	case ModelRemote:
		if c.Model.Remote.Endpoint == "" {
			return fmt.Errorf("model.remote.endpoint is required for the %s model", ModelRemote)
		}
	default:
		return fmt.Errorf("unknown model kind %q", c.Model.Kind)
	}

	switch c.Registry.Cache.Backend {
	case CacheNone, CacheMemory, CachePostgres, CacheRedis:
	default:
		return fmt.Errorf("unknown registry cache backend %q", c.Registry.Cache.Backend)
	}

	if c.Worker.Enabled && c.Registry.Cache.Backend != CachePostgres {
		return fmt.Errorf("worker requires the %s cache backend", CachePostgres)
	}

	return nil
}
