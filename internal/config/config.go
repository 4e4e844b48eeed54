package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverS3     = "s3"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	S3      S3Config
	JWT     JWTConfig
	OTEL    OTELConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string
	BodyLimitKB        int64
	IdempotencyTTLSecs int64
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Driver     string
	KeyPrefix  string
	SQLitePath string
	BadgerPath string
	// CacheEnabled puts Redis in front of the mongo and s3 drivers
	CacheEnabled    bool
	CacheTTLSeconds int64
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis connection configuration.
// An empty Addr means Redis is not used.
type RedisConfig struct {
	Addr     string
	Password string
}

// S3Config holds S3-compatible object storage configuration
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// JWTConfig holds bearer token configuration. An empty Secret disables auth.
type JWTConfig struct {
	Secret string
}

// OTELConfig holds OpenTelemetry exporter configuration
type OTELConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	PathPrefix     string
	InstanceID     string
	Token          string
}

// CatalogConfig points at an optional YAML exercise catalog
type CatalogConfig struct {
	Path string
}

// Load reads configuration from environment variables
// It attempts to load from .env file first, then falls back to system env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			BodyLimitKB:        getEnvAsInt64("BODY_LIMIT_KB", 256),
			IdempotencyTTLSecs: getEnvAsInt64("IDEMPOTENCY_TTL_SECONDS", 300),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", DriverSQLite),
			KeyPrefix:       getEnv("STORAGE_KEY_PREFIX", "kinetic_"),
			SQLitePath:      getEnv("SQLITE_PATH", "data/kinetic.db"),
			BadgerPath:      getEnv("BADGER_PATH", "data/badger"),
			CacheEnabled:    getEnvAsBool("STORAGE_CACHE_ENABLED", false),
			CacheTTLSeconds: getEnvAsInt64("STORAGE_CACHE_TTL_SECONDS", 300),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "kinetic"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    getEnv("S3_BUCKET", "kinetic"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		OTEL: OTELConfig{
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "kinetic-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("OTEL_ENVIRONMENT", "development"),
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			PathPrefix:     getEnv("OTEL_EXPORTER_OTLP_PATH_PREFIX", ""),
			InstanceID:     getEnv("OTEL_INSTANCE_ID", ""),
			Token:          getEnv("OTEL_TOKEN", ""),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected storage driver has what it needs
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverBadger:
		if c.Storage.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required for the badger driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	case DriverMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo driver")
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Storage.CacheEnabled && c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when STORAGE_CACHE_ENABLED is set")
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is set")
	}
	return nil
}

// UsesRedis reports whether a Redis connection should be opened
func (c *Config) UsesRedis() bool {
	return c.Redis.Addr != ""
}

// UsesMongo reports whether a MongoDB connection should be opened
func (c *Config) UsesMongo() bool {
	return c.Storage.Driver == DriverMongo
}

// CacheTTL returns the cache TTL as a duration
func (s StorageConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// IdempotencyTTL returns the idempotency window as a duration
func (s ServerConfig) IdempotencyTTL() time.Duration {
	return time.Duration(s.IdempotencyTTLSecs) * time.Second
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
