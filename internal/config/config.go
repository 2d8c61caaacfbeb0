// Package config loads runtime settings from .env, an optional config.yaml
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	// ModeSnapshot leaves denormalized counts and ranks alone until an
	// explicit recompute.
	ModeSnapshot = "snapshot"
	// ModeRecompute refreshes them after every user or activity write.
	ModeRecompute = "recompute"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	GinMode        string        `mapstructure:"gin_mode"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type StoreConfig struct {
	Driver              string `mapstructure:"driver"`
	DenormalizationMode string `mapstructure:"denormalization_mode"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
}

// DSN renders the libpq connection string used by the GORM driver.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=octofit TimeZone=%s",
		p.Host, p.User, p.Password, p.Name, p.Port, p.SSLMode, p.TimeZone,
	)
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	NameCacheTTL time.Duration `mapstructure:"name_cache_ttl"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type setting struct {
	key      string
	env      string
	fallback any
}

var settings = []setting{
	{"server.port", "PORT", "8000"},
	{"server.gin_mode", "GIN_MODE", "release"},
	{"server.read_timeout", "READ_TIMEOUT", "30s"},
	{"server.write_timeout", "WRITE_TIMEOUT", "30s"},
	{"server.request_timeout", "REQUEST_TIMEOUT", "0s"},
	{"store.driver", "STORE_DRIVER", DriverMongo},
	{"store.denormalization_mode", "DENORMALIZATION_MODE", ModeSnapshot},
	{"mongo.uri", "MONGO_URI", "mongodb://localhost:27017"},
	{"mongo.database", "MONGO_DATABASE", "octofit_db"},
	{"postgres.host", "DB_HOST", "localhost"},
	{"postgres.port", "DB_PORT", "5432"},
	{"postgres.user", "DB_USER", "postgres"},
	{"postgres.password", "DB_PASSWORD", "postgres"},
	{"postgres.name", "DB_NAME", "octofit"},
	{"postgres.sslmode", "DB_SSLMODE", "disable"},
	{"postgres.timezone", "DB_TIMEZONE", "UTC"},
	{"redis.url", "REDIS_URL", ""},
	{"redis.name_cache_ttl", "NAME_CACHE_TTL", "5m"},
	{"auth.jwt_secret", "JWT_SECRET_KEY", ""},
}

// Load reads the configuration. envFiles are passed to godotenv; a missing
// file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("No .env file loaded, using environment variables: %v", err)
	}

	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.fallback)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", s.env, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or memory)", c.Store.Driver)
	}
	switch c.Store.DenormalizationMode {
	case ModeSnapshot, ModeRecompute:
	default:
		return fmt.Errorf("unknown DENORMALIZATION_MODE %q (want snapshot or recompute)", c.Store.DenormalizationMode)
	}
	return nil
}
