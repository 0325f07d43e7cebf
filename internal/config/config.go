package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string `env:"DRIVER" envDefault:"postgres"`
	Host            string `env:"HOST" envDefault:"postgres"`
	Port            int    `env:"PORT" envDefault:"5432"`
	User            string `env:"USER" envDefault:"academy"`
	Password        string `env:"PASSWORD" envDefault:"academy"`
	Name            string `env:"NAME" envDefault:"royal_academy"`
	SSLMode         string `env:"SSLMODE" envDefault:"disable"`
	TimeZone        string `env:"TIMEZONE" envDefault:"Asia/Muscat"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"royal_academy.db"`
	MaxOpenConns    int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifeTime int    `env:"CONN_MAX_LIFETIME_MIN" envDefault:"30"` // minutes
	LogSQL          bool   `env:"LOG_SQL" envDefault:"false"`
}

// AuthConfig describes how access tokens issued by the identity provider are verified.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	Audience  string `env:"JWT_AUDIENCE" envDefault:"authenticated"`
	Issuer    string `env:"JWT_ISSUER"`
}

type OtelConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"true"`
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"royal-academy-core"`
}

type Config struct {
	GRPCAddr       string `env:"GRPC_ADDR" envDefault:":50051"`
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8080"`
	DisableReqLogs bool   `env:"HTTP_DISABLE_REQUEST_LOGS" envDefault:"false"`

	DB   DBConfig   `envPrefix:"DB_"`
	Auth AuthConfig `envPrefix:"AUTH_"`
	Otel OtelConfig `envPrefix:"OTEL_"`
}

// Load reads an optional .env file (ENV_FILE, default ".env") and then parses the environment.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDBConfig parses only the DB_* variables; used by tools that do not serve traffic.
func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "DB_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.DB.Validate(); err != nil {
		return err
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid auth config: AUTH_JWT_SECRET must not be empty")
	}
	return nil
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		// minimal validation
		if c.Host == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	default:
		return fmt.Errorf("invalid DB config: unsupported driver %q", c.Driver)
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
