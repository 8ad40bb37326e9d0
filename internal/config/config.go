package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"

	defaultMongoDatabase = "chatdb"
)

var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required for the postgres store")

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort         string        `env:"PORT" envDefault:"3000"`
	AppEnv           string        `env:"APP_ENV" envDefault:"production"`
	StoreDriver      string        `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURI         string        `env:"MONGODB_URI" envDefault:"mongodb://127.0.0.1:27017/chatdb"`
	MongoDatabase    string        `env:"MONGODB_DATABASE"`
	MongoCollection  string        `env:"MONGODB_COLLECTION" envDefault:"messages"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones de variables que env no puede expresar.
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StoreDriverMongo:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return ErrDatabaseURLRequired
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.DBConnectTimeout <= 0 {
		c.DBConnectTimeout = 5 * time.Second
	}
	return nil
}

// IsDevelopment indica si se usan logger y gin en modo desarrollo.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// MongoDatabaseName devuelve la base explícita o la que aparece en el path del URI.
func (c *Config) MongoDatabaseName() string {
	if name := strings.TrimSpace(c.MongoDatabase); name != "" {
		return name
	}
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}
