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
	DefaultPort      = 7000
	DefaultDBTimeout = 5 * time.Second
)

var ErrMissingDB = errors.New("DB environment variable is not set")

type Config struct {
	DBURI           string
	Port            int
	NATSURL         string
	EnableBootstrap bool
	DBTimeout       time.Duration
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads an optional .env file and then the process environment.
func Load(logger *log.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Println("No .env file found, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DB_TIMEOUT", DefaultDBTimeout)
	v.SetDefault("ENABLE_BOOTSTRAP", false)
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	uri := v.GetString("DB")
	if uri == "" {
		// older deployments still export MONGO_URI
		uri = v.GetString("MONGO_URI")
	}
	if uri == "" {
		return nil, ErrMissingDB
	}

	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}

	timeout := v.GetDuration("DB_TIMEOUT")
	if timeout <= 0 {
		timeout = DefaultDBTimeout
	}

	return &Config{
		DBURI:           uri,
		Port:            port,
		NATSURL:         v.GetString("NATS_URL"),
		EnableBootstrap: v.GetBool("ENABLE_BOOTSTRAP"),
		DBTimeout:       timeout,
	}, nil
}
