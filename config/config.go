package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelayMS  = 1000
	defaultLogValue      = true
	defaultMaxConn       = "10"
)

type (
	Config struct {
		PG struct {
			URL      string
			Host     string `env:"POSTGRES_HOST"`
			Port     string `env:"POSTGRES_PORT"`
			DB       string `env:"POSTGRES_DB"`
			User     string `env:"POSTGRES_USER"`
			Password string `env:"POSTGRES_PASSWORD"`
			MaxConn  string `env:"POSTGRES_MAX_CONN"`
		}

		Retry struct {
			Attempts int           `env:"DB_RETRY_ATTEMPTS"`
			Delay    time.Duration `env:"DB_RETRY_DELAY_MS"`
		}

		Log struct {
			LogLibrary    bool `env:"LOG_LIBRARY_ENABLED"`
			LogRepository bool `env:"LOG_DB_REPO_ENABLED"`
			LogTransactor bool `env:"LOG_TRANSACTOR_ENABLED"`
			LogDatabase   bool `env:"LOG_DATABASE_ENABLED"`
		}

		Observability struct {
			JaegerURL string `env:"JAEGER_URL"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	var err error
	v := viper.New()
	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	cfg.PG.URL = fmt.Sprintf("postgres://%s:%s@", cfg.PG.User, cfg.PG.Password) +
		net.JoinHostPort(cfg.PG.Host, cfg.PG.Port) + fmt.Sprintf("/%s?sslmode=disable", cfg.PG.DB) + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	if cfg.Retry.Attempts, err = parseEnvInt(v, "retry_attempts", "DB_RETRY_ATTEMPTS", defaultRetryAttempts); err != nil {
		return nil, err
	}

	var delayMS int
	if delayMS, err = parseEnvInt(v, "retry_delay", "DB_RETRY_DELAY_MS", defaultRetryDelayMS); err != nil {
		return nil, err
	}
	cfg.Retry.Delay = time.Duration(delayMS) * time.Millisecond

	if cfg.Log.LogLibrary, err = parseEnvBool(v, "log_library", "LOG_LIBRARY_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogRepository, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDatabase, err = parseEnvBool(v, "log_database", "LOG_DATABASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	cfg.Observability.JaegerURL = os.Getenv("JAEGER_URL")

	return cfg, nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
