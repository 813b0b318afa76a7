package config

import (
	"time"
)

type (
	Config struct {
		App      App      `mapstructure:"app" validate:"required"`
		Postgres Postgres `mapstructure:"postgres" validate:"required"`
		Redis    Redis    `mapstructure:"redis"`
		Vendor   Vendor   `mapstructure:"vendor" validate:"required"`
		Sync     Sync     `mapstructure:"sync"`

		ExponentialBackoff ExponentialBackOffConfig `mapstructure:"exponential_backoff"`

		NewRelicLicenseKey string `mapstructure:"new_relic_license_key"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		Name            string        `mapstructure:"name" validate:"required"`
		LogLevel        string        `mapstructure:"log_level"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
	}

	Postgres struct {
		Write Database `mapstructure:"write" validate:"required"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host" validate:"required"`
		DbPort            string `mapstructure:"db_port" validate:"required"`
		DbUser            string `mapstructure:"db_user" validate:"required"`
		DbPass            string `mapstructure:"db_pass"`
		DbName            string `mapstructure:"db_name" validate:"required"`
		DbSchema          string `mapstructure:"db_schema"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Db       int    `mapstructure:"db"`
	}

	// Vendor configures the banking-aggregation source. Credentials are read
	// at run time, never stored by the sync itself.
	Vendor struct {
		BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
		ClientID     string        `mapstructure:"client_id"`
		Email        string        `mapstructure:"email" validate:"required"`
		Password     string        `mapstructure:"password" validate:"required"`
		Timeout      time.Duration `mapstructure:"timeout"`
		PageLimit    int           `mapstructure:"page_limit"`
		MaxPageFetch int           `mapstructure:"max_page_fetch"`
	}

	Sync struct {
		BankDirectoryTTL time.Duration `mapstructure:"bank_directory_ttl"`
		ReportDir        string        `mapstructure:"report_dir"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `mapstructure:"max_retries"`
	}
)
