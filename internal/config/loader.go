package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "BANK_SYNC"

var validate = validator.New()

// Load reads config.yaml from the given search paths, layers environment
// variables on top (BANK_SYNC_VENDOR_PASSWORD overrides vendor.password),
// applies defaults and validates the result.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(searchPaths) == 0 {
		searchPaths = []string{".", "./config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine when everything comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Postgres.Read.DbHost == "" {
		cfg.Postgres.Read = cfg.Postgres.Write
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-bank-sync")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.graceful_timeout", 10*time.Second)

	v.SetDefault("vendor.timeout", 30*time.Second)
	v.SetDefault("vendor.page_limit", 200)
	v.SetDefault("vendor.max_page_fetch", 50)

	v.SetDefault("sync.bank_directory_ttl", 24*time.Hour)
	v.SetDefault("sync.report_dir", ".")

	v.SetDefault("exponential_backoff.max_retries", 3)
}
