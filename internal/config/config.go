// Package config loads and validates application configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	LoginGuard LoginGuardConfig `mapstructure:"login_guard"`
	TwoFactor  TwoFactorConfig  `mapstructure:"two_factor"`
	Roles      RolesConfig      `mapstructure:"roles"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	Username        string `mapstructure:"username" validate:"required"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	SSLMode         string `mapstructure:"ssl_mode" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
}

type LoginGuardConfig struct {
	WindowMinutes int `mapstructure:"window_minutes" validate:"min=1"`
	MaxAttempts   int `mapstructure:"max_attempts" validate:"min=1"`
}

type TwoFactorConfig struct {
	Issuer          string `mapstructure:"issuer" validate:"required"`
	BackupCodeCount int    `mapstructure:"backup_code_count" validate:"min=1,max=20"`
}

type RolesConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"min=1"`
}

type MetricsConfig struct {
	SampleRate float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// Load reads configuration from the given file, or from the default search
// paths when configFile is empty, and validates the result.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/prepdeck")
	}

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "prepdeck")
	v.SetDefault("database.database", "prepdeck")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("login_guard.window_minutes", 15)
	v.SetDefault("login_guard.max_attempts", 5)
	v.SetDefault("two_factor.issuer", "prepdeck")
	v.SetDefault("two_factor.backup_code_count", 10)
	v.SetDefault("roles.cache_ttl_seconds", 300)
	v.SetDefault("metrics.sample_rate", 1.0)

	// The database password comes from the environment only, never from the
	// config file.
	if err := v.BindEnv("database.password", "PREPDECK_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind PREPDECK_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
