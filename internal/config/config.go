package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

const (
	JobLogBackendSlog  = "slog"
	JobLogBackendMySQL = "mysql"
)

type Config struct {
	Environment string         `mapstructure:"environment" validate:"oneof=prod stage dev local"`
	Fastly      FastlyConfig   `mapstructure:"fastly"`
	JobLog      JobLogConfig   `mapstructure:"job_log"`
	Database    DatabaseConfig `mapstructure:"database"`
	Retry       RetryConfig    `mapstructure:"retry"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

type FastlyConfig struct {
	APIBaseURL     string `mapstructure:"api_base_url" validate:"required,url"`
	ServiceID      string `mapstructure:"service_id"`
	APIKey         string `mapstructure:"api_key"`
	Debug          bool   `mapstructure:"debug"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	HTTP2          bool   `mapstructure:"http2"`
}

func (cfg FastlyConfig) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

var _ cdn.CredentialsSource = FastlyConfig{}

// Credentials implements cdn.CredentialsSource with the statically configured service.
func (cfg FastlyConfig) Credentials(_ context.Context) (cdn.Credentials, error) {
	creds := cdn.Credentials{
		ServiceID: cfg.ServiceID,
		APIKey:    cfg.APIKey,
	}
	if err := creds.Validate(); err != nil {
		return cdn.Credentials{}, fmt.Errorf("fastly credentials are not configured (set FASTLY_SERVICE_ID and FASTLY_API_KEY): %w", err)
	}
	return creds, nil
}

type JobLogConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=slog mysql"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// RetryConfig is the caller side retry policy for purging a whole service.
type RetryConfig struct {
	Attempts uint `mapstructure:"attempts" validate:"gte=1"`
	DelayMs  int  `mapstructure:"delay_ms" validate:"gte=0"`
}

func (cfg RetryConfig) Delay() time.Duration {
	return time.Duration(cfg.DelayMs) * time.Millisecond
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" validate:"omitempty,parentdir"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cdnconnector")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("environment", "prod")
	v.SetDefault("fastly.api_base_url", "https://api.fastly.com")
	v.SetDefault("fastly.debug", true)
	v.SetDefault("fastly.timeout_seconds", 30)
	v.SetDefault("fastly.http2", true)
	v.SetDefault("job_log.backend", JobLogBackendSlog)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "cdnconnector")
	v.SetDefault("database.username", "user")
	v.SetDefault("retry.attempts", 3)
	v.SetDefault("retry.delay_ms", 500)

	// Credentials are bound to environment variables only (not from config file)
	if err := v.BindEnv("fastly.service_id", "FASTLY_SERVICE_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind FASTLY_SERVICE_ID environment variable: %w", err)
	}
	if err := v.BindEnv("fastly.api_key", "FASTLY_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind FASTLY_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("environment", "CDN_ENVIRONMENT"); err != nil {
		return nil, fmt.Errorf("failed to bind CDN_ENVIRONMENT environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "CDN_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind CDN_DATABASE_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
