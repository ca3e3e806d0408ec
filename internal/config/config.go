// Package config loads the walletsync settings from the environment.
// Every variable is prefixed with WALLETSYNC_, e.g. WALLETSYNC_API_ENDPOINT.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "WALLETSYNC"

type (
	// Config holds every setting of the CLI.
	Config struct {
		APIEndpoint string `envconfig:"API_ENDPOINT" required:"true" json:"apiEndpoint" validate:"url"`
		LogLevel    string `envconfig:"LOG_LEVEL" default:"info" json:"logLevel" validate:"oneof=debug info warn error"`

		// Profile names the stored session, so several accounts can be used
		// side by side.
		Profile string `envconfig:"PROFILE" default:"default" json:"profile" validate:"notblank"`

		// Token, when set, is used instead of a stored session.
		Token string `envconfig:"TOKEN" json:"-"`

		HTTP      HTTP      `envconfig:"HTTP" json:"http"`
		Redis     Redis     `envconfig:"REDIS" json:"redis"`
		Telemetry Telemetry `envconfig:"OTEL" json:"otel"`
		Dashboard Dashboard `envconfig:"DASHBOARD" json:"dashboard"`
	}

	// HTTP configures the transport. Retries only ever apply to queries.
	HTTP struct {
		Timeout   time.Duration `envconfig:"TIMEOUT" default:"15s" json:"timeout" validate:"gt=0"`
		RetryMax  int           `envconfig:"RETRY_MAX" default:"2" json:"retryMax" validate:"gte=0"`
		CacheSize int           `envconfig:"TX_CACHE_SIZE" default:"256" json:"txCacheSize" validate:"gt=0"`
	}

	// Redis configures the session store. Sessions are kept in memory when
	// Addr is empty.
	Redis struct {
		Addr     string `envconfig:"ADDR" json:"addr"`
		Username string `envconfig:"USERNAME" json:"username"`
		Password string `envconfig:"PASSWORD" json:"-"`
		DB       int    `envconfig:"DB" default:"0" json:"db" validate:"gte=0"`
	}

	// Telemetry configures the OTLP exporters.
	Telemetry struct {
		Enabled  bool   `envconfig:"ENABLED" default:"false" json:"enabled"`
		Endpoint string `envconfig:"ENDPOINT" default:"localhost:4317" json:"endpoint"`
		Insecure bool   `envconfig:"INSECURE" default:"false" json:"insecure"`
	}

	// Dashboard configures the refresh policy.
	Dashboard struct {
		PageSize            int           `envconfig:"PAGE_SIZE" default:"10" json:"pageSize" validate:"gt=0"`
		HistoryRefreshDelay time.Duration `envconfig:"HISTORY_REFRESH_DELAY" default:"3s" json:"historyRefreshDelay" validate:"gte=0"`
		FetchTimeout        time.Duration `envconfig:"FETCH_TIMEOUT" default:"20s" json:"fetchTimeout" validate:"gt=0"`

		// SettlementAttempts enables polling the history after a transfer
		// until it shows up. 0 refreshes the history once.
		SettlementAttempts uint          `envconfig:"SETTLEMENT_ATTEMPTS" default:"0" json:"settlementAttempts"`
		SettlementDelay    time.Duration `envconfig:"SETTLEMENT_DELAY" default:"2s" json:"settlementDelay" validate:"gte=0"`
	}
)

// UseRedis reports whether sessions are stored in Redis.
func (r Redis) UseRedis() bool {
	return r.Addr != ""
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
