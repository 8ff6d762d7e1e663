package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read by pendingwatch.
const envPrefix = "pendingwatch"

// endpoints maps chain identifiers to JSON-RPC endpoint URLs. It is read from
// a comma separated list of chain=url pairs, e.g. "1=https://eth.example,137=https://polygon.example".
type endpoints map[string]string

// Decode implements envconfig.Decoder. URLs contain colons, so the
// built-in map format (key:value) cannot carry them.
func (e *endpoints) Decode(value string) error {
	parsed := make(endpoints)
	for pair := range strings.SplitSeq(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		chainID, url, ok := strings.Cut(pair, "=")
		chainID, url = strings.TrimSpace(chainID), strings.TrimSpace(url)
		if !ok || chainID == "" || url == "" {
			return fmt.Errorf("invalid chain endpoint %q, expected chain=url", pair)
		}

		parsed[chainID] = url
	}

	*e = parsed
	return nil
}

type redisConfig struct {
	Addr     string // empty selects the in-memory store
	Username string
	Password string
	DB       int
}

type watchConfig struct {
	Interval         time.Duration `default:"1s"`
	MaxDuration      time.Duration `split_words:"true" default:"30s"`
	FailureThreshold int           `split_words:"true" default:"5"`
	Resync           time.Duration `default:"30s"`
}

type rpcConfig struct {
	Endpoints     endpoints     `required:"true"`
	Timeout       time.Duration `default:"5s"`
	RetryAttempts uint          `split_words:"true" default:"3"`
}

type telemetryConfig struct {
	Enabled     bool   `default:"false"`
	ServiceName string `split_words:"true" default:"pendingwatch"`
}

// config is the process configuration, read from PENDINGWATCH_* variables:
//
//	PENDINGWATCH_LOG_LEVEL                 debug, info, warn or error
//	PENDINGWATCH_REDIS_ADDR                Redis address; unset keeps state in memory
//	PENDINGWATCH_REDIS_USERNAME
//	PENDINGWATCH_REDIS_PASSWORD
//	PENDINGWATCH_REDIS_DB
//	PENDINGWATCH_RPC_ENDPOINTS             chain=url pairs
//	PENDINGWATCH_RPC_TIMEOUT
//	PENDINGWATCH_RPC_RETRY_ATTEMPTS
//	PENDINGWATCH_WATCH_INTERVAL
//	PENDINGWATCH_WATCH_MAX_DURATION
//	PENDINGWATCH_WATCH_FAILURE_THRESHOLD
//	PENDINGWATCH_WATCH_RESYNC              reload period of watched lists; 0 relies on notifications only
//	PENDINGWATCH_TELEMETRY_ENABLED
//	PENDINGWATCH_TELEMETRY_SERVICE_NAME
type config struct {
	LogLevel  string `split_words:"true" default:"info"`
	Redis     redisConfig
	RPC       rpcConfig
	Watch     watchConfig
	Telemetry telemetryConfig
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}
