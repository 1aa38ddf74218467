package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"marketfeed/model"

	"github.com/joho/godotenv"
)

const (
	defaultMaxRetries      = 4
	defaultBackoffSeconds  = 2
	defaultTimeoutSeconds  = 10
	defaultCacheTTLMinutes = 3
	defaultMaxConcurrent   = 4
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	applyFetchDefaults(&envCfg.Fetch)

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func applyFetchDefaults(fc *model.FetchConfig) {
	if fc.MaxRetries <= 0 {
		fc.MaxRetries = defaultMaxRetries
	}
	if fc.BackoffSeconds <= 0 {
		fc.BackoffSeconds = defaultBackoffSeconds
	}
	if fc.TimeoutSeconds <= 0 {
		fc.TimeoutSeconds = defaultTimeoutSeconds
	}
	if fc.CacheTTLMinutes <= 0 {
		fc.CacheTTLMinutes = defaultCacheTTLMinutes
	}
	if fc.MaxConcurrent <= 0 {
		fc.MaxConcurrent = defaultMaxConcurrent
	}
}

// FetchTuning is the materialized, immutable view handed to the fetch
// pipeline at construction time.
type FetchTuning struct {
	MaxRetries    int
	Backoff       time.Duration
	Timeout       time.Duration
	CacheTTL      time.Duration
	MaxConcurrent int
}

func (sc *SystemConfigs) FetchTuning() FetchTuning {
	fc := sc.Config.Fetch
	return FetchTuning{
		MaxRetries:    fc.MaxRetries,
		Backoff:       time.Duration(fc.BackoffSeconds) * time.Second,
		Timeout:       time.Duration(fc.TimeoutSeconds) * time.Second,
		CacheTTL:      time.Duration(fc.CacheTTLMinutes) * time.Minute,
		MaxConcurrent: fc.MaxConcurrent,
	}
}

// ConfigManager hot-swaps the runtime-tunable flags without locking
// readers on the request path.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.RuntimeConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.RuntimeConfig {
	return cm.value.Load().(*model.RuntimeConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.RuntimeConfig) {
	cm.value.Store(newCfg)
}
