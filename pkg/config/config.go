// Package config provides typed configuration for all AstraForge components.
// Values come from environment variables (optionally loaded from a .env file
// by the entrypoint) with built-in defaults suitable for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration aggregate, constructed once at startup
// and injected into components.
type Config struct {
	Sandbox     *SandboxConfig
	Queue       *QueueConfig
	Reaper      *ReaperConfig
	ObjectStore *ObjectStoreConfig
	ComputerUse *ComputerUseConfig
	LLM         *LLMConfig
	Quota       *QuotaConfig
	Events      *EventsConfig
}

// Load builds the full configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Sandbox:     LoadSandboxConfig(),
		Queue:       LoadQueueConfig(),
		Reaper:      LoadReaperConfig(),
		ObjectStore: LoadObjectStoreConfig(),
		ComputerUse: LoadComputerUseConfig(),
		LLM:         LoadLLMConfig(),
		Quota:       DefaultQuotaConfig(),
		Events:      LoadEventsConfig(),
	}
	if err := cfg.Sandbox.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		// Bare integers are interpreted as seconds.
		if n, err := strconv.Atoi(val); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return defaultVal
}

func getEnvCSV(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
