package config

import "fmt"

// ConfigError indicates missing or invalid required configuration. It is
// surfaced to the caller synchronously and never retried.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(key, message string) error {
	return &ConfigError{Key: key, Message: message}
}
