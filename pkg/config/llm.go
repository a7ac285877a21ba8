package config

// LLMConfig configures the model provider used by the agent graph.
type LLMConfig struct {
	// APIKey authenticates against the provider. Required unless the
	// scripted client is in use (tests, dry runs).
	APIKey string

	// Model is the provider model identifier.
	Model string

	// BaseURL overrides the provider endpoint (proxies, gateways).
	BaseURL string

	// MaxTokens caps each completion.
	MaxTokens int
}

// LoadLLMConfig reads LLM configuration from the environment.
func LoadLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKey:    getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		Model:     getEnvOrDefault("ASTRAFORGE_MODEL", "claude-sonnet-4-5"),
		BaseURL:   getEnvOrDefault("ANTHROPIC_BASE_URL", ""),
		MaxTokens: getEnvInt("ASTRAFORGE_MAX_TOKENS", 8192),
	}
}

// Validate checks that required values are present.
func (c *LLMConfig) Validate() error {
	if c.APIKey == "" {
		return NewConfigError("ANTHROPIC_API_KEY", "required")
	}
	return nil
}
