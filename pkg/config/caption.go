package config

// CaptionConfig controls the optional LLM caption-generation step.
// Every generation call is guarded by a budget reservation.
type CaptionConfig struct {
	// Enabled turns caption generation on for posts submitted without one.
	Enabled bool `yaml:"enabled"`

	// Provider and Model key into the pricing table.
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`

	// MaxTokens bounds the generated caption; it also bounds the cost
	// estimate (output tokens are estimated at this cap).
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// DefaultCaptionConfig returns the built-in caption defaults (disabled).
func DefaultCaptionConfig() *CaptionConfig {
	return &CaptionConfig{
		Enabled:   false,
		MaxTokens: 256,
	}
}

// SlackConfig holds Slack creator-notification settings.
type SlackConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}
