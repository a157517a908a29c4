package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state. This is the primary object
// returned by Initialize() and passed down from main — there are no
// module-level config singletons.
type Config struct {
	configDir string

	// Scheduler and worker pool configuration
	Scheduler *SchedulerConfig

	// Budget guard configuration
	Budget *BudgetConfig

	// Webhook ingress configuration (tolerances + provider registry)
	Webhook *WebhookConfig

	// Per-(platform, endpoint) rate limit policies
	RateLimits *RateLimitRegistry

	// LLM pricing table for cost estimation
	Pricing *PricingTable

	// Per-platform kill switches
	Features *Features

	// Caption generation (LLM sidecar) settings
	Caption *CaptionConfig

	// Slack creator notifications
	Slack *SlackConfig
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Platforms        int
	WebhookProviders int
	PricingModels    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.RateLimits != nil {
		s.Platforms = c.RateLimits.Len()
	}
	if c.Webhook != nil {
		s.WebhookProviders = len(c.Webhook.Providers)
	}
	if c.Pricing != nil {
		s.PricingModels = c.Pricing.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
