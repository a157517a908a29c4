package config

import (
	"fmt"
	"os"
	"time"
)

// WebhookProviderConfig describes how one provider signs its callbacks.
type WebhookProviderConfig struct {
	// SecretEnv names the environment variable holding the shared secret.
	SecretEnv string `yaml:"secret_env" validate:"required"`

	// SignatureHeader is the provider-specific signature header name.
	SignatureHeader string `yaml:"signature_header" validate:"required"`

	// TimestampHeader, when set, selects the timestamped signature form:
	// HMAC over t + "." + body, with a replay window on t.
	TimestampHeader string `yaml:"timestamp_header,omitempty"`

	// SignaturePrefix is stripped from the header value before comparison
	// (e.g. "sha256=").
	SignaturePrefix string `yaml:"signature_prefix,omitempty"`
}

// Secret resolves the shared secret from the environment.
func (c *WebhookProviderConfig) Secret() ([]byte, error) {
	v := os.Getenv(c.SecretEnv)
	if v == "" {
		return nil, fmt.Errorf("webhook secret env %s is not set", c.SecretEnv)
	}
	return []byte(v), nil
}

// Timestamped reports whether the provider uses the t+"."+body signature form.
func (c *WebhookProviderConfig) Timestamped() bool {
	return c.TimestampHeader != ""
}

// WebhookConfig contains webhook ingress configuration.
type WebhookConfig struct {
	// SignatureTolerance is the replay window around the signature timestamp.
	SignatureTolerance time.Duration `yaml:"signature_tolerance"`

	// DLQMaxRetries caps reconciler routing attempts before dead-lettering.
	DLQMaxRetries int `yaml:"dlq_max_retries"`

	// ReconcileInterval is how often unroutable events are re-routed.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`

	// Providers maps provider name to its signing configuration.
	Providers map[string]*WebhookProviderConfig `yaml:"providers"`
}

// Provider returns the configuration for a provider name.
func (c *WebhookConfig) Provider(name string) (*WebhookProviderConfig, error) {
	p, ok := c.Providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown webhook provider %q", name)
	}
	return p, nil
}

// DefaultWebhookConfig returns the built-in webhook defaults.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		SignatureTolerance: 5 * time.Minute,
		DLQMaxRetries:      5,
		ReconcileInterval:  1 * time.Minute,
		Providers:          map[string]*WebhookProviderConfig{},
	}
}
