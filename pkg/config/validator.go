package config

import (
	"errors"
	"fmt"
)

// Validator performs cross-cutting validation on a loaded Config.
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass and returns the combined error.
func (v *Validator) ValidateAll() error {
	v.validateScheduler()
	v.validateBudget()
	v.validateWebhook()
	v.validateRateLimits()
	v.validateCaption()

	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(v.errs...))
	}
	return nil
}

func (v *Validator) addError(path, message string) {
	v.errs = append(v.errs, &FieldError{Path: path, Message: message})
}

func (v *Validator) validateScheduler() {
	s := v.cfg.Scheduler
	if s.WorkerConcurrency < 1 {
		v.addError("scheduler.worker_concurrency", "must be at least 1")
	}
	if s.MaxAttempts < 1 {
		v.addError("scheduler.max_attempts", "must be at least 1")
	}
	if s.PostingJitterMin > s.PostingJitterMax {
		v.addError("scheduler.posting_jitter_min", "must not exceed posting_jitter_max")
	}
	if s.RetryBackoffBase <= 0 {
		v.addError("scheduler.retry_backoff_base", "must be positive")
	}
	if s.WorkflowTimeout <= s.ActivityTimeout {
		v.addError("scheduler.workflow_timeout", "must exceed activity_timeout")
	}
}

func (v *Validator) validateBudget() {
	b := v.cfg.Budget
	if b.DefaultLimitUSD < 0 {
		v.addError("budget.default_limit_usd", "must not be negative")
	}
	if b.SoftPct <= 0 || b.SoftPct > 1 {
		v.addError("budget.soft_pct", "must be in (0, 1]")
	}
	if b.ReservationTTL <= 0 {
		v.addError("budget.reservation_ttl", "must be positive")
	}
}

func (v *Validator) validateWebhook() {
	w := v.cfg.Webhook
	if w.SignatureTolerance <= 0 {
		v.addError("webhook.signature_tolerance", "must be positive")
	}
	if w.DLQMaxRetries < 0 {
		v.addError("webhook.dlq_max_retries", "must not be negative")
	}
	for name, p := range w.Providers {
		if p.SecretEnv == "" {
			v.addError("webhook.providers."+name+".secret_env", "required")
		}
		if p.SignatureHeader == "" {
			v.addError("webhook.providers."+name+".signature_header", "required")
		}
	}
}

func (v *Validator) validateRateLimits() {
	for _, platform := range v.cfg.RateLimits.Platforms() {
		limits, err := v.cfg.RateLimits.Get(platform)
		if err != nil {
			continue
		}
		if len(limits.Endpoints) == 0 {
			v.addError("platform_rate_limits."+platform, "at least one endpoint policy required")
		}
		for endpoint, policy := range limits.Endpoints {
			path := "platform_rate_limits." + platform + "." + endpoint
			if policy.Capacity < 1 {
				v.addError(path+".capacity", "must be at least 1")
			}
			if policy.RefillPerSecond <= 0 {
				v.addError(path+".refill_per_second", "must be positive")
			}
			if policy.Burst < 0 {
				v.addError(path+".burst", "must not be negative")
			}
		}
		if limits.BreakerThreshold < 1 {
			v.addError("platform_rate_limits."+platform+".breaker_threshold", "must be at least 1")
		}
	}
}

func (v *Validator) validateCaption() {
	c := v.cfg.Caption
	if !c.Enabled {
		return
	}
	if c.Provider == "" || c.Model == "" {
		v.addError("caption", "provider and model are required when enabled")
		return
	}
	if c.MaxTokens < 1 {
		v.addError("caption.max_tokens", "must be at least 1")
	}
	if _, err := v.cfg.Pricing.Get(c.Provider, c.Model); err != nil {
		v.addError("caption.model", "no pricing configured for "+c.Provider+"/"+c.Model)
	}
}
