package config

import (
	"fmt"
	"sync"
	"time"
)

// EndpointPolicy is the token bucket policy for one platform endpoint.
type EndpointPolicy struct {
	// Capacity is the steady-state bucket size.
	Capacity float64 `yaml:"capacity" validate:"required,min=1"`

	// RefillPerSecond is the token refill rate.
	RefillPerSecond float64 `yaml:"refill_per_second" validate:"required"`

	// Burst is extra headroom on top of Capacity for short spikes.
	Burst float64 `yaml:"burst,omitempty"`
}

// MaxTokens returns the effective bucket ceiling.
func (p EndpointPolicy) MaxTokens() float64 {
	return p.Capacity + p.Burst
}

// PlatformRateLimits holds all rate-limit tuning for one platform.
type PlatformRateLimits struct {
	// Endpoints maps endpoint name (create_post, probe, ...) to its policy.
	Endpoints map[string]EndpointPolicy `yaml:"per_endpoint_limits"`

	// Breaker tuning, per (account, platform).
	BreakerThreshold  int           `yaml:"breaker_threshold,omitempty"`
	BreakerTimeout    time.Duration `yaml:"breaker_timeout,omitempty"`
	BackoffMultiplier float64       `yaml:"backoff_multiplier,omitempty"`
	MaxBackoff        time.Duration `yaml:"max_backoff,omitempty"`
}

// RateLimitRegistry stores per-platform rate limit policies with thread-safe access.
type RateLimitRegistry struct {
	platforms map[string]*PlatformRateLimits
	mu        sync.RWMutex
}

// NewRateLimitRegistry creates a new rate limit registry.
func NewRateLimitRegistry(platforms map[string]*PlatformRateLimits) *RateLimitRegistry {
	copied := make(map[string]*PlatformRateLimits, len(platforms))
	for k, v := range platforms {
		copied[k] = v
	}
	return &RateLimitRegistry{platforms: copied}
}

// Get retrieves the rate limit configuration for a platform.
func (r *RateLimitRegistry) Get(platform string) (*PlatformRateLimits, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.platforms[platform]
	if !ok {
		return nil, fmt.Errorf("no rate limits configured for platform %q", platform)
	}
	return p, nil
}

// PolicyFor returns the endpoint policy for (platform, endpoint).
func (r *RateLimitRegistry) PolicyFor(platform, endpoint string) (EndpointPolicy, error) {
	p, err := r.Get(platform)
	if err != nil {
		return EndpointPolicy{}, err
	}
	policy, ok := p.Endpoints[endpoint]
	if !ok {
		return EndpointPolicy{}, fmt.Errorf("no rate limit policy for %s/%s", platform, endpoint)
	}
	return policy, nil
}

// Len returns the number of configured platforms.
func (r *RateLimitRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.platforms)
}

// Platforms returns the configured platform names.
func (r *RateLimitRegistry) Platforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.platforms))
	for name := range r.platforms {
		names = append(names, name)
	}
	return names
}
