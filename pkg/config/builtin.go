package config

import "time"

// BuiltinRateLimits returns conservative default policies for the supported
// platforms. Deployments are expected to override these from postflow.yaml;
// platform numbers change too often to hardcode anything aggressive here.
func BuiltinRateLimits() map[string]*PlatformRateLimits {
	return map[string]*PlatformRateLimits{
		"instagram": {
			Endpoints: map[string]EndpointPolicy{
				// Graph API content publishing is capped per 24h window.
				"create_post": {Capacity: 25, RefillPerSecond: 25.0 / 86400, Burst: 0},
				"probe":       {Capacity: 200, RefillPerSecond: 200.0 / 3600, Burst: 20},
			},
			BreakerThreshold:  5,
			BreakerTimeout:    60 * time.Second,
			BackoffMultiplier: 2,
			MaxBackoff:        1 * time.Hour,
		},
		"tiktok": {
			Endpoints: map[string]EndpointPolicy{
				"create_post": {Capacity: 15, RefillPerSecond: 15.0 / 86400, Burst: 0},
				"probe":       {Capacity: 600, RefillPerSecond: 600.0 / 3600, Burst: 60},
			},
			BreakerThreshold:  5,
			BreakerTimeout:    60 * time.Second,
			BackoffMultiplier: 2,
			MaxBackoff:        1 * time.Hour,
		},
		"x": {
			Endpoints: map[string]EndpointPolicy{
				"create_post": {Capacity: 100, RefillPerSecond: 100.0 / 86400, Burst: 5},
				"probe":       {Capacity: 75, RefillPerSecond: 75.0 / 900, Burst: 10},
			},
			BreakerThreshold:  5,
			BreakerTimeout:    60 * time.Second,
			BackoffMultiplier: 2,
			MaxBackoff:        1 * time.Hour,
		},
		"reddit": {
			Endpoints: map[string]EndpointPolicy{
				"create_post": {Capacity: 60, RefillPerSecond: 60.0 / 600, Burst: 0},
				"probe":       {Capacity: 60, RefillPerSecond: 60.0 / 600, Burst: 10},
			},
			BreakerThreshold:  5,
			BreakerTimeout:    60 * time.Second,
			BackoffMultiplier: 2,
			MaxBackoff:        1 * time.Hour,
		},
	}
}
