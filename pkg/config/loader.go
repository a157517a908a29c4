package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// PostflowYAMLConfig represents the complete postflow.yaml file structure
type PostflowYAMLConfig struct {
	PlatformRateLimits map[string]*PlatformRateLimits `yaml:"platform_rate_limits"`
	Budget             *BudgetConfig                  `yaml:"budget"`
	Scheduler          *SchedulerConfig               `yaml:"scheduler"`
	Webhook            *WebhookConfig                 `yaml:"webhook"`
	Features           *FeaturesYAMLConfig            `yaml:"features"`
	Caption            *CaptionConfig                 `yaml:"caption"`
	Slack              *SlackConfig                   `yaml:"slack"`
}

// FeaturesYAMLConfig groups feature switches from YAML.
type FeaturesYAMLConfig struct {
	Platforms map[string]bool `yaml:"per_platform_enabled"`
}

// PricingYAMLConfig represents the complete pricing.yaml file structure
type PricingYAMLConfig struct {
	Providers map[string]map[string][]PricePoint `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in defaults with user configuration
//  5. Build in-memory registries
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"platforms", stats.Platforms,
		"webhook_providers", stats.WebhookProviders,
		"pricing_models", stats.PricingModels)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	// 1. Load postflow.yaml
	yamlCfg, err := loadPostflowYAML(configDir)
	if err != nil {
		return nil, NewLoadError("postflow.yaml", err)
	}

	// 2. Load pricing.yaml (optional — caption generation needs it)
	pricing, err := loadPricingYAML(configDir)
	if err != nil {
		return nil, NewLoadError("pricing.yaml", err)
	}

	// 3. Merge built-in rate limits with user-defined (user overrides built-in)
	rateLimits := mergeRateLimits(BuiltinRateLimits(), yamlCfg.PlatformRateLimits)

	// 4. Resolve defaults (user YAML overrides built-in; unset values keep defaults)
	scheduler := DefaultSchedulerConfig()
	if yamlCfg.Scheduler != nil {
		if err := mergo.Merge(scheduler, yamlCfg.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}

	budget := DefaultBudgetConfig()
	if yamlCfg.Budget != nil {
		if err := mergo.Merge(budget, yamlCfg.Budget, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge budget config: %w", err)
		}
	}

	webhook := DefaultWebhookConfig()
	if yamlCfg.Webhook != nil {
		if err := mergo.Merge(webhook, yamlCfg.Webhook, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge webhook config: %w", err)
		}
	}

	caption := DefaultCaptionConfig()
	if yamlCfg.Caption != nil {
		if err := mergo.Merge(caption, yamlCfg.Caption, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge caption config: %w", err)
		}
	}

	var featurePlatforms map[string]bool
	if yamlCfg.Features != nil {
		featurePlatforms = yamlCfg.Features.Platforms
	}

	return &Config{
		configDir:  configDir,
		Scheduler:  scheduler,
		Budget:     budget,
		Webhook:    webhook,
		RateLimits: NewRateLimitRegistry(rateLimits),
		Pricing:    pricing,
		Features:   NewFeatures(featurePlatforms),
		Caption:    caption,
		Slack:      yamlCfg.Slack,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}

// loadPostflowYAML reads and parses postflow.yaml with env expansion.
func loadPostflowYAML(configDir string) (*PostflowYAMLConfig, error) {
	path := filepath.Join(configDir, "postflow.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("postflow.yaml not found, using built-in defaults", "path", path)
			return &PostflowYAMLConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expanded := ExpandEnv(data)

	var cfg PostflowYAMLConfig
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// loadPricingYAML reads and parses pricing.yaml into a PricingTable.
func loadPricingYAML(configDir string) (*PricingTable, error) {
	path := filepath.Join(configDir, "pricing.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPricingTable(nil), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg PricingYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	models := make(map[string]*ModelPricing)
	for provider, byModel := range cfg.Providers {
		for model, points := range byModel {
			models[provider+"/"+model] = &ModelPricing{
				Provider: provider,
				Model:    model,
				Points:   points,
			}
		}
	}
	return NewPricingTable(models), nil
}

// mergeRateLimits overlays user-defined platform limits onto the built-ins.
// A user platform entry replaces the built-in entry wholesale.
func mergeRateLimits(builtin, user map[string]*PlatformRateLimits) map[string]*PlatformRateLimits {
	merged := make(map[string]*PlatformRateLimits, len(builtin)+len(user))
	for k, v := range builtin {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	// Backfill breaker tuning a user entry left unset.
	for _, v := range merged {
		if v.BreakerThreshold == 0 {
			v.BreakerThreshold = 5
		}
		if v.BreakerTimeout == 0 {
			v.BreakerTimeout = 60 * time.Second
		}
		if v.BackoffMultiplier == 0 {
			v.BackoffMultiplier = 2
		}
		if v.MaxBackoff == 0 {
			v.MaxBackoff = 1 * time.Hour
		}
	}
	return merged
}
