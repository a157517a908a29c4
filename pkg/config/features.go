package config

import "sync"

// Features holds per-platform kill switches. A disabled platform rejects new
// publishes and pauses its worker pool; in-flight posts are left to finish.
type Features struct {
	mu        sync.RWMutex
	platforms map[string]bool
}

// NewFeatures creates the feature switch set. Platforms absent from the map
// are enabled.
func NewFeatures(platforms map[string]bool) *Features {
	copied := make(map[string]bool, len(platforms))
	for k, v := range platforms {
		copied[k] = v
	}
	return &Features{platforms: copied}
}

// PlatformEnabled reports whether publishing to a platform is enabled.
func (f *Features) PlatformEnabled(platform string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	enabled, ok := f.platforms[platform]
	if !ok {
		return true
	}
	return enabled
}

// SetPlatform flips a platform switch at runtime.
func (f *Features) SetPlatform(platform string, enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.platforms[platform] = enabled
}
