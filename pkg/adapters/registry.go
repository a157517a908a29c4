package adapters

// Registry maps platform name to adapter.
type Registry map[string]Adapter

// NewRegistry builds a registry from adapters.
func NewRegistry(adapters ...Adapter) Registry {
	r := make(Registry, len(adapters))
	for _, a := range adapters {
		r[a.Platform()] = a
	}
	return r
}

// Get returns the adapter for a platform, or nil.
func (r Registry) Get(platform string) Adapter {
	return r[platform]
}
