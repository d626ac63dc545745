package fakeable

// defaultRegistry backs the package-level functions. It carries the
// process-wide lifecycle: created at startup, mutated throughout a test run,
// and expected to be cleared between tests (see the fakeabletest package).
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the
// package-level functions and by entities defined without WithRegistry.
func DefaultRegistry() *Registry { return defaultRegistry }

// SetObject installs a fixed-object override in the default registry.
// See Registry.SetObject.
func SetObject(key, value any) *Override { return defaultRegistry.SetObject(key, value) }

// SetFactory installs a factory override in the default registry.
// See Registry.SetFactory.
func SetFactory(key any, factory Factory) *Override {
	return defaultRegistry.SetFactory(key, factory)
}

// Unset removes an override from the default registry. See Registry.Unset.
func Unset(key any) bool { return defaultRegistry.Unset(key) }

// Clear empties the default registry: every override and every creation
// callback. See Registry.Clear.
func Clear() { defaultRegistry.Clear() }

// Lookup resolves key against the default registry. See Registry.Lookup.
func Lookup(key any, args ...any) (any, error) { return defaultRegistry.Lookup(key, args...) }

// AddCreatedCallback registers a creation callback on the default registry.
// See Registry.AddCreatedCallback.
func AddCreatedCallback(fn CreatedCallback) *Callback {
	return defaultRegistry.AddCreatedCallback(fn)
}

// RemoveCreatedCallback removes a creation callback registration from the
// default registry. See Registry.RemoveCreatedCallback.
func RemoveCreatedCallback(c *Callback) bool {
	return defaultRegistry.RemoveCreatedCallback(c)
}
