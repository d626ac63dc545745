package fakeable

// Factory builds a fresh substitute instance from the arguments that were
// intended for the real constructor.
type Factory func(args ...any) any

// entry is one installed override. produce receives the construction
// arguments verbatim.
type entry interface {
	produce(args ...any) any
}

// objectEntry always hands back one shared, pre-built value. Arguments are
// discarded; the caller does not take exclusive ownership of the value.
type objectEntry struct {
	value any
}

func (e objectEntry) produce(...any) any { return e.value }

// factoryEntry builds a new substitute per construction attempt.
type factoryEntry struct {
	factory Factory
}

func (e factoryEntry) produce(args ...any) any { return e.factory(args...) }

// Override is the disposable handle returned by SetObject and SetFactory.
// Disposing it unsets whatever currently lives under its key, so an
// override never outlives the scope that deterministically disposes it.
// An undisposed handle simply persists until an explicit Clear.
type Override struct {
	registry *Registry
	key      any
}

// Unregister removes the registration by calling Unset on its registry.
// Calling it again after the override is gone has no effect.
func (o *Override) Unregister() {
	o.registry.Unset(o.key)
}

// Close unregisters the override and never fails. It exists so a
// registration can be scoped with a single defer:
//
//	defer fakeable.SetObject("Widget", sentinel).Close()
func (o *Override) Close() error {
	o.Unregister()
	return nil
}
