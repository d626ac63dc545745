package fakeable

import (
	"errors"
	"log/slog"
)

// ErrNotFound is returned by Lookup when no override is registered for the
// given key. It is the miss signal that makes New fall through to real
// construction. An override that legitimately produces nil is a successful
// lookup and is never reported as ErrNotFound.
var ErrNotFound = errors.New("fakeable: no override registered")

type options struct {
	logger *slog.Logger
}

// Option modifies registry construction parameters.
type Option func(*options)

// WithLogger attaches an isolated logger to the registry. The default is
// slog.Default(); the registry never mutates the global logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Registry holds the active overrides and creation callbacks for one scope.
// The package-level functions operate on a process-wide instance; tests that
// need isolation can create their own with NewRegistry and bind entities to
// it via WithRegistry.
//
// A registry is plain mutable state with a caller-driven lifecycle: mutated
// throughout a test run and cleared between tests, either explicitly or via
// the fakeabletest helpers. No locking is performed; all access is expected
// on the test-runner goroutine.
type Registry struct {
	logger    *slog.Logger
	overrides map[any]entry
	callbacks []*Callback
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Registry{
		logger:    o.logger,
		overrides: make(map[any]entry),
	}
}

// SetObject installs value as a fixed-object override under key, replacing
// any existing override for that key. Every construction resolved through
// the key receives the same shared value, whatever arguments were passed.
//
// The returned handle unregisters the override on disposal. SetObject panics
// if key cannot serve as a map key.
func (r *Registry) SetObject(key, value any) *Override {
	mustBeComparable("override key", key)
	r.overrides[key] = objectEntry{value: value}
	r.logger.Debug("Registering fixed-object override.", "key", key)
	return &Override{registry: r, key: key}
}

// SetFactory installs factory under key, replacing any existing override for
// that key. Every construction resolved through the key invokes the factory
// with the arguments intended for the real constructor, yielding a fresh
// substitute per construction.
//
// The returned handle unregisters the override on disposal. SetFactory
// panics if key cannot serve as a map key or if factory is nil.
func (r *Registry) SetFactory(key any, factory Factory) *Override {
	mustBeComparable("override key", key)
	if factory == nil {
		panic("fakeable: nil override factory")
	}
	r.overrides[key] = factoryEntry{factory: factory}
	r.logger.Debug("Registering factory override.", "key", key)
	return &Override{registry: r, key: key}
}

// Unset removes the override for key. It reports whether an override was
// actually removed; unsetting an absent key is not an error.
func (r *Registry) Unset(key any) bool {
	if _, ok := r.overrides[key]; !ok {
		return false
	}
	delete(r.overrides, key)
	r.logger.Debug("Unregistered override.", "key", key)
	return true
}

// Clear removes every override and every creation callback, returning the
// registry to its initial state.
func (r *Registry) Clear() {
	r.overrides = make(map[any]entry)
	r.callbacks = nil
	r.logger.Debug("Cleared registry.")
}

// Lookup resolves key to a produced instance, invoking a factory override
// with args or handing back a fixed object as registered. It returns
// ErrNotFound when nothing is registered for key, which callers must
// distinguish from a successful lookup that produced nil.
func (r *Registry) Lookup(key any, args ...any) (any, error) {
	mustBeComparable("lookup key", key)
	e, ok := r.overrides[key]
	if !ok {
		return nil, ErrNotFound
	}
	return e.produce(args...), nil
}

// Len returns the number of installed overrides.
func (r *Registry) Len() int {
	return len(r.overrides)
}
