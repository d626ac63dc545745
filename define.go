package fakeable

import (
	"fmt"
	"reflect"
)

type defineOpts struct {
	name     any
	registry *Registry
}

// DefineOption modifies per-entity definition parameters.
type DefineOption func(*defineOpts)

// WithName overrides the entity's default display name. The value must be
// comparable; Define panics otherwise.
func WithName(name any) DefineOption {
	return func(o *defineOpts) { o.name = name }
}

// WithRegistry binds the entity to a scoped registry instead of the
// process-wide default.
func WithRegistry(r *Registry) DefineOption {
	return func(o *defineOpts) { o.registry = r }
}

// Fakeable is an interceptable entity: a constructible type whose
// construction can be diverted to a registered substitute. Entities are
// declared once, at package scope, and constructed through New instead of
// calling the constructor directly.
type Fakeable[T any] struct {
	name     any
	typ      reflect.Type
	ctor     func(args ...any) T
	registry *Registry
}

// Define declares T as an interceptable entity constructed by ctor. The
// display name defaults to T's type name, is computed once here, and is
// immutable afterward; WithName replaces it with any comparable value.
// Define panics on a nil constructor or a non-comparable name — both are
// programmer errors that must surface at definition time.
func Define[T any](ctor func(args ...any) T, opts ...DefineOption) *Fakeable[T] {
	if ctor == nil {
		panic("fakeable: nil constructor")
	}
	var o defineOpts
	for _, fn := range opts {
		fn(&o)
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	name := o.name
	if name == nil {
		name = typeName(typ)
	} else {
		mustBeComparable("entity name", name)
	}
	registry := o.registry
	if registry == nil {
		registry = defaultRegistry
	}
	return &Fakeable[T]{name: name, typ: typ, ctor: ctor, registry: registry}
}

// Name returns the entity's display name.
func (f *Fakeable[T]) Name() any { return f.name }

// Type returns the Go type the entity constructs.
func (f *Fakeable[T]) Type() reflect.Type { return f.typ }

// New is the interception point. Resolution order, first match wins:
// an override registered for the entity's identity (the descriptor itself),
// then one registered for its display name, then real construction via the
// entity's own constructor with args applied unchanged.
//
// Whichever branch produced the instance, the registry's creation callbacks
// run exactly once, synchronously, before New returns.
func (f *Fakeable[T]) New(args ...any) T {
	if v, err := f.registry.Lookup(f, args...); err == nil {
		f.registry.logger.Debug("Diverted construction.", "entity", f.name, "keyedBy", "identity")
		return f.finish(v)
	}
	if v, err := f.registry.Lookup(f.name, args...); err == nil {
		f.registry.logger.Debug("Diverted construction.", "entity", f.name, "keyedBy", "name")
		return f.finish(v)
	}
	instance := f.ctor(args...)
	f.registry.notifyCreated(f.name, instance, f.typ)
	return instance
}

// finish asserts a produced override value to T and notifies. A nil value
// maps to T's zero value, so a registered nil stays a legitimate result.
func (f *Fakeable[T]) finish(v any) T {
	instance, ok := v.(T)
	if !ok && v != nil {
		panic(fmt.Sprintf("fakeable: override for %v produced %T, not assignable to %s", f.name, v, f.typ))
	}
	f.registry.notifyCreated(f.name, instance, f.typ)
	return instance
}

// typeName names a type the way its declaration reads; unnamed types
// (pointers, slices) fall back to their full string form.
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
