package fakeable

import "reflect"

// CreatedCallback observes every construction attempt of an interceptable
// entity, whether it produced a real instance or a substitute. name is the
// entity's display name, obj the instance handed to the caller, and objType
// the Go type the entity constructs.
type CreatedCallback func(name any, obj any, objType reflect.Type)

// Callback identifies a single AddCreatedCallback registration. Go functions
// are not comparable, so removal goes through this handle; registering the
// same function twice yields two independent handles, each removable on its
// own.
type Callback struct {
	fn CreatedCallback
}

// AddCreatedCallback appends fn to the notification list. No duplicate
// checking is performed: a callback added twice is invoked twice per
// construction. Callbacks run in registration order, synchronously, on the
// constructing goroutine.
func (r *Registry) AddCreatedCallback(fn CreatedCallback) *Callback {
	if fn == nil {
		panic("fakeable: nil created callback")
	}
	c := &Callback{fn: fn}
	r.callbacks = append(r.callbacks, c)
	r.logger.Debug("Registering created callback.", "total", len(r.callbacks))
	return c
}

// RemoveCreatedCallback removes the registration identified by c. It reports
// whether a removal happened; removing a handle that was never added, was
// already removed, or was dropped by Clear is a no-op.
func (r *Registry) RemoveCreatedCallback(c *Callback) bool {
	for i, existing := range r.callbacks {
		if existing == c {
			r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
			return true
		}
	}
	return false
}

// notifyCreated invokes the registered callbacks in order. No recovery is
// performed: a panicking callback propagates to the construction caller and
// the remaining callbacks are skipped.
func (r *Registry) notifyCreated(name any, obj any, objType reflect.Type) {
	for _, c := range r.callbacks {
		c.fn(name, obj, objType)
	}
}
