package fakeable

import (
	"fmt"
	"reflect"
)

// mustBeComparable panics when v cannot serve as a registry key. Keys are
// checked eagerly so misuse fails at the definition or registration site
// with a descriptive message instead of a raw map panic on first use.
func mustBeComparable(what string, v any) {
	if v == nil {
		panic(fmt.Sprintf("fakeable: %s must not be nil", what))
	}
	if !reflect.TypeOf(v).Comparable() {
		panic(fmt.Sprintf("fakeable: %s of type %T is not comparable and cannot be used as a registry key", what, v))
	}
}
