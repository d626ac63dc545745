// Package fakeabletest wraps a test's lifecycle around the fakeable
// registry so overrides registered by one test (or by shared fixture code)
// never leak into another.
package fakeabletest

import (
	"testing"

	"github.com/vk/fakeable"
)

// Reset clears the default registry immediately and again when the test
// finishes. Call it at the top of a test, after any framework setup has run:
//
//	func TestSomething(t *testing.T) {
//		fakeabletest.Reset(t)
//		fakeable.SetObject("Widget", fake)
//		...
//	}
//
// The deferred clear is registered via tb.Cleanup, so it runs before any
// cleanup registered earlier; the testing package keeps running the
// remaining cleanups even if one of them panics, so surrounding teardown is
// never skipped.
func Reset(tb testing.TB) {
	tb.Helper()
	ResetRegistry(tb, fakeable.DefaultRegistry())
}

// ResetRegistry is Reset for a scoped registry.
func ResetRegistry(tb testing.TB, r *fakeable.Registry) {
	tb.Helper()
	r.Clear()
	tb.Cleanup(r.Clear)
}
