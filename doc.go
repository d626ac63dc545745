// Package fakeable lets code under test ask for "the object for name X" and
// receive either a registered substitute or a normally constructed real
// instance, without changing the production construction call sites.
//
// An interceptable type is declared once with Define and constructed through
// the returned descriptor instead of calling its constructor directly:
//
//	var WidgetType = fakeable.Define[*Widget](func(args ...any) *Widget {
//		return &Widget{A: args[0].(int), B: args[1].(int)}
//	})
//
//	w := WidgetType.New(1, 2) // a real *Widget unless an override is set
//
// Tests divert construction by registering an override under the entity's
// identity or its display name. Registrations are disposable handles, so a
// single defer scopes the override to the test:
//
//	defer fakeable.SetObject("Widget", sentinel).Close()
//
// Resolution is identity-first: an override registered for the descriptor
// itself wins over one registered for the display name, regardless of
// registration order. With no override installed, New builds a real instance
// with the arguments applied unchanged.
//
// The package-level functions operate on one process-wide registry; the
// fakeabletest package clears it around each test so overrides never leak
// between test cases.
package fakeable
