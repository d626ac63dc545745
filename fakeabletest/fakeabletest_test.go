package fakeabletest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/fakeable"
	"github.com/vk/fakeable/fakeabletest"
)

func TestReset_ClearsOverridesLeakedByFixtureCode(t *testing.T) {
	fakeable.SetObject("Leaked", "stale")

	fakeabletest.Reset(t)

	_, err := fakeable.Lookup("Leaked")
	require.ErrorIs(t, err, fakeable.ErrNotFound)
}

func TestReset_ClearsAfterTestFinishes(t *testing.T) {
	t.Run("test that forgets to unregister", func(t *testing.T) {
		fakeabletest.Reset(t)
		fakeable.SetObject("Widget", "fake")
	})

	_, err := fakeable.Lookup("Widget")
	require.ErrorIs(t, err, fakeable.ErrNotFound)
	assert.Equal(t, 0, fakeable.DefaultRegistry().Len())
}

func TestResetRegistry_ScopedRegistry(t *testing.T) {
	r := fakeable.NewRegistry()
	r.SetObject("Widget", "stale")

	t.Run("scoped", func(t *testing.T) {
		fakeabletest.ResetRegistry(t, r)
		_, err := r.Lookup("Widget")
		require.ErrorIs(t, err, fakeable.ErrNotFound)
		r.SetObject("Widget", "fresh")
	})

	assert.Equal(t, 0, r.Len())
}
