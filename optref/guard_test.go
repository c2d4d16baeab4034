//go:build !hardened && !trusting

package optref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerefEmpty(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "optref: Deref of empty Ref", func() {
		None[int]().Deref()
	})
}

func TestPtrEmpty(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "optref: Ptr of empty Ref", func() {
		None[int]().Ptr()
	})
}

func TestViewDerefEmpty(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "optref: Deref of empty View", func() {
		NoneView[int]().Deref()
	})
}
