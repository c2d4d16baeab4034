package optref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := 3
	b := 3
	c := 4

	testCases := []struct {
		name string
		x    Ref[int]
		y    Ref[int]
		want bool
	}{
		{name: "both empty", x: None[int](), y: None[int](), want: true},
		{name: "empty left", x: None[int](), y: New(&a), want: false},
		{name: "empty right", x: New(&a), y: None[int](), want: false},
		{name: "same referent", x: New(&a), y: New(&a), want: true},
		{name: "equal values", x: New(&a), y: New(&b), want: true},
		{name: "unequal values", x: New(&a), y: New(&c), want: false},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.want, Equal(testCase.x, testCase.y))
			require.Equal(t, testCase.want, Equal(testCase.y, testCase.x))
		})
	}
}

func TestEqualValue(t *testing.T) {
	t.Parallel()

	v := "hello"
	require.True(t, EqualValue(New(&v), "hello"))
	require.False(t, EqualValue(New(&v), "goodbye"))
	require.False(t, EqualValue(None[string](), ""))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	fold := func(a string, b string) bool { return strings.EqualFold(a, b) }

	t.Run("both empty", func(t *testing.T) {
		got := EqualFunc(None[string](), None[string](), func(a string, b string) bool {
			t.Fatal("comparison called for empty Refs")
			return false
		})
		require.True(t, got)
	})
	t.Run("one empty", func(t *testing.T) {
		v := "hello"
		require.False(t, EqualFunc(New(&v), None[string](), fold))
		require.False(t, EqualFunc(None[string](), New(&v), fold))
	})
	t.Run("present", func(t *testing.T) {
		a := "Hello"
		b := "hello"
		require.True(t, EqualFunc(New(&a), New(&b), fold))
	})
	t.Run("mixed types", func(t *testing.T) {
		a := 7
		b := int64(7)
		got := EqualFunc(New(&a), New(&b), func(x int, y int64) bool {
			return int64(x) == y
		})
		require.True(t, got)
	})
}

func TestEqualView(t *testing.T) {
	t.Parallel()

	a := 3
	b := 3
	require.True(t, EqualView(New(&a).ReadOnly(), New(&b).ReadOnly()))
	require.True(t, EqualView(NoneView[int](), NoneView[int]()))
	require.False(t, EqualView(New(&a).ReadOnly(), NoneView[int]()))

	require.True(t, EqualViewValue(New(&a).ReadOnly(), 3))
	require.False(t, EqualViewValue(NoneView[int](), 0))

	c := int64(3)
	got := EqualViewFunc(New(&a).ReadOnly(), New(&c).ReadOnly(), func(x int, y int64) bool {
		return int64(x) == y
	})
	require.True(t, got)
}
