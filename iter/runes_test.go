package iter

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestRunes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := "héllo, 世界"
	it := NewRunes(strings.NewReader(input))

	got := make([]rune, 0, len(input))
	for r := it.Next(ctx); r.IsPresent(); r = it.Next(ctx) {
		got = append(got, r.Value())
	}
	require.Equal(t, []rune(input), got)
	require.Nil(t, it.Close(ctx))
}

func TestRunesInvalidUTF8(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	it := NewRunes(strings.NewReader("a\xffb"))

	require.Equal(t, 'a', it.Next(ctx).Value())
	require.Equal(t, utf8.RuneError, it.Next(ctx).Value())
	require.Equal(t, 'b', it.Next(ctx).Value())
	require.False(t, it.Next(ctx).IsPresent())
	require.Nil(t, it.Close(ctx))
}

func TestRunesWithLookahead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	look := NewLookahead(NewRunes(strings.NewReader("ab")), 1)

	require.Equal(t, 'a', look.Next(ctx).Value())
	require.Equal(t, 'b', look.Lookahead(ctx, 1).Value())
	require.Equal(t, 'b', look.Next(ctx).Value())
	require.False(t, look.Next(ctx).IsPresent())
	require.Nil(t, look.Close(ctx))
}
