package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmongCountsWithinRange(t *testing.T) {
	c := Among("among", []string{"a", "b", "c"}, []any{1, 2}, 1, 2)
	require.True(t, c.Check(map[string]any{"a": 1, "b": 2, "c": 9})) // 2 matches
	require.False(t, c.Check(map[string]any{"a": 9, "b": 9, "c": 9}))
}
