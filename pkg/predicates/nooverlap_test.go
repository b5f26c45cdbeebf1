package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOverlapAcceptsDisjointAndRejectsOverlap(t *testing.T) {
	c := NoOverlap("nooverlap", []string{"s1", "s2"}, []int{3, 3})
	require.True(t, c.Check(map[string]any{"s1": 0, "s2": 3}))
	require.False(t, c.Check(map[string]any{"s1": 0, "s2": 2}))
}
