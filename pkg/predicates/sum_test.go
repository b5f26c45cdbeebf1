package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumAcceptsExactTotal(t *testing.T) {
	c := Sum("sum10", []string{"a", "b"}, 10)
	require.True(t, c.Check(map[string]any{"a": 4, "b": 6}))
	require.False(t, c.Check(map[string]any{"a": 4, "b": 5}))
}

func TestWeightedSumAppliesWeights(t *testing.T) {
	c := WeightedSum("wsum", []string{"a", "b"}, []int{2, 3}, 13)
	require.True(t, c.Check(map[string]any{"a": 2, "b": 3})) // 2*2+3*3=13
}

func TestSumListAcceptsAndRejects(t *testing.T) {
	c := SumList("suml", 10)
	require.True(t, c.Check([]any{4, 6}))
	require.False(t, c.Check([]any{4, 5}))
}
