package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinPackingAcceptsAndRejects(t *testing.T) {
	c := BinPacking("bp", []string{"i1", "i2", "i3"}, []int{4, 4, 4}, 8)
	require.True(t, c.Check(map[string]any{"i1": 0, "i2": 0, "i3": 1}))
	require.False(t, c.Check(map[string]any{"i1": 0, "i2": 0, "i3": 0}))
}
