package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementValues(t *testing.T) {
	c := ElementValues("elt", "idx", []any{"a", "b", "c"}, "out")
	require.True(t, c.Check(map[string]any{"idx": 1, "out": "b"}))
	require.False(t, c.Check(map[string]any{"idx": 1, "out": "c"}))
	require.False(t, c.Check(map[string]any{"idx": 5, "out": "b"}))
}
