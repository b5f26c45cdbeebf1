package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexLess(t *testing.T) {
	c := LexLess("lex", []string{"a1", "a2"}, []string{"b1", "b2"})
	require.True(t, c.Check(map[string]any{"a1": 1, "a2": 9, "b1": 2, "b2": 0}))
	require.False(t, c.Check(map[string]any{"a1": 2, "a2": 0, "b1": 2, "b2": 0}))
}

func TestLexLessEq(t *testing.T) {
	c := LexLessEq("lexeq", []string{"a1", "a2"}, []string{"b1", "b2"})
	require.True(t, c.Check(map[string]any{"a1": 2, "a2": 0, "b1": 2, "b2": 0}))
}
