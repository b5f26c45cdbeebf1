package constrainedrandom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRandVarRejectsAmbiguousSpec(t *testing.T) {
	bits := 4
	_, err := NewRandVar("x", VarSpec{Bits: &bits, Domain: &Domain{Kind: DomainEnum}})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewRandVarRejectsNoneSpec(t *testing.T) {
	_, err := NewRandVar("x", VarSpec{})
	require.Error(t, err)
}

func TestRandVarDrawRespectsScalarConstraint(t *testing.T) {
	bits := 4
	v, err := NewRandVar("x", VarSpec{
		Bits: &bits,
		Constraints: []ScalarConstraint{
			{Tag: "even", Check: func(val any) bool { return val.(int)%2 == 0 }},
		},
	})
	require.NoError(t, err)

	src := NewSource(9)
	for i := 0; i < 50; i++ {
		val, ok := v.Draw(src)
		if ok {
			require.Equal(t, 0, val.(int)%2)
		}
	}
}

func TestRandVarListDrawRespectsListConstraint(t *testing.T) {
	v, err := NewRandVar("regs", VarSpec{
		Domain: bitsDomainPtr(3),
		Length: 3,
		ListConstraints: []ListConstraint{
			{Tag: "unique", Check: func(vals []any) bool {
				seen := map[any]bool{}
				for _, x := range vals {
					if seen[x] {
						return false
					}
					seen[x] = true
				}
				return true
			}},
		},
	})
	require.NoError(t, err)

	src := NewSource(3)
	successes := 0
	for i := 0; i < 200; i++ {
		val, ok := v.Draw(src)
		if ok {
			successes++
			list := val.([]any)
			require.Len(t, list, 3)
			seen := map[any]bool{}
			for _, x := range list {
				require.False(t, seen[x])
				seen[x] = true
			}
		}
	}
	require.Greater(t, successes, 0)
}

func bitsDomainPtr(width int) *Domain {
	d := NewBitsDomain(width)
	return &d
}
