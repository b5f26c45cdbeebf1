package constrainedrandom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsDomainSize(t *testing.T) {
	d := NewBitsDomain(4)
	require.Equal(t, int64(16), d.Size())
}

func TestBitsDomainSampleInRange(t *testing.T) {
	d := NewBitsDomain(3)
	src := NewSource(1)
	for i := 0; i < 500; i++ {
		v := d.Sample(src).(int)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 8)
	}
}

func TestEnumDomainEnumerateExhaustive(t *testing.T) {
	d := NewEnumDomain([]any{"a", "b", "c"})
	src := NewSource(2)
	got := d.Enumerate(src, 10)
	require.Len(t, got, 3)
}

func TestWeightedDomainSize(t *testing.T) {
	d := NewWeightedDomain([]WeightedEntry{
		{Value: 1, Weight: 1},
		{IsRange: true, Low: 10, High: 19, Weight: 1},
	})
	require.Equal(t, int64(11), d.Size())
}

func TestFuncDomainIsInfinite(t *testing.T) {
	d := NewFuncDomain(func(src *Source, args []any) any { return src.Uint32() })
	require.Equal(t, int64(math.MaxInt64), d.Size())
}

func TestFuncDomainEnumerateSamplesAndFilters(t *testing.T) {
	d := NewFuncDomain(func(src *Source, args []any) any { return int(src.Uint32() % 5) })
	got := d.Enumerate(NewSource(1), 10)
	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), 10)
	seen := make(map[any]bool)
	for _, v := range got {
		require.False(t, seen[v], "Enumerate must de-duplicate")
		seen[v] = true
	}
}
