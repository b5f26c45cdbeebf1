package constrainedrandom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAddVar(t *testing.T, p *Problem, name string, spec VarSpec) {
	t.Helper()
	require.NoError(t, p.AddVar(name, spec))
}

// TestSumConstraintRejectionSolvable is scenario 1: two variables over
// 0..9 with a + b > 5.
func TestSumConstraintRejectionSolvable(t *testing.T) {
	p := NewProblem(NewSource(0))
	mustAddVar(t, p, "a", VarSpec{Domain: enumRangeDomain(0, 9)})
	mustAddVar(t, p, "b", VarSpec{Domain: enumRangeDomain(0, 9)})
	require.NoError(t, p.AddConstraint(MultiConstraint{
		Tag: "sum_gt_5",
		Check: func(values map[string]any) bool {
			a := values["a"].(int)
			b := values["b"].(int)
			return a+b > 5
		},
	}, []string{"a", "b"}))

	result, err := p.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
	a := result["a"].(int)
	b := result["b"].(int)
	require.Greater(t, a+b, 5)
}

// TestPlusOneOrderDependent is scenario 2: y == x + 1 over 0..99, naive
// disabled, explicit orders.
func TestPlusOneOrderDependent(t *testing.T) {
	p := NewProblem(NewSource(0))
	mustAddVar(t, p, "x", VarSpec{Domain: enumRangeDomain(0, 99), Order: 0})
	mustAddVar(t, p, "y", VarSpec{Domain: enumRangeDomain(0, 99), Order: 1})
	require.NoError(t, p.AddConstraint(MultiConstraint{
		Tag: "plus_one",
		Check: func(values map[string]any) bool {
			return values["y"].(int) == values["x"].(int)+1
		},
	}, []string{"x", "y"}))
	p.SetSolverMode(SolverFlags{EnableNaive: false, EnableSparse: true, EnableThorough: true})

	result, err := p.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
	require.Equal(t, result["x"].(int)+1, result["y"].(int))
}

// TestListUniqueAndSum is scenario 4.
func TestListUniqueAndSum(t *testing.T) {
	p := NewProblem(NewSource(1))
	mustAddVar(t, p, "regs", VarSpec{
		Domain: enumRangeDomain(0, 99),
		Length: 10,
		ListConstraints: []ListConstraint{
			{Tag: "unique", Check: func(vals []any) bool {
				seen := map[any]bool{}
				for _, v := range vals {
					if seen[v] {
						return false
					}
					seen[v] = true
				}
				return true
			}},
			{Tag: "sum_ge_50", Check: func(vals []any) bool {
				sum := 0
				for _, v := range vals {
					sum += v.(int)
				}
				return sum >= 50
			}},
		},
	})

	result, err := p.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
	list := result["regs"].([]any)
	require.Len(t, list, 10)
	sum := 0
	seen := map[any]bool{}
	for _, v := range list {
		require.False(t, seen[v])
		seen[v] = true
		sum += v.(int)
	}
	require.GreaterOrEqual(t, sum, 50)
}

// TestUnsolvableProblem is scenario 5.
func TestUnsolvableProblem(t *testing.T) {
	p := NewProblem(NewSource(0))
	mustAddVar(t, p, "x", VarSpec{Domain: enumRangeDomain(0, 9)})
	require.NoError(t, p.AddConstraint(MultiConstraint{
		Tag: "x_gt_100",
		Check: func(values map[string]any) bool {
			return values["x"].(int) > 100
		},
	}, []string{"x"}))
	p.SetTuning(Tuning{MaxIterations: 50, MaxDomainSize: 50})

	_, err := p.Randomize(context.Background(), RandomizeOptions{Debug: true})
	require.Error(t, err)
	var randErr *RandomizationError
	require.ErrorAs(t, err, &randErr)
	require.NotNil(t, randErr.Debug)
	require.NotEmpty(t, randErr.Debug.Attempts)
}

// TestWeightedDistributionScenario is scenario 6.
func TestWeightedDistributionScenario(t *testing.T) {
	src := NewSource(123)
	d := NewWeightedDomain([]WeightedEntry{
		{Value: 0, Weight: 50},
		{Value: 1, Weight: 25},
		{IsRange: true, Low: 2, High: 9, Weight: 25},
	})

	const trials = 10000
	counts := map[string]int{"zero": 0, "one": 0, "range": 0}
	for i := 0; i < trials; i++ {
		v := d.Sample(src)
		switch n := v.(int); {
		case n == 0:
			counts["zero"]++
		case n == 1:
			counts["one"]++
		default:
			counts["range"]++
		}
	}

	freq := func(k string) float64 { return float64(counts[k]) / float64(trials) }
	require.InDelta(t, 0.50, freq("zero"), 0.03)
	require.InDelta(t, 0.25, freq("one"), 0.03)
	require.InDelta(t, 0.25, freq("range"), 0.03)
}

// TestRepeatability is scenario 7.
func TestRepeatability(t *testing.T) {
	build := func(seed int64) (*Problem, error) {
		p := NewProblem(NewSource(seed))
		if err := p.AddVar("a", VarSpec{Domain: bitsDomainPtr(4)}); err != nil {
			return nil, err
		}
		if err := p.AddVar("b", VarSpec{Domain: bitsDomainPtr(4)}); err != nil {
			return nil, err
		}
		err := p.AddConstraint(MultiConstraint{
			Tag: "sum_gt_5",
			Check: func(values map[string]any) bool {
				return values["a"].(int)+values["b"].(int) > 5
			},
		}, []string{"a", "b"})
		return p, err
	}

	p1, err := build(99)
	require.NoError(t, err)
	p2, err := build(99)
	require.NoError(t, err)

	r1, err := p1.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
	r2, err := p2.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

// TestTemporaryIsolation checks that with_constraints does not persist
// across calls.
func TestTemporaryIsolation(t *testing.T) {
	p := NewProblem(NewSource(4))
	mustAddVar(t, p, "x", VarSpec{Domain: bitsDomainPtr(4)})

	extra := ConstraintAndVars{
		Constraint: MultiConstraint{Tag: "never", Check: func(values map[string]any) bool { return false }},
		Vars:       []string{"x"},
	}
	p.SetTuning(Tuning{MaxIterations: 5, MaxDomainSize: 20})
	_, err := p.Randomize(context.Background(), RandomizeOptions{WithConstraints: []ConstraintAndVars{extra}})
	require.Error(t, err)

	// Without the temporary constraint, the same problem must now solve.
	_, err = p.Randomize(context.Background(), RandomizeOptions{})
	require.NoError(t, err)
}

// TestWithValuesIsolationOnFailure checks that a fixed value from a
// failed Randomize call does not leak into GetResults/Value afterward,
// matching the rollback TestTemporaryIsolation already checks for
// with_constraints.
func TestWithValuesIsolationOnFailure(t *testing.T) {
	p := NewProblem(NewSource(11))
	mustAddVar(t, p, "x", VarSpec{Domain: bitsDomainPtr(4)})
	require.NoError(t, p.AddConstraint(MultiConstraint{
		Tag:   "never",
		Check: func(values map[string]any) bool { return false },
	}, []string{"x"}))
	p.SetTuning(Tuning{MaxIterations: 5, MaxDomainSize: 20})

	_, err := p.Randomize(context.Background(), RandomizeOptions{WithValues: map[string]any{"x": 9}})
	require.Error(t, err)

	_, ok := p.Value("x")
	require.False(t, ok, "a fixed value from a failed Randomize call must not be observable afterward")
}

// TestValueFixing checks with_values fixes the named variable.
func TestValueFixing(t *testing.T) {
	p := NewProblem(NewSource(6))
	mustAddVar(t, p, "x", VarSpec{Domain: bitsDomainPtr(4)})
	mustAddVar(t, p, "y", VarSpec{Domain: bitsDomainPtr(4)})

	result, err := p.Randomize(context.Background(), RandomizeOptions{WithValues: map[string]any{"x": 7}})
	require.NoError(t, err)
	require.Equal(t, 7, result["x"])
}

func enumRangeDomain(lo, hi int) *Domain {
	vals := make([]any, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		vals = append(vals, i)
	}
	d := NewEnumDomain(vals)
	return &d
}
