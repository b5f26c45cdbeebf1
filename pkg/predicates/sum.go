package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Sum builds a MultiConstraint requiring the named integer variables to
// add up to exactly total, the boolean-evaluation rewrite of the
// original LinearSum propagator (sum.go) with every weight fixed at 1.
func Sum(tag string, vars []string, total int) constrainedrandom.MultiConstraint {
	return WeightedSum(tag, vars, nil, total)
}

// WeightedSum generalizes Sum with a per-variable integer weight,
// matching LinearSum's general weighted form. A nil weights slice is
// treated as all-ones.
func WeightedSum(tag string, vars []string, weights []int, total int) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			vals, ok := valuesOf(values, vars)
			if !ok {
				return false
			}
			ints, ok := toInts(vals)
			if !ok {
				return false
			}
			sum := 0
			for i, n := range ints {
				w := 1
				if weights != nil {
					if i >= len(weights) {
						return false
					}
					w = weights[i]
				}
				sum += w * n
			}
			return sum == total
		},
	}
}

// SumList builds a ListConstraint requiring a list-shaped variable's
// elements to sum to total (spec.md scenario 4).
func SumList(tag string, total int) constrainedrandom.ListConstraint {
	return constrainedrandom.ListConstraint{
		Tag: tag,
		Check: func(values []any) bool {
			ints, ok := toInts(values)
			if !ok {
				return false
			}
			sum := 0
			for _, n := range ints {
				sum += n
			}
			return sum == total
		},
	}
}
