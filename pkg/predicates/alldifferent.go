package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// AllDifferent builds a MultiConstraint requiring every named variable to
// hold a distinct value, the boolean-evaluation rewrite of the original
// GlobalCardinality propagator (gcc.go) specialized to "each value used
// at most once".
func AllDifferent(tag string, vars []string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			vals, ok := valuesOf(values, vars)
			if !ok {
				return false
			}
			return allDistinct(vals)
		},
	}
}

// AllDifferentList builds a ListConstraint requiring every element of a
// list-shaped variable to be distinct, the shape spec.md scenario 4
// ("register list has no duplicates") needs directly.
func AllDifferentList(tag string) constrainedrandom.ListConstraint {
	return constrainedrandom.ListConstraint{
		Tag: tag,
		Check: func(values []any) bool {
			return allDistinct(values)
		},
	}
}

func allDistinct(vals []any) bool {
	seen := make(map[any]bool, len(vals))
	for _, v := range vals {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
