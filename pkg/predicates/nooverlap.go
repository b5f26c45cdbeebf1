package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// NoOverlap builds a MultiConstraint requiring the intervals
// [start, start+duration) defined by starts[i]/durations[i] to be
// pairwise disjoint, the boolean-evaluation rewrite of the original
// NewNoOverlap (nooverlap.go), which models disjunctive scheduling as
// Cumulative with capacity 1.
func NoOverlap(tag string, starts []string, durations []int) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			if len(starts) != len(durations) {
				return false
			}
			sv, ok := valuesOf(values, starts)
			if !ok {
				return false
			}
			ints, ok := toInts(sv)
			if !ok {
				return false
			}
			for i := 0; i < len(ints); i++ {
				for j := i + 1; j < len(ints); j++ {
					if intervalsOverlap(ints[i], durations[i], ints[j], durations[j]) {
						return false
					}
				}
			}
			return true
		},
	}
}

func intervalsOverlap(startA, durA, startB, durB int) bool {
	endA := startA + durA
	endB := startB + durB
	return startA < endB && startB < endA
}
