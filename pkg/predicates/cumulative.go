package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Cumulative builds a MultiConstraint requiring that, at every instant,
// the sum of demands of tasks active at that instant never exceeds
// capacity, the boolean-evaluation rewrite of the original
// NewCumulative (cumulative.go) time-table filtering, re-expressed as a
// direct scan over the compulsory-part timeline instead of incremental
// propagation.
func Cumulative(tag string, starts []string, durations []int, demands []int, capacity int) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			if len(starts) != len(durations) || len(starts) != len(demands) {
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

			minT, maxT := 0, 0
			for i, s := range ints {
				if i == 0 || s < minT {
					minT = s
				}
				end := s + durations[i]
				if i == 0 || end > maxT {
					maxT = end
				}
			}
			for t := minT; t < maxT; t++ {
				load := 0
				for i, s := range ints {
					if s <= t && t < s+durations[i] {
						load += demands[i]
					}
				}
				if load > capacity {
					return false
				}
			}
			return true
		},
	}
}
