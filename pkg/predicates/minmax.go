package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// MinEquals builds a MultiConstraint requiring minVar to hold the
// smallest value among vars, the boolean-evaluation rewrite of the
// original NewMin (minmax.go).
func MinEquals(tag string, vars []string, minVar string) constrainedrandom.MultiConstraint {
	return extremumEquals(tag, vars, minVar, false)
}

// MaxEquals builds a MultiConstraint requiring maxVar to hold the
// largest value among vars, the boolean-evaluation rewrite of the
// original NewMax (minmax.go).
func MaxEquals(tag string, vars []string, maxVar string) constrainedrandom.MultiConstraint {
	return extremumEquals(tag, vars, maxVar, true)
}

func extremumEquals(tag string, vars []string, target string, wantMax bool) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			vals, ok := valuesOf(values, vars)
			if !ok {
				return false
			}
			ints, ok := toInts(vals)
			if !ok || len(ints) == 0 {
				return false
			}
			best := ints[0]
			for _, n := range ints[1:] {
				if (wantMax && n > best) || (!wantMax && n < best) {
					best = n
				}
			}
			got, ok := values[target]
			if !ok {
				return false
			}
			gotInt, ok := toInt(got)
			return ok && gotInt == best
		},
	}
}
