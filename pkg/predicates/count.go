package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Count builds a MultiConstraint requiring countVar to hold the number
// of vars equal to target, the boolean-evaluation rewrite of the
// original NewCount (count.go).
func Count(tag string, vars []string, target any, countVar string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			vals, ok := valuesOf(values, vars)
			if !ok {
				return false
			}
			n := 0
			for _, v := range vals {
				if v == target {
					n++
				}
			}
			got, ok := values[countVar]
			if !ok {
				return false
			}
			gotInt, ok := toInt(got)
			return ok && gotInt == n
		},
	}
}

// ValueEqualsReified builds a MultiConstraint requiring boolVar to hold 1
// when subject equals target and 0 otherwise, the rewrite of the
// original NewValueEqualsReified (count.go).
func ValueEqualsReified(tag, subject string, target any, boolVar string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			subj, ok := values[subject]
			if !ok {
				return false
			}
			b, ok := values[boolVar]
			if !ok {
				return false
			}
			bInt, ok := toInt(b)
			if !ok {
				return false
			}
			want := 0
			if subj == target {
				want = 1
			}
			return bInt == want
		},
	}
}
