package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Among builds a MultiConstraint requiring the number of vars whose value
// is in set to fall within [low, high] inclusive, the boolean-evaluation
// rewrite of the original NewAmong (among.go).
func Among(tag string, vars []string, set []any, low, high int) constrainedrandom.MultiConstraint {
	member := make(map[any]bool, len(set))
	for _, v := range set {
		member[v] = true
	}
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			vals, ok := valuesOf(values, vars)
			if !ok {
				return false
			}
			n := 0
			for _, v := range vals {
				if member[v] {
					n++
				}
			}
			return n >= low && n <= high
		},
	}
}
