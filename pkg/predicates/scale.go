package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Scale builds a MultiConstraint requiring resultVar to equal
// xVar*multiplier, the boolean-evaluation rewrite of the original
// NewScale (scale.go).
func Scale(tag, xVar string, multiplier int, resultVar string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			x, ok := values[xVar]
			if !ok {
				return false
			}
			xi, ok := toInt(x)
			if !ok {
				return false
			}
			r, ok := values[resultVar]
			if !ok {
				return false
			}
			ri, ok := toInt(r)
			if !ok {
				return false
			}
			return ri == xi*multiplier
		},
	}
}
