package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// ElementValues builds a MultiConstraint requiring resultVar to equal
// values[indexVar], the boolean-evaluation rewrite of the original
// NewElementValues (element.go).
func ElementValues(tag, indexVar string, values []any, resultVar string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(bound map[string]any) bool {
			idxVal, ok := bound[indexVar]
			if !ok {
				return false
			}
			idx, ok := toInt(idxVal)
			if !ok || idx < 0 || idx >= len(values) {
				return false
			}
			got, ok := bound[resultVar]
			if !ok {
				return false
			}
			return got == values[idx]
		},
	}
}
