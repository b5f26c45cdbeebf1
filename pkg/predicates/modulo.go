package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Modulo builds a MultiConstraint requiring remVar to equal xVar modulo
// divisor, the boolean-evaluation rewrite of the original NewModulo
// (modulo.go).
func Modulo(tag, xVar string, divisor int, remVar string) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			if divisor == 0 {
				return false
			}
			x, ok := values[xVar]
			if !ok {
				return false
			}
			xi, ok := toInt(x)
			if !ok {
				return false
			}
			r, ok := values[remVar]
			if !ok {
				return false
			}
			ri, ok := toInt(r)
			if !ok {
				return false
			}
			want := xi % divisor
			if want < 0 {
				want += divisor
			}
			return ri == want
		},
	}
}
