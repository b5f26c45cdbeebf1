package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// LexLess builds a MultiConstraint requiring the tuple named by a to be
// strictly lexicographically less than the tuple named by b, the
// boolean-evaluation rewrite of the original NewLexLess (lex.go).
func LexLess(tag string, a, b []string) constrainedrandom.MultiConstraint {
	return lex(tag, a, b, true)
}

// LexLessEq builds a MultiConstraint requiring the tuple named by a to be
// lexicographically less than or equal to the tuple named by b, the
// rewrite of the original NewLexLessEq (lex.go).
func LexLessEq(tag string, a, b []string) constrainedrandom.MultiConstraint {
	return lex(tag, a, b, false)
}

func lex(tag string, a, b []string, strict bool) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			av, ok := valuesOf(values, a)
			if !ok {
				return false
			}
			bv, ok := valuesOf(values, b)
			if !ok {
				return false
			}
			aInts, ok := toInts(av)
			if !ok {
				return false
			}
			bInts, ok := toInts(bv)
			if !ok {
				return false
			}
			return lexCompare(aInts, bInts, strict)
		},
	}
}

func lexCompare(a, b []int, strict bool) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}
	if strict {
		return len(a) < len(b)
	}
	return len(a) <= len(b)
}
