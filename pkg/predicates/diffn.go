package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// Diffn builds a MultiConstraint requiring the axis-aligned rectangles
// defined by (xs[i], ys[i], widths[i], heights[i]) to be pairwise
// non-overlapping, the boolean-evaluation rewrite of the original
// NewDiffn (diffn.go), which propagates this as a 4-way reified
// disjunction per pair; here every pair is just checked directly.
func Diffn(tag string, xs, ys []string, widths, heights []int) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			n := len(xs)
			if n != len(ys) || n != len(widths) || n != len(heights) {
				return false
			}
			xv, ok := valuesOf(values, xs)
			if !ok {
				return false
			}
			yv, ok := valuesOf(values, ys)
			if !ok {
				return false
			}
			xi, ok := toInts(xv)
			if !ok {
				return false
			}
			yi, ok := toInts(yv)
			if !ok {
				return false
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if rectsOverlap(xi[i], yi[i], widths[i], heights[i], xi[j], yi[j], widths[j], heights[j]) {
						return false
					}
				}
			}
			return true
		},
	}
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}
