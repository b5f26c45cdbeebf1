package predicates

import "github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"

// BinPacking builds a MultiConstraint requiring that, when binVars[i]
// names the bin item i is assigned to, the total size of items in each
// bin never exceeds capacity, the boolean-evaluation rewrite of the
// original NewBinPacking (bin_packing.go).
func BinPacking(tag string, binVars []string, sizes []int, capacity int) constrainedrandom.MultiConstraint {
	return constrainedrandom.MultiConstraint{
		Tag: tag,
		Check: func(values map[string]any) bool {
			if len(binVars) != len(sizes) {
				return false
			}
			bv, ok := valuesOf(values, binVars)
			if !ok {
				return false
			}
			bins, ok := toInts(bv)
			if !ok {
				return false
			}
			load := make(map[int]int)
			for i, b := range bins {
				load[b] += sizes[i]
				if load[b] > capacity {
					return false
				}
			}
			return true
		},
	}
}
