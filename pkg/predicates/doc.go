// Package predicates provides constructors for common multi-variable and
// list constraints — all-different, sum, min/max, among, count, element,
// lexicographic ordering, modulo/scale relations, resource scheduling,
// bin-packing, and 2-D non-overlap — as plain boolean-evaluating
// closures suitable for constrainedrandom's opaque-predicate contract.
package predicates
