package constrainedrandom

import "fmt"

const listRetryBudget = 10

// VarSpec describes how to build one RandVar, mirroring the Python
// original's add_rand_var keyword arguments (internal/randvar.py
// __init__): exactly one of Bits, a Domain, or Fn must be set.
type VarSpec struct {
	Bits   *int
	Domain *Domain
	Fn     FuncDomain
	FnArgs []any

	Constraints     []ScalarConstraint
	ListConstraints []ListConstraint

	// Length, when > 0, makes this a list-shaped variable of that many
	// independently-drawn elements, each checked against Constraints and
	// the whole list checked against ListConstraints (spec §3, §4.2).
	Length int

	// Order groups variables for the sparse strategy's layered search
	// (spec §4.4). Variables sharing an Order value are solved together.
	Order int

	// Initial is the value reported before the first successful solve.
	Initial any
}

// RandVar is a single random variable: a resolved domain, its own scalar
// and list constraints, and the bookkeeping the solver needs to draw and
// re-draw it. Concrete struct, not an interface — constrainedrandom has
// exactly one variable shape, not a family (DESIGN.md).
type RandVar struct {
	Name    string
	Domain  Domain
	Order   int
	Length  int
	Initial any

	Constraints     []ScalarConstraint
	ListConstraints []ListConstraint
}

// NewRandVar validates spec and builds the RandVar's resolved Domain,
// the Go analogue of the Python RandVar.__init__ assertion that exactly
// one of domain/bits/fn is given.
func NewRandVar(name string, spec VarSpec) (*RandVar, error) {
	set := 0
	if spec.Bits != nil {
		set++
	}
	if spec.Domain != nil {
		set++
	}
	if spec.Fn != nil {
		set++
	}
	if set != 1 {
		return nil, &ConfigError{Msg: fmt.Sprintf("variable %q must set exactly one of Bits, Domain, or Fn", name)}
	}

	var dom Domain
	switch {
	case spec.Bits != nil:
		dom = NewBitsDomain(*spec.Bits)
	case spec.Domain != nil:
		dom = *spec.Domain
	case spec.Fn != nil:
		dom = NewFuncDomain(spec.Fn, spec.FnArgs...)
	}

	if spec.Length < 0 {
		return nil, &ConfigError{Msg: fmt.Sprintf("variable %q has negative length", name)}
	}

	return &RandVar{
		Name:            name,
		Domain:          dom,
		Order:           spec.Order,
		Length:          spec.Length,
		Initial:         spec.Initial,
		Constraints:     spec.Constraints,
		ListConstraints: spec.ListConstraints,
	}, nil
}

// IsList reports whether this variable draws a list of values rather than
// a single scalar.
func (v *RandVar) IsList() bool {
	return v.Length > 0
}

// checkScalar runs every per-element scalar constraint against value.
func (v *RandVar) checkScalar(value any) bool {
	for _, c := range v.Constraints {
		ok, err := evalConstraint(c.Tag, func() bool { return c.Check(value) })
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// checkList runs every list constraint against values.
func (v *RandVar) checkList(values []any) bool {
	for _, c := range v.ListConstraints {
		ok, err := evalConstraint(c.Tag, func() bool { return c.Check(values) })
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Draw produces one candidate value for this variable: a scalar drawn
// and rechecked against Constraints up to listRetryBudget times for a
// scalar variable, or a list of Length elements (each individually
// constraint-checked) rechecked as a whole against ListConstraints, up
// to listRetryBudget times, per spec §4.2. On exhausting the retry
// budget it returns the last attempt sampled, ok=false, rather than
// nil — spec §4.2 leaves the caller "responsible for deciding whether
// that last attempt is acceptable."
func (v *RandVar) Draw(src *Source) (any, bool) {
	if !v.IsList() {
		var last any
		for attempt := 0; attempt < listRetryBudget; attempt++ {
			last = v.Domain.Sample(src)
			if v.checkScalar(last) {
				return last, true
			}
		}
		return last, false
	}

	var last []any
	for attempt := 0; attempt < listRetryBudget; attempt++ {
		values := make([]any, v.Length)
		for i := 0; i < v.Length; i++ {
			val, _ := v.drawScalarElement(src)
			values[i] = val
		}
		last = values
		if v.checkList(values) {
			return values, true
		}
	}
	return last, false
}

func (v *RandVar) drawScalarElement(src *Source) (any, bool) {
	for attempt := 0; attempt < listRetryBudget; attempt++ {
		val := v.Domain.Sample(src)
		if v.checkScalar(val) {
			return val, true
		}
	}
	return nil, false
}

// Enumerate returns up to k values satisfying this variable's scalar
// constraints, for use by the sparse and thorough strategies when
// building per-variable candidate sets (spec §4.2 "Domain resolution").
// Function domains are sampled-and-filtered like any other large domain
// here; the thorough strategy applies its own hard exclusion of
// Function domains on top of this (spec §4.5), general enumeration does
// not. For a list-shaped variable the candidates are whole lists drawn
// via Draw, keeping only those that satisfy ListConstraints.
func (v *RandVar) Enumerate(src *Source, k int) []any {
	if v.IsList() {
		out := make([]any, 0, k)
		for attempt := 0; attempt < k*4+8 && len(out) < k; attempt++ {
			if list, ok := v.Draw(src); ok {
				out = append(out, list)
			}
		}
		return out
	}
	candidates := v.Domain.Enumerate(src, k*4+8)
	out := make([]any, 0, k)
	for _, c := range candidates {
		if len(out) >= k {
			break
		}
		if v.checkScalar(c) {
			out = append(out, c)
		}
	}
	return out
}
