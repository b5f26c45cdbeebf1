package constrainedrandom

// thoroughNodeBudget bounds the total number of search-tree nodes visited
// across the whole exhaustive enumeration, the Go analogue of the Python
// original's max_iterations guard against combinatorial blowup on a CSP
// that turns out to be much larger than max_domain_size estimated.
const thoroughNodeBudget = 200000

// thoroughVar is one variable's state during exhaustive search: its
// candidate values plus a bitset of which candidate indices have already
// been tried along the current path, so a frame can be popped and
// resumed with only the candidates it has not yet tried. The bitset-over-candidate-
// indices shape is the original engine's finite-domain BitSet idiom
// adapted from "bits of a 1..N domain" to "bits of a candidate-index
// slice", since our candidate values are arbitrary `any`s rather than
// small contiguous integers.
type thoroughVar struct {
	name       string
	candidates []any
	tried      []uint64
}

func newThoroughVar(name string, candidates []any) *thoroughVar {
	words := (len(candidates) + 63) / 64
	return &thoroughVar{name: name, candidates: candidates, tried: make([]uint64, words)}
}

func (t *thoroughVar) exhausted() bool {
	return popcount(t.tried) >= len(t.candidates)
}

// nextUntried returns the lowest untried candidate index and marks it
// tried, or ok=false if every candidate has been tried.
func (t *thoroughVar) nextUntried() (idx int, ok bool) {
	for i := range t.candidates {
		word, bit := i/64, uint(i%64)
		if t.tried[word]&(1<<bit) == 0 {
			t.tried[word] |= 1 << bit
			return i, true
		}
	}
	return 0, false
}

type thoroughFrame struct {
	varIdx int
}

// tryThorough performs exhaustive backtracking search over every
// variable (ignoring Order groupings, which are a sparse-strategy-only
// optimization) and, among every complete solution found within the node
// budget, picks one uniformly at random, per spec §4.5's "enumerate then
// uniformly choose" contract.
func (p *Problem) tryThorough(fixed map[string]bool, debug *DebugInfo) (Assignment, bool) {
	maxDomain := p.tuning.MaxDomainSize
	if maxDomain <= 0 {
		maxDomain = 1000
	}

	names := make([]string, 0, len(p.order))
	for _, name := range p.order {
		if !fixed[name] {
			names = append(names, name)
		}
	}

	// Function domains cannot participate in exhaustive enumeration
	// (spec §4.5): unlike the sparse strategy's sample-and-filter
	// treatment, thorough search needs a bounded, enumerable candidate
	// set for every variable up front.
	for _, name := range names {
		if p.vars[name].Domain.Kind == DomainFunc {
			return nil, false
		}
	}

	// spec §4.5's documented precondition: the product of every
	// variable's enumerated domain size must not exceed max_domain_size,
	// checked before any candidate lists are built or searched, rather
	// than relying solely on thoroughNodeBudget as a backstop.
	product := int64(1)
	for _, name := range names {
		size := p.vars[name].Domain.Size()
		if size > int64(maxDomain) {
			size = int64(maxDomain)
		}
		product *= size
		if product > int64(maxDomain) {
			return nil, false
		}
	}

	vars := make([]*thoroughVar, len(names))
	for i, name := range names {
		v := p.vars[name]
		candidates := v.Enumerate(p.src, maxDomain)
		if len(candidates) == 0 {
			return nil, false
		}
		vars[i] = newThoroughVar(name, candidates)
	}

	current := make(map[string]any, len(p.vars))
	for name := range fixed {
		current[name] = p.results[name]
	}
	// Constraints over fixed variables alone are never reached by the
	// per-assignment check below, so check them once up front.
	if failing := p.failingBoundConstraints(current); len(failing) > 0 {
		if debug != nil {
			debug.AddFailure(log.WithField("strategy", "thorough"), current, failing)
		}
		return nil, false
	}

	var solutions []map[string]any
	stack := []thoroughFrame{{varIdx: 0}}
	nodes := 0

	for len(stack) > 0 && nodes < thoroughNodeBudget {
		nodes++
		top := stack[len(stack)-1]
		if top.varIdx >= len(vars) {
			snap := make(map[string]any, len(current))
			for k, v := range current {
				snap[k] = v
			}
			solutions = append(solutions, snap)
			stack = stack[:len(stack)-1]
			if len(vars) > 0 {
				delete(current, vars[len(vars)-1].name)
			}
			continue
		}

		tv := vars[top.varIdx]
		idx, ok := tv.nextUntried()
		if !ok {
			// This variable's candidates are exhausted along this path:
			// backtrack, resetting its bitset for the next time it is
			// reached via a different assignment prefix.
			tv.tried = make([]uint64, len(tv.tried))
			stack = stack[:len(stack)-1]
			if top.varIdx > 0 {
				delete(current, vars[top.varIdx-1].name)
			}
			continue
		}

		current[tv.name] = tv.candidates[idx]
		if failing := p.failingBoundConstraints(current); len(failing) > 0 {
			if debug != nil {
				debug.AddFailure(log.WithField("strategy", "thorough"), current, failing)
			}
			delete(current, tv.name)
			continue
		}

		stack = append(stack, thoroughFrame{varIdx: top.varIdx + 1})
	}

	if len(solutions) == 0 {
		return nil, false
	}
	pick := Choice(p.src, solutions)
	return snapshot(pick), true
}
