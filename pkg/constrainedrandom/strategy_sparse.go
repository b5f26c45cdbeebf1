package constrainedrandom

import "math"

// sparsityLadder mirrors the Python original's
// MultiVarProblem.solve_groups "solutions_per_group" schedule: widen the
// carried-forward solution space only as far as needed before giving up
// on the sparse strategy and falling through to thorough enumeration.
var sparsityLadder = []int{1, 10, 100, 1000}

// groupWidening caps how many complete extensions solveGroup collects for
// one partial solution; the group's DFS stops once it has found that many.
const groupWidening = 64

// varGroup is every RandVar sharing one Order value, searched together
// so that constraints spanning them can be checked as soon as all their
// variables are bound, per spec §4.4.
type varGroup struct {
	order int
	vars  []*RandVar
}

func (p *Problem) orderedGroups() []varGroup {
	byOrder := make(map[int][]*RandVar)
	for _, name := range p.order {
		v := p.vars[name]
		byOrder[v.Order] = append(byOrder[v.Order], v)
	}
	orders := make([]int, 0, len(byOrder))
	for o := range byOrder {
		orders = append(orders, o)
	}
	// Simple insertion sort: the number of distinct order values is tiny
	// in practice, and this keeps the iteration deterministic without
	// reaching for sort.Slice over a throwaway int slice.
	for i := 1; i < len(orders); i++ {
		for j := i; j > 0 && orders[j-1] > orders[j]; j-- {
			orders[j-1], orders[j] = orders[j], orders[j-1]
		}
	}
	groups := make([]varGroup, 0, len(orders))
	for _, o := range orders {
		groups = append(groups, varGroup{order: o, vars: byOrder[o]})
	}
	return groups
}

// trySparse runs the sparsity ladder: for each factor, carry forward at
// most factor partial solutions per group, widening the search only when
// a smaller factor dead-ends entirely (spec §4.4).
func (p *Problem) trySparse(fixed map[string]bool, debug *DebugInfo) (Assignment, bool) {
	groups := p.orderedGroups()
	if len(groups) == 0 {
		return nil, false
	}
	for _, factor := range sparsityLadder {
		if sol, ok := p.solveGroupsSparse(groups, fixed, factor, debug); ok {
			return sol, true
		}
	}
	return nil, false
}

func (p *Problem) solveGroupsSparse(groups []varGroup, fixed map[string]bool, factor int, debug *DebugInfo) (Assignment, bool) {
	solutionSpace := []map[string]any{{}}
	for name, val := range fixed {
		solutionSpace[0][name] = p.results[name]
		_ = val
	}

	for _, g := range groups {
		sampled := sampleUpTo(p.src, solutionSpace, factor)
		var next []map[string]any
		for _, partial := range sampled {
			sols := p.solveGroup(g, partial, debug)
			next = append(next, sols...)
		}
		if len(next) == 0 {
			return nil, false
		}
		solutionSpace = next
	}

	if len(solutionSpace) == 0 {
		return nil, false
	}
	pick := Choice(p.src, solutionSpace)
	return snapshot(pick), true
}

// perVariableLimit splits a group's total domain-size budget across n
// variables so that the product of their per-variable enumeration limits
// stays within total, rather than handing every variable the whole group
// budget as its own limit. Every variable gets the same limit, the floor
// of the n-th root of total; variables with larger domains do not get a
// larger share. Floors at 1 so every variable still gets at least one
// candidate.
func perVariableLimit(total, n int) int {
	if n <= 1 || total <= 1 {
		if total < 1 {
			return 1
		}
		return total
	}
	d := int(math.Pow(float64(total), 1.0/float64(n)))
	if d < 1 {
		d = 1
	}
	return d
}

// sampleUpTo returns at most n entries of space, chosen by shuffling a
// copy rather than truncating in place, matching the Python original's
// random.sample over the carried-forward solution space.
func sampleUpTo(src *Source, space []map[string]any, n int) []map[string]any {
	if len(space) <= n {
		return space
	}
	idx := make([]int, len(space))
	for i := range idx {
		idx[i] = i
	}
	Shuffle(src, idx)
	idx = idx[:n]
	out := make([]map[string]any, n)
	for i, j := range idx {
		out[i] = space[j]
	}
	return out
}

type sparseFrame struct {
	varIdx  int
	candIdx int
}

// solveGroup performs a non-recursive depth-first search over g's
// variables, extending partial with assignments that satisfy every
// multi-variable constraint whose variables become fully bound, and
// returns every complete extension found up to groupWidening results.
// The explicit-stack shape is grounded on the original engine's FDStore
// backtracking loop.
func (p *Problem) solveGroup(g varGroup, partial map[string]any, debug *DebugInfo) []map[string]any {
	maxDomain := p.tuning.MaxDomainSize
	if maxDomain <= 0 {
		maxDomain = 1000
	}

	perVar := perVariableLimit(maxDomain, len(g.vars))
	candidates := make([][]any, len(g.vars))
	for i, v := range g.vars {
		if val, ok := partial[v.Name]; ok {
			// Already bound in partial (a fixed value): keep it.
			candidates[i] = []any{val}
			continue
		}
		candidates[i] = v.Enumerate(p.src, perVar)
		if len(candidates[i]) == 0 {
			return nil
		}
		// Shuffle so that any valid combination of per-variable
		// candidates has non-zero probability of being reached first,
		// rather than the DFS always favoring the lexicographically
		// (declaration-order) first candidates (spec §4.4 step 2).
		Shuffle(p.src, candidates[i])
	}

	var results []map[string]any
	current := make(map[string]any, len(partial)+len(g.vars))
	for k, v := range partial {
		current[k] = v
	}

	stack := []sparseFrame{{varIdx: 0, candIdx: -1}}
	for len(stack) > 0 && len(results) < groupWidening {
		top := &stack[len(stack)-1]
		top.candIdx++
		if top.candIdx >= len(candidates[top.varIdx]) {
			// Exhausted this variable's candidates: undo its binding and
			// pop back to the parent frame.
			delete(current, g.vars[top.varIdx].Name)
			stack = stack[:len(stack)-1]
			continue
		}

		v := g.vars[top.varIdx]
		current[v.Name] = candidates[top.varIdx][top.candIdx]

		if failing := p.failingBoundConstraints(current); len(failing) > 0 {
			if debug != nil {
				debug.AddFailure(log.WithField("strategy", "sparse"), current, failing)
			}
			continue
		}

		if top.varIdx == len(g.vars)-1 {
			snap := make(map[string]any, len(current))
			for k, v := range current {
				snap[k] = v
			}
			results = append(results, snap)
			continue
		}

		stack = append(stack, sparseFrame{varIdx: top.varIdx + 1, candIdx: -1})
	}

	return results
}

// failingBoundConstraints checks only constraints whose variables are
// all present in candidate, the partial-evaluation rule that lets the
// group DFS prune as soon as a violated constraint's variables are bound
// rather than waiting for a complete assignment.
func (p *Problem) failingBoundConstraints(candidate map[string]any) []string {
	var failing []string
	for _, nc := range p.constraints {
		if !nc.allBound(candidate) {
			continue
		}
		ok, err := evalConstraint(nc.constraint.Tag, func() bool { return nc.constraint.Check(candidate) })
		if err != nil || !ok {
			failing = append(failing, nc.constraint.Tag)
		}
	}
	return failing
}
