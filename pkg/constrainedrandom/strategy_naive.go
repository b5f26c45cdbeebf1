package constrainedrandom

// tryNaive draws every variable independently (RandVar.Draw already
// enforces each variable's own scalar/list constraints) and rechecks the
// full candidate against every multi-variable constraint, redrawing only
// the variables those constraints reference on failure. This mirrors the
// Python original's RandObj.randomize "quick naive loop" (randobj.py)
// built directly on top of per-variable constraint.Problem solving
// (internal/randvar.py randomize_once), rather than the original FD
// propagation, since constrainedrandom constraints are opaque booleans
// with nothing to propagate through.
func (p *Problem) tryNaive(fixed map[string]bool, candidate map[string]any, debug *DebugInfo) (Assignment, bool) {
	maxIter := p.tuning.MaxIterations
	if maxIter <= 0 {
		maxIter = 1000
	}

	constrained := p.varsReferencedByMultiConstraints()

	for attempt := 0; attempt < maxIter; attempt++ {
		ok := true
		for _, name := range p.order {
			if fixed[name] {
				continue
			}
			if _, drawn := candidate[name]; drawn && !constrained[name] {
				// Already drawn once and not implicated in any
				// multi-variable constraint: no reason to redraw it.
				continue
			}
			v := p.vars[name]
			val, drawOK := v.Draw(p.src)
			if !drawOK {
				ok = false
				break
			}
			candidate[name] = val
		}
		if !ok {
			continue
		}

		failing := p.failingConstraints(candidate)
		if len(failing) == 0 {
			return snapshot(candidate), true
		}
		if debug != nil {
			debug.AddFailure(log.WithField("strategy", "naive"), candidate, failing)
		}
	}
	return nil, false
}

func (p *Problem) varsReferencedByMultiConstraints() map[string]bool {
	out := make(map[string]bool)
	for _, nc := range p.constraints {
		for _, v := range nc.vars {
			out[v] = true
		}
	}
	return out
}

// failingConstraints returns the tags of every multi-variable constraint
// whose referenced variables are all bound in candidate but whose Check
// returns false.
func (p *Problem) failingConstraints(candidate map[string]any) []string {
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

func snapshot(candidate map[string]any) Assignment {
	out := make(Assignment, len(candidate))
	for k, v := range candidate {
		out[k] = v
	}
	return out
}
