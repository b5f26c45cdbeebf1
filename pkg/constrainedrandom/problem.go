package constrainedrandom

import (
	"context"

	"github.com/google/uuid"
)

// SolverFlags enables or disables individual strategies in the fallback
// pipeline (spec §4.6, Python set_solver_mode).
type SolverFlags struct {
	EnableNaive    bool
	EnableSparse   bool
	EnableThorough bool
}

// DefaultSolverFlags enables every strategy, the pipeline's default mode.
func DefaultSolverFlags() SolverFlags {
	return SolverFlags{EnableNaive: true, EnableSparse: true, EnableThorough: true}
}

// Tuning holds the iteration and domain-size budgets that bound how hard
// each strategy will try before giving up, mirroring the Python
// original's max_iterations/max_domain_size (randobj.py, multivar.py).
type Tuning struct {
	MaxIterations int
	MaxDomainSize int
}

// DefaultTuning returns the budgets the Python original uses by default.
func DefaultTuning() Tuning {
	return Tuning{MaxIterations: 1000, MaxDomainSize: 1000}
}

// ConstraintAndVars pairs a temporary constraint with the variable names
// it ranges over, for one-off constraints passed to Randomize without
// being permanently registered on the Problem (spec §6, Python
// randomize(with_constraints=...)).
type ConstraintAndVars struct {
	Constraint MultiConstraint
	Vars       []string
}

// RandomizeOptions customizes a single Randomize call without mutating
// the Problem's permanent configuration.
type RandomizeOptions struct {
	WithConstraints []ConstraintAndVars
	WithValues      map[string]any
	Debug           bool
}

// Problem holds every random variable and multi-variable constraint for
// one randomization problem, and dispatches Randomize calls through the
// naive/sparse/thorough fallback pipeline. It intentionally does nothing
// beyond that dispatch and the external interface of spec §6: no
// debug-info pretty-printing beyond String(), no persistence.
type Problem struct {
	src *Source

	vars  map[string]*RandVar
	order []string // declaration order, for deterministic iteration

	constraints []namedConstraint

	flags  SolverFlags
	tuning Tuning

	results Assignment

	// PreRandomizeHook runs immediately before the solve pipeline on each
	// Randomize call; PostRandomizeHook runs after it only when a strategy
	// succeeds, never on a failed call. They are the Go rendering of the
	// Python RandObj.pre_randomize/post_randomize overridable no-ops
	// (randobj.py).
	PreRandomizeHook  func(*Problem)
	PostRandomizeHook func(*Problem)
}

// NewProblem creates an empty Problem driven by src. Every draw made
// while solving this Problem consumes src, so reusing the same *Source
// across Problems interleaves their random sequences; callers that need
// independent reproducibility should give each Problem its own Source.
func NewProblem(src *Source) *Problem {
	return &Problem{
		src:     src,
		vars:    make(map[string]*RandVar),
		results: make(Assignment),
		flags:   DefaultSolverFlags(),
		tuning:  DefaultTuning(),
	}
}

// AddVar declares a new random variable. Returns a *ConfigError on a
// duplicate name or an invalid spec.
func (p *Problem) AddVar(name string, spec VarSpec) error {
	if _, exists := p.vars[name]; exists {
		return &ConfigError{Msg: "duplicate variable name " + name}
	}
	v, err := NewRandVar(name, spec)
	if err != nil {
		return err
	}
	p.vars[name] = v
	p.order = append(p.order, name)
	if v.Initial != nil {
		p.results[name] = v.Initial
	}
	return nil
}

// AddConstraint registers a permanent multi-variable constraint. Returns
// a *ConfigError if any referenced name is unknown.
func (p *Problem) AddConstraint(pred MultiConstraint, vars []string) error {
	for _, name := range vars {
		if _, ok := p.vars[name]; !ok {
			return &ConfigError{Msg: "constraint references unknown variable " + name}
		}
	}
	p.constraints = append(p.constraints, namedConstraint{constraint: pred, vars: vars})
	return nil
}

// SetSolverMode toggles which strategies the fallback pipeline may use.
func (p *Problem) SetSolverMode(flags SolverFlags) {
	p.flags = flags
}

// SetTuning overrides the iteration and domain-size budgets.
func (p *Problem) SetTuning(t Tuning) {
	p.tuning = t
}

// GetResults returns the last successfully computed Assignment, or an
// empty Assignment if Randomize has never succeeded.
func (p *Problem) GetResults() Assignment {
	return p.results.Clone()
}

// Value returns one variable's last assigned value.
func (p *Problem) Value(name string) (any, bool) {
	v, ok := p.results[name]
	return v, ok
}

// Randomize runs the full solve pipeline: naive, then sparse, then
// thorough, stopping at the first strategy that produces a satisfying
// assignment, per spec §4.6/§5. ctx is checked only at the boundary
// between strategies, never mid-draw (spec §5).
func (p *Problem) Randomize(ctx context.Context, opts RandomizeOptions) (Assignment, error) {
	if p.PreRandomizeHook != nil {
		p.PreRandomizeHook(p)
	}

	runID := deterministicRunID(p.src)
	entry := log.WithField("run_id", runID.String())

	savedConstraints := p.constraints
	defer func() { p.constraints = savedConstraints }()
	for _, extra := range opts.WithConstraints {
		p.constraints = append(p.constraints, namedConstraint{constraint: extra.Constraint, vars: extra.Vars})
	}

	// WithValues is staged in a temporary overlay, not written into
	// p.results directly: a fixed value must not become observable via
	// GetResults/Value unless this Randomize call actually succeeds
	// (spec §3 "produced atomically — partial assignments are never
	// observable outside the solver").
	fixed := make(map[string]bool, len(opts.WithValues))
	staged := make(map[string]any, len(opts.WithValues))
	for name, val := range opts.WithValues {
		if _, ok := p.vars[name]; !ok {
			return nil, &ConfigError{Msg: "WithValues references unknown variable " + name}
		}
		fixed[name] = true
		staged[name] = val
	}
	savedResults := p.results
	workingResults := p.results.Clone()
	for name, val := range staged {
		workingResults[name] = val
	}
	p.results = workingResults
	committed := false
	defer func() {
		if !committed {
			p.results = savedResults
		}
	}()

	debug := NewDebugInfo(p.order, p.constraintTags(), opts.Debug)

	attempts := 0

	if p.flags.EnableNaive {
		entry.Info("strategy naive: entered")
		if ctxDone(ctx) {
			return nil, &DeadlineExceededError{Vars: p.order}
		}
		candidate := make(map[string]any, len(p.order))
		for name := range fixed {
			candidate[name] = p.results[name]
		}
		attempts++
		if sol, ok := p.tryNaive(fixed, candidate, debug); ok {
			entry.Info("strategy naive: succeeded")
			p.applyResults(sol)
			committed = true
			if p.PostRandomizeHook != nil {
				p.PostRandomizeHook(p)
			}
			return p.results.Clone(), nil
		}
		entry.Info("strategy naive: exhausted, falling through")
	}

	if p.flags.EnableSparse {
		if ctxDone(ctx) {
			return nil, &DeadlineExceededError{Vars: p.order}
		}
		entry.Info("strategy sparse: entered")
		attempts++
		if sol, ok := p.trySparse(fixed, debug); ok {
			entry.Info("strategy sparse: succeeded")
			p.applyResults(sol)
			committed = true
			if p.PostRandomizeHook != nil {
				p.PostRandomizeHook(p)
			}
			return p.results.Clone(), nil
		}
		entry.Info("strategy sparse: exhausted, falling through")
	}

	if p.flags.EnableThorough {
		if ctxDone(ctx) {
			return nil, &DeadlineExceededError{Vars: p.order}
		}
		entry.Info("strategy thorough: entered")
		attempts++
		if sol, ok := p.tryThorough(fixed, debug); ok {
			entry.Info("strategy thorough: succeeded")
			p.applyResults(sol)
			committed = true
			if p.PostRandomizeHook != nil {
				p.PostRandomizeHook(p)
			}
			return p.results.Clone(), nil
		}
		entry.Info("strategy thorough: exhausted")
	}

	return nil, &RandomizationError{Vars: p.order, Attempts: attempts, Debug: debug}
}

func (p *Problem) applyResults(sol Assignment) {
	for name, val := range sol {
		p.results[name] = val
	}
}

func (p *Problem) constraintTags() []string {
	tags := make([]string, 0, len(p.constraints))
	for _, c := range p.constraints {
		tags = append(tags, c.constraint.Tag)
	}
	return tags
}

// deterministicRunID builds a version-4-shaped UUID entirely from src's
// draws, so the same seed always produces the same RunID, rather than
// from crypto/rand or wall-clock entropy (SPEC_FULL §6).
func deterministicRunID(src *Source) uuid.UUID {
	var id uuid.UUID
	if src == nil {
		return id
	}
	for i := 0; i < 16; i += 4 {
		w := src.Uint32()
		id[i] = byte(w)
		id[i+1] = byte(w >> 8)
		id[i+2] = byte(w >> 16)
		id[i+3] = byte(w >> 24)
	}
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

func ctxDone(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
