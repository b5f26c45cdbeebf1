package constrainedrandom

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// FailedAttempt records one rejected candidate assignment together with
// the constraints that rejected it, the unit the Python original's
// RandomizationFail captured (debug.py) to let a user see why a problem
// would not converge.
type FailedAttempt struct {
	Values      map[string]any
	FailingTags []string
}

// DebugInfo accumulates FailedAttempt records across every strategy that
// was tried for one Randomize call. Randomize always builds one on
// failure, per spec §4.6's "On universal failure... raise a...
// RandomizationDebugInfo value that records, at minimum:..." baseline —
// the retainAll flag (set from RandomizeOptions.Debug) only controls
// whether every attempt is kept or just the most recent one.
type DebugInfo struct {
	Vars        []string
	Constraints []string
	Attempts    []FailedAttempt
	Truncated   bool

	retainAll bool
}

// maxDebugAttempts caps retained failure records so a pathological
// problem with a huge iteration budget can't balloon memory usage
// (spec §9 "Debug info retention").
const maxDebugAttempts = 10000

// NewDebugInfo creates an empty DebugInfo for the given variables and
// constraint tags. When retainAll is false, AddFailure keeps only the
// most recent rejected candidate, the minimal diagnostic baseline
// Randomize builds unconditionally; when true, it retains every
// attempt up to maxDebugAttempts, the behavior RandomizeOptions.Debug
// opts into.
func NewDebugInfo(vars, constraintTags []string, retainAll bool) *DebugInfo {
	return &DebugInfo{Vars: vars, Constraints: constraintTags, retainAll: retainAll}
}

// AddFailure records one rejected candidate. log receives a structured
// entry at debug level so a caller that wires up logrus output can watch
// the solver's rejection trail live without inspecting DebugInfo after
// the fact.
func (d *DebugInfo) AddFailure(log *logrus.Entry, values map[string]any, failingTags []string) {
	attempt := FailedAttempt{Values: copyValues(values), FailingTags: failingTags}
	if !d.retainAll {
		// Minimal mode: keep only the latest rejected candidate rather
		// than growing without bound.
		d.Attempts = []FailedAttempt{attempt}
	} else if len(d.Attempts) >= maxDebugAttempts {
		d.Truncated = true
	} else {
		d.Attempts = append(d.Attempts, attempt)
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"values":  values,
			"failing": failingTags,
		}).Debug("candidate rejected")
	}
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

func (d *DebugInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "randomization failed for vars %v with constraints %v\n", d.Vars, d.Constraints)
	fmt.Fprintf(&b, "%d failing attempts recorded", len(d.Attempts))
	if d.Truncated {
		fmt.Fprintf(&b, " (truncated at %d)", maxDebugAttempts)
	}
	b.WriteString(":\n")
	for i, a := range d.Attempts {
		fmt.Fprintf(&b, "  [%d] values=%v failing=%v\n", i, a.Values, a.FailingTags)
	}
	return b.String()
}
