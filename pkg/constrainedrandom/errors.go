package constrainedrandom

import "fmt"

// ConfigError is returned by AddVar/AddConstraint when a problem is
// misconfigured: duplicate names, incompatible VarSpec fields, or a
// constraint referencing an unknown variable (spec §7).
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "constrainedrandom: " + e.Msg
}

// RandomizationError is returned by Problem.Randomize when no
// strategy in the fallback pipeline could find an assignment satisfying
// every constraint before exhausting its iteration budget (spec §5, §7).
type RandomizationError struct {
	// Vars lists the names of the random variables involved in the failed
	// problem, in declaration order.
	Vars []string
	// Attempts is the number of strategies in the fallback pipeline that
	// were tried (one per enabled strategy), not the number of candidate
	// assignments drawn.
	Attempts int
	// Debug carries failing-attempt diagnostics for this Randomize call.
	// It is never nil on a RandomizationError: by default it retains
	// only the single most recent rejected candidate across all
	// strategies, so an earlier strategy's last rejection is not kept;
	// it retains every attempt (up to a cap) only when
	// RandomizeOptions.Debug was set.
	Debug *DebugInfo
}

func (e *RandomizationError) Error() string {
	return fmt.Sprintf("constrainedrandom: failed to randomize %v after %d attempts", e.Vars, e.Attempts)
}

// ErrNoSolution reports that no assignment satisfies all constraints.
// Randomize does not return or wrap it: an exhausted pipeline always
// surfaces as a *RandomizationError, whether or not the thorough
// strategy searched the whole space.
var ErrNoSolution = fmt.Errorf("constrainedrandom: no assignment satisfies all constraints")

// DeadlineExceededError wraps a context deadline that fired between
// strategy attempts. The solver never checks the deadline mid-draw, only
// at attempt boundaries (spec §5 "Cancellation / deadlines").
type DeadlineExceededError struct {
	Vars []string
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("constrainedrandom: deadline exceeded randomizing %v", e.Vars)
}
