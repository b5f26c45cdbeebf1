// Package constrainedrandom provides SystemVerilog-style declarative
// constrained randomization for hardware verification.
//
// Users declare random variables with domains and predicates; the solver
// produces concrete assignments that satisfy every predicate,
// deterministically from a seed. Three strategies compose in a fallback
// pipeline: a naive rejection sampler, a sparse graph-ordered explorer, and
// a thorough CSP enumerator.
//
// Version: 0.1.0
package constrainedrandom

// Version is the current version of the constrainedrandom module.
const Version = "0.1.0"
