package constrainedrandom

import "math"

// DomainKind tags which of the four domain shapes a Domain value carries.
// Dispatch on the tag inside sampling and enumeration, rather than an
// inheritance hierarchy (spec §9 Design Notes).
type DomainKind int

const (
	// DomainBits is integers in [0, 2^Width), sampled uniformly.
	DomainBits DomainKind = iota
	// DomainEnum is a finite ordered sequence of values, sampled uniformly.
	DomainEnum
	// DomainWeighted is a mapping from value-or-range to positive weight.
	DomainWeighted
	// DomainFunc is an opaque callable that produces a value.
	DomainFunc
)

// FuncDomain is invoked to produce a value. The callable is presumed to
// consume the shared Source for reproducibility; the engine offers no
// other guarantee about what it does (spec §3).
type FuncDomain func(src *Source, args []any) any

// Domain is a tagged variant over the four domain shapes described in
// spec §3: bit-width, enumerated list, weighted map, and opaque function.
type Domain struct {
	Kind DomainKind

	// DomainBits
	Width int

	// DomainEnum
	Values []any

	// DomainWeighted
	Weights []WeightedEntry

	// DomainFunc
	Fn     FuncDomain
	FnArgs []any
}

// NewBitsDomain builds a bit-width domain: integers in [0, 2^width).
func NewBitsDomain(width int) Domain {
	return Domain{Kind: DomainBits, Width: width}
}

// NewEnumDomain builds a finite enumerated domain, uniform over values.
func NewEnumDomain(values []any) Domain {
	return Domain{Kind: DomainEnum, Values: values}
}

// NewWeightedDomain builds a weighted domain from explicit entries.
func NewWeightedDomain(entries []WeightedEntry) Domain {
	return Domain{Kind: DomainWeighted, Weights: entries}
}

// NewFuncDomain builds an opaque-function domain.
func NewFuncDomain(fn FuncDomain, args ...any) Domain {
	return Domain{Kind: DomainFunc, Fn: fn, FnArgs: args}
}

// Size returns the domain's cardinality, or math.MaxInt64 to represent
// infinity for a Function domain (spec §3: "size() (possibly infinite for
// Function)").
func (d Domain) Size() int64 {
	switch d.Kind {
	case DomainBits:
		if d.Width >= 63 {
			return math.MaxInt64
		}
		return int64(1) << d.Width
	case DomainEnum:
		return int64(len(d.Values))
	case DomainWeighted:
		n := int64(0)
		for _, e := range d.Weights {
			if e.IsRange {
				n += int64(e.High - e.Low + 1)
			} else {
				n++
			}
		}
		return n
	case DomainFunc:
		return math.MaxInt64
	default:
		return 0
	}
}

// Sample draws one value from the domain without regard to constraints.
func (d Domain) Sample(src *Source) any {
	switch d.Kind {
	case DomainBits:
		if d.Width <= 0 {
			return 0
		}
		if d.Width >= 64 {
			return src.Uint64()
		}
		return int(src.boundedUint64(uint64(1) << d.Width))
	case DomainEnum:
		return Choice(src, d.Values)
	case DomainWeighted:
		entry := src.WeightedChoice(d.Weights)
		if entry.IsRange {
			return src.IntRange(entry.Low, entry.High)
		}
		return entry.Value
	case DomainFunc:
		return d.Fn(src, d.FnArgs)
	default:
		return nil
	}
}

// Enumerate returns up to limit distinct values from the domain. For
// finite domains with Size() <= limit it enumerates exhaustively; for
// larger or infinite domains, including Function domains, it samples
// limit candidates via Sample and de-duplicates, matching spec §4.2's
// "Domain resolution" rule — Function domains are sampled-and-filtered
// like any other large domain for general enumeration. The hard
// exclusion of Function domains is specific to the thorough strategy
// (spec §4.5) and is enforced there, not here.
func (d Domain) Enumerate(src *Source, limit int) []any {
	if limit <= 0 {
		return nil
	}
	switch d.Kind {
	case DomainFunc:
		return sampleDedup(d, src, limit)
	case DomainBits:
		size := d.Size()
		if size <= int64(limit) {
			out := make([]any, 0, size)
			for i := int64(0); i < size; i++ {
				out = append(out, int(i))
			}
			return out
		}
		return sampleDedup(d, src, limit)
	case DomainEnum:
		if len(d.Values) <= limit {
			out := make([]any, len(d.Values))
			copy(out, d.Values)
			return out
		}
		return sampleDedup(d, src, limit)
	case DomainWeighted:
		size := d.Size()
		if size <= int64(limit) {
			return enumerateWeighted(d)
		}
		return sampleDedup(d, src, limit)
	default:
		return nil
	}
}

func enumerateWeighted(d Domain) []any {
	out := make([]any, 0, d.Size())
	for _, e := range d.Weights {
		if e.IsRange {
			for v := e.Low; v <= e.High; v++ {
				out = append(out, v)
			}
		} else {
			out = append(out, e.Value)
		}
	}
	return out
}

func sampleDedup(d Domain, src *Source, limit int) []any {
	seen := make(map[any]bool, limit)
	out := make([]any, 0, limit)
	// Bounded retries: infinite domains or pathological collisions must
	// not spin forever.
	maxAttempts := limit * 20
	if maxAttempts < 100 {
		maxAttempts = 100
	}
	for attempt := 0; attempt < maxAttempts && len(out) < limit; attempt++ {
		v := d.Sample(src)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
