package dice

import "math/rand"

// Uniform samples integers with equal probability from a resolved inclusive
// interval. Each Sample call is independent.
type Uniform struct {
	lo int64
	hi int64
}

// Bounds returns the resolved inclusive endpoints. Callers guarding against
// oversized untrusted rolls inspect the upper bound before evaluating.
func (u Uniform) Bounds() (lo, hi int64) {
	return u.lo, u.hi
}

// Sample draws one value from the injected generator. An empty interval
// collapses to the lower bound.
func (u Uniform) Sample(rng *rand.Rand) int64 {
	span := u.hi - u.lo + 1
	if span <= 0 {
		return u.lo
	}
	return u.lo + rng.Int63n(span)
}

// Range is any bounded-or-partially-bounded interval that can resolve itself
// into a uniform sampling distribution.
type Range interface {
	Uniform() Uniform
}

// Closed is an interval including both endpoints, the conventional 1..sides
// shape of a die.
type Closed struct {
	Lo int64
	Hi int64
}

// Uniform resolves the closed interval; both endpoints stay inclusive.
func (r Closed) Uniform() Uniform {
	return Uniform{lo: r.Lo, hi: r.Hi}
}

// HalfOpen is an interval excluding its upper endpoint.
type HalfOpen struct {
	Lo int64
	Hi int64
}

// Uniform resolves the half-open interval; the exclusive end is preserved.
func (r HalfOpen) Uniform() Uniform {
	return Uniform{lo: r.Lo, hi: r.Hi - 1}
}

// From is an interval with no upper bound. The missing endpoint resolves to
// zero and is treated as inclusive, mirroring how an unbounded lower end
// would resolve. A From range with Lo > 0 therefore collapses to Lo.
type From struct {
	Lo int64
}

// Uniform resolves the unbounded end to an inclusive zero.
func (r From) Uniform() Uniform {
	return Uniform{lo: r.Lo, hi: 0}
}
