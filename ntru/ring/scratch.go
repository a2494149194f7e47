package ring

import "fmt"

// Multiplier computes c = a*b mod (X^N-1) mod q for two dense polynomials.
// Three backends are provided (scalar, Karatsuba, lane-packed); all satisfy
// the identical contract in §4.E of the ring specification and may be
// swapped freely. A capability probe, not a build tag, chooses among them.
type Multiplier interface {
	// Name identifies the backend for diagnostics.
	Name() string

	// ScratchRequirements reports how many uint32 words of scratch this
	// backend needs for a ring of degree N, expressed as (polys, paddedN):
	// the caller must provide a scratch slice of at least polys*paddedN
	// words. paddedN >= N; any coefficients beyond N in an output buffer
	// sized to paddedN must be left zero.
	ScratchRequirements(N int) (polys, paddedN int)

	// Multiply computes c[k] = sum_i a[i]*b[(k-i) mod N] mod q for
	// k in [0,N). out and scratch may not alias a or b for the backends
	// in this package (aliasing a/b/scratch is only guaranteed for the
	// sparse multiplies in §4.C/§4.D).
	Multiply(a, b []uint16, N int, q uint32, scratch []uint32, out []uint16) error
}

// Backends lists every Multiplier implementation this package ships, in
// the order SelectMultiplier tries them.
func Backends() []Multiplier {
	return []Multiplier{
		vectorMultiplier{},
		karatsubaMultiplier{},
		scalarMultiplier{},
	}
}

// SelectMultiplier probes the available backends, preferring the most
// specialized one willing to handle a ring of degree N over q, and falls
// back to karatsubaMultiplier (which handles everything checkN/checkQ
// admit, so scalarMultiplier is never the one returned).
// This replaces the reference implementation's compile-time backend
// selection (ENV64BIT / ENV32BIT preprocessor macros) with a runtime
// capability probe, per the "re-architecture" guidance for the multiplier
// trait.
func SelectMultiplier(N int, q uint32) (Multiplier, error) {
	for _, m := range Backends() {
		if probeSupports(m, N, q) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("ring: no multiplier backend supports N=%d q=%d", N, q)
}

func probeSupports(m Multiplier, N int, q uint32) bool {
	switch m.(type) {
	case vectorMultiplier:
		// The lane-packed backend's masking cadence derivation assumes an
		// odd N (see backend_vector.go); the reference C comment
		// "ONLY WORKS FOR N ODD" is enforced here instead of silently
		// mis-packing the last lane. It also needs 2(q-1) < 2^16 so a
		// packed add can never carry from the low lane into the high one.
		return N%2 == 1 && q <= vectorMultiplierQBound
	default:
		return N > 0
	}
}

// MultiplyCoefficients computes c = a*b mod (X^N-1) mod q using the default
// backend (the one SelectMultiplier returns for this N and q). scratch must
// have length >= polys*paddedN per DefaultScratchRequirements(N, q).
func MultiplyCoefficients(a, b []uint16, N int, q uint32, scratch []uint32, out []uint16) error {
	m, err := SelectMultiplier(N, q)
	if err != nil {
		return err
	}
	return m.Multiply(a, b, N, q, scratch, out)
}

// DefaultScratchRequirements returns the scratch sizing the default backend
// (as chosen by SelectMultiplier) requires for a ring of degree N and
// modulus q.
func DefaultScratchRequirements(N int, q uint32) (polys, paddedN int, err error) {
	m, err := SelectMultiplier(N, q)
	if err != nil {
		return 0, 0, err
	}
	polys, paddedN = m.ScratchRequirements(N)
	return polys, paddedN, nil
}
