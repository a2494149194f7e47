package ring

import (
	"fmt"

	"ntru-core/ntru"
)

// vectorMultiplierQBound is the largest q this backend can pack two lanes
// for. Each lane holds a value in [0,q); summing two such lanes before the
// per-step remask can reach 2(q-1), which must stay below 2^16 or the
// carry out of the low lane corrupts the high lane. That requires
// q <= 2^15.
const vectorMultiplierQBound = 1 << 15

// vectorMultiplier is the lane-packed "SIMD grade-school" backend from
// §4.E: two adjacent output positions are advanced with a single packed
// uint32 addition instead of two separate additions.
//
// Unlike §4.C's sparse multiply — where the accumulated term is a single
// already-reduced coefficient a[i] (< q), so a run of up to floor(2^16/q)
// terms can be summed before a lane needs remasking — a dense term here is
// the product a[i]*b[j], reduced mod q before packing. Packing two such
// terms into one uint32 and adding them to the two running partial sums in
// a single instruction is only safe while 2(q-1) fits under 2^16: above
// that bound a carry out of the low lane would corrupt the high lane, so
// this backend declines N or q it cannot pack safely (see probeSupports)
// and the caller falls back to karatsubaMultiplier or scalarMultiplier.
type vectorMultiplier struct{}

func (vectorMultiplier) Name() string { return "vector" }

func (vectorMultiplier) ScratchRequirements(N int) (polys, paddedN int) {
	return 2, N
}

func (vectorMultiplier) Multiply(a, b []uint16, N int, q uint32, scratch []uint32, out []uint16) error {
	if err := checkN(N); err != nil {
		return err
	}
	if err := checkQ(q); err != nil {
		return err
	}
	if N%2 == 0 {
		return fmt.Errorf("ring: vector backend requires odd N, got %d: %w", N, ntru.ErrInvalidArgument)
	}
	if q > vectorMultiplierQBound {
		return fmt.Errorf("ring: vector backend requires q <= %d, got %d: %w", vectorMultiplierQBound, q, ntru.ErrInvalidArgument)
	}
	if err := checkLen("a", len(a), N); err != nil {
		return err
	}
	if err := checkLen("b", len(b), N); err != nil {
		return err
	}
	if err := checkMinLen("scratch", len(scratch), 2*N); err != nil {
		return err
	}
	if err := checkLen("out", len(out), N); err != nil {
		return err
	}

	t := scratch[:2*N]
	for i := range t {
		t[i] = 0
	}

	for i := 0; i < N; i++ {
		ai := uint32(a[i])
		if ai == 0 {
			continue
		}
		j := 0
		for ; j+1 < N; j += 2 {
			pos := i + j
			term0 := (ai * uint32(b[j])) % q
			term1 := (ai * uint32(b[j+1])) % q
			packedTerm := term0 | (term1 << 16)
			packedAcc := t[pos] | (t[pos+1] << 16)
			packedAcc += packedTerm
			t[pos] = packedAcc & 0xFFFF % q
			t[pos+1] = (packedAcc >> 16) % q
		}
		if j < N {
			pos := i + j
			t[pos] = (t[pos] + (ai*uint32(b[j]))%q) % q
		}
	}

	for i := 0; i < N; i++ {
		out[i] = uint16((t[i] + t[i+N]) % q)
	}
	return nil
}
