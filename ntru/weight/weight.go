// Package weight checks the Hamming-style weight of a trinary sequence
// against the target counts keygen expects from a generated g (§4.G step 7,
// §8 scenario 5).
package weight

import (
	"fmt"

	"ntru-core/ntru"
)

// Trit values as they appear in a ring-element sequence: 0 for a zero
// coefficient, 1 for -1, 2 for +1 — the convention the reference weight
// check uses for ringels.
const (
	Zero  = 0
	Minus = 1
	Plus  = 2
)

// CheckMinWeight reports whether seq (a sequence of trit values in
// {Zero, Minus, Plus}) has at least threshold occurrences of every one of
// the three symbols. This mirrors the reference weight check exactly: it
// counts all three buckets in one pass and requires each to clear the
// threshold, not just the nonzero ones.
func CheckMinWeight(seq []int, threshold int) (bool, error) {
	if threshold < 0 {
		return false, fmt.Errorf("weight: threshold must be >= 0: %w", ntru.ErrInvalidArgument)
	}
	var wt [3]int
	for _, v := range seq {
		if v < 0 || v > 2 {
			return false, fmt.Errorf("weight: trit value %d out of range [0,2]: %w", v, ntru.ErrInvalidArgument)
		}
		wt[v]++
	}
	return wt[Zero] >= threshold && wt[Minus] >= threshold && wt[Plus] >= threshold, nil
}

// CheckTargetWeight reports whether seq has exactly wantPlus occurrences of
// Plus, exactly wantMinus occurrences of Minus, and Zero everywhere else —
// the exact-weight verification keygen runs on a freshly sampled g before
// accepting it (§4.G step 7).
func CheckTargetWeight(seq []int, wantPlus, wantMinus int) bool {
	var wt [3]int
	for _, v := range seq {
		if v < 0 || v > 2 {
			return false
		}
		wt[v]++
	}
	return wt[Plus] == wantPlus && wt[Minus] == wantMinus && wt[Zero] == len(seq)-wantPlus-wantMinus
}
