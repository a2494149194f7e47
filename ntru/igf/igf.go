// Package igf implements IGF-2, the deterministic index-set polynomial
// generator (§4.B): a seed and a hashed MGF-1 byte stream are mapped, by
// rejection sampling, to one or more lists of pairwise distinct indices in
// [0, N).
//
// Every exported entry point is a pure function of its arguments: the same
// (hash id, seed, N, c_bits, no_bias_limit, min_hash_calls, requested list
// lengths) always produces the same output, and no package-level state is
// touched, so concurrent calls are safe as long as each supplies its own
// used-index scratch and output buffer.
package igf

import (
	"fmt"

	"ntru-core/ntru"
)

// Config bundles the tuning parameters a parameter-set record supplies to
// every IGF-2 call keygen makes (§4.G steps 3-4): which hash drives MGF-1,
// the seed, the ring degree, and the rejection-sampling knobs c_bits and
// no_bias_limit.
type Config struct {
	Hash         HashAlgID
	Seed         []byte
	N            int
	CBits        int
	NoBiasLimit  uint32
	MinHashCalls int
}

// Generate fills out with len(listLens) concatenated lists of pairwise
// distinct indices in [0, N): list i has length listLens[i]. used must have
// length >= N; it is cleared internally before each list and left zeroed
// on return. The bit stream feeding every list is the same MGF-1 run
// (§4.B step 1); only the used-index vector resets between lists. The same
// inputs always produce bitwise-identical output (§4.B's determinism
// requirement).
func Generate(cfg Config, listLens []int, used []bool, out []uint16) error {
	newHash, mdLen, err := cfg.Hash.newHash()
	if err != nil {
		return err
	}
	if cfg.N <= 0 {
		return fmt.Errorf("igf: N must be positive: %w", ntru.ErrInvalidArgument)
	}
	if cfg.CBits <= 0 || cfg.CBits > 32 {
		return fmt.Errorf("igf: c_bits must be in [1,32], got %d: %w", cfg.CBits, ntru.ErrInvalidArgument)
	}
	if len(used) < cfg.N {
		return fmt.Errorf("igf: used has length %d, want >= %d: %w", len(used), cfg.N, ntru.ErrInvalidArgument)
	}
	total := 0
	for _, ln := range listLens {
		if ln < 0 || ln > cfg.N {
			return fmt.Errorf("igf: list length %d out of range [0,%d]: %w", ln, cfg.N, ntru.ErrInvalidArgument)
		}
		total += ln
	}
	if len(out) != total {
		return fmt.Errorf("igf: out has length %d, want %d: %w", len(out), total, ntru.ErrInvalidArgument)
	}

	stream := newMGF1Stream(newHash, mdLen, cfg.Seed, cfg.MinHashCalls)

	bitPos := 0
	outIdx := 0
	n32 := uint32(cfg.N)
	for _, ln := range listLens {
		for i := 0; i < cfg.N; i++ {
			used[i] = false
		}
		count := 0
		for count < ln {
			stream.ensureBits(bitPos, cfg.CBits)
			cand := stream.readBits(bitPos, cfg.CBits)
			bitPos += cfg.CBits
			if cand >= cfg.NoBiasLimit {
				continue
			}
			idx := cand % n32
			if used[idx] {
				continue
			}
			used[idx] = true
			out[outIdx] = uint16(idx)
			outIdx++
			count++
		}
	}
	for i := 0; i < cfg.N; i++ {
		used[i] = false
	}
	return nil
}
