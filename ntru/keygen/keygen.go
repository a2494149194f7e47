// Package keygen implements component G, the NTRUEncrypt key-generation
// pipeline (§4.G): it orchestrates the parameter catalog, IGF-2 index
// generation, sparse/dense ring convolution, and ring inversion to produce
// a (public, private) key pair, retrying internally whenever a sampled
// candidate is not invertible or fails its weight check.
package keygen

import (
	"errors"
	"fmt"

	"ntru-core/ntru"
	"ntru-core/ntru/drbg"
	"ntru-core/ntru/igf"
	"ntru-core/ntru/keys"
	"ntru-core/ntru/params"
	"ntru-core/ntru/ring"
	"ntru-core/ntru/weight"
)

// p is the small modulus NTRUEncrypt fixes throughout: f = 1 + p*F,
// h = p*g*f^-1 mod q.
const p = 3

// MaxRetries bounds keygen's internal retry loop (§5, §7: the reference
// leaves this unbounded; an implementation must pick a finite cap). 100
// attempts is far beyond the expected number: every catalog entry has
// no_bias_limit >= 0.5*2^c_bits and N >= 63, so a freshly sampled f fails
// to invert only rarely, and an exact-weight g is found on nearly every
// draw. See DESIGN.md for the reasoning behind this constant.
const MaxRetries = 100

// securityHashThreshold is the boundary in security-strength octets at or
// below which keygen uses SHA-1 for IGF-2/MGF-1 rather than SHA-256 (§4.G step 1,
// §6's "≤20-byte strength ⇒ SHA-1" rule).
const securityHashThreshold = 20

func hashAlgFor(rec params.ParamSet) igf.HashAlgID {
	if rec.SecStrengthOctets <= securityHashThreshold {
		return igf.SHA1
	}
	return igf.SHA256
}

// BlobLengths reports the public and private blob lengths KeyGen will
// produce for id, without running any cryptographic operation — the
// "query mode with null output pointers" the reference contract allows.
func BlobLengths(id params.ID) (pubLen, privLen int, err error) {
	rec, ok := params.LookupByID(id)
	if !ok {
		return 0, 0, fmt.Errorf("keygen: unknown parameter id %v: %w", id, ntru.ErrInvalidArgument)
	}
	return keys.PublicBlobLen(rec), keys.PrivateBlobLen(rec), nil
}

// scratch bundles every caller-owned buffer KeyGen needs, sized once per
// call and reused across retry attempts.
type scratch struct {
	used        []bool
	e0          []uint16
	fDense      []uint16
	gDense      []uint16
	finv        []uint16
	hDense      []uint16
	sparse32    []uint32
	sparse16    []uint16
	mulScratch  []uint32
	invScratch3 []uint32
	invScratch1 []uint16
	trits       []int
}

func newScratch(N int, q uint32) (*scratch, error) {
	mulPolys, mulPadN, err := ring.DefaultScratchRequirements(N, q)
	if err != nil {
		return nil, fmt.Errorf("keygen: %w", err)
	}
	e0 := make([]uint16, N)
	e0[0] = 1
	return &scratch{
		used:        make([]bool, N),
		e0:          e0,
		fDense:      make([]uint16, N),
		gDense:      make([]uint16, N),
		finv:        make([]uint16, N),
		hDense:      make([]uint16, N),
		sparse32:    make([]uint32, N),
		sparse16:    make([]uint16, 2*N),
		mulScratch:  make([]uint32, mulPolys*mulPadN),
		invScratch3: make([]uint32, ring.InvertScratch32Len(N)),
		invScratch1: make([]uint16, ring.InvertScratch16Len(N)),
		trits:       make([]int, N),
	}, nil
}

// KeyGen produces a (public, private) key pair for the parameter set id,
// drawing DRBG output through handle (§4.G). It retries internally, up to
// MaxRetries times, whenever a sampled f is not invertible or a sampled g
// misses its target weight, returning ErrKeygenExhausted only if every
// attempt fails.
func KeyGen(reg *drbg.Registry, handle drbg.Handle, id params.ID) (pub, priv []byte, err error) {
	pub, priv, _, err = KeyGenWithStats(reg, handle, id)
	return pub, priv, err
}

// KeyGenWithStats is KeyGen, additionally reporting how many draw-and-check
// attempts it took (1 on the common path; diagnostic tooling such as
// cmd/paramsweep uses this to characterize a parameter set's retry rate).
func KeyGenWithStats(reg *drbg.Registry, handle drbg.Handle, id params.ID) (pub, priv []byte, attempts int, err error) {
	rec, ok := params.LookupByID(id)
	if !ok {
		return nil, nil, 0, fmt.Errorf("keygen: unknown parameter id %v: %w", id, ntru.ErrInvalidArgument)
	}
	N := rec.N
	q := rec.Q
	hashAlg := hashAlgFor(rec)
	seedLen := rec.SecStrengthOctets + 8
	strengthBits := rec.SecStrengthOctets * 8
	d1, d2, d3 := rec.DFCounts()

	sc, err := newScratch(N, q)
	if err != nil {
		return nil, nil, 0, err
	}

	for attempt := 1; attempt <= MaxRetries; attempt++ {
		pubBlob, privBlob, retry, err := attemptKeyGen(reg, handle, rec, hashAlg, seedLen, strengthBits, d1, d2, d3, N, q, sc)
		if err != nil {
			return nil, nil, attempt, err
		}
		if !retry {
			return pubBlob, privBlob, attempt, nil
		}
	}
	return nil, nil, MaxRetries, fmt.Errorf("keygen: exceeded %d attempts for %v: %w", MaxRetries, id, ntru.ErrKeygenExhausted)
}

// attemptKeyGen runs one full draw-and-check cycle. retry is true when the
// draw should be discarded (f not invertible, or g misses its target
// weight) and err is nil; err is non-nil only for a hard failure (DRBG,
// invalid scratch sizing) that should abort KeyGen entirely.
func attemptKeyGen(
	reg *drbg.Registry, handle drbg.Handle, rec params.ParamSet, hashAlg igf.HashAlgID,
	seedLen, strengthBits, d1, d2, d3, N int, q uint32, sc *scratch,
) (pub, priv []byte, retry bool, err error) {
	seedF := make([]byte, seedLen)
	seedG := make([]byte, seedLen)
	if err := reg.GenerateWithTag(handle, strengthBits, []byte{0x00}, seedF); err != nil {
		return nil, nil, false, fmt.Errorf("keygen: drawing F's seed: %w", err)
	}
	if err := reg.GenerateWithTag(handle, strengthBits, []byte{0x01}, seedG); err != nil {
		return nil, nil, false, fmt.Errorf("keygen: drawing g's seed: %w", err)
	}

	var privIndices []uint16
	if rec.ProductForm {
		buf := make([]uint16, 2*(d1+d2+d3))
		pf, err := igf.GenerateProductIndices(igf.Config{
			Hash: hashAlg, Seed: seedF, N: N, CBits: rec.CBits,
			NoBiasLimit: rec.NoBiasLimit, MinHashCalls: rec.MinIGFHashCalls,
		}, d1, d2, d3, sc.used, buf)
		if err != nil {
			return nil, nil, false, fmt.Errorf("keygen: generating F: %w", err)
		}
		if err := ring.MultiplyProductIndices(sc.e0, pf, N, q, sc.sparse32, sc.sparse16, sc.fDense); err != nil {
			return nil, nil, false, fmt.Errorf("keygen: densifying F: %w", err)
		}
		privIndices = buf
	} else {
		buf := make([]uint16, 2*d1)
		idx, err := igf.GenerateIndices(igf.Config{
			Hash: hashAlg, Seed: seedF, N: N, CBits: rec.CBits,
			NoBiasLimit: rec.NoBiasLimit, MinHashCalls: rec.MinIGFHashCalls,
		}, d1, d1, sc.used, buf)
		if err != nil {
			return nil, nil, false, fmt.Errorf("keygen: generating F: %w", err)
		}
		if err := ring.MultiplyIndices(sc.e0, idx, N, q, sc.sparse32, sc.fDense); err != nil {
			return nil, nil, false, fmt.Errorf("keygen: densifying F: %w", err)
		}
		privIndices = buf
	}

	// f = 1 + p*F mod q.
	for i := 0; i < N; i++ {
		sc.fDense[i] = uint16((uint32(sc.e0[i]) + uint32(p)*uint32(sc.fDense[i])) % q)
	}

	if err := ring.Invert(sc.fDense, N, q, sc.invScratch3, sc.invScratch1, sc.finv); err != nil {
		if errors.Is(err, ntru.ErrNotInvertible) {
			return nil, nil, true, nil
		}
		return nil, nil, false, fmt.Errorf("keygen: inverting f: %w", err)
	}

	gBuf := make([]uint16, 2*rec.DG+1)
	gIdx, err := igf.GenerateIndices(igf.Config{
		Hash: hashAlg, Seed: seedG, N: N, CBits: rec.CBits,
		NoBiasLimit: rec.NoBiasLimit, MinHashCalls: rec.MinIGFHashCalls,
	}, rec.DG+1, rec.DG, sc.used, gBuf)
	if err != nil {
		return nil, nil, false, fmt.Errorf("keygen: generating g: %w", err)
	}
	if err := ring.MultiplyIndices(sc.e0, gIdx, N, q, sc.sparse32, sc.gDense); err != nil {
		return nil, nil, false, fmt.Errorf("keygen: densifying g: %w", err)
	}

	if !hasTargetWeight(sc.gDense, q, rec.DG+1, rec.DG, sc.trits) {
		return nil, nil, true, nil
	}

	// h = p*g*f^-1 mod q.
	if err := ring.MultiplyCoefficients(sc.gDense, sc.finv, N, q, sc.mulScratch, sc.hDense); err != nil {
		return nil, nil, false, fmt.Errorf("keygen: computing h: %w", err)
	}
	for i := range sc.hDense {
		sc.hDense[i] = uint16((uint32(sc.hDense[i]) * p) % q)
	}

	pub, err = keys.EncodePublic(rec, sc.hDense)
	if err != nil {
		return nil, nil, false, fmt.Errorf("keygen: encoding public blob: %w", err)
	}
	priv, err = keys.EncodePrivate(rec, privIndices)
	if err != nil {
		return nil, nil, false, fmt.Errorf("keygen: encoding private blob: %w", err)
	}
	return pub, priv, false, nil
}

// hasTargetWeight reports whether dense (a ring element whose only
// coefficients are 0, 1, or q-1) has exactly wantPlus entries equal to 1
// and wantMinus entries equal to q-1. trits is scratch of length
// len(dense), reused across calls.
func hasTargetWeight(dense []uint16, q uint32, wantPlus, wantMinus int, trits []int) bool {
	for i, v := range dense {
		switch {
		case v == 0:
			trits[i] = weight.Zero
		case v == 1:
			trits[i] = weight.Plus
		case uint32(v) == q-1:
			trits[i] = weight.Minus
		default:
			return false
		}
	}
	return weight.CheckTargetWeight(trits, wantPlus, wantMinus)
}
