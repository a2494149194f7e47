package ring

import (
	"fmt"

	"ntru-core/ntru"
)

// InvertScratch32Len returns the length of the uint32 scratch Invert needs
// for a ring of degree N: four degree-(N+1) bit trackers for the mod-2
// almost-inverse stage (f, g, b, c) plus a degree-2N convolution buffer
// reused by every Newton-lifting step.
func InvertScratch32Len(N int) int {
	return 4*(N+1) + 2*N
}

// InvertScratch16Len returns the length of the uint16 scratch Invert needs:
// two degree-N working polynomials carried across the Newton iterations.
func InvertScratch16Len(N int) int {
	return 2 * N
}

// Invert computes out = a^-1 mod q in R_q = (Z/qZ)[X]/(X^N-1), for q a
// power of two with 8 < bits(q) <= 16 (§4.F).
//
// The inverse is built in two stages. First, the mod-2 "almost inverse"
// extended Euclidean algorithm finds b, k such that a*b = X^k (mod 2,
// mod X^N-1); rotating b by -k gives a's inverse mod 2. That inverse is
// then lifted to mod q by Newton's iteration b_{i+1} = b_i*(2 - a*b_i),
// which doubles the number of correct bits each step: starting from
// precision 2^1 (mod 2), four applications reach 2^16, comfortably past
// any q this package accepts. The final result is reduced mod q, which is
// exact because q divides 2^16.
//
// Returns ntru.ErrNotInvertible if a shares a nontrivial factor with
// X^N-1 over GF(2) (a is then not invertible mod 2, hence not mod q
// either).
func Invert(a []uint16, N int, q uint32, scratch32 []uint32, scratch16 []uint16, out []uint16) error {
	if err := checkN(N); err != nil {
		return err
	}
	if err := checkQ(q); err != nil {
		return err
	}
	if err := checkLen("a", len(a), N); err != nil {
		return err
	}
	if err := checkMinLen("scratch32", len(scratch32), InvertScratch32Len(N)); err != nil {
		return err
	}
	if err := checkMinLen("scratch16", len(scratch16), InvertScratch16Len(N)); err != nil {
		return err
	}
	if err := checkLen("out", len(out), N); err != nil {
		return err
	}

	conv := scratch32[4*(N+1) : 4*(N+1)+2*N]

	bCur := scratch16[0:N]
	if !invertMod2(a, N, scratch32[:4*(N+1)], bCur) {
		return fmt.Errorf("ring: a shares a factor with X^%d-1 over GF(2): %w", N, ntru.ErrNotInvertible)
	}

	tmp := scratch16[N : 2*N]
	modulus := uint32(2)
	for step := 0; step < 4 && modulus < 0x10000; step++ {
		modulus *= modulus
		if err := liftNewtonStep(a, bCur, N, modulus, conv, tmp); err != nil {
			return err
		}
	}

	mask := q - 1
	for i := 0; i < N; i++ {
		out[i] = bCur[i] & uint16(mask)
	}
	return nil
}

// invertMod2 computes the inverse of a mod 2 in GF(2)[X]/(X^N-1) via the
// almost-inverse variant of extended Euclid described in §4.F.1, writing
// the result (each entry 0 or 1) into out. Returns false if a has a
// nontrivial common factor with X^N-1 over GF(2).
//
// scratch must have length >= 4*(N+1): four degree-(N+1) bit trackers
// f, g, b, c. f starts as a mod 2, g as X^N-1 (bits at 0 and N); b starts
// at 1, c at 0. Each iteration either shifts f right (tallying the shift
// in k and shifting c left to match) or, once f's constant term is
// nonzero, folds the smaller-degree tracker into the larger one (f ^= g,
// b ^= c) until f reaches degree 0. The final inverse is b rotated left
// by k places.
func invertMod2(a []uint16, N int, scratch []uint32, out []uint16) bool {
	f := scratch[0 : N+1]
	g := scratch[N+1 : 2*(N+1)]
	b := scratch[2*(N+1) : 3*(N+1)]
	c := scratch[3*(N+1) : 4*(N+1)]

	for i := range f {
		f[i] = 0
	}
	for i := 0; i < N; i++ {
		f[i] = uint32(a[i]) & 1
	}
	for i := range g {
		g[i] = 0
	}
	g[0] = 1
	g[N] = 1
	for i := range b {
		b[i] = 0
	}
	b[0] = 1
	for i := range c {
		c[i] = 0
	}

	degF := degreeOf(f)
	degG := N
	k := 0

	if degF < 0 {
		return false
	}

	for {
		for degF > 0 && f[0] == 0 {
			copy(f, f[1:])
			f[len(f)-1] = 0
			copy(c[1:], c[:len(c)-1])
			c[0] = 0
			k++
			degF--
		}
		if degF == 0 && f[0] == 0 {
			return false
		}
		if degF == 0 {
			break
		}
		if degF < degG {
			f, g = g, f
			degF, degG = degG, degF
			b, c = c, b
		}
		for i := 0; i <= degF; i++ {
			f[i] ^= g[i]
		}
		for i := range b {
			b[i] ^= c[i]
		}
		degF = degreeOf(f)
		if degF < 0 {
			return false
		}
	}

	k %= N
	for i := range out {
		out[i] = 0
	}
	for i := 0; i < N; i++ {
		j := i - k
		if j < 0 {
			j += N
		}
		out[j] = uint16(b[i])
	}
	return true
}

// liftNewtonStep replaces bCur in place with bCur*(2 - a*bCur) mod modulus,
// where modulus is a power of two no larger than 2^16. tmp must have
// length N; conv must have length >= 2*N.
func liftNewtonStep(a, bCur []uint16, N int, modulus uint32, conv []uint32, tmp []uint16) error {
	mask := modulus - 1
	if err := mulModPow2(a, bCur, N, mask, conv, tmp); err != nil {
		return err
	}
	// tmp currently holds a*bCur; turn it into the constant polynomial 2
	// minus that product, not "2 minus each coefficient".
	for i := 1; i < N; i++ {
		tmp[i] = uint16((modulus - uint32(tmp[i])) & mask)
	}
	tmp[0] = uint16((2 - uint32(tmp[0])) & mask)
	return mulModPow2(bCur, tmp, N, mask, conv, bCur)
}

// mulModPow2 computes out = a*b mod (X^N-1) mod (mask+1), a grade-school
// convolution reduced modulo a power of two that need not satisfy the
// 8 < bits(q) <= 16 constraint the Multiplier backends enforce (Newton
// lifting runs at intermediate precisions as low as 2^2). conv must have
// length >= 2*N; out may alias bCur.
func mulModPow2(a, b []uint16, N int, mask uint32, conv []uint32, out []uint16) error {
	if len(conv) < 2*N {
		return fmt.Errorf("ring: newton-lift scratch too small: %w", ntru.ErrInvalidArgument)
	}
	t := conv[:2*N]
	for i := range t {
		t[i] = 0
	}
	for i := 0; i < N; i++ {
		ai := uint32(a[i]) & mask
		if ai == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			t[i+j] += ai * (uint32(b[j]) & mask)
		}
	}
	for i := 0; i < N; i++ {
		out[i] = uint16((t[i] + t[i+N]) & mask)
	}
	return nil
}

// degreeOf returns the index of the highest nonzero entry in p, or -1 if p
// is identically zero.
func degreeOf(p []uint32) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}
