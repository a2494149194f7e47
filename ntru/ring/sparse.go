package ring

// MultiplyIndices computes c = a*b mod (X^N-1) mod q where b is a sparse
// trinary polynomial given in index form (§4.C): b has +1 at every index in
// idx.P and -1 at every index in idx.M, and 0 elsewhere. scratch must have
// length >= N; out must have length N.
//
// The accumulation follows the reference algorithm exactly: zero the
// accumulator, add a shifted-by-k copy of a for every k in M, negate
// the whole accumulator, then add a shifted-by-k copy of a for every k in
// P. Because each term added into any one accumulator slot is a single
// coefficient of a (already < q), up to floor(2^16/q) such terms can be
// summed before the slot risks exceeding 16 bits; this implementation
// masks each slot mod q after every addition instead, which is simpler and
// always correct, at the cost of the packed-lane speedup described in §4.E.
func MultiplyIndices(a []uint16, idx Indices, N int, q uint32, scratch []uint32, out []uint16) error {
	if err := checkN(N); err != nil {
		return err
	}
	if err := checkQ(q); err != nil {
		return err
	}
	if err := checkLen("a", len(a), N); err != nil {
		return err
	}
	if err := checkMinLen("scratch", len(scratch), N); err != nil {
		return err
	}
	if err := checkLen("out", len(out), N); err != nil {
		return err
	}

	mask := q - 1
	t := scratch[:N]
	for i := range t {
		t[i] = 0
	}

	for _, k := range idx.M {
		shift := int(k)
		for i := 0; i < N; i++ {
			pos := i + shift
			if pos >= N {
				pos -= N
			}
			t[pos] = (t[pos] + uint32(a[i])) & mask
		}
	}
	for i := range t {
		t[i] = (q - t[i]) & mask
	}
	for _, k := range idx.P {
		shift := int(k)
		for i := 0; i < N; i++ {
			pos := i + shift
			if pos >= N {
				pos -= N
			}
			t[pos] = (t[pos] + uint32(a[i])) & mask
		}
	}

	for i := 0; i < N; i++ {
		out[i] = uint16(t[i] & mask)
	}
	return nil
}

// MultiplyProductIndices computes c = a*(b1*b2+b3) mod (X^N-1) mod q where
// b1, b2, b3 are sparse trinary polynomials in index form (§4.D).
//
// scratch32 is the uint32 accumulator MultiplyIndices works in; it must
// have length >= N and is reused across all three constituent multiplies.
// scratch16 holds the two degree-N intermediate polynomials (a*b1*b2 and
// a*b3) that would otherwise need a hidden allocation; it must have length
// >= 2*N. out must have length N.
func MultiplyProductIndices(a []uint16, pf ProductIndices, N int, q uint32, scratch32 []uint32, scratch16 []uint16, out []uint16) error {
	if err := checkN(N); err != nil {
		return err
	}
	if err := checkQ(q); err != nil {
		return err
	}
	if err := checkLen("a", len(a), N); err != nil {
		return err
	}
	if err := checkMinLen("scratch32", len(scratch32), N); err != nil {
		return err
	}
	if err := checkMinLen("scratch16", len(scratch16), 2*N); err != nil {
		return err
	}
	if err := checkLen("out", len(out), N); err != nil {
		return err
	}

	t2 := scratch16[:N]
	t := scratch16[N : 2*N]

	// t2 <- a*b1
	if err := MultiplyIndices(a, pf.B1, N, q, scratch32, t2); err != nil {
		return err
	}
	// t2 <- t2*b2
	if err := MultiplyIndices(t2, pf.B2, N, q, scratch32, t2); err != nil {
		return err
	}
	// t <- a*b3
	if err := MultiplyIndices(a, pf.B3, N, q, scratch32, t); err != nil {
		return err
	}

	mask := q - 1
	for i := 0; i < N; i++ {
		out[i] = uint16((uint32(t2[i]) + uint32(t[i])) & mask)
	}
	return nil
}
