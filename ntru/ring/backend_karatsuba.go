package ring

// karatsubaBase is the degree at or below which karatsubaMultiplier falls
// back to the grade-school base case, per §4.E's "Karatsuba down to a
// grade-school base case for size <= ~38" option.
const karatsubaBase = 32

// karatsubaMultiplier computes the full (non-reduced) product via
// recursive Karatsuba splitting, then folds it modulo X^N-1 exactly like
// scalarMultiplier. Every coefficient is kept reduced mod q throughout the
// recursion (legal since Karatsuba's combine step is a ring identity and
// q is a power of two, so masking low bits after each add/sub is exact),
// which keeps intermediate values within uint32 regardless of N.
type karatsubaMultiplier struct{}

func (karatsubaMultiplier) Name() string { return "karatsuba" }

func (karatsubaMultiplier) ScratchRequirements(N int) (polys, paddedN int) {
	return 2, N
}

func (karatsubaMultiplier) Multiply(a, b []uint16, N int, q uint32, scratch []uint32, out []uint16) error {
	if err := checkN(N); err != nil {
		return err
	}
	if err := checkQ(q); err != nil {
		return err
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

	mask := q - 1
	av := make([]uint32, N)
	bv := make([]uint32, N)
	for i := 0; i < N; i++ {
		av[i] = uint32(a[i]) & mask
		bv[i] = uint32(b[i]) & mask
	}

	prod := karatsubaMul(av, bv, mask)
	t := scratch[:2*N]
	for i := range t {
		t[i] = 0
	}
	copy(t, prod)

	for i := 0; i < N; i++ {
		out[i] = uint16((t[i] + t[i+N]) & mask)
	}
	return nil
}

// karatsubaMul returns the degree-(len(a)+len(b)-2) product of a and b
// (length len(a)+len(b)-1), every coefficient reduced mod mask+1. a and b
// must have equal length.
func karatsubaMul(a, b []uint32, mask uint32) []uint32 {
	n := len(a)
	if n <= karatsubaBase {
		return schoolbookMul(a, b, mask)
	}
	m := n / 2
	aLo, aHi := a[:m], a[m:]
	bLo, bHi := b[:m], b[m:]

	z0 := karatsubaMul(aLo, bLo, mask)
	z2 := karatsubaMul(aHi, bHi, mask)

	sa := addPoly(aLo, aHi, mask)
	sb := addPoly(bLo, bHi, mask)
	z1 := karatsubaMul(sa, sb, mask)
	subInto(z1, z0, mask)
	subInto(z1, z2, mask)

	out := make([]uint32, 2*n-1)
	addAt(out, z0, 0, mask)
	addAt(out, z1, m, mask)
	addAt(out, z2, 2*m, mask)
	return out
}

func schoolbookMul(a, b []uint32, mask uint32) []uint32 {
	out := make([]uint32, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] = (out[i+j] + av*bv) & mask
		}
	}
	return out
}

func addPoly(a, b []uint32, mask uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = (av + bv) & mask
	}
	return out
}

func subInto(dst, src []uint32, mask uint32) {
	q := mask + 1
	for i, v := range src {
		dst[i] = (dst[i] + q - v) & mask
	}
}

func addAt(dst, src []uint32, offset int, mask uint32) {
	for i, v := range src {
		dst[offset+i] = (dst[offset+i] + v) & mask
	}
}
