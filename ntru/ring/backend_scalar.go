package ring

// scalarMultiplier is the grade-school negacyclic-free backend: compute the
// full degree-(2N-2) product into scratch, then fold t[i+N] into t[i].
// It is the reference backend every other one is checked against.
type scalarMultiplier struct{}

func (scalarMultiplier) Name() string { return "scalar" }

func (scalarMultiplier) ScratchRequirements(N int) (polys, paddedN int) {
	return 2, N
}

func (scalarMultiplier) Multiply(a, b []uint16, N int, q uint32, scratch []uint32, out []uint16) error {
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

	t := scratch[:2*N]
	for i := range t {
		t[i] = 0
	}
	for i := 0; i < N; i++ {
		ai := uint32(a[i])
		if ai == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			t[i+j] += ai * uint32(b[j])
		}
	}
	mask := q - 1
	for i := 0; i < N; i++ {
		out[i] = uint16((t[i] + t[i+N]) & mask)
	}
	return nil
}
