package ring

import (
	"errors"
	"reflect"
	"testing"

	"ntru-core/ntru"
)

// TestInvertMod2Vector exercises the mod-2 almost-inverse stage alone by
// calling invertMod2 directly on the literal vector from §8 scenario 4.
func TestInvertMod2Vector(t *testing.T) {
	a := []uint16{1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1}
	scratch32 := make([]uint32, 4*(testN+1))
	got := make([]uint16, testN)

	// q=2 fails checkQ's bits(q) > 8 requirement, so exercise the mod-2
	// stage directly via invertMod2 rather than the full Invert entry
	// point (which targets q in the catalog's real range).
	if !invertMod2(a, testN, scratch32, got) {
		t.Fatalf("expected a to be invertible mod 2")
	}
	want := []uint16{1, 1, 1, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	a2 := append([]uint16(nil), a...)
	a2[0] = 0
	if invertMod2(a2, testN, scratch32, got) {
		t.Fatalf("expected a2 (even constant term) to be non-invertible")
	}

	b := []uint16{1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	if invertMod2(b, testN, scratch32, got) {
		t.Fatalf("expected b (factor of X^17-1) to be non-invertible")
	}
}

func TestInvertRoundTrip(t *testing.T) {
	const N = 17
	const q = 2048
	a := make([]uint16, N)
	for i := range a {
		a[i] = testA[i] % q
	}
	a[0] |= 1 // guarantee a(1) parity doesn't make it trivially non-invertible

	scratch32 := make([]uint32, InvertScratch32Len(N))
	scratch16 := make([]uint16, InvertScratch16Len(N))
	inv := make([]uint16, N)
	if err := Invert(a, N, q, scratch32, scratch16, inv); err != nil {
		t.Fatalf("Invert: %v", err)
	}

	prod := make([]uint16, N)
	convScratch := make([]uint32, 2*N)
	if err := MultiplyCoefficients(a, inv, N, q, convScratch, prod); err != nil {
		t.Fatalf("MultiplyCoefficients: %v", err)
	}
	if prod[0] != 1 {
		t.Fatalf("a*a^-1[0] = %d, want 1", prod[0])
	}
	for i := 1; i < N; i++ {
		if prod[i] != 0 {
			t.Fatalf("a*a^-1[%d] = %d, want 0", i, prod[i])
		}
	}
}

func TestInvertScratchTooSmall(t *testing.T) {
	a := make([]uint16, testN)
	a[0] = 1
	out := make([]uint16, testN)
	err := Invert(a, testN, 2048, make([]uint32, InvertScratch32Len(testN)-1), make([]uint16, InvertScratch16Len(testN)), out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
