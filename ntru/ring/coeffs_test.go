package ring

import (
	"errors"
	"reflect"
	"testing"

	"ntru-core/ntru"
)

var testB = []uint16{
	5266, 35261, 54826, 45380, 46459, 46509, 56767, 46916, 33670,
	11921, 46519, 47628, 20388, 4167, 39405, 2712, 52748,
}

var wantDenseProduct = []uint16{
	30101, 45125, 62370, 2275, 34473, 7074, 62574, 57665, 5199,
	4482, 49487, 17159, 33125, 11061, 19328, 22268, 46230,
}

func TestMultiplyCoefficientsEveryBackend(t *testing.T) {
	// The literal test vector uses q = 2^16, which vectorMultiplier
	// declines (see TestVectorBackendRejectsLargeQ) since it cannot pack
	// two full-width lanes without cross-lane carry at that modulus.
	backends := []Multiplier{scalarMultiplier{}, karatsubaMultiplier{}}
	for _, m := range backends {
		t.Run(m.Name(), func(t *testing.T) {
			polys, paddedN := m.ScratchRequirements(testN)
			scratch := make([]uint32, polys*paddedN)
			out := make([]uint16, testN)
			if err := m.Multiply(testA, testB, testN, testQ, scratch, out); err != nil {
				t.Fatalf("%s: %v", m.Name(), err)
			}
			if !reflect.DeepEqual(out, wantDenseProduct) {
				t.Fatalf("%s: got %v, want %v", m.Name(), out, wantDenseProduct)
			}
		})
	}
}

func TestVectorBackendMatchesScalarAtSmallQ(t *testing.T) {
	const q = 2048
	a := make([]uint16, testN)
	b := make([]uint16, testN)
	for i := range a {
		a[i] = testA[i] % q
		b[i] = testB[i] % q
	}

	vec := vectorMultiplier{}
	polys, paddedN := vec.ScratchRequirements(testN)
	vecOut := make([]uint16, testN)
	if err := vec.Multiply(a, b, testN, q, make([]uint32, polys*paddedN), vecOut); err != nil {
		t.Fatalf("vector: %v", err)
	}

	want := []uint16{
		1429, 69, 930, 227, 1705, 930, 1134, 321, 1103, 386, 335, 775, 357, 821, 896, 1788, 1174,
	}
	if !reflect.DeepEqual(vecOut, want) {
		t.Fatalf("vector backend got %v, want %v", vecOut, want)
	}

	scalar := scalarMultiplier{}
	scalarOut := make([]uint16, testN)
	if err := scalar.Multiply(a, b, testN, q, make([]uint32, 2*testN), scalarOut); err != nil {
		t.Fatalf("scalar: %v", err)
	}
	if !reflect.DeepEqual(vecOut, scalarOut) {
		t.Fatalf("vector %v != scalar %v", vecOut, scalarOut)
	}
}

func TestMultiplyCoefficientsCommutative(t *testing.T) {
	scratch := make([]uint32, 2*testN)
	ab := make([]uint16, testN)
	ba := make([]uint16, testN)
	if err := MultiplyCoefficients(testA, testB, testN, testQ, scratch, ab); err != nil {
		t.Fatal(err)
	}
	if err := MultiplyCoefficients(testB, testA, testN, testQ, scratch, ba); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ab, ba) {
		t.Fatalf("multiply not commutative: %v != %v", ab, ba)
	}
}

func TestVectorBackendRejectsEvenN(t *testing.T) {
	m := vectorMultiplier{}
	a := make([]uint16, 4)
	b := make([]uint16, 4)
	out := make([]uint16, 4)
	scratch := make([]uint32, 8)
	err := m.Multiply(a, b, 4, 2048, scratch, out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for even N, got %v", err)
	}
}

func TestVectorBackendRejectsLargeQ(t *testing.T) {
	m := vectorMultiplier{}
	a := make([]uint16, testN)
	b := make([]uint16, testN)
	out := make([]uint16, testN)
	scratch := make([]uint32, 2*testN)
	err := m.Multiply(a, b, testN, 1<<16, scratch, out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for q above bound, got %v", err)
	}
}

func TestSelectMultiplierFallsBackToKaratsubaForLargeQ(t *testing.T) {
	m, err := SelectMultiplier(testN, 1<<16)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "karatsuba" {
		t.Fatalf("expected karatsuba for odd N with q above the vector bound, got %s", m.Name())
	}
}

func TestSelectMultiplierPrefersVectorWhenEligible(t *testing.T) {
	m, err := SelectMultiplier(testN, 2048)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "vector" {
		t.Fatalf("expected vector backend for eligible N/q, got %s", m.Name())
	}
}

func TestMultiplyCoefficientsScratchOneBelowMinimumRejected(t *testing.T) {
	polys, paddedN := scalarMultiplier{}.ScratchRequirements(testN)
	min := polys * paddedN
	out := make([]uint16, testN)
	err := scalarMultiplier{}.Multiply(testA, testB, testN, testQ, make([]uint32, min-1), out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	// Exactly the minimum must succeed.
	if err := (scalarMultiplier{}).Multiply(testA, testB, testN, testQ, make([]uint32, min), out); err != nil {
		t.Fatalf("scratch at exact minimum should succeed: %v", err)
	}
}
