package ring

import (
	"errors"
	"reflect"
	"testing"

	"ntru-core/ntru"
)

var testA = []uint16{
	36486, 20395, 8746, 16637, 26195, 1654, 24222, 13306, 9573,
	26946, 29106, 2401, 32146, 2871, 41930, 7902, 3398,
}

const testN = 17
const testQ = 1 << 16

func TestMultiplyIndicesVector(t *testing.T) {
	idx := Indices{P: []uint16{7, 10}, M: []uint16{9, 13}}
	scratch := make([]uint32, testN)
	out := make([]uint16, testN)
	if err := MultiplyIndices(testA, idx, testN, testQ, scratch, out); err != nil {
		t.Fatalf("MultiplyIndices: %v", err)
	}
	want := []uint16{
		6644, 48910, 5764, 16270, 2612, 10231, 769, 2577, 58289,
		38323, 56334, 29942, 55901, 43714, 17452, 43795, 21225,
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestMultiplyProductIndicesVector(t *testing.T) {
	pf := ProductIndices{
		B1: Indices{P: []uint16{7, 10}, M: []uint16{9, 13}},
		B2: Indices{P: []uint16{1, 13}, M: []uint16{6, 8}},
		B3: Indices{P: []uint16{4, 10, 11}, M: []uint16{6, 9, 15}},
	}
	scratch32 := make([]uint32, testN)
	scratch16 := make([]uint16, 2*testN)
	out := make([]uint16, testN)
	if err := MultiplyProductIndices(testA, pf, testN, testQ, scratch32, scratch16, out); err != nil {
		t.Fatalf("MultiplyProductIndices: %v", err)
	}
	want := []uint16{
		40787, 24792, 27808, 13989, 56309, 37625, 37436, 32307, 15311,
		59789, 32769, 65008, 3711, 54663, 25343, 55984, 6193,
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestMultiplyIndicesScratchTooSmall(t *testing.T) {
	idx := Indices{P: []uint16{7, 10}, M: []uint16{9, 13}}
	out := make([]uint16, testN)
	err := MultiplyIndices(testA, idx, testN, testQ, make([]uint32, testN-1), out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// MultiplyIndices with P and M taken from the +1 and -1 positions of a
// dense trinary F must agree with multiply_coefficients(a, dense(F)) — the equivalence
// invariant from §8.
func TestMultiplyIndicesAgreesWithDense(t *testing.T) {
	P := []uint16{1, 4, 9}
	M := []uint16{2, 6, 11}
	dense := make([]uint16, testN)
	for _, k := range P {
		dense[k] = 1
	}
	for _, k := range M {
		dense[k] = testQ - 1
	}

	idx := Indices{P: P, M: M}
	viaIdx := make([]uint16, testN)
	if err := MultiplyIndices(testA, idx, testN, testQ, make([]uint32, testN), viaIdx); err != nil {
		t.Fatalf("MultiplyIndices: %v", err)
	}

	viaDense := make([]uint16, testN)
	scratch := make([]uint32, 2*testN)
	if err := MultiplyCoefficients(testA, dense, testN, testQ, scratch, viaDense); err != nil {
		t.Fatalf("MultiplyCoefficients: %v", err)
	}

	if !reflect.DeepEqual(viaIdx, viaDense) {
		t.Fatalf("sparse result %v != dense result %v", viaIdx, viaDense)
	}
}
