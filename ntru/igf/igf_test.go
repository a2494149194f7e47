package igf

import (
	"errors"
	"testing"

	"ntru-core/ntru"
)

func testConfig(seed []byte) Config {
	return Config{
		Hash:         SHA256,
		Seed:         seed,
		N:            401,
		CBits:        9,
		NoBiasLimit:  511 - (511 % 401),
		MinHashCalls: 4,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig([]byte("some fixed seed material"))
	used := make([]bool, cfg.N)
	out1 := make([]uint16, 40)
	out2 := make([]uint16, 40)
	if err := Generate(cfg, []int{40}, used, out1); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Generate(cfg, []int{40}, used, out2); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("non-deterministic output at %d: %d != %d", i, out1[i], out2[i])
		}
	}
}

func TestGenerateDistinctAndInRange(t *testing.T) {
	cfg := testConfig([]byte("another seed"))
	used := make([]bool, cfg.N)
	lens := []int{20, 15, 7}
	total := 0
	for _, l := range lens {
		total += l
	}
	out := make([]uint16, total)
	if err := Generate(cfg, lens, used, out); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	off := 0
	for _, l := range lens {
		seen := make(map[uint16]bool, l)
		for i := 0; i < l; i++ {
			v := out[off+i]
			if int(v) >= cfg.N {
				t.Fatalf("index %d out of range [0,%d)", v, cfg.N)
			}
			if seen[v] {
				t.Fatalf("duplicate index %d within list", v)
			}
			seen[v] = true
		}
		off += l
	}
}

func TestGenerateIndicesDisjointPM(t *testing.T) {
	cfg := testConfig([]byte("g seed"))
	used := make([]bool, cfg.N)
	buf := make([]uint16, 2*133+1)
	idx, err := GenerateIndices(cfg, 134, 133, used, buf)
	if err != nil {
		t.Fatalf("GenerateIndices: %v", err)
	}
	if len(idx.P) != 134 || len(idx.M) != 133 {
		t.Fatalf("unexpected lengths P=%d M=%d", len(idx.P), len(idx.M))
	}
	seen := make(map[uint16]bool, 267)
	for _, v := range idx.P {
		if seen[v] {
			t.Fatalf("P has duplicate %d", v)
		}
		seen[v] = true
	}
	for _, v := range idx.M {
		if seen[v] {
			t.Fatalf("M collides with P at %d", v)
		}
		seen[v] = true
	}
}

func TestGenerateProductIndicesShapes(t *testing.T) {
	cfg := testConfig([]byte("product seed"))
	used := make([]bool, cfg.N)
	buf := make([]uint16, 2*(8+8+6))
	pf, err := GenerateProductIndices(cfg, 8, 8, 6, used, buf)
	if err != nil {
		t.Fatalf("GenerateProductIndices: %v", err)
	}
	if len(pf.B1.P) != 8 || len(pf.B1.M) != 8 {
		t.Fatalf("b1 shape wrong: %+v", pf.B1)
	}
	if len(pf.B2.P) != 8 || len(pf.B2.M) != 8 {
		t.Fatalf("b2 shape wrong: %+v", pf.B2)
	}
	if len(pf.B3.P) != 6 || len(pf.B3.M) != 6 {
		t.Fatalf("b3 shape wrong: %+v", pf.B3)
	}
}

func TestGenerateUnsupportedHash(t *testing.T) {
	cfg := testConfig([]byte("seed"))
	cfg.Hash = HashAlgID(99)
	used := make([]bool, cfg.N)
	out := make([]uint16, 10)
	err := Generate(cfg, []int{10}, used, out)
	if !errors.Is(err, ntru.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestGenerateUndersizedUsed(t *testing.T) {
	cfg := testConfig([]byte("seed"))
	used := make([]bool, cfg.N-1)
	out := make([]uint16, 10)
	err := Generate(cfg, []int{10}, used, out)
	if !errors.Is(err, ntru.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
