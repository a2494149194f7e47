package igf

import (
	"fmt"

	"ntru-core/ntru"
	"ntru-core/ntru/ring"
)

// GenerateIndices draws a flat sparse trinary polynomial (§4.B, non-
// product case): plus distinct indices for the +1 coefficients followed by
// minus distinct indices (disjoint from the first set) for the -1
// coefficients, all within a single IGF-2 list so the two sets can never
// collide. buf must have length plus+minus; the returned Indices' P and M
// slices alias it.
func GenerateIndices(cfg Config, plus, minus int, used []bool, buf []uint16) (ring.Indices, error) {
	if len(buf) != plus+minus {
		return ring.Indices{}, fmt.Errorf("igf: buf has length %d, want %d: %w", len(buf), plus+minus, ntru.ErrInvalidArgument)
	}
	if err := Generate(cfg, []int{plus + minus}, used, buf); err != nil {
		return ring.Indices{}, err
	}
	return ring.Indices{P: buf[:plus], M: buf[plus : plus+minus]}, nil
}

// GenerateProductIndices draws a product-form trinary polynomial (§4.B,
// product case): three independent lists, one per factor b1, b2, b3, each
// with equal +1/-1 weight d1, d2, d3. buf must have length
// 2*(d1+d2+d3); the returned ProductIndices' P/M slices alias it.
func GenerateProductIndices(cfg Config, d1, d2, d3 int, used []bool, buf []uint16) (ring.ProductIndices, error) {
	want := 2 * (d1 + d2 + d3)
	if len(buf) != want {
		return ring.ProductIndices{}, fmt.Errorf("igf: buf has length %d, want %d: %w", len(buf), want, ntru.ErrInvalidArgument)
	}
	if err := Generate(cfg, []int{2 * d1, 2 * d2, 2 * d3}, used, buf); err != nil {
		return ring.ProductIndices{}, err
	}
	off := 0
	b1 := ring.Indices{P: buf[off : off+d1], M: buf[off+d1 : off+2*d1]}
	off += 2 * d1
	b2 := ring.Indices{P: buf[off : off+d2], M: buf[off+d2 : off+2*d2]}
	off += 2 * d2
	b3 := ring.Indices{P: buf[off : off+d3], M: buf[off+d3 : off+2*d3]}
	return ring.ProductIndices{B1: b1, B2: b2, B3: b3}, nil
}
