// Package keys implements the packed public/private key blob layouts §6
// promises: bit-packed dense polynomials, bit-packed sparse index lists,
// and the tagged blob framing that wraps each. This is the "external
// encoder" that component G (ntru/keygen) delegates to.
package keys

import (
	"fmt"

	"ntru-core/ntru"
	"ntru-core/ntru/params"
)

const (
	tagPublic  = 0x01
	tagPrivate = 0x02
)

// PackCoeffs packs N dense-polynomial coefficients, bitsPerCoeff bits
// each, MSB-first, zero-padded to a byte boundary (§6).
func PackCoeffs(coeffs []uint16, bitsPerCoeff int) []byte {
	out := make([]byte, packedLen(len(coeffs), bitsPerCoeff))
	bitPos := 0
	for _, c := range coeffs {
		v := uint32(c)
		for i := bitsPerCoeff - 1; i >= 0; i-- {
			if (v>>uint(i))&1 != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// UnpackCoeffs is PackCoeffs' inverse: it reads n coefficients of
// bitsPerCoeff bits each from data.
func UnpackCoeffs(data []byte, n, bitsPerCoeff int) ([]uint16, error) {
	vals, err := unpackBits(data, n, bitsPerCoeff)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i, v := range vals {
		out[i] = uint16(v)
	}
	return out, nil
}

// PackIndices packs a concatenated index list, bitsInN bits per index,
// MSB-first, zero-padded to a byte boundary (§6).
func PackIndices(indices []uint16, bitsInN int) []byte {
	return PackCoeffs(indices, bitsInN)
}

// UnpackIndices is PackIndices' inverse.
func UnpackIndices(data []byte, count, bitsInN int) ([]uint16, error) {
	return UnpackCoeffs(data, count, bitsInN)
}

// packedLen returns the byte length of n values packed at bitsPer bits
// each, MSB-first, byte-padded.
func packedLen(n, bitsPer int) int {
	return (n*bitsPer + 7) / 8
}

func unpackBits(data []byte, n, bitsPer int) ([]uint32, error) {
	need := packedLen(n, bitsPer)
	if len(data) < need {
		return nil, fmt.Errorf("keys: packed data has %d bytes, want >= %d: %w", len(data), need, ntru.ErrInvalidArgument)
	}
	out := make([]uint32, n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var v uint32
		for b := 0; b < bitsPer; b++ {
			byteIdx := bitPos / 8
			shift := uint(7 - bitPos%8)
			bit := (data[byteIdx] >> shift) & 1
			v = (v << 1) | uint32(bit)
			bitPos++
		}
		out[i] = v
	}
	return out, nil
}

// PublicBlobLen returns the byte length EncodePublic produces for rec:
// [tag][DER id][3-byte OID][packed h], h having rec.N coefficients of
// rec.BitsInQ bits each.
func PublicBlobLen(rec params.ParamSet) int {
	return 1 + 1 + 3 + packedLen(rec.N, rec.BitsInQ)
}

// privateIndexCount returns the total number of indices EncodePrivate packs
// for rec's private element F: 2*dF for a flat set, or 2*(d1+d2+d3) for a
// product-form one.
func privateIndexCount(rec params.ParamSet) int {
	d1, d2, d3 := rec.DFCounts()
	return 2 * (d1 + d2 + d3)
}

// PrivateBlobLen returns the byte length EncodePrivate produces for rec.
func PrivateBlobLen(rec params.ParamSet) int {
	return 1 + 1 + 3 + packedLen(privateIndexCount(rec), rec.BitsInN)
}

// EncodePublic packs h (rec.N dense coefficients, each < rec.Q) into the
// public blob layout [tag=0x01][DER id][3-byte OID][packed h] (§6).
func EncodePublic(rec params.ParamSet, h []uint16) ([]byte, error) {
	if len(h) != rec.N {
		return nil, fmt.Errorf("keys: h has length %d, want %d: %w", len(h), rec.N, ntru.ErrInvalidArgument)
	}
	blob := make([]byte, 0, PublicBlobLen(rec))
	blob = append(blob, tagPublic, rec.DERID)
	blob = append(blob, rec.OID[:]...)
	blob = append(blob, PackCoeffs(h, rec.BitsInQ)...)
	return blob, nil
}

// DecodePublic is EncodePublic's inverse: it validates the tag and DER id
// against rec and returns the unpacked dense public polynomial.
func DecodePublic(rec params.ParamSet, blob []byte) ([]uint16, error) {
	if len(blob) < 5 {
		return nil, fmt.Errorf("keys: public blob truncated (%d bytes): %w", len(blob), ntru.ErrInvalidArgument)
	}
	if blob[0] != tagPublic {
		return nil, fmt.Errorf("keys: public blob has tag 0x%02x, want 0x%02x: %w", blob[0], tagPublic, ntru.ErrInvalidArgument)
	}
	if blob[1] != rec.DERID {
		return nil, fmt.Errorf("keys: public blob DER id 0x%02x does not match parameter set 0x%02x: %w", blob[1], rec.DERID, ntru.ErrInvalidArgument)
	}
	return UnpackCoeffs(blob[5:], rec.N, rec.BitsInQ)
}

// EncodePrivate packs the concatenated index lists of F (P,M for a flat
// private element, or P1,M1,P2,M2,P3,M3 for a product-form one — the
// caller assembles indices in that order) into the private blob layout
// [tag=0x02][DER id][3-byte OID][packed F] (§6).
func EncodePrivate(rec params.ParamSet, indices []uint16) ([]byte, error) {
	want := privateIndexCount(rec)
	if len(indices) != want {
		return nil, fmt.Errorf("keys: private indices has length %d, want %d: %w", len(indices), want, ntru.ErrInvalidArgument)
	}
	blob := make([]byte, 0, PrivateBlobLen(rec))
	blob = append(blob, tagPrivate, rec.DERID)
	blob = append(blob, rec.OID[:]...)
	blob = append(blob, PackIndices(indices, rec.BitsInN)...)
	return blob, nil
}

// DecodePrivate is EncodePrivate's inverse.
func DecodePrivate(rec params.ParamSet, blob []byte) ([]uint16, error) {
	if len(blob) < 5 {
		return nil, fmt.Errorf("keys: private blob truncated (%d bytes): %w", len(blob), ntru.ErrInvalidArgument)
	}
	if blob[0] != tagPrivate {
		return nil, fmt.Errorf("keys: private blob has tag 0x%02x, want 0x%02x: %w", blob[0], tagPrivate, ntru.ErrInvalidArgument)
	}
	if blob[1] != rec.DERID {
		return nil, fmt.Errorf("keys: private blob DER id 0x%02x does not match parameter set 0x%02x: %w", blob[1], rec.DERID, ntru.ErrInvalidArgument)
	}
	return UnpackIndices(blob[5:], privateIndexCount(rec), rec.BitsInN)
}
