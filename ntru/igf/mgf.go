package igf

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"

	"ntru-core/ntru"
)

// HashAlgID identifies one of the two hash primitives IGF-2/MGF-1 may run
// over (§6): SHA-1 (20-byte digest) or SHA-256 (32-byte digest). Component
// G picks one by security strength; direct callers of this package may
// pick either.
type HashAlgID int

const (
	SHA1 HashAlgID = iota
	SHA256
)

// newHash returns a constructor for id's hash.Hash and its digest length,
// or ntru.ErrUnsupported if id names neither supported algorithm.
func (id HashAlgID) newHash() (func() hash.Hash, int, error) {
	switch id {
	case SHA1:
		return sha1.New, sha1.Size, nil
	case SHA256:
		return sha256.New, sha256.Size, nil
	default:
		return nil, 0, fmt.Errorf("igf: unsupported hash algorithm id %d: %w", id, ntru.ErrUnsupported)
	}
}

// mgf1Stream is an unbounded MGF-1 bit stream (§4.B.1): repeated
// hash(seed || big-endian uint32 counter), counter starting at 0, grown one
// md_len-byte block at a time as bits are consumed from it. minCalls blocks
// are produced up front; ensureBits extends the stream lazily past that.
type mgf1Stream struct {
	newHash func() hash.Hash
	seed    []byte
	mdLen   int
	counter uint32
	buf     []byte
}

func newMGF1Stream(newHash func() hash.Hash, mdLen int, seed []byte, minCalls int) *mgf1Stream {
	s := &mgf1Stream{newHash: newHash, seed: seed, mdLen: mdLen}
	for i := 0; i < minCalls; i++ {
		s.extend()
	}
	return s
}

func (s *mgf1Stream) extend() {
	h := s.newHash()
	h.Write(s.seed)
	var cnt [4]byte
	binary.BigEndian.PutUint32(cnt[:], s.counter)
	h.Write(cnt[:])
	s.buf = h.Sum(s.buf)
	s.counter++
}

// ensureBits grows the stream until it holds at least bitPos+n bits.
func (s *mgf1Stream) ensureBits(bitPos, n int) {
	for bitPos+n > len(s.buf)*8 {
		s.extend()
	}
}

// readBits returns the n-bit value starting at bit offset bitPos, MSB-first
// within the stream. The caller must have already called ensureBits.
func (s *mgf1Stream) readBits(bitPos, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		bit := bitPos + i
		byteIdx := bit / 8
		shift := 7 - uint(bit%8)
		v = (v << 1) | uint32((s.buf[byteIdx]>>shift)&1)
	}
	return v
}
