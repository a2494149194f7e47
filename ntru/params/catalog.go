// Package params is the immutable NTRUEncrypt parameter catalog (§4.A): a
// lookup of (N, q, dF/dr/dg weights, hash/IGF tuning, key-encoding
// metadata) by stable identifier, OID, or DER id. The catalog is built
// once at init time and never mutated afterward, so every lookup is safe
// for concurrent use without locking.
//
// Field values are transcribed from the reference NTRUEncrypt parameter
// table (ntru_crypto_ntru_encrypt_param_sets.c): the toy CHL_63R0 challenge
// set plus the sixteen NTRU_EES* production sets, the last four of which
// are product-form.
package params

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ID is a stable catalog identifier, mirroring the reference CHL_*/
// NTRU_EES* enum.
type ID int

const (
	CHL_63R0 ID = iota
	NTRU_EES401EP1
	NTRU_EES449EP1
	NTRU_EES677EP1
	NTRU_EES1087EP2
	NTRU_EES541EP1
	NTRU_EES613EP1
	NTRU_EES887EP1
	NTRU_EES1171EP1
	NTRU_EES659EP1
	NTRU_EES761EP1
	NTRU_EES1087EP1
	NTRU_EES1499EP1
	NTRU_EES401EP2
	NTRU_EES439EP1
	NTRU_EES593EP1
	NTRU_EES743EP1
)

// ParamSet is an immutable parameter record (§3). DF1/DF2/DF3 hold the
// unpacked low-to-high bytes of the reference dF_r field: for a
// product-form set they are the per-factor weights d1, d2, d3 of F's
// b1*b2+b3 decomposition; for a non-product set only DF1 is meaningful and
// equals the single |P|=|M| weight of F.
type ParamSet struct {
	ID                ID
	Name              string
	OID               [3]byte
	DERID             byte
	BitsInN           int
	N                 int
	SecStrengthOctets int
	Q                 uint32
	BitsInQ           int
	ProductForm       bool
	DF1, DF2, DF3     int
	DG                int
	MaxMsgLenBytes    int
	MinMsgRepWt       int
	NoBiasLimit       uint32
	CBits             int
	MLenLen           int
	MinIGFHashCalls   int
	MinMGFHashCalls   int
}

// DFCounts returns F's per-factor weights in product-form order (d1, d2,
// d3). For a non-product set d2 and d3 are zero and only d1 (the single
// |P|=|M| weight) is meaningful.
func (p ParamSet) DFCounts() (d1, d2, d3 int) {
	if !p.ProductForm {
		return p.DF1, 0, 0
	}
	return p.DF1, p.DF2, p.DF3
}

var catalog = []ParamSet{
	{
		ID: CHL_63R0, Name: "chl-63r0", OID: [3]byte{0xFF, 0xFF, 0xFF}, DERID: 0xFF,
		BitsInN: 6, N: 63, SecStrengthOctets: 32, Q: 512, BitsInQ: 9,
		ProductForm: true, DF1: 3, DF2: 3, DF3: 3, DG: 21,
		MaxMsgLenBytes: 0, MinMsgRepWt: 10, NoBiasLimit: 252, CBits: 8, MLenLen: 0,
		MinIGFHashCalls: 10, MinMGFHashCalls: 6,
	},
	{
		ID: NTRU_EES401EP1, Name: "ees401ep1", OID: [3]byte{0x00, 0x02, 0x04}, DERID: 0x22,
		BitsInN: 9, N: 401, SecStrengthOctets: 14, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 113, DG: 133,
		MaxMsgLenBytes: 60, MinMsgRepWt: 113, NoBiasLimit: 2005, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 32, MinMGFHashCalls: 9,
	},
	{
		ID: NTRU_EES449EP1, Name: "ees449ep1", OID: [3]byte{0x00, 0x03, 0x03}, DERID: 0x23,
		BitsInN: 9, N: 449, SecStrengthOctets: 16, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 134, DG: 149,
		MaxMsgLenBytes: 67, MinMsgRepWt: 134, NoBiasLimit: 449, CBits: 9, MLenLen: 1,
		MinIGFHashCalls: 31, MinMGFHashCalls: 9,
	},
	{
		ID: NTRU_EES677EP1, Name: "ees677ep1", OID: [3]byte{0x00, 0x05, 0x03}, DERID: 0x24,
		BitsInN: 10, N: 677, SecStrengthOctets: 24, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 157, DG: 225,
		MaxMsgLenBytes: 101, MinMsgRepWt: 157, NoBiasLimit: 2031, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 27, MinMGFHashCalls: 9,
	},
	{
		ID: NTRU_EES1087EP2, Name: "ees1087ep2", OID: [3]byte{0x00, 0x06, 0x03}, DERID: 0x25,
		BitsInN: 11, N: 1087, SecStrengthOctets: 32, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 120, DG: 362,
		MaxMsgLenBytes: 170, MinMsgRepWt: 120, NoBiasLimit: 7609, CBits: 13, MLenLen: 1,
		MinIGFHashCalls: 25, MinMGFHashCalls: 14,
	},
	{
		ID: NTRU_EES541EP1, Name: "ees541ep1", OID: [3]byte{0x00, 0x02, 0x05}, DERID: 0x26,
		BitsInN: 10, N: 541, SecStrengthOctets: 14, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 49, DG: 180,
		MaxMsgLenBytes: 86, MinMsgRepWt: 49, NoBiasLimit: 3787, CBits: 12, MLenLen: 1,
		MinIGFHashCalls: 15, MinMGFHashCalls: 11,
	},
	{
		ID: NTRU_EES613EP1, Name: "ees613ep1", OID: [3]byte{0x00, 0x03, 0x04}, DERID: 0x27,
		BitsInN: 10, N: 613, SecStrengthOctets: 16, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 55, DG: 204,
		MaxMsgLenBytes: 97, MinMsgRepWt: 55, NoBiasLimit: 1839, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 16, MinMGFHashCalls: 13,
	},
	{
		ID: NTRU_EES887EP1, Name: "ees887ep1", OID: [3]byte{0x00, 0x05, 0x04}, DERID: 0x28,
		BitsInN: 10, N: 887, SecStrengthOctets: 24, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 81, DG: 295,
		MaxMsgLenBytes: 141, MinMsgRepWt: 81, NoBiasLimit: 887, CBits: 10, MLenLen: 1,
		MinIGFHashCalls: 13, MinMGFHashCalls: 12,
	},
	{
		ID: NTRU_EES1171EP1, Name: "ees1171ep1", OID: [3]byte{0x00, 0x06, 0x04}, DERID: 0x29,
		BitsInN: 11, N: 1171, SecStrengthOctets: 32, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 106, DG: 390,
		MaxMsgLenBytes: 186, MinMsgRepWt: 106, NoBiasLimit: 3513, CBits: 12, MLenLen: 1,
		MinIGFHashCalls: 20, MinMGFHashCalls: 15,
	},
	{
		ID: NTRU_EES659EP1, Name: "ees659ep1", OID: [3]byte{0x00, 0x02, 0x06}, DERID: 0x2a,
		BitsInN: 10, N: 659, SecStrengthOctets: 14, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 38, DG: 219,
		MaxMsgLenBytes: 108, MinMsgRepWt: 38, NoBiasLimit: 1977, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 11, MinMGFHashCalls: 14,
	},
	{
		ID: NTRU_EES761EP1, Name: "ees761ep1", OID: [3]byte{0x00, 0x03, 0x05}, DERID: 0x2b,
		BitsInN: 10, N: 761, SecStrengthOctets: 16, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 42, DG: 253,
		MaxMsgLenBytes: 125, MinMsgRepWt: 42, NoBiasLimit: 3805, CBits: 12, MLenLen: 1,
		MinIGFHashCalls: 13, MinMGFHashCalls: 16,
	},
	{
		ID: NTRU_EES1087EP1, Name: "ees1087ep1", OID: [3]byte{0x00, 0x05, 0x05}, DERID: 0x2c,
		BitsInN: 11, N: 1087, SecStrengthOctets: 24, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 63, DG: 362,
		MaxMsgLenBytes: 178, MinMsgRepWt: 63, NoBiasLimit: 7609, CBits: 13, MLenLen: 1,
		MinIGFHashCalls: 13, MinMGFHashCalls: 14,
	},
	{
		ID: NTRU_EES1499EP1, Name: "ees1499ep1", OID: [3]byte{0x00, 0x06, 0x05}, DERID: 0x2d,
		BitsInN: 11, N: 1499, SecStrengthOctets: 32, Q: 2048, BitsInQ: 11,
		ProductForm: false, DF1: 79, DG: 499,
		MaxMsgLenBytes: 247, MinMsgRepWt: 79, NoBiasLimit: 7495, CBits: 13, MLenLen: 1,
		MinIGFHashCalls: 17, MinMGFHashCalls: 19,
	},
	{
		ID: NTRU_EES401EP2, Name: "ees401ep2", OID: [3]byte{0x00, 0x02, 0x10}, DERID: 0x2e,
		BitsInN: 9, N: 401, SecStrengthOctets: 14, Q: 2048, BitsInQ: 11,
		ProductForm: true, DF1: 8, DF2: 8, DF3: 6, DG: 133,
		MaxMsgLenBytes: 60, MinMsgRepWt: 101, NoBiasLimit: 2005, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 10, MinMGFHashCalls: 6,
	},
	{
		ID: NTRU_EES439EP1, Name: "ees439ep1", OID: [3]byte{0x00, 0x03, 0x10}, DERID: 0x2f,
		BitsInN: 9, N: 439, SecStrengthOctets: 16, Q: 2048, BitsInQ: 11,
		ProductForm: true, DF1: 9, DF2: 8, DF3: 5, DG: 146,
		MaxMsgLenBytes: 65, MinMsgRepWt: 112, NoBiasLimit: 439, CBits: 9, MLenLen: 1,
		MinIGFHashCalls: 15, MinMGFHashCalls: 6,
	},
	{
		ID: NTRU_EES593EP1, Name: "ees593ep1", OID: [3]byte{0x00, 0x05, 0x10}, DERID: 0x30,
		BitsInN: 10, N: 593, SecStrengthOctets: 24, Q: 2048, BitsInQ: 11,
		ProductForm: true, DF1: 10, DF2: 10, DF3: 8, DG: 197,
		MaxMsgLenBytes: 86, MinMsgRepWt: 158, NoBiasLimit: 1779, CBits: 11, MLenLen: 1,
		MinIGFHashCalls: 12, MinMGFHashCalls: 5,
	},
	{
		ID: NTRU_EES743EP1, Name: "ees743ep1", OID: [3]byte{0x00, 0x06, 0x10}, DERID: 0x31,
		BitsInN: 10, N: 743, SecStrengthOctets: 32, Q: 2048, BitsInQ: 11,
		ProductForm: true, DF1: 11, DF2: 11, DF3: 15, DG: 247,
		MaxMsgLenBytes: 106, MinMsgRepWt: 204, NoBiasLimit: 8173, CBits: 13, MLenLen: 1,
		MinIGFHashCalls: 12, MinMGFHashCalls: 7,
	},
}

var (
	byID  = make(map[ID]ParamSet, len(catalog))
	byOID = make(map[[3]byte]ParamSet, len(catalog))
	byDER = make(map[byte]ParamSet, len(catalog))
)

func init() {
	for _, p := range catalog {
		byID[p.ID] = p
		byOID[p.OID] = p
		byDER[p.DERID] = p
	}
}

// LookupByID returns the parameter record for id, or ok=false if unknown.
func LookupByID(id ID) (ParamSet, bool) {
	p, ok := byID[id]
	return p, ok
}

// LookupByOID returns the parameter record whose 3-byte OID matches oid.
func LookupByOID(oid [3]byte) (ParamSet, bool) {
	p, ok := byOID[oid]
	return p, ok
}

// LookupByDERID returns the parameter record whose 1-byte DER id matches id.
func LookupByDERID(id byte) (ParamSet, bool) {
	p, ok := byDER[id]
	return p, ok
}

// All returns every catalog entry, in declaration order. The returned
// slice is a fresh copy; callers may not mutate the catalog through it.
func All() []ParamSet {
	out := make([]ParamSet, len(catalog))
	copy(out, catalog)
	return out
}

// String renders the catalog entry's human-readable name, falling back to
// the numeric id for an unrecognized value.
func (id ID) String() string {
	if p, ok := byID[id]; ok {
		return p.Name
	}
	return fmt.Sprintf("params.ID(%d)", int(id))
}

// Checksum returns a SHA3-256 digest of the catalog's numeric fields and
// product-form flags, in declaration order (names are not hashed). Two
// builds of this package produce the same checksum iff their parameter
// tables agree on those fields; diagnostic tooling (cmd/paramsweep)
// prints it so a report can be tied back to the exact catalog it was run
// against.
func Checksum() [32]byte {
	h := sha3.New256()
	var buf [8]byte
	putInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	for _, p := range catalog {
		putInt(int(p.ID))
		h.Write(p.OID[:])
		h.Write([]byte{p.DERID})
		putInt(p.BitsInN)
		putInt(p.N)
		putInt(p.SecStrengthOctets)
		putInt(int(p.Q))
		putInt(p.BitsInQ)
		if p.ProductForm {
			putInt(1)
		} else {
			putInt(0)
		}
		putInt(p.DF1)
		putInt(p.DF2)
		putInt(p.DF3)
		putInt(p.DG)
		putInt(p.MaxMsgLenBytes)
		putInt(p.MinMsgRepWt)
		putInt(int(p.NoBiasLimit))
		putInt(p.CBits)
		putInt(p.MLenLen)
		putInt(p.MinIGFHashCalls)
		putInt(p.MinMGFHashCalls)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
