// Package ntru implements the cryptographic core of NTRUEncrypt in pure
// Go: polynomial arithmetic over the truncated ring R_q = (Z/qZ)[X]/(X^N-1),
// the IGF-2/MGF-1 deterministic index-set generator, and the key-generation
// pipeline that composes them.
//
// The heavy lifting lives in the subpackages: ring (dense and sparse
// convolution, inversion), igf (index generation), params (the immutable
// parameter catalog), keygen (orchestration), keys (packed key blobs) and
// drbg (the seeded byte oracle keygen consumes). This package only holds
// the error kinds shared across all of them.
package ntru
