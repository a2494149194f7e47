// Package drbg implements the seeded byte oracle keygen consumes (§6):
// an HMAC-DRBG (NIST SP 800-90A) instantiated from crypto/rand entropy,
// exposed behind a small registry of opaque handles so the core only ever
// takes a handle and never reaches into a generator's internal state.
//
// This mirrors the reference's "process-wide DRBG handle table" framing
// (§9 design notes) while keeping the table itself outside the
// cryptographic core: ntru/keygen takes a *Registry and a Handle, never an
// *instance.
package drbg

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sync"

	"ntru-core/ntru"
)

const (
	seedEntropyLen = 32 // bytes of crypto/rand entropy per instantiation
	seedNonceLen   = 16
	mdLen          = sha256.Size
)

// instance is one HMAC-DRBG generator (SP 800-90A §10.1.2), keyed by a
// running HMAC-SHA256 state (K, V). It keeps no reseed counter.
type instance struct {
	mu   sync.Mutex
	k, v []byte
}

func newInstance(entropyInput, nonce, personalization []byte) *instance {
	inst := &instance{
		k: make([]byte, mdLen),
		v: make([]byte, mdLen),
	}
	for i := range inst.v {
		inst.v[i] = 0x01
	}
	seedMaterial := append(append(append([]byte(nil), entropyInput...), nonce...), personalization...)
	inst.update(seedMaterial)
	return inst
}

// update is the HMAC-DRBG update algorithm (SP 800-90A §10.1.2.2).
func (d *instance) update(providedData []byte) {
	d.k = hmacSum(d.k, append(append(append([]byte(nil), d.v...), 0x00), providedData...))
	d.v = hmacSum(d.k, d.v)
	if len(providedData) == 0 {
		return
	}
	d.k = hmacSum(d.k, append(append(append([]byte(nil), d.v...), 0x01), providedData...))
	d.v = hmacSum(d.k, d.v)
}

// generate is HMAC-DRBG's generate algorithm (SP 800-90A §10.1.2.5),
// without reseed-counter enforcement: each call derives len(out) bytes
// from the running (K, V) state and folds additionalInput in both before
// and after, matching the reference construction.
func (d *instance) generate(additionalInput, out []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(additionalInput) > 0 {
		d.update(additionalInput)
	}
	produced := 0
	for produced < len(out) {
		d.v = hmacSum(d.k, d.v)
		n := copy(out[produced:], d.v)
		produced += n
	}
	d.update(additionalInput)
}

func hmacSum(key, data []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(data)
	return m.Sum(nil)
}

// Handle is an opaque reference to a registered DRBG instance. The core
// never holds anything but a Handle; Registry owns the actual state.
type Handle int

// Registry holds HMAC-DRBG instances by handle (one per Instantiate call,
// with no fixed upper bound on their number), the external
// collaborator keygen's DRBG interface (§6) is defined against:
// generate(handle, strength_bits, n_bytes, out).
type Registry struct {
	mu     sync.Mutex
	insts  map[Handle]*instance
	nextID Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{insts: make(map[Handle]*instance)}
}

// Instantiate seeds a fresh HMAC-DRBG from crypto/rand entropy and returns
// its handle. personalization is optional context folded into the seed
// (SP 800-90A's personalization_string); it may be nil.
func (r *Registry) Instantiate(personalization []byte) (Handle, error) {
	entropy := make([]byte, seedEntropyLen)
	if _, err := rand.Read(entropy); err != nil {
		return 0, fmt.Errorf("drbg: reading entropy: %w: %w", err, ntru.ErrDrbgFailure)
	}
	nonce := make([]byte, seedNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return 0, fmt.Errorf("drbg: reading nonce: %w: %w", err, ntru.ErrDrbgFailure)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	h := r.nextID
	r.insts[h] = newInstance(entropy, nonce, personalization)
	return h, nil
}

// Generate fills out with n_bytes of DRBG output for handle (§6's
// generate(handle, strength_bits, n_bytes, out) contract). strengthBits is
// accepted for interface parity with the reference but does not affect
// this construction: HMAC-SHA256 is used uniformly, as keygen itself
// already downgrades to SHA-1 only for the IGF-2 hash, never the DRBG.
func (r *Registry) Generate(handle Handle, strengthBits int, out []byte) error {
	return r.GenerateWithTag(handle, strengthBits, nil, out)
}

// GenerateWithTag is Generate with an additional_input tag folded in
// (SP 800-90A's additional_input parameter), letting one instance serve
// multiple independent-looking byte streams — keygen uses this to derive
// F's and g's seeds from a single DRBG handle without a second
// instantiation (see DESIGN.md's keygen seed-derivation note).
func (r *Registry) GenerateWithTag(handle Handle, strengthBits int, tag []byte, out []byte) error {
	_ = strengthBits
	r.mu.Lock()
	inst, ok := r.insts[handle]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("drbg: unknown handle %d: %w", handle, ntru.ErrInvalidArgument)
	}
	inst.generate(tag, out)
	return nil
}

// Uninstantiate discards handle's state. Generating against a discarded
// handle afterward fails with ErrInvalidArgument.
func (r *Registry) Uninstantiate(handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.insts, handle)
}
