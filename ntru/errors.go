package ntru

import "errors"

// Sentinel error kinds shared by every subpackage. Concrete operations wrap
// one of these with fmt.Errorf("...: %w", ErrX) so callers can still test
// the kind with errors.Is after the context has been added.
var (
	// ErrInvalidArgument covers null required input, undersized scratch,
	// an unknown parameter id, a non-power-of-two q, or a truncated blob.
	ErrInvalidArgument = errors.New("ntru: invalid argument")

	// ErrUnsupported is returned when a hash algorithm id is not one of
	// the supported set (SHA-1, SHA-256).
	ErrUnsupported = errors.New("ntru: unsupported algorithm")

	// ErrNotInvertible is ring.Invert's only failure mode. keygen treats
	// it as retryable; direct callers of ring.Invert treat it as terminal.
	ErrNotInvertible = errors.New("ntru: polynomial not invertible")

	// ErrKeygenExhausted is returned when keygen exceeds its retry cap.
	ErrKeygenExhausted = errors.New("ntru: key generation exhausted its retry budget")

	// ErrDrbgFailure is an opaque wrapper around a DRBG failure.
	ErrDrbgFailure = errors.New("ntru: drbg failure")
)
