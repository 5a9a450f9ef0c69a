// Package xof wraps extendable-output hash functions behind a small engine
// interface: absorb with Write, snapshot an output cursor with XOF, start
// over with Reset.
package xof

import (
	"io"

	"github.com/pkg/errors"
)

// Algorithm names an XOF implementation.
type Algorithm string

const (
	// BLAKE3 resolves to the BLAKE3 backend picked for this CPU.
	BLAKE3             Algorithm = `blake3`
	BLAKE3Zeebo        Algorithm = `blake3-zeebo`
	BLAKE3Lukechampine Algorithm = `blake3-lukechampine`
	SHAKE256           Algorithm = `shake256`
	BLAKE2Xb           Algorithm = `blake2xb`
)

// ErrUnknownAlgorithm is returned by New for names not listed in Algorithms.
var ErrUnknownAlgorithm = errors.New("unknown xof algorithm")

// Engine is the absorbed state of an extendable-output function.
type Engine interface {
	// Write absorbs p. It never fails.
	io.Writer

	// Reset returns the engine to the state of an empty message.
	Reset()

	// XOF returns an output cursor at position 0 over the bytes absorbed so
	// far. The engine is not modified and later writes do not affect the
	// returned cursor.
	XOF() io.Reader
}

// Algorithms returns the list of supported algorithm identifiers.
func Algorithms() []Algorithm {
	return []Algorithm{BLAKE3, BLAKE3Zeebo, BLAKE3Lukechampine, SHAKE256, BLAKE2Xb}
}

// Valid reports whether a is one of Algorithms.
func (a Algorithm) Valid() bool {
	for _, item := range Algorithms() {
		if item == a {
			return true
		}
	}
	return false
}

func (a Algorithm) String() string { return string(a) }

// Resolve maps BLAKE3 to the concrete backend chosen at init. Other values
// are returned unchanged.
func (a Algorithm) Resolve() Algorithm {
	if a == BLAKE3 {
		return DefaultBLAKE3()
	}
	return a
}

// New returns a fresh engine for alg.
func New(alg Algorithm) (Engine, error) {
	switch alg.Resolve() {
	case BLAKE3Zeebo:
		return newZeebo(), nil
	case BLAKE3Lukechampine:
		return newLukechampine(), nil
	case SHAKE256:
		return newShake256(), nil
	case BLAKE2Xb:
		return newBLAKE2Xb(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(alg))
	}
}

// MustNew is like New but panics on an unknown algorithm.
func MustNew(alg Algorithm) Engine {
	e, err := New(alg)
	if err != nil {
		panic(err)
	}
	return e
}

// Fill reads exactly len(p) bytes from r into p. Output is never truncated:
// a short read panics.
func Fill(r io.Reader, p []byte) {
	if len(p) == 0 {
		return
	}
	if _, err := io.ReadFull(r, p); err != nil {
		panic(errors.Wrapf(err, "xof output exhausted filling %d bytes", len(p)))
	}
}
