package xof

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// shakeHasher adapts sha3.ShakeHash. Reading a ShakeHash mutates it and
// forbids further writes, so every cursor reads from a clone.
type shakeHasher struct{ h sha3.ShakeHash }

func newShake256() *shakeHasher {
	return &shakeHasher{h: sha3.NewShake256()}
}

func (s *shakeHasher) Write(p []byte) (int, error) { return s.h.Write(p) }

func (s *shakeHasher) Reset() { s.h.Reset() }

func (s *shakeHasher) XOF() io.Reader { return s.h.Clone() }
