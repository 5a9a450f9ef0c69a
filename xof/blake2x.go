package xof

import (
	"io"

	"golang.org/x/crypto/blake2b"
)

// blake2xbHasher is BLAKE2Xb with an unknown output length, which caps the
// stream at 2^32-1 bytes. Like SHAKE, reads go through a clone.
type blake2xbHasher struct{ h blake2b.XOF }

func newBLAKE2Xb() *blake2xbHasher {
	h, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		// only reachable with an oversized key or invalid length
		panic(err)
	}
	return &blake2xbHasher{h: h}
}

func (b *blake2xbHasher) Write(p []byte) (int, error) { return b.h.Write(p) }

func (b *blake2xbHasher) Reset() { b.h.Reset() }

func (b *blake2xbHasher) XOF() io.Reader { return b.h.Clone() }
