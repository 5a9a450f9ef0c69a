// Package mhash frames BLAKE3 output as multihashes: a varint code (0x1e),
// a varint length (32) and the 32-byte digest.
package mhash

import (
	mh "github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	"Blake3Stream/accumulator"
	"Blake3Stream/boundary"
	"Blake3Stream/xof"
)

const (
	Code uint64 = mh.BLAKE3
	Size        = 32
	Name        = "blake3"
)

// ErrShortBuffer is the panic value when an output buffer cannot hold a
// digest at the requested offset.
var ErrShortBuffer = errors.New("output buffer too short for digest")

// prefix is the encoded code and length, both single-byte varints.
var prefix = func() []byte {
	m, err := mh.Encode(make([]byte, Size), Code)
	if err != nil {
		panic(err)
	}
	return m[:len(m)-Size]
}()

// PrefixLen is the number of bytes preceding the digest in Bytes.
var PrefixLen = len(prefix)

// Digest is a BLAKE3 multihash.
type Digest struct {
	Code  uint64
	Size  int
	Bytes []byte
}

// Digest returns the raw digest without the multihash prefix. It aliases
// d.Bytes.
func (d Digest) Digest() []byte { return d.Bytes[PrefixLen:] }

// Multihash returns d.Bytes as a go-multihash value.
func (d Digest) Multihash() mh.Multihash { return mh.Multihash(d.Bytes) }

func (d Digest) String() string { return d.Multihash().B58String() }

func newDigest(sum []byte) Digest {
	m, err := mh.Encode(sum, Code)
	if err != nil {
		panic(err)
	}
	return Digest{Code: Code, Size: Size, Bytes: m}
}

// Sum returns the multihash of input.
func Sum(input []byte) Digest {
	sum := make([]byte, Size)
	accumulator.SumWith(xof.BLAKE3, input, sum, 0)
	return newDigest(sum)
}

// SumInto writes the digest of input into output at offset, preceded by the
// multihash prefix when asMultihash is set. Bytes after the digest are left
// untouched.
func SumInto(input, output []byte, offset int, asMultihash bool) {
	dst := digestWindow(output, offset, asMultihash)
	accumulator.SumWith(xof.BLAKE3, input, dst, 0)
}

// digestWindow writes the prefix if requested and returns the Size-byte
// window the digest goes into.
func digestWindow(output []byte, offset int, asMultihash bool) []byte {
	need := Size
	if asMultihash {
		need += PrefixLen
	}
	if offset < 0 || offset > len(output) || len(output)-offset < need {
		panic(errors.Wrapf(ErrShortBuffer, "offset %d, need %d, buffer length %d", offset, need, len(output)))
	}
	if asMultihash {
		offset += copy(output[offset:], prefix)
	}
	return output[offset : offset+Size]
}

// Hasher is a streaming multihash hasher backed by a registry handle.
type Hasher struct {
	reg    *boundary.Registry
	handle boundary.Handle
}

var registry = boundary.New(boundary.WithAlgorithm(xof.BLAKE3))

// NewHasher returns a streaming hasher. Call Close when done with it.
func NewHasher() *Hasher {
	return &Hasher{reg: registry, handle: registry.Create()}
}

func (h *Hasher) Name() string { return Name }
func (h *Hasher) Code() uint64 { return Code }
func (h *Hasher) Size() int    { return Size }

// Write absorbs p. It always returns len(p), nil.
func (h *Hasher) Write(p []byte) (int, error) {
	h.reg.Write(h.handle, p)
	return len(p), nil
}

// Count returns the number of bytes written since creation or Reset.
func (h *Hasher) Count() uint64 { return h.reg.Count(h.handle) }

// Reset discards everything written so far.
func (h *Hasher) Reset() { h.reg.Reset(h.handle) }

// Digest returns the multihash of the bytes written so far. More bytes may
// be written afterwards.
func (h *Hasher) Digest() Digest {
	sum := make([]byte, Size)
	h.reg.ReadHashInto(h.handle, sum, 0)
	return newDigest(sum)
}

// DigestInto is SumInto for the bytes written so far.
func (h *Hasher) DigestInto(output []byte, offset int, asMultihash bool) {
	dst := digestWindow(output, offset, asMultihash)
	h.reg.ReadHashInto(h.handle, dst, 0)
}

// Close releases the handle. Any further use of h panics.
func (h *Hasher) Close() error {
	h.reg.Free(h.handle)
	return nil
}
