// Package accumulator implements a streaming hash accumulator over an
// extendable-output function. Input is absorbed in any chunking; output of
// any length can be extracted at any time without disturbing the state.
package accumulator

import (
	"io"

	"github.com/pkg/errors"

	"Blake3Stream/xof"
)

var (
	// ErrOffsetOutOfRange is the panic value for a write offset outside the
	// target buffer.
	ErrOffsetOutOfRange = errors.New("write offset out of range")
	// ErrNegativeLength is the panic value for a negative output length.
	ErrNegativeLength = errors.New("negative output length")
)

// noCopy makes go vet's copylocks check flag an Accumulator copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Accumulator holds the absorbed state of one message and the number of bytes
// absorbed since construction or the last Reset. It must not be copied; pass
// *Accumulator around. An Accumulator is not safe for concurrent use.
type Accumulator struct {
	_ noCopy

	alg    xof.Algorithm
	engine xof.Engine
	count  uint64
}

// New returns an empty accumulator using the default BLAKE3 backend.
func New() *Accumulator {
	return &Accumulator{alg: xof.BLAKE3.Resolve(), engine: xof.MustNew(xof.BLAKE3)}
}

// NewWith returns an empty accumulator for alg.
func NewWith(alg xof.Algorithm) (*Accumulator, error) {
	e, err := xof.New(alg)
	if err != nil {
		return nil, err
	}
	return &Accumulator{alg: alg.Resolve(), engine: e}, nil
}

// Algorithm returns the concrete algorithm backing a.
func (a *Accumulator) Algorithm() xof.Algorithm { return a.alg }

// Write absorbs p. It always returns len(p), nil.
func (a *Accumulator) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	a.engine.Write(p)
	a.count += uint64(len(p))
	return len(p), nil
}

// Count returns the number of bytes absorbed since construction or Reset.
func (a *Accumulator) Count() uint64 { return a.count }

// Empty reports whether nothing has been absorbed.
func (a *Accumulator) Empty() bool { return a.count == 0 }

// Reset discards all absorbed input.
func (a *Accumulator) Reset() {
	a.engine.Reset()
	a.count = 0
}

// Extract returns the first n output bytes for the absorbed input.
func (a *Accumulator) Extract(n int) []byte {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeLength, "extract %d bytes", n))
	}
	out := make([]byte, n)
	xof.Fill(a.engine.XOF(), out)
	return out
}

// ExtractInto fills dst[offset:] with output bytes starting at output
// position 0. dst[:offset] is left untouched. Every call restarts the output
// stream; use Stream for a continuously advancing cursor.
func (a *Accumulator) ExtractInto(dst []byte, offset int) {
	checkOffset(dst, offset)
	xof.Fill(a.engine.XOF(), dst[offset:])
}

// Stream returns a cursor over the output stream for the input absorbed so
// far. Successive reads continue where the previous one stopped, so reading
// [0, n) then [n, m) yields the same bytes as one read of [0, m). Later
// writes to a do not affect the cursor.
func (a *Accumulator) Stream() io.Reader {
	return &stream{r: a.engine.XOF()}
}

type stream struct{ r io.Reader }

// Read always fills p.
func (s *stream) Read(p []byte) (int, error) {
	xof.Fill(s.r, p)
	return len(p), nil
}

// Sum hashes input with the default BLAKE3 backend and returns n output
// bytes.
func Sum(input []byte, n int) []byte {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeLength, "sum %d bytes", n))
	}
	e := xof.MustNew(xof.BLAKE3)
	e.Write(input)
	out := make([]byte, n)
	xof.Fill(e.XOF(), out)
	return out
}

// SumInto hashes input with the default BLAKE3 backend into output[offset:].
func SumInto(input, output []byte, offset int) {
	SumWith(xof.BLAKE3, input, output, offset)
}

// SumWith is SumInto for an arbitrary algorithm. It panics if alg is unknown.
func SumWith(alg xof.Algorithm, input, output []byte, offset int) {
	checkOffset(output, offset)
	e := xof.MustNew(alg)
	e.Write(input)
	xof.Fill(e.XOF(), output[offset:])
}

func checkOffset(buf []byte, offset int) {
	if offset < 0 || offset > len(buf) {
		panic(errors.Wrapf(ErrOffsetOutOfRange, "offset %d, buffer length %d", offset, len(buf)))
	}
}
