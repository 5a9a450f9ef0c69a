package mhash

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	mh "github.com/multiformats/go-multihash"
	_ "github.com/multiformats/go-multihash/register/blake3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blake3Stream/boundary"
)

func input(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

var vectorSizes = []int{0, 1, 1023, 1024, 1025, 2048, 2049, 3072, 3073, 4096, 4097, 5120, 5121, 6144, 6145, 7168, 7169, 8192, 8193, 16384, 31744, 102400}

func TestPrefix(t *testing.T) {
	assert.Equal(t, []byte{0x1e, 0x20}, prefix)
	assert.Equal(t, 2, PrefixLen)
}

func TestSumEmpty(t *testing.T) {
	d := Sum(nil)
	assert.Equal(t, Code, d.Code)
	assert.Equal(t, Size, d.Size)
	assert.Equal(t, "1e20af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", hex.EncodeToString(d.Bytes))
	assert.Equal(t, d.Bytes[2:], d.Digest())
}

func TestSumMatchesGoMultihash(t *testing.T) {
	for _, size := range vectorSizes {
		msg := input(size)
		want, err := mh.Sum(msg, mh.BLAKE3, Size)
		require.NoError(t, err)

		d := Sum(msg)
		require.Equal(t, []byte(want), d.Bytes, "size %d", size)

		dec, err := mh.Decode(d.Multihash())
		require.NoError(t, err)
		assert.Equal(t, Code, dec.Code)
		assert.Equal(t, Name, dec.Name)
		assert.Equal(t, Size, dec.Length)
		assert.Equal(t, d.Digest(), dec.Digest)
		assert.Equal(t, want.B58String(), d.String())
	}
}

func TestSumInto(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range vectorSizes {
		msg := input(size)
		expect := Sum(msg)

		out := make([]byte, 164)
		SumInto(msg, out, 0, true)
		assert.Equal(t, expect.Bytes, out[:34])

		offset := rng.Intn(31)
		SumInto(msg, out, offset, true)
		assert.Equal(t, expect.Bytes, out[offset:offset+34], "offset %d", offset)

		raw := bytes.Repeat([]byte{0xee}, 64)
		SumInto(msg, raw, offset, false)
		assert.Equal(t, expect.Digest(), raw[offset:offset+32])
		assert.Equal(t, bytes.Repeat([]byte{0xee}, offset), raw[:offset])
		assert.Equal(t, bytes.Repeat([]byte{0xee}, 64-offset-32), raw[offset+32:])
	}
}

func TestSumIntoShortBuffer(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		offset      int
		asMultihash bool
	}{
		{"multihash", 33, 0, true},
		{"raw", 31, 0, false},
		{"offset", 34, 1, true},
		{"past end", 10, 11, false},
		{"negative", 40, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrShortBuffer))
			}()
			SumInto([]byte("foo"), make([]byte, tt.size), tt.offset, tt.asMultihash)
		})
	}
}

func TestStreamingHashAndReset(t *testing.T) {
	h := NewHasher()
	defer h.Close()

	assert.Equal(t, "blake3", h.Name())
	assert.Equal(t, uint64(0x1e), h.Code())
	assert.Equal(t, 32, h.Size())

	h.Write([]byte("foo"))
	assert.Equal(t, Sum([]byte("foo")), h.Digest())

	buf := make([]byte, 128)
	h.DigestInto(buf, 0, true)
	assert.Equal(t, Sum([]byte("foo")).Bytes, buf[:34])

	for i := range buf {
		buf[i] = 0
	}
	h.DigestInto(buf, 7, true)
	assert.Equal(t, Sum([]byte("foo")).Bytes, buf[7:7+34])

	h.DigestInto(buf, 2, false)
	assert.Equal(t, Sum([]byte("foo")).Digest(), buf[2:2+32])

	h.Write([]byte("bar"))
	assert.Equal(t, Sum([]byte("foobar")), h.Digest())
	h.Write([]byte("baz"))
	assert.Equal(t, Sum([]byte("foobarbaz")), h.Digest())

	h.Reset()
	assert.Equal(t, uint64(0), h.Count())
	h.Write([]byte("bar"))
	assert.Equal(t, Sum([]byte("bar")), h.Digest())
	h.Write([]byte("foo"))
	assert.Equal(t, Sum([]byte("barfoo")), h.Digest())
}

func TestStreamingFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := NewHasher()
	defer h.Close()

	const size = 102400
	msg := input(size)
	offset := 0
	for offset < size {
		frame := rng.Intn(1001)
		if frame > size-offset {
			frame = size - offset
		}
		h.Write(msg[offset : offset+frame])
		offset += frame
		require.Equal(t, uint64(offset), h.Count())
		require.Equal(t, Sum(msg[:offset]).Bytes, h.Digest().Bytes, "hasher at %d..%d", offset-frame, offset)
	}
}

func TestCloseHasher(t *testing.T) {
	h := NewHasher()
	require.NoError(t, h.Close())

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, boundary.ErrInvalidHandle))
	}()
	h.Write([]byte("foo"))
}
