// Package boundary maps opaque handles onto owned accumulators for callers
// that cannot hold Go pointers, such as a C host linked against the shared
// library build.
//
// Every handle owns exactly one accumulator and no two handles ever share
// one. Calls on the same handle are serialized; calls on different handles
// run independently. Misuse (unknown handle, offset past the end of a
// buffer, overlapping input and output) is a programming error and panics.
package boundary

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"Blake3Stream/accumulator"
	"Blake3Stream/logging"
	"Blake3Stream/xof"
)

var (
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrTooManyHandles = errors.New("too many live handles")
	ErrOverlap        = errors.New("input and output buffers overlap")
)

// Handle is an opaque reference to an accumulator. Zero is never issued.
type Handle uint32

type entry struct {
	mu  sync.Mutex
	acc *accumulator.Accumulator
}

// Registry owns the accumulators behind handles.
type Registry struct {
	alg   xof.Algorithm
	log   *slog.Logger
	limit int

	mu      sync.Mutex
	next    Handle
	entries map[Handle]*entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithAlgorithm selects the XOF used by new handles and HashInto.
func WithAlgorithm(alg xof.Algorithm) Option {
	return func(r *Registry) { r.alg = alg }
}

// WithLogger sets the logger for handle lifecycle records.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// WithMaxHandles caps the number of live handles. Zero means no cap.
func WithMaxHandles(n int) Option {
	return func(r *Registry) { r.limit = n }
}

// New returns an empty registry. It panics if the configured algorithm is
// unknown.
func New(opts ...Option) *Registry {
	r := &Registry{
		alg:     xof.BLAKE3,
		log:     logging.Discard(),
		entries: make(map[Handle]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.alg.Valid() {
		panic(errors.Wrapf(xof.ErrUnknownAlgorithm, "%q", string(r.alg)))
	}
	return r
}

// Algorithm returns the registry's configured algorithm.
func (r *Registry) Algorithm() xof.Algorithm { return r.alg }

// Create allocates an empty accumulator and returns its handle.
func (r *Registry) Create() Handle {
	acc, err := accumulator.NewWith(r.alg)
	if err != nil {
		panic(err)
	}

	r.mu.Lock()
	if r.limit > 0 && len(r.entries) >= r.limit {
		r.mu.Unlock()
		panic(errors.Wrapf(ErrTooManyHandles, "limit %d", r.limit))
	}
	h := r.nextHandle()
	r.entries[h] = &entry{acc: acc}
	live := len(r.entries)
	r.mu.Unlock()

	r.log.Debug("Created handle", "handle", h, "algorithm", acc.Algorithm(), "live", live)
	return h
}

// nextHandle returns an unused non-zero handle. r.mu must be held.
func (r *Registry) nextHandle() Handle {
	for {
		r.next++
		if r.next == 0 {
			continue
		}
		if _, used := r.entries[r.next]; !used {
			return r.next
		}
	}
}

// Free releases h. Any later use of h panics. A call in flight on h
// completes before Free returns.
func (r *Registry) Free(h Handle) {
	r.mu.Lock()
	e, ok := r.entries[h]
	if ok {
		delete(r.entries, h)
	}
	live := len(r.entries)
	r.mu.Unlock()
	if !ok {
		panic(errors.Wrapf(ErrInvalidHandle, "free %d", h))
	}

	e.mu.Lock()
	e.acc = nil
	e.mu.Unlock()
	r.log.Debug("Freed handle", "handle", h, "live", live)
}

// with runs f with exclusive access to the accumulator behind h.
func (r *Registry) with(h Handle, op string, f func(*accumulator.Accumulator)) {
	r.mu.Lock()
	e, ok := r.entries[h]
	r.mu.Unlock()
	if !ok {
		panic(errors.Wrapf(ErrInvalidHandle, "%s on %d", op, h))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.acc == nil {
		// freed between lookup and lock
		panic(errors.Wrapf(ErrInvalidHandle, "%s on %d", op, h))
	}
	f(e.acc)
}

// Write absorbs src into h.
func (r *Registry) Write(h Handle, src []byte) {
	r.with(h, "write", func(a *accumulator.Accumulator) { a.Write(src) })
}

// ReadHashInto writes output bytes for h into target[offset:], starting at
// output position 0 on every call.
func (r *Registry) ReadHashInto(h Handle, target []byte, offset int) {
	r.with(h, "readHashInto", func(a *accumulator.Accumulator) { a.ExtractInto(target, offset) })
}

// Count returns the number of bytes written to h since Create or Reset.
func (r *Registry) Count(h Handle) (n uint64) {
	r.with(h, "count", func(a *accumulator.Accumulator) { n = a.Count() })
	return n
}

// Reset returns h to the empty state.
func (r *Registry) Reset(h Handle) {
	r.with(h, "reset", func(a *accumulator.Accumulator) { a.Reset() })
	r.log.Debug("Reset handle", "handle", h)
}

// HashInto hashes input into output[offset:] without a handle. Input and
// output must not overlap.
func (r *Registry) HashInto(input, output []byte, offset int) {
	if overlaps(input, output) {
		panic(errors.Wrapf(ErrOverlap, "input %d bytes, output %d bytes", len(input), len(output)))
	}
	accumulator.SumWith(r.alg, input, output, offset)
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
