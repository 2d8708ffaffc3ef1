package heapalloc

import (
	"golang.org/x/exp/slog"

	"github.com/segfit/heapalloc/heap"
	"github.com/segfit/heapalloc/provider"
)

// Heap is a single-threaded, single-contiguous-heap allocator. See package
// heap for its full method set (Allocate, Free, Reallocate, ZeroAllocate,
// Validate, WriteJSON, WritePayload/ReadPayload).
type Heap = heap.Heap

// Ptr is an opaque handle to an allocation, valid only for the Heap that
// produced it.
type Ptr = heap.Ptr

// Provider supplies the growable backing storage a Heap is built over.
type Provider = provider.Provider

// Option configures a Heap at construction time.
type Option = heap.Option

// NilPtr returns the null pointer value; Ptr's zero value already satisfies
// this but NilPtr documents the intent at call sites.
func NilPtr() Ptr { return heap.NilPtr() }

// WithLogger overrides the structured logger a Heap uses for its lifecycle
// events. The default heap discards them.
func WithLogger(l *slog.Logger) Option { return heap.WithLogger(l) }

// New constructs a Heap over p, reserving space for its free-list bucket
// array and epilogue sentinel before returning. p is expected to start out
// empty; New does not scan existing content for a compatible layout.
func New(p Provider, opts ...Option) (*Heap, error) {
	return heap.New(p, opts...)
}

// NewArena returns a Provider backed by an in-process, unbounded []int32.
func NewArena() Provider {
	return provider.NewArena()
}

// NewBoundedArena returns a Provider backed by an in-process []int32 capped
// at maxWords words; Extend refuses growth past that cap.
func NewBoundedArena(maxWords int) Provider {
	return provider.NewBoundedArena(maxWords)
}

// Init constructs the process-wide default heap over a fresh Arena. It
// returns false if a default heap already exists, or if construction
// failed.
func Init() bool { return heap.Init() }

// Default returns the process-wide heap set up by Init, or nil if Init has
// not been called.
func Default() *Heap { return heap.Default() }

// Allocate calls Default().Allocate, returning the null pointer on failure.
func Allocate(nBytes int) Ptr { return heap.Allocate(nBytes) }

// Free calls Default().Free.
func Free(p Ptr) { heap.Free(p) }

// Reallocate calls Default().Reallocate, returning the null pointer on
// failure.
func Reallocate(p Ptr, nBytes int) Ptr { return heap.Reallocate(p, nBytes) }

// ZeroAllocate calls Default().ZeroAllocate, returning the null pointer on
// failure.
func ZeroAllocate(n, size int) Ptr { return heap.ZeroAllocate(n, size) }
