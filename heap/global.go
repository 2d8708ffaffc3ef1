package heap

import "github.com/segfit/heapalloc/provider"

// defaultHeap backs the package-level entry points below, giving callers
// who want a single implicit global heap a way to get one without
// constructing a Heap and Provider themselves. Re-entering Init after it
// has already succeeded is refused: the default heap is process lifetime
// and initialized exactly once.
var defaultHeap *Heap

// Init constructs the process-wide default heap over a fresh Arena. It
// returns false if a default heap already exists, or if construction
// failed.
func Init() bool {
	if defaultHeap != nil {
		return false
	}
	h, err := New(provider.NewArena())
	if err != nil {
		return false
	}
	defaultHeap = h
	return true
}

// Default returns the process-wide heap set up by Init, or nil if Init has
// not been called.
func Default() *Heap { return defaultHeap }

// Allocate calls Default().Allocate, returning the null pointer on failure.
func Allocate(nBytes int) Ptr {
	p, _ := defaultHeap.Allocate(nBytes)
	return p
}

// Free calls Default().Free.
func Free(p Ptr) { defaultHeap.Free(p) }

// Reallocate calls Default().Reallocate, returning the null pointer on
// failure.
func Reallocate(p Ptr, nBytes int) Ptr {
	np, _ := defaultHeap.Reallocate(p, nBytes)
	return np
}

// ZeroAllocate calls Default().ZeroAllocate, returning the null pointer on
// failure.
func ZeroAllocate(n, size int) Ptr {
	p, _ := defaultHeap.ZeroAllocate(n, size)
	return p
}
