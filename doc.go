// Package heapalloc is a single-threaded, single-contiguous-heap allocator
// built on boundary-tag blocks and a segregated free list.
//
// A Heap is grown against a Provider, which supplies fresh backing storage
// on demand (an Arena grows an in-process []int32; a caller can supply
// their own Provider over any word-addressable store). Allocate, Free,
// Reallocate and ZeroAllocate mirror the shape of the C standard library's
// malloc family, returning a Ptr rather than a raw pointer since Go's heap
// isn't addressable the way C's is.
//
// A process-wide default heap is available through Init and the
// package-level Allocate/Free/Reallocate/ZeroAllocate wrappers, for callers
// happy with the C convention of a single implicit heap. Callers who want
// more than one heap, or control over the backing Provider, should use
// heap.New directly.
package heapalloc
