package heap_test

// The package-level entry points share one process-wide default heap, so
// these tests must tolerate running after each other in the same binary
// rather than each assuming a pristine global.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segfit/heapalloc/heap"
)

func TestGlobalInitAndEntryPoints(t *testing.T) {
	if heap.Default() == nil {
		require.True(t, heap.Init())
	}
	// A second Init call must be refused: the default heap is process
	// lifetime and never torn down.
	require.False(t, heap.Init())

	p := heap.Allocate(16)
	require.False(t, p.IsNil())

	q := heap.Reallocate(p, 32)
	require.False(t, q.IsNil())

	require.True(t, heap.Reallocate(q, 0).IsNil())

	r := heap.ZeroAllocate(4, 4)
	require.False(t, r.IsNil())
	heap.Free(r)
}
