package heap_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/segfit/heapalloc/heap"
	"github.com/segfit/heapalloc/provider"
)

func newHeap(t *testing.T) *heap.Heap {
	t.Helper()
	h, err := heap.New(provider.NewArena())
	require.NoError(t, err)
	return h
}

func TestScenarioSingleAllocateFreeLeavesOneFreeBlock(t *testing.T) {
	h := newHeap(t)

	p, ok := h.Allocate(1)
	require.True(t, ok)
	require.False(t, p.IsNil())

	h.Free(p)

	require.NoError(t, h.Validate())
}

func TestScenarioThreeAllocationsFreedOutOfOrderCoalesce(t *testing.T) {
	h := newHeap(t)

	a, ok := h.Allocate(24)
	require.True(t, ok)
	b, ok := h.Allocate(24)
	require.True(t, ok)
	c, ok := h.Allocate(24)
	require.True(t, ok)

	h.Free(a)
	h.Free(c)
	h.Free(b)

	require.NoError(t, h.Validate())
}

func TestScenarioFreedBlockIsReusedWithSplitResidual(t *testing.T) {
	h := newHeap(t)

	a, ok := h.Allocate(1000)
	require.True(t, ok)
	_, ok = h.Allocate(1000)
	require.True(t, ok)

	h.Free(a)

	c, ok := h.Allocate(500)
	require.True(t, ok)
	require.False(t, c.IsNil())
	require.Equal(t, a, c)
	require.NoError(t, h.Validate())
}

func TestScenarioReallocatePreservesData(t *testing.T) {
	h := newHeap(t)

	p, ok := h.Allocate(32)
	require.True(t, ok)
	h.WritePayload(p, 0, bytes.Repeat([]byte{0xAB}, 32))

	q, ok := h.Reallocate(p, 64)
	require.True(t, ok)
	require.Equal(t, bytes.Repeat([]byte{0xAB}, 32), h.ReadPayload(q, 0, 32))
}

func TestScenarioZeroAllocateIsClean(t *testing.T) {
	h := newHeap(t)

	p, ok := h.ZeroAllocate(16, 8)
	require.True(t, ok)
	require.Equal(t, make([]byte, 128), h.ReadPayload(p, 0, 128))
}

func TestScenarioManyAllocationsFreedInRandomOrderMergeToOne(t *testing.T) {
	h := newHeap(t)

	perm := []int{3, 1, 4, 0, 2, 5, 7, 6}
	var ptrs []heap.Ptr
	for i := 0; i < 8; i++ {
		p, ok := h.Allocate(16 + (i*16)%64)
		require.True(t, ok)
		ptrs = append(ptrs, p)
	}
	for _, i := range perm {
		h.Free(ptrs[i])
	}

	require.NoError(t, h.Validate())
}

func TestLawFreeAllocateRoundTripSameSize(t *testing.T) {
	h := newHeap(t)

	p, ok := h.Allocate(48)
	require.True(t, ok)
	h.Free(p)
	q, ok := h.Allocate(48)
	require.True(t, ok)

	require.Equal(t, p, q)
}

func TestLawNoGrowthOnFit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mp := provider.NewMockProvider(ctrl)

	arena := provider.NewArena()
	extendCalls := 0
	mp.EXPECT().Extend(gomock.Any()).DoAndReturn(func(n int) (int, bool) {
		extendCalls++
		return arena.Extend(n)
	}).AnyTimes()
	mp.EXPECT().Words().DoAndReturn(arena.Words).AnyTimes()
	mp.EXPECT().Bounds().DoAndReturn(arena.Bounds).AnyTimes()

	h, err := heap.New(mp)
	require.NoError(t, err)

	a, ok := h.Allocate(64)
	require.True(t, ok)
	h.Free(a)

	before := extendCalls
	b, ok := h.Allocate(64)
	require.True(t, ok)
	require.Equal(t, before, extendCalls, "allocate must not extend the provider when a same-size free block already fits")

	h.Free(b)
}

func TestDoubleFreeLeavesHeapValidInProductionBuilds(t *testing.T) {
	h := newHeap(t)
	p, ok := h.Allocate(16)
	require.True(t, ok)
	h.Free(p)
	// Second free is undefined behaviour; in a non-debug build this must
	// not corrupt the heap into failing Validate.
	h.Free(p)
	require.NoError(t, h.Validate())
}

func TestWriteJSONProducesParseableOutput(t *testing.T) {
	h := newHeap(t)
	_, ok := h.Allocate(16)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, h.WriteJSON(&buf))
	require.Greater(t, buf.Len(), 0)
	require.True(t, json.Valid(buf.Bytes()))
}
