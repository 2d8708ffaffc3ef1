package heapalloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segfit/heapalloc"
)

func TestFacadeRoundTrip(t *testing.T) {
	h, err := heapalloc.New(heapalloc.NewArena())
	require.NoError(t, err)

	p, ok := h.Allocate(24)
	require.True(t, ok)
	require.False(t, p.IsNil())

	h.Free(p)
	require.NoError(t, h.Validate())
}

func TestFacadeBoundedArenaRefusesOvergrowth(t *testing.T) {
	h, err := heapalloc.New(heapalloc.NewBoundedArena(64))
	require.NoError(t, err)

	_, ok := h.Allocate(1 << 20)
	require.False(t, ok)
}
