package provider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segfit/heapalloc/provider"
)

func TestArenaExtendGrowsSequentially(t *testing.T) {
	a := provider.NewArena()

	off1, ok := a.Extend(16)
	require.True(t, ok)
	require.Equal(t, 0, off1)

	off2, ok := a.Extend(32)
	require.True(t, ok)
	require.Equal(t, 4, off2)

	low, high := a.Bounds()
	require.Equal(t, 0, low)
	require.Equal(t, 12, high)
	require.Len(t, a.Words(), 12)
}

func TestArenaExtendRejectsNonWordMultiples(t *testing.T) {
	a := provider.NewArena()
	_, ok := a.Extend(3)
	require.False(t, ok)
	_, ok = a.Extend(0)
	require.False(t, ok)
}

func TestBoundedArenaRefusesOverGrowth(t *testing.T) {
	a := provider.NewBoundedArena(4)
	_, ok := a.Extend(12)
	require.True(t, ok)
	_, ok = a.Extend(8)
	require.False(t, ok)
}
