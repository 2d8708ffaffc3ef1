package support_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segfit/heapalloc/support"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, support.CheckPow2(16))
	require.NoError(t, support.CheckPow2(1))
	require.Error(t, support.CheckPow2(0))
	require.Error(t, support.CheckPow2(12))
	require.Error(t, support.CheckPow2(-16))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 16, support.AlignUp(1, 16))
	require.Equal(t, 16, support.AlignUp(16, 16))
	require.Equal(t, 32, support.AlignUp(17, 16))
	require.Equal(t, 0, support.AlignUp(0, 16))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 0, support.AlignDown(15, 16))
	require.Equal(t, 16, support.AlignDown(31, 16))
	require.Equal(t, 16, support.AlignDown(16, 16))
}
