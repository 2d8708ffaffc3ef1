package freelist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/freelist"
)

// fixture builds a view with a NBuckets-word bucket array immediately
// followed by heapStart, backed by enough words for a handful of
// 16-byte (4-word) blocks plus an epilogue.
func fixture(totalWords int) (*blocktag.View, *freelist.Index) {
	v := blocktag.NewView(0)
	v.SetWords(make([]int32, freelist.NBuckets+totalWords))
	v.SetHeapStart(freelist.NBuckets)
	fl := freelist.New(v)
	fl.InitEmpty()
	return v, fl
}

func TestFindBucketBoundaries(t *testing.T) {
	require.Equal(t, 0, freelist.FindBucket(4))  // 16 bytes
	require.Equal(t, 1, freelist.FindBucket(5))  // 20 bytes -> (16,32]
	require.Equal(t, 1, freelist.FindBucket(8))  // 32 bytes
	require.Equal(t, 2, freelist.FindBucket(9))  // 36 bytes -> (32,64]
	require.Equal(t, 9, freelist.FindBucket(2000))
}

func TestAppendSingleBlockBecomesHead(t *testing.T) {
	v, fl := fixture(8)
	heapStart := v.HeapStart()
	v.SetEpilogue(heapStart + 4)
	v.Make(heapStart, 16, false, false)

	fl.Append(heapStart)

	idx := freelist.FindBucket(4)
	require.False(t, fl.Empty(idx))
	require.Equal(t, heapStart, fl.Head(idx))
	require.True(t, fl.Contains(idx, heapStart))
}

func TestAppendIsLIFO(t *testing.T) {
	v, fl := fixture(8)
	heapStart := v.HeapStart()
	a, b := heapStart, heapStart+4
	v.SetEpilogue(heapStart + 8)
	v.Make(a, 16, false, false)
	v.Make(b, 16, false, false)

	fl.Append(a)
	fl.Append(b)

	idx := freelist.FindBucket(4)
	require.Equal(t, b, fl.Head(idx))
	require.Equal(t, a, v.NextLink(b))
	require.Equal(t, b, v.PrevLink(a))
}

func TestDeleteSoleElement(t *testing.T) {
	v, fl := fixture(4)
	heapStart := v.HeapStart()
	v.SetEpilogue(heapStart + 4)
	v.Make(heapStart, 16, false, false)
	fl.Append(heapStart)

	fl.Delete(heapStart)

	idx := freelist.FindBucket(4)
	require.True(t, fl.Empty(idx))
}

func TestDeleteHeadNotSole(t *testing.T) {
	v, fl := fixture(8)
	heapStart := v.HeapStart()
	a, b := heapStart, heapStart+4
	v.SetEpilogue(heapStart + 8)
	v.Make(a, 16, false, false)
	v.Make(b, 16, false, false)
	fl.Append(a)
	fl.Append(b) // head is now b

	fl.Delete(b)

	idx := freelist.FindBucket(4)
	require.Equal(t, a, fl.Head(idx))
	require.Equal(t, blocktag.NoLink, v.PrevLink(a))
}

func TestDeleteMiddleAndTail(t *testing.T) {
	v, fl := fixture(12)
	heapStart := v.HeapStart()
	a, b, c := heapStart, heapStart+4, heapStart+8
	v.SetEpilogue(heapStart + 12)
	v.Make(a, 16, false, false)
	v.Make(b, 16, false, false)
	v.Make(c, 16, false, false)
	fl.Append(a) // list: a
	fl.Append(b) // list: b -> a
	fl.Append(c) // list: c -> b -> a

	fl.Delete(b) // middle

	idx := freelist.FindBucket(4)
	require.Equal(t, c, fl.Head(idx))
	require.Equal(t, a, v.NextLink(c))
	require.Equal(t, c, v.PrevLink(a))

	fl.Delete(a) // now tail

	require.Equal(t, blocktag.NoLink, v.NextLink(c))
}
