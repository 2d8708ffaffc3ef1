package heap

import (
	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/freelist"
	"github.com/segfit/heapalloc/support"
)

// Allocate reserves at least nBytes of payload and returns a Ptr to it.
// nBytes == 0 always returns the null pointer without touching the heap.
func (h *Heap) Allocate(nBytes int) (Ptr, bool) {
	defer support.DebugValidate(h)

	if nBytes <= 0 {
		return NilPtr(), false
	}

	sizeBytes := support.AlignUp(blocktag.WordSize+nBytes, blocktag.Alignment)
	words := sizeBytes / blocktag.WordSize

	if bt, ok := h.findFit(words); ok {
		h.place(bt, words)
		return h.ptrFor(bt, nBytes), true
	}

	needed := sizeBytes
	if h.last != blocktag.NoLink && !h.view.Used(h.last) {
		trailing := h.view.Size(h.last)
		needed -= trailing
		// find_fit already missed, so the trailing free block (if any) was
		// too small on its own to satisfy the request; the shortfall can
		// never be non-positive.
		support.DebugAssert(needed > 0, "extend_heap shortfall %d is non-positive: trailing free block should have satisfied the request via findFit", needed)
	}

	bt, ok := h.extendHeap(needed)
	if !ok {
		h.logger.Warn("heap extension failed", "requestedBytes", needed)
		return NilPtr(), false
	}
	h.place(bt, words)
	return h.ptrFor(bt, nBytes), true
}

func (h *Heap) ptrFor(bt, requestedBytes int) Ptr {
	offset := h.view.PayloadOffset(bt)
	h.live.Put(offset, requestedBytes)
	h.allocCount++
	return Ptr{offset: offset, valid: true}
}

// findFit performs a bucket-by-bucket first-fit scan: start at the bucket
// the request would live in, skip past empty buckets, and within a
// non-empty bucket return the first block large enough (buckets never need
// a full scan once a size boundary is crossed, since strictly larger
// buckets only ever hold blocks that already fit).
func (h *Heap) findFit(words int) (int, bool) {
	idx := freelist.FindBucket(words)
	for idx < freelist.NBuckets {
		if h.freeList.Empty(idx) {
			idx++
			continue
		}
		bt := h.freeList.Head(idx)
		for bt != blocktag.NoLink {
			if h.view.SizeWords(bt) >= words {
				return bt, true
			}
			bt = h.view.NextLink(bt)
		}
		idx++
	}
	return 0, false
}

// place carves words out of the free block bt, splitting off the remainder
// as a new free block when the leftover is big enough to stand on its own.
func (h *Heap) place(bt, words int) {
	v := h.view
	freeWords := v.SizeWords(bt)
	prevFree := v.PrevFree(bt)

	h.freeList.Delete(bt)

	if freeWords-words >= blocktag.MinBlockWords {
		v.Make(bt, words*blocktag.WordSize, true, prevFree)
		remaining, _ := v.Next(bt)
		v.Make(remaining, (freeWords-words)*blocktag.WordSize, false, false)
		h.freeList.Append(remaining)
		if h.last == bt {
			h.last = remaining
		}
		return
	}

	v.Make(bt, freeWords*blocktag.WordSize, true, prevFree)
}
