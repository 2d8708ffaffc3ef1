package heap

import (
	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/support"
)

// extendHeap grows the underlying provider by sizeBytes, folds the growth
// into a new free block B starting at the current epilogue, writes a fresh
// epilogue past it, and immediately coalesces B with the trailing block if
// it was free — this is what lets a string of small allocations followed by
// frees keep a single trailing free region instead of fragmenting the tail.
func (h *Heap) extendHeap(sizeBytes int) (int, bool) {
	support.DebugAssert(sizeBytes > 0 && sizeBytes%blocktag.Alignment == 0,
		"extend_heap requested a non-block-aligned size: %d", sizeBytes)

	if _, ok := h.provider.Extend(sizeBytes); !ok {
		return 0, false
	}
	h.view.SetWords(h.provider.Words())

	bt := h.view.Epilogue()
	prevFree := h.last != blocktag.NoLink && !h.view.Used(h.last)
	h.view.Make(bt, sizeBytes, false, prevFree)

	newEpilogue := bt + sizeBytes/blocktag.WordSize
	h.view.MakeEpilogue(newEpilogue)
	h.last = bt

	h.logger.Debug("heap extended", "bytes", sizeBytes, "block", bt)

	return h.coalesce(bt), true
}
