package heap

import (
	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/support"
)

// Free releases the block backing p. Freeing the null pointer is a no-op.
// A pointer that is not a live allocation of this Heap (one already freed,
// or one this Heap never returned) is looked up in the live-allocation
// registry in every build: debug builds panic, production builds ignore
// the call and leave the heap unchanged.
func (h *Heap) Free(p Ptr) {
	if p.IsNil() {
		return
	}
	defer support.DebugValidate(h)

	if _, ok := h.live.Get(p.offset); !ok {
		support.DebugAssert(false, "double free or invalid pointer at payload offset %d", p.offset)
		return
	}
	h.live.Delete(p.offset)
	h.allocCount--

	bt := h.view.BlockFromPayload(p.offset)
	prevFree := h.view.PrevFree(bt)
	h.view.Make(bt, h.view.Size(bt), false, prevFree)

	nextFree := false
	if next, ok := h.view.Next(bt); ok {
		nextFree = !h.view.Used(next)
	}

	if prevFree || nextFree {
		h.coalesce(bt)
	} else {
		h.freeList.Append(bt)
	}
}

// coalesce merges bt with whichever physical neighbours are currently free,
// removing them from their buckets, folding their size into bt (or, when
// the previous block absorbs bt, into that block instead), and re-inserting
// the result. It always leaves exactly one free block behind and keeps
// h.last pointing at whichever block ends up being the trailing one.
func (h *Heap) coalesce(bt int) int {
	v := h.view

	prev := blocktag.NoLink
	if p, ok := v.Prev(bt); ok {
		prev = p
	}
	next := blocktag.NoLink
	nextFree := false
	if n, ok := v.Next(bt); ok {
		next = n
		nextFree = !v.Used(next)
	}

	lastChanges := bt == h.last || (nextFree && next == h.last)

	words := v.SizeWords(bt)
	if nextFree {
		h.freeList.Delete(next)
		words += v.SizeWords(next)
	}
	if prev != blocktag.NoLink {
		h.freeList.Delete(prev)
		words += v.SizeWords(prev)
		bt = prev
	}

	v.Make(bt, words*blocktag.WordSize, false, v.PrevFree(bt))
	h.freeList.Append(bt)

	if lastChanges {
		h.last = bt
	}
	return bt
}
