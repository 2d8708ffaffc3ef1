package heap

import (
	"github.com/segfit/heapalloc/blocktag"
)

// Reallocate resizes the allocation backing p to nBytes, preserving as much
// of its contents as fits. Reallocate(nil, n) behaves like Allocate(n);
// Reallocate(p, 0) behaves like Free(p) and returns the null pointer.
//
// The byte count copied out of the old block is (old block size - WSIZE),
// not the caller's originally requested size. Since block sizes are always
// rounded up to Alignment, this can copy a few bytes of internal padding
// past what the caller asked for, but never past what the old block's
// header claims to own, and the destination is always at least that large
// whenever no truncation occurs.
func (h *Heap) Reallocate(p Ptr, nBytes int) (Ptr, bool) {
	if nBytes == 0 {
		h.Free(p)
		return NilPtr(), false
	}
	if p.IsNil() {
		return h.Allocate(nBytes)
	}

	oldBt := h.view.BlockFromPayload(p.offset)
	oldPayloadBytes := h.view.Size(oldBt) - blocktag.WordSize

	newPtr, ok := h.Allocate(nBytes)
	if !ok {
		return NilPtr(), false
	}

	newBt := h.view.BlockFromPayload(newPtr.offset)
	newPayloadBytes := h.view.Size(newBt) - blocktag.WordSize

	n := oldPayloadBytes
	if newPayloadBytes < n {
		n = newPayloadBytes
	}
	if n > 0 {
		copyWords(h.view, oldBt+1, newBt+1, n)
	}

	h.Free(p)
	return newPtr, true
}

// ZeroAllocate allocates room for n*size bytes and zeroes the full returned
// block (not just the n*size bytes requested — the caller may have rounded
// up into padding that a naive zero-fill would leave stale). An overflow in
// n*size is treated as an allocation failure rather than silently wrapping.
func (h *Heap) ZeroAllocate(n, size int) (Ptr, bool) {
	if n < 0 || size < 0 {
		return NilPtr(), false
	}
	total := n * size
	if size != 0 && total/size != n {
		return NilPtr(), false
	}

	p, ok := h.Allocate(total)
	if !ok {
		return NilPtr(), false
	}

	bt := h.view.BlockFromPayload(p.offset)
	payloadWords := (h.view.Size(bt) - blocktag.WordSize) / blocktag.WordSize
	for i := 0; i < payloadWords; i++ {
		h.view.WriteWord(p.offset+i, 0)
	}
	return p, true
}

func copyWords(v *blocktag.View, srcPayload, dstPayload, nBytes int) {
	n := nBytes / blocktag.WordSize
	for i := 0; i < n; i++ {
		v.WriteWord(dstPayload+i, v.ReadWord(srcPayload+i))
	}
}
