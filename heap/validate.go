package heap

import (
	"github.com/pkg/errors"

	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/freelist"
	"github.com/segfit/heapalloc/support"
)

// Validate walks the whole physical block chain and reports the first
// invariant violation it finds: unaligned or undersized blocks, a PREVFREE
// bit that disagrees with the previous block's real state, two adjacent
// free blocks, a free block missing from its expected bucket, a corrupt
// footer, or a trailing block that doesn't match h.last.
func (h *Heap) Validate() error {
	v := h.view

	bt := v.HeapStart()
	prevWasFree := false
	sawAny := false
	lastSeen := blocktag.NoLink

	for bt != v.Epilogue() {
		sawAny = true
		lastSeen = bt

		size := v.Size(bt)
		if size < blocktag.Alignment {
			return errors.Errorf("block at %d has size %d below the minimum block size", bt, size)
		}
		if size%blocktag.Alignment != 0 {
			return errors.Errorf("block at %d has non-aligned size %d", bt, size)
		}
		if v.PrevFree(bt) != prevWasFree {
			return errors.Errorf("block at %d has PREVFREE=%v but the previous block's free state is %v", bt, v.PrevFree(bt), prevWasFree)
		}

		used := v.Used(bt)
		if !used {
			if prevWasFree {
				return errors.Errorf("two adjacent free blocks meeting at %d", bt)
			}
			footer := v.Footer(bt)
			if v.ReadWord(footer) != v.ReadWord(bt) {
				return errors.Errorf("free block at %d has a header/footer mismatch", bt)
			}
			idx := freelist.FindBucket(v.SizeWords(bt))
			if !h.freeList.Contains(idx, bt) {
				return errors.Wrapf(freelist.ErrBucketOutOfRange, "block at %d, expected bucket %d", bt, idx)
			}
		}

		prevWasFree = !used
		next, ok := v.Next(bt)
		if !ok {
			break
		}
		bt = next
	}

	if !sawAny {
		if h.last != blocktag.NoLink {
			return errors.Errorf("heap has no blocks but last=%d", h.last)
		}
		return nil
	}
	if lastSeen != h.last {
		return errors.Errorf("trailing block is %d but h.last=%d", lastSeen, h.last)
	}
	return nil
}

var _ support.Validatable = (*Heap)(nil)
