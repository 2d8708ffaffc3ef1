// Package blocktag implements the boundary-tag primitives the allocator
// walks the heap with: reading and writing header/footer words, testing and
// flipping the USED/PREVFREE flags, and locating a block's physical
// neighbours. It is the only package that performs raw word indexing;
// everything above it (freelist, heap) goes through View's methods.
package blocktag

const (
	// WordSize is the size in bytes of one addressable word.
	WordSize = 4
	// Alignment is the minimum block size and the alignment every payload
	// address is guaranteed to satisfy.
	Alignment = 16
	// AlignWords is Alignment expressed in words.
	AlignWords = Alignment / WordSize
	// MinBlockWords is the smallest a free block may be: header + next +
	// prev + footer.
	MinBlockWords = AlignWords
)

const (
	flagUsed     int32 = 1 << 0
	flagPrevFree int32 = 1 << 1
	flagMask     int32 = flagUsed | flagPrevFree
)

// NoLink is the sentinel returned by NextLink/PrevLink when a block has no
// neighbouring free-list link, and the value SetNextLink/SetPrevLink accept
// to clear one.
const NoLink = -1

// View is a word-addressable window over a provider's backing memory. All
// offsets are absolute word indices into that memory, except where a method
// documents otherwise.
type View struct {
	words      []int32
	bucketBase int
	heapStart  int
	epilogue   int
}

// NewView returns a View whose free-list bucket array begins at word offset
// bucketBase. HeapStart and Epilogue must be set once the surrounding layout
// has been established (see heap.New).
func NewView(bucketBase int) *View {
	return &View{bucketBase: bucketBase}
}

// SetWords must be called after every successful Provider.Extend, since the
// backing array may have moved.
func (v *View) SetWords(words []int32) { v.words = words }

// Len returns the total number of words currently backing the view.
func (v *View) Len() int { return len(v.words) }

func (v *View) HeapStart() int      { return v.heapStart }
func (v *View) SetHeapStart(i int)  { v.heapStart = i }
func (v *View) Epilogue() int       { return v.epilogue }
func (v *View) SetEpilogue(i int)   { v.epilogue = i }

// MakeEpilogue writes the epilogue sentinel (size 0, USED) at word offset i
// and records it as the current epilogue.
func (v *View) MakeEpilogue(i int) {
	v.words[i] = flagUsed
	v.epilogue = i
}

// --- free-list bucket array -------------------------------------------------

// BucketHead returns the absolute block offset stored in bucket slot i, or
// EmptyBucketValue() if the bucket is empty.
func (v *View) BucketHead(i int) int { return int(v.words[v.bucketBase+i]) }

// SetBucketHead stores bt (an absolute block offset, or EmptyBucketValue())
// as the head of bucket slot i.
func (v *View) SetBucketHead(i, bt int) { v.words[v.bucketBase+i] = int32(bt) }

// EmptyBucketValue is the sentinel a bucket head holds when the bucket has
// no free blocks: one word before heap_start.
func (v *View) EmptyBucketValue() int { return v.heapStart - 1 }

// --- boundary tag primitives -------------------------------------------------

// Size returns the size in bytes encoded in bt's header.
func (v *View) Size(bt int) int { return int(v.words[bt] &^ flagMask) }

// SizeWords is Size expressed in words.
func (v *View) SizeWords(bt int) int { return v.Size(bt) / WordSize }

// Used reports whether bt's USED bit is set.
func (v *View) Used(bt int) bool { return v.words[bt]&flagUsed != 0 }

// PrevFree reports whether bt's PREVFREE bit is set, i.e. whether the block
// physically preceding bt is free.
func (v *View) PrevFree(bt int) bool { return v.words[bt]&flagPrevFree != 0 }

// Footer returns the word offset of bt's last word (identical to the header
// for free blocks; meaningless to read for used ones, since used blocks
// never have a footer written).
func (v *View) Footer(bt int) int { return bt + v.SizeWords(bt) - 1 }

// Next returns the block immediately following bt, or ok=false if bt is the
// last block before the epilogue.
func (v *View) Next(bt int) (int, bool) {
	n := v.Footer(bt) + 1
	if n == v.epilogue {
		return 0, false
	}
	return n, true
}

// Prev returns the block immediately preceding bt, or ok=false if bt's
// PREVFREE bit is clear (meaning either there is no previous block, or it is
// used and therefore carries no footer to read a size from).
func (v *View) Prev(bt int) (int, bool) {
	if !v.PrevFree(bt) {
		return 0, false
	}
	prevFooter := bt - 1
	prevWords := int(v.words[prevFooter]&^flagMask) / WordSize
	return bt - prevWords, true
}

// PayloadOffset returns the word offset of bt's payload (the word right
// after the header).
func (v *View) PayloadOffset(bt int) int { return bt + 1 }

// BlockFromPayload is the inverse of PayloadOffset.
func (v *View) BlockFromPayload(payload int) int { return payload - 1 }

// Make writes bt's header with the given size and flags, and applies the
// side effects a boundary-tag write must always carry out:
//
//   - if bt is now used, and a next block exists, that block's PREVFREE bit
//     is cleared (a used block never gets a footer written, even when it is
//     the trailing block, since that would clobber its own last payload
//     word);
//   - if bt is now free, its footer is written to match the header (every
//     free block carries one, unconditionally, since coalescing needs to be
//     able to walk backwards from the block that follows it), and if a next
//     block exists, its PREVFREE bit is set.
func (v *View) Make(bt, sizeBytes int, used, prevFree bool) {
	var flags int32
	if used {
		flags |= flagUsed
	}
	if prevFree {
		flags |= flagPrevFree
	}
	v.words[bt] = int32(sizeBytes) | flags

	next, hasNext := v.Next(bt)
	if used {
		if hasNext {
			v.words[next] &^= flagPrevFree
		}
		return
	}
	if hasNext {
		v.words[next] |= flagPrevFree
	}
	v.words[v.Footer(bt)] = v.words[bt]
}

// --- free-list links (word+1 = next, word+2 = prev), offset-from-heap_start encoded ---

// NextLink returns the absolute block offset bt's free-list next link points
// at, or NoLink.
func (v *View) NextLink(bt int) int { return v.decodeLink(v.words[bt+1]) }

// SetNextLink stores target (an absolute block offset, or NoLink) as bt's
// free-list next link.
func (v *View) SetNextLink(bt, target int) { v.words[bt+1] = v.encodeLink(target) }

// PrevLink returns the absolute block offset bt's free-list prev link points
// at, or NoLink.
func (v *View) PrevLink(bt int) int { return v.decodeLink(v.words[bt+2]) }

// SetPrevLink stores target (an absolute block offset, or NoLink) as bt's
// free-list prev link.
func (v *View) SetPrevLink(bt, target int) { v.words[bt+2] = v.encodeLink(target) }

func (v *View) encodeLink(target int) int32 {
	if target == NoLink {
		return -1
	}
	return int32(target - v.heapStart)
}

func (v *View) decodeLink(raw int32) int {
	if raw < 0 {
		return NoLink
	}
	return v.heapStart + int(raw)
}

// --- raw word access, used by diagnostics, payload byte access, realloc's copy and calloc's zero-fill ---

func (v *View) ReadWord(offset int) int32     { return v.words[offset] }
func (v *View) WriteWord(offset int, w int32) { v.words[offset] = w }
