// Package freelist implements the segregated free-list index: ten
// power-of-two-sized buckets of free blocks, each a doubly linked LIFO list
// threaded through the blocktag link words.
package freelist

import (
	"github.com/pkg/errors"

	"github.com/segfit/heapalloc/blocktag"
)

// NBuckets is the fixed number of size classes.
const NBuckets = 10

var (
	// ErrBucketOutOfRange is wrapped by Heap.Validate when a free block is
	// not found in the bucket FindBucket assigns to its size.
	ErrBucketOutOfRange = errors.New("free block does not belong in its bucket")
)

// Index is a segregated free-list over a blocktag.View. It holds no memory
// of its own beyond the view's bucket-array words.
type Index struct {
	view *blocktag.View
}

// New returns an Index over view. InitEmpty must be called once before use
// on a freshly initialized heap.
func New(view *blocktag.View) *Index {
	return &Index{view: view}
}

// InitEmpty marks every bucket empty.
func (fl *Index) InitEmpty() {
	empty := fl.view.EmptyBucketValue()
	for i := 0; i < NBuckets; i++ {
		fl.view.SetBucketHead(i, empty)
	}
}

// FindBucket returns the bucket index a free block of the given word count
// belongs in. Bucket 0 holds the minimum block size (16 bytes); buckets 1
// through NBuckets-2 double the upper bound each time; the last bucket is
// unbounded above.
func FindBucket(words int) int {
	size := words * blocktag.WordSize
	boundary := blocktag.Alignment
	index := 0
	for {
		if size <= boundary {
			return index
		}
		index++
		if index >= NBuckets-1 {
			return NBuckets - 1
		}
		boundary <<= 1
	}
}

// Empty reports whether bucket i currently holds no free blocks.
func (fl *Index) Empty(i int) bool {
	return fl.view.BucketHead(i) == fl.view.EmptyBucketValue()
}

// Head returns the first block in bucket i, or the empty sentinel — callers
// should check Empty first.
func (fl *Index) Head(i int) int {
	return fl.view.BucketHead(i)
}

// Append inserts bt at the head of the bucket matching its current size.
func (fl *Index) Append(bt int) {
	v := fl.view
	idx := FindBucket(v.SizeWords(bt))
	head := v.BucketHead(idx)

	v.SetPrevLink(bt, blocktag.NoLink)
	if head == v.EmptyBucketValue() {
		v.SetNextLink(bt, blocktag.NoLink)
	} else {
		v.SetNextLink(bt, head)
		v.SetPrevLink(head, bt)
	}
	v.SetBucketHead(idx, bt)
}

// Delete unlinks bt from the bucket matching its current size. bt must
// currently be present in that bucket.
func (fl *Index) Delete(bt int) {
	v := fl.view
	idx := FindBucket(v.SizeWords(bt))
	head := v.BucketHead(idx)
	next := v.NextLink(bt)
	prev := v.PrevLink(bt)

	switch {
	case head == bt && next == blocktag.NoLink:
		// bt is the only block in the bucket.
		v.SetBucketHead(idx, v.EmptyBucketValue())
	case head == bt:
		// bt is the head, but other blocks follow it.
		v.SetBucketHead(idx, next)
		v.SetPrevLink(next, blocktag.NoLink)
	case next != blocktag.NoLink:
		// bt is in the middle of the list.
		v.SetNextLink(prev, next)
		v.SetPrevLink(next, prev)
	default:
		// bt is the tail.
		v.SetNextLink(prev, blocktag.NoLink)
	}
}

// Contains reports whether bt currently appears in bucket i's list. Used
// only by Heap.Validate.
func (fl *Index) Contains(i, bt int) bool {
	v := fl.view
	cur := v.BucketHead(i)
	if cur == v.EmptyBucketValue() {
		return false
	}
	for cur != blocktag.NoLink {
		if cur == bt {
			return true
		}
		cur = v.NextLink(cur)
	}
	return false
}
