package provider

import "math"

// WordSize is the size in bytes of a single addressable word.
const WordSize = 4

// Arena is a growable, in-process Provider backed by a Go slice. It plays
// the role memlib's flat simulated heap plays for a course allocator: it
// exists purely so the allocator can be exercised without a real OS-backed
// memory source.
type Arena struct {
	words []int32
	// maxWords caps how far the arena will grow, standing in for a real
	// address space limit. Zero means unbounded.
	maxWords int
}

// NewArena returns an empty, unbounded Arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewBoundedArena returns an Arena that refuses to grow past maxWords words,
// useful for exercising out-of-memory paths in tests.
func NewBoundedArena(maxWords int) *Arena {
	return &Arena{maxWords: maxWords}
}

func (a *Arena) Extend(bytes int) (int, bool) {
	if bytes <= 0 || bytes%WordSize != 0 {
		return 0, false
	}
	n := bytes / WordSize
	offset := len(a.words)
	if offset > math.MaxInt32-n {
		return 0, false
	}
	if a.maxWords != 0 && offset+n > a.maxWords {
		return 0, false
	}
	a.words = append(a.words, make([]int32, n)...)
	return offset, true
}

func (a *Arena) Words() []int32 {
	return a.words
}

func (a *Arena) Bounds() (int, int) {
	return 0, len(a.words)
}

var _ Provider = (*Arena)(nil)
