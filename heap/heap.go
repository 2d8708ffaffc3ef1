// Package heap implements the allocation engine, reclamation engine, and
// heap-extension policy on top of blocktag and freelist: the client-facing
// half of the allocator.
package heap

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"

	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/freelist"
	"github.com/segfit/heapalloc/provider"
)

// Ptr is a lightweight handle standing in for a raw payload pointer: a word
// offset into the owning Heap's backing memory, plus a nil flag. Ptr values
// from different Heaps must never be mixed.
type Ptr struct {
	offset int
	valid  bool
}

// NilPtr is the null pointer every failed or zero-sized request returns.
func NilPtr() Ptr { return Ptr{} }

// IsNil reports whether p is the null pointer.
func (p Ptr) IsNil() bool { return !p.valid }

// Heap is a single-threaded, single-contiguous-region boundary-tag
// allocator. It is not safe for concurrent use: there is exactly one thread
// of control and no re-entrancy.
type Heap struct {
	provider provider.Provider
	view     *blocktag.View
	freeList *freelist.Index
	last     int // block offset of the trailing block, or blocktag.NoLink

	live       *swiss.Map[int, int] // payload offset -> requested byte size
	allocCount int

	logger *slog.Logger
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithLogger attaches a structured logger. A nil logger (the default)
// discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Heap) {
		if l == nil {
			l = discardLogger()
		}
		h.logger = l
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// New constructs a Heap over p in three steps: reserve the segregated-list
// bucket array at the start of the provider's memory, pad so the first
// block's header lands 12 bytes below a 16-byte boundary, then reserve the
// epilogue word.
func New(p provider.Provider, opts ...Option) (*Heap, error) {
	h := &Heap{
		provider: p,
		last:     blocktag.NoLink,
		live:     swiss.NewMap[int, int](16),
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}

	bucketBase, ok := p.Extend(freelist.NBuckets * blocktag.WordSize)
	if !ok {
		return nil, cerrors.Wrap(errOutOfMemory(), "reserving free-list bucket array")
	}

	h.view = blocktag.NewView(bucketBase)
	h.view.SetWords(p.Words())

	currentWords := bucketBase + freelist.NBuckets
	currentBytes := currentWords * blocktag.WordSize
	remainder := currentBytes % blocktag.Alignment
	var padBytes int
	if remainder > 12 {
		padBytes = blocktag.Alignment - remainder - 12
	} else {
		padBytes = 12 - remainder
	}
	if padBytes > 0 {
		if _, ok := p.Extend(padBytes); !ok {
			return nil, cerrors.Wrap(errOutOfMemory(), "reserving alignment padding")
		}
		h.view.SetWords(p.Words())
	}

	epilogueOffset, ok := p.Extend(blocktag.WordSize)
	if !ok {
		return nil, cerrors.Wrap(errOutOfMemory(), "reserving epilogue word")
	}
	h.view.SetWords(p.Words())
	h.view.SetHeapStart(epilogueOffset)
	h.view.MakeEpilogue(epilogueOffset)

	h.freeList = freelist.New(h.view)
	h.freeList.InitEmpty()

	return h, nil
}
