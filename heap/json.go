package heap

import (
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// WriteJSON writes a diagnostic dump of the heap's current block layout,
// the way BlockJsonData does for a Vulkan memory block: not part of the
// allocator's contract, purely for humans debugging fragmentation.
func (h *Heap) WriteJSON(w io.Writer) error {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("heapStart").Int(h.view.HeapStart())
	obj.Name("epilogue").Int(h.view.Epilogue())
	if h.last < 0 {
		obj.Name("last").Null()
	} else {
		obj.Name("last").Int(h.last)
	}
	obj.Name("allocationCount").Int(h.allocCount)

	blocks := obj.Name("blocks").Array()
	h.walkBlocks(func(bt, size int, used bool) {
		b := blocks.Object()
		b.Name("offset").Int(bt)
		b.Name("sizeBytes").Int(size)
		b.Name("used").Bool(used)
		b.End()
	})
	blocks.End()
	obj.End()

	if err := writer.Error(); err != nil {
		return err
	}
	_, err := w.Write(writer.Bytes())
	return err
}
