package heap

import (
	"github.com/segfit/heapalloc/blocktag"
	"github.com/segfit/heapalloc/support"
)

// walkBlocks visits every physical block from heap_start to the epilogue,
// in address order.
func (h *Heap) walkBlocks(fn func(bt, sizeBytes int, used bool)) {
	v := h.view
	bt := v.HeapStart()
	for bt != v.Epilogue() {
		fn(bt, v.Size(bt), v.Used(bt))
		next, ok := v.Next(bt)
		if !ok {
			return
		}
		bt = next
	}
}

func (h *Heap) totalBytes() int {
	return (h.view.Epilogue() - h.view.HeapStart()) * blocktag.WordSize
}

// AddStatistics folds this heap's coarse occupancy into stats.
func (h *Heap) AddStatistics(stats *support.Statistics) {
	stats.BlockCount++
	stats.BlockBytes += h.totalBytes()
	stats.AllocationCount += h.allocCount
	used := 0
	h.walkBlocks(func(_ int, size int, isUsed bool) {
		if isUsed {
			used += size
		}
	})
	stats.AllocationBytes += used
}

// AddDetailedStatistics folds per-region occupancy into stats, useful for
// judging fragmentation.
func (h *Heap) AddDetailedStatistics(stats *support.DetailedStatistics) {
	stats.BlockCount++
	stats.BlockBytes += h.totalBytes()
	h.walkBlocks(func(_ int, size int, isUsed bool) {
		if isUsed {
			stats.AddAllocation(size)
		} else {
			stats.AddUnusedRange(size)
		}
	})
}
