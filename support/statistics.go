package support

// Statistics is a coarse rollup of a heap's occupancy, mirroring the
// teacher's block-metadata statistics shape.
type Statistics struct {
	BlockCount      int
	BlockBytes      int
	AllocationCount int
	AllocationBytes int
}

func (s *Statistics) Clear() {
	*s = Statistics{}
}

func (s *Statistics) AddStatistics(other Statistics) {
	s.BlockCount += other.BlockCount
	s.BlockBytes += other.BlockBytes
	s.AllocationCount += other.AllocationCount
	s.AllocationBytes += other.AllocationBytes
}

// DetailedStatistics additionally tracks the shape of unused space, useful
// for judging fragmentation.
type DetailedStatistics struct {
	Statistics
	UnusedRangeCount int
	AllocationSizeMin int
	AllocationSizeMax int
	UnusedRangeSizeMin int
	UnusedRangeSizeMax int
}

func (s *DetailedStatistics) Clear() {
	*s = DetailedStatistics{}
}

func (s *DetailedStatistics) AddAllocation(sizeBytes int) {
	s.AllocationCount++
	s.AllocationBytes += sizeBytes
	if s.AllocationSizeMin == 0 || sizeBytes < s.AllocationSizeMin {
		s.AllocationSizeMin = sizeBytes
	}
	if sizeBytes > s.AllocationSizeMax {
		s.AllocationSizeMax = sizeBytes
	}
}

func (s *DetailedStatistics) AddUnusedRange(sizeBytes int) {
	s.UnusedRangeCount++
	if s.UnusedRangeSizeMin == 0 || sizeBytes < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = sizeBytes
	}
	if sizeBytes > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = sizeBytes
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other DetailedStatistics) {
	s.Statistics.AddStatistics(other.Statistics)
	s.UnusedRangeCount += other.UnusedRangeCount
	if s.AllocationSizeMin == 0 || (other.AllocationSizeMin != 0 && other.AllocationSizeMin < s.AllocationSizeMin) {
		s.AllocationSizeMin = other.AllocationSizeMin
	}
	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
	if s.UnusedRangeSizeMin == 0 || (other.UnusedRangeSizeMin != 0 && other.UnusedRangeSizeMin < s.UnusedRangeSizeMin) {
		s.UnusedRangeSizeMin = other.UnusedRangeSizeMin
	}
	if other.UnusedRangeSizeMax > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = other.UnusedRangeSizeMax
	}
}
