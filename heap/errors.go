package heap

import "github.com/segfit/heapalloc/support"

func errOutOfMemory() error { return support.ErrOutOfMemory }
