package heapalloc

// Version identifies the on-disk block layout: word size, header bit
// assignment and bucket count. A Provider's backing store is only valid for
// heaps built with a matching layout.
const Version = "1.0.0"
