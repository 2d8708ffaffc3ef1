// Package support carries the ambient stack shared by the allocator's
// packages: error values, alignment/power-of-two helpers, statistics
// aggregation, and the debug-build validation hooks.
package support

import "github.com/pkg/errors"

// ErrOutOfMemory is returned when the underlying memory provider cannot
// grow the heap far enough to satisfy a request.
var ErrOutOfMemory error = errors.New("heap provider could not extend memory")

// ErrIntegerOverflow describes an n*size overflow. ZeroAllocate reports
// such an overflow as a failed allocation (ok=false) and does not return
// this value.
var ErrIntegerOverflow error = errors.New("allocation size overflows a machine word")

// ErrNotPowerOfTwo is returned by CheckPow2 when the tested value isn't one.
var ErrNotPowerOfTwo error = errors.New("value must be a power of two")
