//go:build !debug_heapalloc

package support

// DebugValidate is a no-op outside of debug_heapalloc builds.
func DebugValidate(v Validatable) {}

// DebugCheckPow2 is a no-op outside of debug_heapalloc builds.
func DebugCheckPow2[T Number](v T) {}

// DebugAssert is a no-op outside of debug_heapalloc builds.
func DebugAssert(cond bool, format string, args ...any) {}
