//go:build debug_heapalloc

package support

import "fmt"

// DebugValidate panics if v reports an invariant violation. It is compiled
// out entirely unless the debug_heapalloc build tag is set, so it never
// costs anything in a production build.
func DebugValidate(v Validatable) {
	if err := v.Validate(); err != nil {
		panic(fmt.Sprintf("heapalloc: invariant violated: %v", err))
	}
}

// DebugCheckPow2 panics if v is not a power of two.
func DebugCheckPow2[T Number](v T) {
	if err := CheckPow2(v); err != nil {
		panic(fmt.Sprintf("heapalloc: %v", err))
	}
}

// DebugAssert panics with the given message if cond is false.
func DebugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("heapalloc: "+format, args...))
	}
}
