package support

import cerrors "github.com/cockroachdb/errors"

// Number is the set of integer types the alignment helpers operate on.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// CheckPow2 reports an error if v is not a power of two. Zero is not a
// power of two.
func CheckPow2[T Number](v T) error {
	if v <= 0 || v&(v-1) != 0 {
		return cerrors.Wrapf(ErrNotPowerOfTwo, "%v", v)
	}
	return nil
}

// AlignUp rounds v up to the nearest multiple of alignment. alignment must
// be a power of two.
func AlignUp[T Number](v, alignment T) T {
	return (v + alignment - 1) &^ (alignment - 1)
}

// AlignDown rounds v down to the nearest multiple of alignment. alignment
// must be a power of two.
func AlignDown[T Number](v, alignment T) T {
	return v &^ (alignment - 1)
}
