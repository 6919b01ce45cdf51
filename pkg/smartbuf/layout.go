package smartbuf

import "fmt"

// DefaultThreshold is the inline/heap boundary used by the Default region
// type and the preset constructors: buffers whose rounded size is at most
// this many bytes live inline.
const DefaultThreshold = 32

// RoundUp8 rounds n up to the next multiple of 8. The result is always at
// least n, is divisible by 8, and exceeds n by less than 8. n must be
// non-negative and small enough that n+7 does not overflow.
func RoundUp8(n int) int {
	return (n + 7) &^ 7
}

// Layout describes how a buffer of a given requested size is stored under a
// given threshold. It is pure arithmetic: two buffers with equal Size and
// Threshold always have equal layouts.
type Layout struct {
	// Size is the requested logical size in bytes.
	Size int
	// Actual is Size rounded up to the next multiple of 8. The backing
	// region is always exactly this long.
	Actual int
	// Threshold is the inline/heap boundary in bytes.
	Threshold int
	// Inline reports whether the region is embedded in the handle
	// (Actual <= Threshold) rather than heap-allocated.
	Inline bool
}

// LayoutOf computes the storage layout for a requested size and threshold.
// It panics if either argument is negative; there are no other failure
// modes.
func LayoutOf(size, threshold int) Layout {
	if size < 0 {
		panic("smartbuf: negative size")
	}
	if threshold < 0 {
		panic("smartbuf: negative threshold")
	}
	actual := RoundUp8(size)
	return Layout{
		Size:      size,
		Actual:    actual,
		Threshold: threshold,
		Inline:    actual <= threshold,
	}
}

// String returns a compact single-line description, e.g.
// "size=33 actual=40 threshold=32 heap".
func (l Layout) String() string {
	strategy := "heap"
	if l.Inline {
		strategy = "inline"
	}
	return fmt.Sprintf("size=%d actual=%d threshold=%d %s", l.Size, l.Actual, l.Threshold, strategy)
}
