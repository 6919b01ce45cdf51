package smartbuf

import "fmt"

// Default is the standard region type: a 32-byte inline area, so buffers up
// to 32 bytes (after rounding) live in the handle and larger ones go to the
// heap.
type Default = [32]byte

// NoInline is a zero-length region type. Every buffer built on it is
// heap-allocated regardless of size, which keeps handles small when buffers
// are known to be large.
type NoInline = [0]byte

// Inline64 raises the inline boundary to 64 bytes.
type Inline64 = [64]byte

// Inline128 raises the inline boundary to 128 bytes.
type Inline128 = [128]byte

// Inline256 raises the inline boundary to 256 bytes.
type Inline256 = [256]byte

// NewDefault creates a zeroed buffer with the standard 32-byte inline
// boundary. It is shorthand for New[Default](size).
func NewDefault(size int) *Buffer[Default] {
	return New[Default](size)
}

// NewHeap creates a zeroed buffer that is always heap-allocated. It is
// shorthand for New[NoInline](size).
func NewHeap(size int) *Buffer[NoInline] {
	return New[NoInline](size)
}

// NewInline creates a zeroed buffer that is guaranteed to live in the
// handle. Unlike New, which silently falls back to the heap when the
// rounded size exceeds the region, NewInline panics in that case, making
// the no-allocation property a checked part of the call site.
func NewInline[T any](size int) *Buffer[T] {
	threshold := regionLen[T]()
	if l := LayoutOf(size, threshold); !l.Inline {
		panic(fmt.Sprintf("smartbuf: size %d needs %d bytes, inline region holds %d", size, l.Actual, threshold))
	}
	return New[T](size)
}

// New8B creates an 8-byte buffer with the standard inline boundary.
func New8B() *Buffer[Default] {
	return NewDefault(8)
}

// New16B creates a 16-byte buffer with the standard inline boundary.
func New16B() *Buffer[Default] {
	return NewDefault(16)
}

// New32B creates a 32-byte buffer with the standard inline boundary.
func New32B() *Buffer[Default] {
	return NewDefault(32)
}

// New64B creates a 64-byte buffer with the standard inline boundary.
func New64B() *Buffer[Default] {
	return NewDefault(64)
}

// New128B creates a 128-byte buffer with the standard inline boundary.
func New128B() *Buffer[Default] {
	return NewDefault(128)
}

// New256B creates a 256-byte buffer with the standard inline boundary.
func New256B() *Buffer[Default] {
	return NewDefault(256)
}

// New512B creates a 512-byte buffer with the standard inline boundary.
func New512B() *Buffer[Default] {
	return NewDefault(512)
}

// New1KB creates a 1KB buffer with the standard inline boundary.
func New1KB() *Buffer[Default] {
	return NewDefault(1 << 10)
}

// New2KB creates a 2KB buffer with the standard inline boundary.
func New2KB() *Buffer[Default] {
	return NewDefault(1 << 11)
}

// New4KB creates a 4KB buffer with the standard inline boundary.
func New4KB() *Buffer[Default] {
	return NewDefault(1 << 12)
}
