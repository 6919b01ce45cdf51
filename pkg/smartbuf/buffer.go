package smartbuf

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Buffer is a fixed-size byte buffer backed by one of two storage
// strategies, selected once at construction and never revisited: a region
// embedded in the handle itself (inline) or a single exclusively-owned heap
// allocation. The type parameter T must be a byte array ([N]byte); it is
// both the inline region and the threshold — a buffer is inline exactly
// when its rounded size fits in T.
//
// All operations go through a single data view bound at construction, so
// the steady-state read and write paths carry no strategy branch. The view
// always covers ActualSize() bytes: the logical region followed by the
// alignment padding.
//
// A heap-backed handle still carries T's unused bytes; instantiate with
// NoInline ([0]byte) when buffers are known to be large.
//
// Buffer has no internal locking; see the package documentation for the
// concurrency contract.
type Buffer[T any] struct {
	data      []byte // backing view; nil once released or moved-from
	size      int    // requested logical size
	threshold int    // len(T), fixed per instantiation
	inline    T      // embedded region, backs data when the layout is inline
}

// regionLen validates that T is a byte array and returns its length.
// Anything else would let callers scribble over pointer words through
// Bytes, so misuse panics here rather than corrupting the heap later.
func regionLen[T any]() int {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic("smartbuf: region type must be a byte array, got " + t.String())
	}
	return t.Len()
}

// inlineView returns a view of the first n bytes of the embedded region.
func (b *Buffer[T]) inlineView(n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.inline)), n)
}

// New creates a zeroed buffer with the given logical size. The storage
// strategy follows from the size and the region type: inline when the size
// rounded up to a multiple of 8 fits in T, one heap allocation otherwise.
// The inline case performs no allocation beyond the handle itself.
//
// New panics if size is negative or if T is not a byte array.
func New[T any](size int) *Buffer[T] {
	threshold := regionLen[T]()
	l := LayoutOf(size, threshold)
	b := &Buffer[T]{size: size, threshold: threshold}
	if l.Inline {
		b.data = b.inlineView(l.Actual)
	} else {
		b.data = make([]byte, l.Actual)
	}
	return b
}

// Move creates a buffer by taking ownership of src's region. The heap case
// transfers the region without allocating or copying; the inline case
// copies the embedded bytes into the new handle. Either way src is left
// holding no region: it may only be released, reassigned via CopyFrom, or
// abandoned, and its content must not be relied upon.
//
// Move panics if src has already been released or moved from.
func Move[T any](src *Buffer[T]) *Buffer[T] {
	if src.data == nil {
		panic("smartbuf: move from released buffer")
	}
	b := &Buffer[T]{size: src.size, threshold: src.threshold}
	if src.Inline() {
		b.inline = src.inline
		b.data = b.inlineView(len(src.data))
	} else {
		b.data = src.data
	}
	src.data = nil
	return b
}

// Clone returns an independent deep copy: a fresh region of the same
// layout holding the same bytes, padding included. Mutating either buffer
// never affects the other.
//
// Clone panics if b has been released or moved from.
func (b *Buffer[T]) Clone() *Buffer[T] {
	if b.data == nil {
		panic("smartbuf: clone of released buffer")
	}
	c := &Buffer[T]{size: b.size, threshold: b.threshold}
	if b.Inline() {
		c.inline = b.inline
		c.data = c.inlineView(len(b.data))
	} else {
		c.data = make([]byte, len(b.data))
		copy(c.data, b.data)
	}
	return c
}

// CopyFrom replaces b's content with src's, byte for byte over the whole
// region including padding. Copying a buffer onto itself is a no-op. If b
// currently holds no region (it was released or moved from), a fresh one is
// materialized first; otherwise the existing region is reused, so the
// operation allocates at most once and never leaks b's prior region.
//
// CopyFrom panics if src has been released or moved from, or if the two
// buffers have different logical sizes.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	if src.data == nil {
		panic("smartbuf: copy from released buffer")
	}
	if b.size != src.size {
		panic(fmt.Sprintf("smartbuf: size mismatch: %d != %d", b.size, src.size))
	}
	if src.Inline() {
		b.inline = src.inline
		if b.data == nil {
			b.data = b.inlineView(len(src.data))
		}
	} else {
		if b.data == nil {
			b.data = make([]byte, len(src.data))
		}
		copy(b.data, src.data)
	}
}

// MoveFrom takes ownership of src's region, dropping b's current one.
// Moving a buffer onto itself is a no-op. The heap case transfers the
// region pointer without copying; the inline case copies the embedded
// bytes. src is left holding no region, exactly as after Move.
//
// MoveFrom panics if src has been released or moved from, or if the two
// buffers have different logical sizes.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	if src.data == nil {
		panic("smartbuf: move from released buffer")
	}
	if b.size != src.size {
		panic(fmt.Sprintf("smartbuf: size mismatch: %d != %d", b.size, src.size))
	}
	if src.Inline() {
		b.inline = src.inline
		if b.data == nil {
			b.data = b.inlineView(len(src.data))
		}
	} else {
		b.data = src.data
	}
	src.data = nil
}

// Release drops the buffer's region. A heap region becomes garbage the
// moment no clone of the view survives; an inline region needs no work
// beyond detaching the view. Release is idempotent and safe on moved-from
// handles, so double release never corrupts anything.
//
// After Release the handle keeps answering the metadata accessors (Size,
// ActualSize, Inline, Threshold, Layout, String), CopyFrom re-materializes
// it, and Release stays safe; operations that touch bytes panic.
func (b *Buffer[T]) Release() {
	b.data = nil
}

// Bytes returns the backing region: ActualSize() contiguous bytes, the
// logical region first and the padding after it. The slice aliases the
// buffer's storage, so writes through it are writes to the buffer, and it
// stays valid until the buffer is released or moved from. It is the
// intended bridge to raw byte primitives such as copy and clear.
//
// Bytes returns nil on a released or moved-from handle.
func (b *Buffer[T]) Bytes() []byte {
	return b.data
}

// At returns the byte at index i. Valid indices are [0, Size()); indices in
// [Size(), ActualSize()) read padding, which is possible but meaningless.
// No check against the logical size is performed; indices at or beyond
// ActualSize() panic.
func (b *Buffer[T]) At(i int) byte {
	return b.data[i]
}

// Set stores v at index i under the same contract as At: unchecked against
// the logical size, panicking at or beyond ActualSize().
func (b *Buffer[T]) Set(i int, v byte) {
	b.data[i] = v
}

// Fill writes v to every logical byte. Padding is untouched.
func (b *Buffer[T]) Fill(v byte) {
	s := b.data[:b.size]
	for i := range s {
		s[i] = v
	}
}

// Clear zeroes every logical byte. Padding is untouched.
func (b *Buffer[T]) Clear() {
	clear(b.data[:b.size])
}

// FillAll writes v to the entire region, padding included.
func (b *Buffer[T]) FillAll(v byte) {
	s := b.data[:b.ActualSize()]
	for i := range s {
		s[i] = v
	}
}

// ClearAll zeroes the entire region, padding included.
func (b *Buffer[T]) ClearAll() {
	clear(b.data[:b.ActualSize()])
}

// Size returns the requested logical size in bytes.
func (b *Buffer[T]) Size() int {
	return b.size
}

// ActualSize returns the backing region's length: Size() rounded up to the
// next multiple of 8.
func (b *Buffer[T]) ActualSize() int {
	return RoundUp8(b.size)
}

// Inline reports whether the buffer's region is embedded in the handle.
// The answer is a pure function of the size and the region type, so it is
// identical for every buffer built from the same instantiation and remains
// answerable after Release.
func (b *Buffer[T]) Inline() bool {
	return RoundUp8(b.size) <= b.threshold
}

// Threshold returns the inline/heap boundary in bytes: the length of the
// region type T.
func (b *Buffer[T]) Threshold() int {
	return b.threshold
}

// Layout returns the buffer's storage layout descriptor.
func (b *Buffer[T]) Layout() Layout {
	return LayoutOf(b.size, b.threshold)
}

// String returns a compact description for logs and debugging. It never
// includes the buffer's content.
func (b *Buffer[T]) String() string {
	if b.data == nil {
		return fmt.Sprintf("Buffer(size=%d threshold=%d released)", b.size, b.threshold)
	}
	return "Buffer(" + b.Layout().String() + ")"
}
