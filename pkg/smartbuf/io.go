package smartbuf

import (
	"errors"
	"fmt"
	"io"
)

// ErrOffset is returned by ReadAt and WriteAt when the offset falls outside
// the buffer's logical region.
var ErrOffset = errors.New("smartbuf: offset out of range")

var (
	_ io.ReaderAt  = (*Buffer[Default])(nil)
	_ io.WriterAt  = (*Buffer[Default])(nil)
	_ fmt.Stringer = (*Buffer[Default])(nil)
	_ io.ReaderAt  = (*Buffer[NoInline])(nil)
	_ io.WriterAt  = (*Buffer[NoInline])(nil)
)

// ReadAt copies logical bytes starting at off into p. It reads at most
// Size()-off bytes: the padding is not part of the stream. Like
// bytes.Reader, it returns io.EOF when off is at or past the end or when p
// extends beyond it, and ErrOffset when off is negative.
//
// ReadAt panics on a released or moved-from handle.
func (b *Buffer[T]) ReadAt(p []byte, off int64) (int, error) {
	if b.data == nil {
		panic("smartbuf: read from released buffer")
	}
	if off < 0 {
		return 0, ErrOffset
	}
	if off >= int64(b.size) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:b.size])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt copies p into the logical region starting at off. The region is
// fixed ahead of time, so a write reaching past Size() stores what fits and
// returns io.ErrShortWrite; the padding is never written through this path.
// A negative offset or one past the end returns ErrOffset.
//
// WriteAt panics on a released or moved-from handle.
func (b *Buffer[T]) WriteAt(p []byte, off int64) (int, error) {
	if b.data == nil {
		panic("smartbuf: write to released buffer")
	}
	if off < 0 || off > int64(b.size) {
		return 0, ErrOffset
	}
	n := copy(b.data[off:b.size], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
