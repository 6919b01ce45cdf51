// Package smartbuf provides a fixed-size byte buffer that chooses between
// two storage strategies at construction: a region embedded directly in the
// handle ("inline") for small buffers, or a single exclusively-owned heap
// allocation for large ones. The choice is driven by the requested logical
// size and a threshold carried in the handle's type, and is fixed for the
// handle's whole lifetime.
//
// The threshold is expressed as a byte-array type parameter: the array is
// the inline region, and its length is the threshold. Buffer[[32]byte]
// stores buffers of up to 32 (rounded) bytes inline and everything larger
// on the heap; Buffer[[0]byte] never stores anything inline. The package
// defines Default ([32]byte) and a small ladder of other region types, plus
// preset constructors for the common power-of-two sizes.
//
// Requested sizes are rounded up to the next multiple of 8. Bytes in
// [0, Size()) are the logical region; bytes in [Size(), ActualSize()) are
// alignment padding with no meaning to callers. A freshly constructed
// buffer is all zeros.
//
// Handles are created with New and friends and follow an explicit
// lifecycle:
//
//	b := smartbuf.New[smartbuf.Default](100) // construct, zeroed
//	c := b.Clone()                           // deep, independent copy
//	c.CopyFrom(b)                            // copy content in place
//	m := smartbuf.Move(b)                    // transfer region ownership
//	m.Release()                              // drop the region
//
// After Move or MoveFrom the source holds no region: it may be released,
// reassigned via CopyFrom, or abandoned, and it still answers the metadata
// accessors, but any operation touching its bytes panics.
// Release is idempotent and safe on moved-from handles. The zero value of
// Buffer is not usable; always construct with New, Move, or a preset.
//
// Indexed access is deliberately unchecked against the logical size: At and
// Set accept any index below ActualSize(), so reads and writes in the
// padding are possible and harmless but carry no meaning. Indices at or
// beyond ActualSize() panic. Callers that need the raw region use Bytes(),
// which aliases the backing storage and works directly with copy and clear.
//
// A Buffer has no internal synchronization. Concurrent reads are safe only
// while no goroutine writes; any mutation requires external coordination by
// the caller.
package smartbuf
