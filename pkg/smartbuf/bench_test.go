package smartbuf

import "testing"

// Sinks keep the compiler from eliminating the benchmarked work.
var (
	benchByte byte
	benchBuf  *Buffer[Default]
	benchRaw  []byte
)

func BenchmarkNew_Inline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := New[Default](16)
		buf.Set(0, byte(i))
		buf.Set(15, byte(i+1))
		benchByte = buf.At(0)
	}
}

func BenchmarkNew_Heap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := New[Default](128)
		buf.Set(0, byte(i))
		buf.Set(127, byte(i+1))
		benchByte = buf.At(0)
	}
}

func BenchmarkNew_ForcedHeap(b *testing.B) {
	// Same 16-byte payload as BenchmarkNew_Inline, but through a
	// zero-length region, so every construction allocates.
	for i := 0; i < b.N; i++ {
		buf := New[NoInline](16)
		buf.Set(0, byte(i))
		buf.Set(15, byte(i+1))
		benchByte = buf.At(0)
	}
}

func BenchmarkMake_Baseline16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		raw := make([]byte, 16)
		raw[0] = byte(i)
		raw[15] = byte(i + 1)
		benchRaw = raw
	}
}

func BenchmarkMake_Baseline128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		raw := make([]byte, 128)
		raw[0] = byte(i)
		raw[127] = byte(i + 1)
		benchRaw = raw
	}
}

func BenchmarkClone_Inline(b *testing.B) {
	src := New[Default](32)
	src.Fill(0xAA)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBuf = src.Clone()
	}
}

func BenchmarkClone_Heap(b *testing.B) {
	src := New[Default](128)
	src.Fill(0xBB)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBuf = src.Clone()
	}
}

func BenchmarkAccess_Inline(b *testing.B) {
	buf := New[Default](32)
	size := buf.Size()
	var sum uint32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Set(i%size, byte(i))
		sum += uint32(buf.At(i % size))
	}
	benchByte = byte(sum)
}

func BenchmarkAccess_Heap(b *testing.B) {
	buf := New[Default](128)
	size := buf.Size()
	var sum uint32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Set(i%size, byte(i))
		sum += uint32(buf.At(i % size))
	}
	benchByte = byte(sum)
}

func BenchmarkFill(b *testing.B) {
	buf := New[Default](4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Fill(byte(i))
	}
	benchByte = buf.At(0)
}

func BenchmarkClear(b *testing.B) {
	buf := New[Default](4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
	}
	benchByte = buf.At(0)
}
