package smartbuf

import "testing"

func TestPresets(t *testing.T) {
	cases := []struct {
		name   string
		fn     func() *Buffer[Default]
		size   int
		inline bool
	}{
		{"New8B", New8B, 8, true},
		{"New16B", New16B, 16, true},
		{"New32B", New32B, 32, true},
		{"New64B", New64B, 64, false},
		{"New128B", New128B, 128, false},
		{"New256B", New256B, 256, false},
		{"New512B", New512B, 512, false},
		{"New1KB", New1KB, 1024, false},
		{"New2KB", New2KB, 2048, false},
		{"New4KB", New4KB, 4096, false},
	}
	for _, c := range cases {
		b := c.fn()
		if b.Size() != c.size {
			t.Errorf("%s: Size() = %d, want %d", c.name, b.Size(), c.size)
		}
		if b.Inline() != c.inline {
			t.Errorf("%s: Inline() = %v, want %v", c.name, b.Inline(), c.inline)
		}
		if b.Threshold() != DefaultThreshold {
			t.Errorf("%s: Threshold() = %d, want %d", c.name, b.Threshold(), DefaultThreshold)
		}
	}
}

func TestNewDefault(t *testing.T) {
	b := NewDefault(20)
	if b.Threshold() != 32 || !b.Inline() {
		t.Fatalf("NewDefault(20): threshold %d inline %v", b.Threshold(), b.Inline())
	}
}

func TestNewHeap(t *testing.T) {
	// Even the smallest buffer goes to the heap with a zero-length region.
	if b := NewHeap(8); b.Inline() {
		t.Fatal("NewHeap(8) should not be inline")
	}
	if b := NewHeap(1024); b.Inline() {
		t.Fatal("NewHeap(1024) should not be inline")
	}
}

func TestNewInline(t *testing.T) {
	b := NewInline[Inline64](64)
	if !b.Inline() {
		t.Fatal("NewInline[Inline64](64) should be inline")
	}
	wantPanic(t, func() { NewInline[Default](33) })
}
