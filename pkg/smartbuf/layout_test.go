package smartbuf

import "testing"

func TestRoundUp8(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{15, 16},
		{16, 16},
		{17, 24},
		{31, 32},
		{32, 32},
		{33, 40},
		{63, 64},
		{64, 64},
		{65, 72},
		{100, 104},
		{1024, 1024},
		{4093, 4096},
	}
	for _, c := range cases {
		if got := RoundUp8(c.n); got != c.want {
			t.Errorf("RoundUp8(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestLayoutOf(t *testing.T) {
	cases := []struct {
		size, threshold int
		wantActual      int
		wantInline      bool
	}{
		{1, 32, 8, true},
		{8, 32, 8, true},
		{24, 32, 24, true},
		{32, 32, 32, true},
		{33, 32, 40, false},
		{40, 32, 40, false},
		{64, 64, 64, true},
		{65, 64, 72, false},
		{57, 64, 64, true},
		{1, 0, 8, false},
		{1024, 0, 1024, false},
		{0, 0, 0, true},
		{0, 32, 0, true},
		{4096, 4096, 4096, true},
	}
	for _, c := range cases {
		l := LayoutOf(c.size, c.threshold)
		if l.Size != c.size || l.Threshold != c.threshold {
			t.Errorf("LayoutOf(%d, %d) echoed Size=%d Threshold=%d", c.size, c.threshold, l.Size, l.Threshold)
		}
		if l.Actual != c.wantActual {
			t.Errorf("LayoutOf(%d, %d).Actual = %d, want %d", c.size, c.threshold, l.Actual, c.wantActual)
		}
		if l.Inline != c.wantInline {
			t.Errorf("LayoutOf(%d, %d).Inline = %v, want %v", c.size, c.threshold, l.Inline, c.wantInline)
		}
	}
}

func TestLayoutOf_NegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("LayoutOf(-1, 32) should panic")
		}
	}()
	LayoutOf(-1, 32)
}

func TestLayoutOf_NegativeThreshold(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("LayoutOf(8, -1) should panic")
		}
	}()
	LayoutOf(8, -1)
}

func TestLayout_String(t *testing.T) {
	if got := LayoutOf(24, 32).String(); got != "size=24 actual=24 threshold=32 inline" {
		t.Fatalf("String() = %q", got)
	}
	if got := LayoutOf(33, 32).String(); got != "size=33 actual=40 threshold=32 heap" {
		t.Fatalf("String() = %q", got)
	}
}
