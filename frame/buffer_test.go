package frame

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ushitora-anqou/aqpix/color"
)

func mustNew(t *testing.T, width, height int) *Buffer {
	t.Helper()
	b, err := New(width, height)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	return b
}

func mustAt(t *testing.T, b *Buffer, x, y int) color.Color {
	t.Helper()
	c, err := b.At(x, y)
	if err != nil {
		t.Fatalf("At(%d, %d): %v", x, y, err)
	}
	return c
}

// patterned fills the buffer with distinct bytes so untouched pixels can be
// told apart from written ones.
func patterned(t *testing.T, width, height int) *Buffer {
	b := mustNew(t, width, height)
	for i := range b.pix {
		b.pix[i] = uint8(i*7 + 3)
	}
	return b
}

func TestNew(t *testing.T) {
	b := mustNew(t, 4, 2)
	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("got %dx%d", b.Width(), b.Height())
	}
	if len(b.pix) != 4*2*4 {
		t.Fatalf("buffer length: got %d, expected %d", len(b.pix), 32)
	}
	for i, v := range b.pix {
		if v != 0 {
			t.Fatalf("byte %d is %d, expected zero", i, v)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	table := [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -1}, {0, 0}}
	for _, entry := range table {
		if _, err := New(entry[0], entry[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d): expected ErrInvalidSize, got %v", entry[0], entry[1], err)
		}
	}
}

func TestOffset(t *testing.T) {
	table := [][4]int{
		// stride, x, y, expected
		{4, 0, 0, 0},
		{4, 1, 0, 4},
		{4, 3, 0, 12},
		{4, 0, 1, 16},
		{320, 5, 2, (2*320 + 5) * 4},
	}
	for _, entry := range table {
		if got := offset(entry[0], entry[1], entry[2]); got != entry[3] {
			t.Errorf("offset(%d, %d, %d): got %d, expected %d", entry[0], entry[1], entry[2], got, entry[3])
		}
	}
}

func TestDrawRectScenario(t *testing.T) {
	b := mustNew(t, 4, 2)
	if err := b.DrawRect(1, 0, 2, 1, color.Red); err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]int{{1, 0}, {2, 0}} {
		if c := mustAt(t, b, p[0], p[1]); c != color.Red {
			t.Errorf("pixel %v: got %v, expected red", p, c)
		}
	}
	for _, p := range [][2]int{{0, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}} {
		if c := mustAt(t, b, p[0], p[1]); c != (color.Color{}) {
			t.Errorf("pixel %v: got %v, expected zero", p, c)
		}
	}
}

func TestDrawRectInBounds(t *testing.T) {
	const width, height = 7, 5
	c := color.New(0x11, 0x22, 0x33, 0x44)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for w := 0; x+w <= width; w++ {
				for h := 0; y+h <= height; h++ {
					b := patterned(t, width, height)
					before := b.Bytes()
					if err := b.DrawRect(x, y, w, h, c); err != nil {
						t.Fatalf("DrawRect(%d, %d, %d, %d): %v", x, y, w, h, err)
					}
					for py := 0; py < height; py++ {
						for px := 0; px < width; px++ {
							got := mustAt(t, b, px, py)
							inside := px >= x && px < x+w && py >= y && py < y+h
							if inside && got != c {
								t.Fatalf("DrawRect(%d, %d, %d, %d): pixel (%d, %d) is %v, expected %v", x, y, w, h, px, py, got, c)
							}
							off := offset(width, px, py)
							if !inside && !bytes.Equal(b.pix[off:off+4], before[off:off+4]) {
								t.Fatalf("DrawRect(%d, %d, %d, %d): pixel (%d, %d) outside the rectangle changed", x, y, w, h, px, py)
							}
						}
					}
				}
			}
		}
	}
}

func TestDrawRectOutOfBounds(t *testing.T) {
	table := []struct {
		name       string
		x, y, w, h int
	}{
		{"too wide", 0, 0, 5, 1},
		{"too tall", 0, 0, 1, 3},
		{"x overflow", 3, 0, 2, 1},
		{"y overflow", 0, 1, 1, 2},
		{"origin right of buffer", 4, 0, 1, 1},
		{"origin below buffer", 0, 2, 1, 1},
		{"negative x", -1, 0, 2, 1},
		{"negative y", 0, -1, 1, 2},
		{"negative width", 2, 0, -1, 1},
		{"negative height", 0, 1, 1, -1},
		{"empty beyond edge", 5, 0, 0, 0},
		{"huge width", 1, 0, int(^uint(0) >> 1), 1},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			b := patterned(t, 4, 2)
			before := b.Bytes()
			err := b.DrawRect(entry.x, entry.y, entry.w, entry.h, color.Green)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("expected ErrOutOfBounds, got %v", err)
			}
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %T", err)
			}
			if oob.X != entry.x || oob.Width != entry.w || oob.BufferW != 4 || oob.BufferH != 2 {
				t.Errorf("unexpected error detail: %+v", oob)
			}
			if !bytes.Equal(before, b.Bytes()) {
				t.Fatalf("buffer changed after a failed draw")
			}
		})
	}
}

func TestDrawRectIdempotent(t *testing.T) {
	once := patterned(t, 6, 4)
	twice := patterned(t, 6, 4)
	for _, b := range []*Buffer{once, twice, twice} {
		if err := b.DrawRect(1, 1, 3, 2, color.Blue); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(once.Bytes(), twice.Bytes()) {
		t.Fatal("drawing the same rectangle twice differs from drawing it once")
	}
}

func TestDraw(t *testing.T) {
	b := mustNew(t, 3, 3)
	if err := b.Draw(2, 1, color.White); err != nil {
		t.Fatal(err)
	}
	if c := mustAt(t, b, 2, 1); c != color.White {
		t.Fatalf("got %v", c)
	}
	if err := b.Draw(3, 1, color.White); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestLines(t *testing.T) {
	b := mustNew(t, 5, 4)
	if err := b.DrawHLine(2, color.Red); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawVLine(1, color.Blue); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			expected := color.Color{}
			switch {
			case x == 1:
				expected = color.Blue
			case y == 2:
				expected = color.Red
			}
			if c := mustAt(t, b, x, y); c != expected {
				t.Errorf("pixel (%d, %d): got %v, expected %v", x, y, c, expected)
			}
		}
	}

	if err := b.DrawHLine(4, color.Red); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("DrawHLine below the buffer: expected ErrOutOfBounds, got %v", err)
	}
	if err := b.DrawVLine(-1, color.Red); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("DrawVLine left of the buffer: expected ErrOutOfBounds, got %v", err)
	}
}

func TestFillAndClear(t *testing.T) {
	b := patterned(t, 3, 2)
	if err := b.Fill(color.Green); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := mustAt(t, b, x, y); c != color.Green {
				t.Fatalf("after Fill: pixel (%d, %d) is %v", x, y, c)
			}
		}
	}

	if err := b.Clear(); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := mustAt(t, b, x, y); c != (color.Color{R: 0, G: 0, B: 0, A: 0xff}) {
				t.Fatalf("after Clear: pixel (%d, %d) is %v", x, y, c)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	b := mustNew(t, 2, 2)
	for _, p := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		if _, err := b.At(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d): expected ErrOutOfBounds, got %v", p[0], p[1], err)
		}
	}
}

func TestCopiesDoNotAlias(t *testing.T) {
	b := mustNew(t, 2, 1)
	raw := b.Bytes()
	raw[0] = 0xff
	img := b.Snapshot()
	img.Pix[1] = 0xff
	if c := mustAt(t, b, 0, 0); c != (color.Color{}) {
		t.Fatalf("buffer aliased by a copy: %v", c)
	}
}

func TestSnapshot(t *testing.T) {
	b := mustNew(t, 3, 2)
	if err := b.Draw(1, 1, color.Red); err != nil {
		t.Fatal(err)
	}
	img := b.Snapshot()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("got bounds %v", img.Bounds())
	}
	if got := color.FromStd(img.At(1, 1)); got != color.Red {
		t.Fatalf("got %v", got)
	}
}

func TestCopyTo(t *testing.T) {
	b := mustNew(t, 2, 2)
	if err := b.Draw(1, 1, color.Blue); err != nil {
		t.Fatal(err)
	}

	const pitch = 12
	dst := make([]byte, pitch*2)
	if err := b.CopyTo(dst, pitch); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst[pitch+4:pitch+8], []byte{0x00, 0x00, 0xff, 0xff}) {
		t.Fatalf("pixel (1, 1) not copied: %v", dst)
	}
	if !bytes.Equal(dst[8:12], []byte{0, 0, 0, 0}) {
		t.Fatalf("padding bytes written: %v", dst[8:12])
	}

	// The last row needs no padding.
	if err := b.CopyTo(make([]byte, pitch+8), pitch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.CopyTo(make([]byte, 15), 8); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short destination: expected ErrShortBuffer, got %v", err)
	}
	if err := b.CopyTo(make([]byte, 64), 4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short pitch: expected ErrShortBuffer, got %v", err)
	}
}

var _ Canvas = (*Buffer)(nil)
