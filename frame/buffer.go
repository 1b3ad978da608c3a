// Package frame implements an RGBA8 surface buffer and the drawing
// primitives operating on it.
//
// Every mutating primitive is expressed through DrawRect, which validates the
// whole target rectangle before writing a single byte. A failed draw leaves
// the buffer untouched.
package frame

import (
	"fmt"
	"image"

	"github.com/ushitora-anqou/aqpix/color"
	"github.com/ushitora-anqou/aqpix/constant"
)

// Canvas is the set of drawing primitives shared by Buffer and anything that
// owns one.
type Canvas interface {
	Width() int
	Height() int
	DrawRect(x, y, width, height int, c color.Color) error
	Draw(x, y int, c color.Color) error
	DrawHLine(y int, c color.Color) error
	DrawVLine(x int, c color.Color) error
	Fill(c color.Color) error
	Clear() error
}

// Buffer is a row-major, top-left origin array of width*height RGBA pixels.
// The backing slice never leaves the Buffer; readers receive copies.
type Buffer struct {
	width, height int
	pix           []uint8
}

// New allocates a zeroed buffer.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*constant.BYTES_PER_PIXEL),
	}, nil
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// offset returns the index of the first byte of pixel (x, y).
func offset(stride, x, y int) int {
	return (y*stride + x) * constant.BYTES_PER_PIXEL
}

func (b *Buffer) contains(x, y, width, height int) bool {
	if x < 0 || y < 0 || width < 0 || height < 0 {
		return false
	}
	return x <= b.width && y <= b.height && width <= b.width-x && height <= b.height-y
}

// DrawRect sets every pixel of [x, x+width) x [y, y+height) to c.
func (b *Buffer) DrawRect(x, y, width, height int, c color.Color) error {
	if !b.contains(x, y, width, height) {
		return &OutOfBoundsError{x, y, width, height, b.width, b.height}
	}

	for dy := 0; dy < height; dy++ {
		off := offset(b.width, x, y+dy)
		row := b.pix[off : off+width*constant.BYTES_PER_PIXEL]
		for i := 0; i < len(row); i += constant.BYTES_PER_PIXEL {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return nil
}

func (b *Buffer) Draw(x, y int, c color.Color) error {
	return b.DrawRect(x, y, 1, 1, c)
}

func (b *Buffer) DrawHLine(y int, c color.Color) error {
	return b.DrawRect(0, y, b.width, 1, c)
}

func (b *Buffer) DrawVLine(x int, c color.Color) error {
	return b.DrawRect(x, 0, 1, b.height, c)
}

func (b *Buffer) Fill(c color.Color) error {
	return b.DrawRect(0, 0, b.width, b.height, c)
}

func (b *Buffer) Clear() error {
	return b.Fill(color.Black)
}

// At returns the color of pixel (x, y).
func (b *Buffer) At(x, y int) (color.Color, error) {
	if !b.contains(x, y, 1, 1) {
		return color.Color{}, &OutOfBoundsError{x, y, 1, 1, b.width, b.height}
	}
	off := offset(b.width, x, y)
	return color.Color{R: b.pix[off], G: b.pix[off+1], B: b.pix[off+2], A: b.pix[off+3]}, nil
}

// Bytes returns a copy of the raw pixel data.
func (b *Buffer) Bytes() []byte {
	ret := make([]byte, len(b.pix))
	copy(ret, b.pix)
	return ret
}

// Snapshot returns a copy of the buffer as an image.
func (b *Buffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// CopyTo copies the buffer row by row into dst, whose rows are pitch bytes
// apart. This matches the layout of a locked streaming texture.
func (b *Buffer) CopyTo(dst []byte, pitch int) error {
	rowLen := b.width * constant.BYTES_PER_PIXEL
	if pitch < rowLen || len(dst) < pitch*(b.height-1)+rowLen {
		return fmt.Errorf(
			"%w: %d bytes with pitch %d for %dx%d buffer",
			ErrShortBuffer, len(dst), pitch, b.width, b.height,
		)
	}
	for y := 0; y < b.height; y++ {
		off := offset(b.width, 0, y)
		copy(dst[y*pitch:y*pitch+rowLen], b.pix[off:off+rowLen])
	}
	return nil
}
