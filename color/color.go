// Package color defines the 8-bit-per-channel RGBA color used by the frame
// buffer, and a small palette of named colors.
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"
)

var ErrUnknownColor = errors.New("color: unknown color")

// Color is a non-premultiplied RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{0xff, 0xff, 0xff, 0xff}
	Black = Color{0x00, 0x00, 0x00, 0xff}
	Red   = Color{0xff, 0x00, 0x00, 0xff}
	Blue  = Color{0x00, 0x00, 0xff, 0xff}
	Green = Color{0x00, 0xff, 0x00, 0xff}
)

var palette = map[string]Color{
	"white": White,
	"black": Black,
	"red":   Red,
	"blue":  Blue,
	"green": Green,
}

func New(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGBA implements image/color.Color. The returned channels are
// alpha-premultiplied, as that interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromStd converts any image/color.Color into a Color.
func FromStd(c stdcolor.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// Parse resolves a palette name (case-insensitive) or a "#rrggbb" or
// "#rrggbbaa" hex string.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := palette[strings.ToLower(s)]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	hex := s[1:]
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Names returns the palette names in a fixed order.
func Names() []string {
	return []string{"white", "black", "red", "blue", "green"}
}
