// Package rgb565 holds the 16 bit colour encoding used by small SPI TFT panels.
package rgb565

import "image/color"

// Color is a packed RGB565 value.
//
//	bit 76543210  76543210
//	    RRRRRGGG  GGGBBBBB
//	   high byte  low byte
type Color uint16

const (
	BLACK   Color = 0x0000
	BLUE    Color = 0x001F
	RED     Color = 0xF800
	GREEN   Color = 0x07E0
	CYAN    Color = 0x07FF
	MAGENTA Color = 0xF81F
	YELLOW  Color = 0xFFE0
	WHITE   Color = 0xFFFF
)

// Model converts any color.Color to a Color.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if rc, ok := c.(Color); ok {
		return rc
	}
	r, g, b, _ := c.RGBA()
	return from16(r, g, b)
})

// New packs 8 bit channels, keeping the top 5/6/5 bits.
func New(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// FromRGBA converts c ignoring alpha.
func FromRGBA(c color.RGBA) Color {
	return New(c.R, c.G, c.B)
}

func from16(r, g, b uint32) Color {
	// RRRRRGGGGGGBBBBB
	return Color((r & 0xF800) | ((g & 0xFC00) >> 5) | ((b & 0xF800) >> 11))
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	// widen each channel by repeating its bit pattern so that all zeros and
	// all ones map to 0x0000 and 0xFFFF
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x07E0) // 00000GGGGGG00000
	bBits := uint32(c & 0x001F) // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

// RGB888 expands c to 8 bit channels.
func (c Color) RGB888() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

// ToRGBA returns c as an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Bytes returns c in bus order, high byte first.
func (c Color) Bytes() (hi, lo uint8) {
	return uint8(c >> 8), uint8(c)
}
