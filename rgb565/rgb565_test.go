package rgb565

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	cases := map[string]struct {
		got  Color
		want uint16
	}{
		"BLACK":   {BLACK, 0x0000},
		"BLUE":    {BLUE, 0x001F},
		"RED":     {RED, 0xF800},
		"GREEN":   {GREEN, 0x07E0},
		"CYAN":    {CYAN, 0x07FF},
		"MAGENTA": {MAGENTA, 0xF81F},
		"YELLOW":  {YELLOW, 0xFFE0},
		"WHITE":   {WHITE, 0xFFFF},
	}
	for name, tc := range cases {
		assert.Equal(t, tc.want, uint16(tc.got), name)
	}
}

func TestMixedConstants(t *testing.T) {
	assert.Equal(t, RED|GREEN, YELLOW)
	assert.Equal(t, GREEN|BLUE, CYAN)
	assert.Equal(t, RED|BLUE, MAGENTA)
	assert.Equal(t, RED|GREEN|BLUE, WHITE)
}

func TestRGBAExtremes(t *testing.T) {
	r, g, b, a := WHITE.RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})

	r, g, b, a = BLACK.RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xFFFF}, []uint32{r, g, b, a})

	r, g, b, _ = YELLOW.RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0}, []uint32{r, g, b})
}

func TestNew(t *testing.T) {
	assert.Equal(t, RED, New(0xFF, 0, 0))
	assert.Equal(t, GREEN, New(0, 0xFF, 0))
	assert.Equal(t, BLUE, New(0, 0, 0xFF))
	assert.Equal(t, YELLOW, FromRGBA(color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}))
	// low bits are dropped
	assert.Equal(t, BLACK, New(0x07, 0x03, 0x07))
}

func TestRGB888(t *testing.T) {
	r, g, b := MAGENTA.RGB888()
	assert.Equal(t, [3]uint8{0xFF, 0, 0xFF}, [3]uint8{r, g, b})
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}, YELLOW.ToRGBA())
}

func TestModel(t *testing.T) {
	assert.Equal(t, CYAN, Model.Convert(color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}))
	assert.Equal(t, RED, Model.Convert(RED))
	assert.Equal(t, WHITE, Model.Convert(color.White))
}

func TestBytes(t *testing.T) {
	hi, lo := YELLOW.Bytes()
	assert.Equal(t, uint8(0xFF), hi)
	assert.Equal(t, uint8(0xE0), lo)
}
