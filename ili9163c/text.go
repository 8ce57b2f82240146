package ili9163c

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"giddy/rgb565"
)

type textState struct {
	font tinyfont.Fonter
	err  error // first SetPixel failure while rendering
}

func newTextState() textState {
	return textState{font: &proggy.TinySZ8pt7b}
}

// SetTextColor sets the foreground and background used by WriteText.
func (tft *Device) SetTextColor(fg, bg rgb565.Color) {
	tft.fg, tft.bg = fg, bg
}

// TextColor returns the foreground and background used by WriteText.
func (tft *Device) TextColor() (fg, bg rgb565.Color) {
	return tft.fg, tft.bg
}

// SetFont replaces the font used by WriteText.
func (tft *Device) SetFont(font tinyfont.Fonter) {
	if font != nil {
		tft.text.font = font
	}
}

// WriteText draws s with its top-left corner at (x, y). The line box is
// painted in the background colour before the glyphs are drawn.
func (tft *Device) WriteText(x, y int16, s string) error {
	if s == "" {
		return nil
	}

	_, outboxWidth := tinyfont.LineWidth(tft.text.font, s)
	lineHeight := int16(tft.text.font.GetYAdvance())
	if err := tft.FillRect(x, y, int16(outboxWidth), lineHeight, tft.bg); err != nil {
		return err
	}

	// tinyfont positions glyphs on the baseline
	baseline := y + lineHeight*3/4
	tft.text.err = nil
	tinyfont.WriteLine(tft, tft.text.font, x, baseline, s, tft.fg.ToRGBA())
	err := tft.text.err
	tft.text.err = nil
	if err == ErrOutOfBounds {
		// glyph pixels past the panel edge are clipped like the background box
		return nil
	}
	return err
}
