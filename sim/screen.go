// Package sim is an in-memory stand-in for the TFT panel, used to run giddy on a desktop.
package sim

import (
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"tinygo.org/x/drivers"

	"giddy/ili9163c"
	"giddy/rgb565"
)

var (
	ErrNotBegun     = errors.New("screen used before Begin")
	ErrBusFrequency = errors.New("spi frequency must be non-zero")
	ErrBusMode      = errors.New("spi mode must be 0..3")
)

// Screen is an RGB565 framebuffer that accepts the display driver calls.
// Rectangles outside the framebuffer are clipped without error, like light
// falling off the edge of a smaller panel.
type Screen struct {
	mu     sync.Mutex
	l      *zap.Logger
	width  int16
	height int16
	buf    []rgb565.Color

	begun  bool
	bus    ili9163c.BusConfig
	fg, bg rgb565.Color
	fills  uint64
}

var _ drivers.Displayer = (*Screen)(nil)

func NewScreen(width, height int16, logger *zap.Logger) *Screen {
	if width <= 0 {
		width = ili9163c.TFT_DEFAULT_WIDTH
	}
	if height <= 0 {
		height = ili9163c.TFT_DEFAULT_HEIGHT
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screen{
		l:      logger.With(zap.String("via", "sim-screen")),
		width:  width,
		height: height,
		buf:    make([]rgb565.Color, int(width)*int(height)),
	}
}

func (s *Screen) Begin(cfg ili9163c.BusConfig) error {
	s.l.With(
		zap.Uint32("hz", cfg.Frequency),
		zap.Bool("lsb-first", cfg.LSBFirst),
		zap.Uint8("mode", cfg.Mode),
	).Info("begin")

	if cfg.Frequency == 0 {
		return errors.Wrap(ErrBusFrequency, "begin")
	}
	if cfg.Mode > 3 {
		return errors.Wrapf(ErrBusMode, "begin: mode %d", cfg.Mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.begun = true
	s.bus = cfg
	return nil
}

func (s *Screen) SetTextColor(fg, bg rgb565.Color) {
	s.l.With(zap.Uint16("fg", uint16(fg)), zap.Uint16("bg", uint16(bg))).Debug("set-text-color")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fg, s.bg = fg, bg
}

func (s *Screen) FillRect(x, y, width, height int16, c rgb565.Color) error {
	s.l.With(
		zap.Int16("x", x),
		zap.Int16("y", y),
		zap.Int16("w", width),
		zap.Int16("h", height),
		zap.Uint16("color", uint16(c)),
	).Debug("fill-rect")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.begun {
		return ErrNotBegun
	}
	s.fills++

	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(width), int(s.width)), min(int(y)+int(height), int(s.height))
	for py := y0; py < y1; py++ {
		row := s.buf[py*int(s.width) : (py+1)*int(s.width)]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
	return nil
}

// Size implements drivers.Displayer.
func (s *Screen) Size() (int16, int16) {
	return s.width, s.height
}

// SetPixel implements drivers.Displayer.
func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.buf[int(y)*int(s.width)+int(x)] = rgb565.FromRGBA(c)
}

// Display implements drivers.Displayer.
func (s *Screen) Display() error {
	return nil
}

// At returns the pixel at (x, y), BLACK outside the framebuffer.
func (s *Screen) At(x, y int16) rgb565.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return rgb565.BLACK
	}
	return s.buf[int(y)*int(s.width)+int(x)]
}

// Snapshot copies the framebuffer into dst, which must match the screen size.
func (s *Screen) Snapshot(dst *image.RGBA) error {
	b := dst.Bounds()
	if b.Dx() != int(s.width) || b.Dy() != int(s.height) {
		return errors.Errorf("snapshot: destination is %dx%d, screen is %dx%d", b.Dx(), b.Dy(), s.width, s.height)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.buf {
		r, g, bb := c.RGB888()
		j := i * 4
		dst.Pix[j+0] = r
		dst.Pix[j+1] = g
		dst.Pix[j+2] = bb
		dst.Pix[j+3] = 0xff
	}
	return nil
}

// Fills returns the number of FillRect calls since Begin.
func (s *Screen) Fills() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fills
}

// Bus returns the configuration passed to Begin.
func (s *Screen) Bus() ili9163c.BusConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bus
}

// TextColor returns the configured text colours.
func (s *Screen) TextColor() (fg, bg rgb565.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fg, s.bg
}
