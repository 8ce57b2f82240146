// Package ili9163c drives ILI9163C based SPI TFT panels (typically 128x128) in 16 bit colour mode.
package ili9163c

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/drivers"

	"giddy/rgb565"
)

type Rotation uint8

const ( // clock-wise rotation
	Rot_0   Rotation = iota
	Rot_90
	Rot_180
	Rot_270
)

const (
	TFT_DEFAULT_WIDTH  int16 = 128 // rot_0
	TFT_DEFAULT_HEIGHT int16 = 128
)

// ErrOutOfBounds is returned when a drawing request has no visible pixels.
var ErrOutOfBounds = errors.New("rectangle coordinates outside display area")

// Pin is an output pin already configured by the caller. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Pins are the control lines of the panel. DC is required. A nil CS means the
// bus drives chip select, a nil RST means the panel is reset with CMD_SWRESET.
type Pins struct {
	CS  Pin // spi chip select
	DC  Pin // tft data / command
	RST Pin // tft reset
}

// BusConfig mirrors the subset of machine.SPIConfig the panel cares about.
type BusConfig struct {
	Frequency uint32
	LSBFirst  bool
	Mode      uint8
}

// Bus is an SPI master that can be (re)configured by the panel.
type Bus interface {
	drivers.SPI
	Configure(cfg BusConfig) error
}

// Config holds the panel geometry. Zero values select the defaults.
type Config struct {
	Width, Height        int16 // visible pixels in rot_0
	ColOffset, RowOffset int16 // GRAM offset of the visible area in rot_0
	RGB                  bool  // panel wired red-green-blue instead of blue-green-red
	BufferSize           int   // spi transmit buffer in bytes
	Delay                func(time.Duration)
}

type Device struct {
	bus    Bus
	tspt   transport
	cs     Pin          // spi chip select
	dc     Pin          // tft data / command
	rst    Pin          // tft reset
	width  int16        // tft pixel width
	height int16        // tft pixel height
	colOff int16        // gram column offset
	rowOff int16        // gram row offset
	rot    Rotation     // tft orientation
	mirror bool         // mirror tft output
	bgr    bool         // tft blue-green-red mode
	fg, bg rgb565.Color // text colors
	text   textState
	delay  func(time.Duration)

	x0, x1 int16 // current address window for
	y0, y1 int16 //  CMD_PASET and CMD_CASET
	window bool  // x0..y1 reflect the panel state
}

var _ drivers.Displayer = (*Device)(nil)

func New(bus Bus, pins Pins, cfg Config) *Device {
	if cfg.Width == 0 {
		cfg.Width = TFT_DEFAULT_WIDTH
	}
	if cfg.Height == 0 {
		cfg.Height = TFT_DEFAULT_HEIGHT
	}
	if cfg.Delay == nil {
		cfg.Delay = time.Sleep
	}

	tft := &Device{
		bus:    bus,
		tspt:   newSPITransport(bus, cfg.BufferSize),
		cs:     pins.CS,
		dc:     pins.DC,
		rst:    pins.RST,
		width:  cfg.Width,
		height: cfg.Height,
		colOff: cfg.ColOffset,
		rowOff: cfg.RowOffset,
		rot:    Rot_0,
		bgr:    !cfg.RGB,
		fg:     rgb565.WHITE,
		bg:     rgb565.BLACK,
		text:   newTextState(),
		delay:  cfg.Delay,
	}

	// idle levels
	if tft.cs != nil {
		tft.cs.High()
	}
	tft.dc.High()
	if tft.rst != nil {
		tft.rst.High()
	}

	return tft
}

// Begin configures the bus, resets the panel and runs the init sequence.
func (tft *Device) Begin(cfg BusConfig) error {
	if err := tft.bus.Configure(cfg); err != nil {
		return fmt.Errorf("configure spi bus: %w", err)
	}
	if err := tft.Reset(); err != nil {
		return fmt.Errorf("reset panel: %w", err)
	}
	if err := tft.initPanel(); err != nil {
		return fmt.Errorf("init panel: %w", err)
	}
	return nil
}

// Size returns the current size of the display.
func (tft *Device) Size() (int16, int16) {
	if tft.rot == Rot_0 || tft.rot == Rot_180 {
		return tft.width, tft.height
	}
	return tft.height, tft.width
}

// SetPixel implements drivers.Displayer. Errors are kept for WriteText.
func (tft *Device) SetPixel(x, y int16, c color.RGBA) {
	err := tft.FillRect(x, y, 1, 1, rgb565.FromRGBA(c))
	if err != nil && (tft.text.err == nil || tft.text.err == ErrOutOfBounds) {
		tft.text.err = err
	}
}

// Display implements drivers.Displayer. Pixels are written immediately so there is nothing to flush.
func (tft *Device) Display() error {
	return nil
}

// DrawPixel draws a single pixel with the specified color.
func (tft *Device) DrawPixel(x, y int16, c rgb565.Color) error {
	return tft.FillRect(x, y, 1, 1, c)
}

// DrawHLine draws a horizontal line with the specified color.
func (tft *Device) DrawHLine(x0, x1, y int16, c rgb565.Color) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return tft.FillRect(x0, y, x1-x0+1, 1, c)
}

// DrawVLine draws a vertical line with the specified color.
func (tft *Device) DrawVLine(x, y0, y1 int16, c rgb565.Color) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return tft.FillRect(x, y0, 1, y1-y0+1, c)
}

// FillScreen fills the screen with the specified color.
func (tft *Device) FillScreen(c rgb565.Color) error {
	w, h := tft.Size()
	return tft.FillRect(0, 0, w, h, c)
}

// FillRect fills a rectangle at given coordinates and dimensions with the specified color.
// The rectangle is clipped to the display; ErrOutOfBounds means nothing was left to draw.
func (tft *Device) FillRect(x, y, width, height int16, c rgb565.Color) error {
	x, y, width, height, ok := tft.clip(x, y, width, height)
	if !ok {
		return ErrOutOfBounds
	}
	if err := tft.setWindow(x, y, width, height); err != nil {
		return err
	}
	if err := tft.writeCmd(CMD_RAMWR); err != nil {
		return err
	}

	tft.startWrite()
	defer tft.endWrite()
	return tft.tspt.write16n(uint16(c), int(width)*int(height))
}

// DrawBuffer writes a block of RGB565 pixels, row by row. The block must fit the display.
func (tft *Device) DrawBuffer(x, y, width, height int16, buf []uint16) error {
	w, h := tft.Size()
	if x < 0 || y < 0 || width <= 0 || height <= 0 || int32(x)+int32(width) > int32(w) || int32(y)+int32(height) > int32(h) {
		return ErrOutOfBounds
	}
	if len(buf) != int(width)*int(height) {
		return fmt.Errorf("buffer holds %d pixels, want %d", len(buf), int(width)*int(height))
	}
	if err := tft.setWindow(x, y, width, height); err != nil {
		return err
	}
	if err := tft.writeCmd(CMD_RAMWR); err != nil {
		return err
	}

	tft.startWrite()
	defer tft.endWrite()
	return tft.tspt.write16sl(buf)
}

// SetScrollArea sets an area to scroll with fixed top/bottom parts of the display.
func (tft *Device) SetScrollArea(topFixedArea, bottomFixedArea int16) error {
	vertScrollArea := tft.height - topFixedArea - bottomFixedArea
	return tft.writeCmd(CMD_VSCRDEF,
		uint8(topFixedArea>>8),
		uint8(topFixedArea),
		uint8(vertScrollArea>>8),
		uint8(vertScrollArea),
		uint8(bottomFixedArea>>8),
		uint8(bottomFixedArea))
}

// SetScroll sets the vertical scroll address of the display.
func (tft *Device) SetScroll(line int16) error {
	return tft.writeCmd(CMD_VSCRSADD,
		uint8(line>>8),
		uint8(line))
}

// StopScroll returns the display to its normal state.
func (tft *Device) StopScroll() error {
	return tft.writeCmd(CMD_NORON)
}

// GetRotation returns the current rotation of the display.
func (tft *Device) GetRotation() Rotation {
	return tft.rot
}

// SetRotation sets the clock-wise rotation of the display.
func (tft *Device) SetRotation(rot Rotation) error {
	tft.rot = rot % 4
	tft.window = false
	return tft.updateMadctl()
}

// GetMirror returns true if the display set to display a mirrored image.
func (tft *Device) GetMirror() bool {
	return tft.mirror
}

// SetMirror switches the display between mirrored image and non-mirrored image mode.
func (tft *Device) SetMirror(mirror bool) error {
	tft.mirror = mirror
	return tft.updateMadctl()
}

// GetBGR returns true if the display is in blue-green-red (BGR) mode.
func (tft *Device) GetBGR() bool {
	return tft.bgr
}

// SetBGR switches the display between blue-green-red (BGR) and red-green-blue (RGB) mode.
func (tft *Device) SetBGR(bgr bool) error {
	tft.bgr = bgr
	return tft.updateMadctl()
}

// SetInverted turns colour inversion on / off.
func (tft *Device) SetInverted(inverted bool) error {
	if inverted {
		return tft.writeCmd(CMD_INVON)
	}
	return tft.writeCmd(CMD_INVOFF)
}

// SetDisplayOn turns the panel output on / off. GRAM is retained.
func (tft *Device) SetDisplayOn(on bool) error {
	if on {
		return tft.writeCmd(CMD_DISON)
	}
	return tft.writeCmd(CMD_DISOFF)
}

// Sleep puts the panel in / out of sleep mode.
func (tft *Device) Sleep(sleep bool) error {
	cmd := uint8(CMD_SLPOUT)
	if sleep {
		cmd = CMD_SLPIN
	}
	if err := tft.writeCmd(cmd); err != nil {
		return err
	}
	tft.delay(time.Millisecond * 120)
	return nil
}

// Reset performs a hardware reset if rst pin present, otherwise performs a CMD_SWRESET software reset of the TFT display.
func (tft *Device) Reset() error {
	tft.window = false

	// prefer a hardware reset if there is one
	if tft.rst != nil {
		tft.rst.Low()
		tft.delay(time.Millisecond * 20) // datasheet says 10us
		tft.rst.High()
	} else if err := tft.writeCmd(CMD_SWRESET); err != nil {
		return err
	}
	tft.delay(time.Millisecond * 150) // datasheet says 120ms
	return nil
}

// initPanel performs base-level initialization and setup of the ILI9163C.
func (tft *Device) initPanel() error {
	seq := cmdSeq{tft: tft}

	seq.cmd(CMD_SLPOUT)
	seq.wait(time.Millisecond * 5)

	seq.cmd(CMD_PIXFMT, PIXFMT_16BPP)
	seq.cmd(CMD_GAMSET, 0x04)  // gamma curve 3
	seq.cmd(CMD_GAMRSEL, 0x01) // gamma adjustment enabled
	seq.cmd(CMD_NORON)

	seq.cmd(CMD_DISCTRL, 0xff, 0x06)
	seq.cmd(CMD_GAMCTRP, gammaPos...)
	seq.cmd(CMD_GAMCTRN, gammaNeg...)

	seq.cmd(CMD_FRMCTR1, 0x08, 0x02) // DIVA: 8  VPA: 2
	seq.cmd(CMD_INVCTR, 0x07)        // NLA, NLB, NLC: line inversion
	seq.cmd(CMD_PWCTR1, 0x0a, 0x02)  // GVDD, VCI1
	seq.cmd(CMD_PWCTR2, 0x02)        // BT: AVDD, VGH, VGL step-up
	seq.cmd(CMD_VMCTR1, 0x50, 0x63)  // VMH, VML
	seq.cmd(CMD_VMOFCTR, 0x00)

	if seq.err != nil {
		return seq.err
	}
	if err := tft.updateMadctl(); err != nil {
		return err
	}
	w, h := tft.Size()
	if err := tft.setWindow(0, 0, w, h); err != nil {
		return err
	}

	seq.cmd(CMD_DISON)
	seq.wait(time.Millisecond * 10)
	return seq.err
}

// clip limits the rectangle to the current display area.
func (tft *Device) clip(x, y, width, height int16) (int16, int16, int16, int16, bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, 0, 0, false
	}
	w, h := tft.Size()

	x0, y0 := int32(x), int32(y)
	x1, y1 := x0+int32(width), y0+int32(height)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, int32(w)), min(y1, int32(h))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return int16(x0), int16(y0), int16(x1 - x0), int16(y1 - y0), true
}

// offsets returns the GRAM offsets for the current rotation.
func (tft *Device) offsets() (int16, int16) {
	if tft.rot == Rot_0 || tft.rot == Rot_180 {
		return tft.colOff, tft.rowOff
	}
	return tft.rowOff, tft.colOff
}

// setWindow defines the output area for subsequent calls to CMD_RAMWR
func (tft *Device) setWindow(x, y, w, h int16) error {
	co, ro := tft.offsets()
	x, y = x+co, y+ro

	x1 := x + w - 1
	if !tft.window || x != tft.x0 || x1 != tft.x1 {
		tft.window = false
		if err := tft.writeCmd(CMD_CASET,
			uint8(x>>8),
			uint8(x),
			uint8(x1>>8),
			uint8(x1),
		); err != nil {
			return err
		}
		tft.x0, tft.x1 = x, x1
	}
	y1 := y + h - 1
	if !tft.window || y != tft.y0 || y1 != tft.y1 {
		tft.window = false
		if err := tft.writeCmd(CMD_PASET,
			uint8(y>>8),
			uint8(y),
			uint8(y1>>8),
			uint8(y1),
		); err != nil {
			return err
		}
		tft.y0, tft.y1 = y, y1
	}
	tft.window = true
	return nil
}

// updateMadctl updates CMD_MADCTL based settings (mirror, rotation, RGB/BGR)
func (tft *Device) updateMadctl() error {
	madctl := uint8(0)

	if !tft.mirror {
		// regular
		switch tft.rot {
		case Rot_0:
			madctl = 0
		case Rot_90:
			madctl = MADCTL_MX | MADCTL_MH | MADCTL_MV
		case Rot_180:
			madctl = MADCTL_MX | MADCTL_MH | MADCTL_MY | MADCTL_ML
		case Rot_270:
			madctl = MADCTL_MV | MADCTL_MY | MADCTL_ML
		}
	} else {
		// mirrored
		switch tft.rot {
		case Rot_0:
			madctl = MADCTL_MX | MADCTL_MH
		case Rot_90:
			madctl = MADCTL_MX | MADCTL_MH | MADCTL_MY | MADCTL_ML | MADCTL_MV
		case Rot_180:
			madctl = MADCTL_MY | MADCTL_ML
		case Rot_270:
			madctl = MADCTL_MV
		}
	}

	if tft.bgr {
		madctl |= MADCTL_BGR
	}

	return tft.writeCmd(CMD_MADCTL, madctl)
}

// writeCmd issues a TFT command with optional data
func (tft *Device) writeCmd(cmd uint8, data ...uint8) error {
	tft.startWrite()
	defer tft.endWrite()

	tft.dc.Low() // command mode
	if err := tft.tspt.write8(cmd); err != nil {
		tft.dc.High()
		return err
	}

	tft.dc.High() // data mode
	return tft.tspt.write8sl(data)
}

//go:inline
func (tft *Device) startWrite() {
	if tft.cs != nil {
		tft.cs.Low()
	}
}

//go:inline
func (tft *Device) endWrite() {
	if tft.cs != nil {
		tft.cs.High()
	}
}

// cmdSeq runs a command sequence, stopping at the first failure.
type cmdSeq struct {
	tft *Device
	err error
}

func (s *cmdSeq) cmd(cmd uint8, data ...uint8) {
	if s.err != nil {
		return
	}
	s.err = s.tft.writeCmd(cmd, data...)
}

func (s *cmdSeq) wait(d time.Duration) {
	if s.err != nil {
		return
	}
	s.tft.delay(d)
}
