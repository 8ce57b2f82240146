// Package display flashes a TFT panel between two solid colours.
package display

import (
	"time"

	"giddy/ili9163c"
	"giddy/rgb565"
)

const (
	// FlashArea is the edge length of the square filled on every flash.
	FlashArea int16 = 128
	// FlashInterval is how long each colour stays on screen.
	FlashInterval = 500 * time.Millisecond
)

// DefaultBusConfig is the SPI link used for the panel: 16 MHz, MSB first, mode 0.
var DefaultBusConfig = ili9163c.BusConfig{
	Frequency: 16_000_000,
	LSBFirst:  false,
	Mode:      0,
}

// Driver is the part of a display driver the controller uses.
type Driver interface {
	Begin(cfg ili9163c.BusConfig) error
	SetTextColor(fg, bg rgb565.Color)
	FillRect(x, y, width, height int16, c rgb565.Color) error
}

// DriverFunc creates the driver bound to the given control lines.
type DriverFunc func(pins ili9163c.Pins) Driver

// Config is the wiring of the panel.
type Config struct {
	Bus  ili9163c.BusConfig
	Pins ili9163c.Pins
}

// Sleeper blocks the caller for d.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to a Sleeper.
type SleeperFunc func(d time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// ErrorHandler receives driver failures. op names the driver call.
type ErrorHandler func(op string, err error)

type Controller struct {
	cfg    Config
	tft    Driver
	sleep  Sleeper
	onErr  ErrorHandler
	colors [2]rgb565.Color
}

func NewController(cfg Config, open DriverFunc, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		tft:    open(cfg.Pins),
		sleep:  SleeperFunc(time.Sleep),
		onErr:  printError,
		colors: [2]rgb565.Color{rgb565.YELLOW, rgb565.RED},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Setup brings up the SPI link and selects white-on-black text.
func (c *Controller) Setup() {
	if err := c.tft.Begin(c.cfg.Bus); err != nil {
		c.onErr("begin", err)
	}
	c.tft.SetTextColor(rgb565.WHITE, rgb565.BLACK)
}

// Process flashes yellow then red, holding each for FlashInterval.
// It blocks for the whole cycle.
func (c *Controller) Process() {
	for _, color := range c.colors {
		if err := c.tft.FillRect(0, 0, FlashArea, FlashArea, color); err != nil {
			c.onErr("fill", err)
		}
		c.sleep.Sleep(FlashInterval)
	}
}

func printError(op string, err error) {
	print("display ")
	print(op)
	print(" - error: ")
	print(err.Error())
	print("\r\n")
}
