//go:build tinygo && rp2040

package main

import (
	"context"
	"machine"

	"giddy/app"
	"giddy/display"
	"giddy/ili9163c"
)

func main() {
	for _, pin := range []machine.Pin{TFT_CS_PIN, TFT_DC_PIN, TFT_RST_PIN} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	bus := &spiBus{
		SPI: TFT_SPI,
		sck: TFT_SCK_PIN,
		sdo: TFT_SDO_PIN,
		sdi: TFT_SDI_PIN,
	}

	ctrl := display.NewController(
		display.Config{
			Bus: display.DefaultBusConfig,
			Pins: ili9163c.Pins{
				CS:  TFT_CS_PIN,
				DC:  TFT_DC_PIN,
				RST: TFT_RST_PIN,
			},
		},
		func(pins ili9163c.Pins) display.Driver {
			return ili9163c.New(bus, pins, ili9163c.Config{})
		},
	)

	app.New(ctrl).Run(context.Background(), 0)
}
