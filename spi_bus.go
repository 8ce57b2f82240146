//go:build tinygo && rp2040

package main

import (
	"machine"

	"giddy/ili9163c"
)

// spiBus lets the panel driver (re)configure the hardware SPI it writes to.
type spiBus struct {
	*machine.SPI
	sck machine.Pin
	sdo machine.Pin
	sdi machine.Pin
}

func (b *spiBus) Configure(cfg ili9163c.BusConfig) error {
	return b.SPI.Configure(machine.SPIConfig{
		SCK:       b.sck,
		SDO:       b.sdo,
		SDI:       b.sdi,
		LSBFirst:  cfg.LSBFirst,
		Mode:      cfg.Mode,
		Frequency: cfg.Frequency,
	})
}
