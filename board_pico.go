//go:build tinygo && rp2040

package main

import "machine"

// Raspberry Pi Pico wiring, SPI0
var TFT_SPI = machine.SPI0

const (
	TFT_SCK_PIN = machine.GP18
	TFT_SDO_PIN = machine.GP19
	TFT_SDI_PIN = machine.GP16
	TFT_CS_PIN  = machine.GP17
	TFT_DC_PIN  = machine.GP20
	TFT_RST_PIN = machine.GP21
)
