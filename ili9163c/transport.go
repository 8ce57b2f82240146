package ili9163c

import (
	"tinygo.org/x/drivers"
)

type transport interface {
	// 8 bit
	write8(b uint8) error
	write8sl(b []uint8) error

	// 16 bit, high byte first
	write16n(data uint16, n int) error
	write16sl(data []uint16) error
}

type spiTransport struct {
	spi drivers.SPI // spi bus
	buf []uint8     // spi data buffer
}

func newSPITransport(spi drivers.SPI, bufSize int) transport {
	if bufSize < 2 {
		bufSize = 64
	}
	return &spiTransport{
		spi: spi,
		buf: make([]uint8, bufSize),
	}
}

// 8 bit
func (st *spiTransport) write8(data uint8) error {
	st.buf[0] = data
	return st.spi.Tx(st.buf[:1], nil)
}

func (st *spiTransport) write8sl(data []uint8) error {
	if len(data) == 0 {
		return nil
	}
	return st.spi.Tx(data, nil)
}

// 16 bit
func (st *spiTransport) write16n(data uint16, n int) error {
	bufWords := len(st.buf) / 2

	// the buffer only needs filling once for a repeated value
	fill := n
	if fill > bufWords {
		fill = bufWords
	}
	for i := 0; i < fill; i++ {
		st.buf[2*i] = uint8(data >> 8)
		st.buf[2*i+1] = uint8(data)
	}

	for n > 0 {
		chunk := n
		if chunk > bufWords {
			chunk = bufWords
		}
		if err := st.spi.Tx(st.buf[:2*chunk], nil); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (st *spiTransport) write16sl(data []uint16) error {
	bufWords := len(st.buf) / 2

	for len(data) > 0 {
		chunk := len(data)
		if chunk > bufWords {
			chunk = bufWords
		}
		for i, elem := range data[:chunk] {
			st.buf[2*i] = uint8(elem >> 8)
			st.buf[2*i+1] = uint8(elem)
		}
		if err := st.spi.Tx(st.buf[:2*chunk], nil); err != nil { // transmit
			return err
		}
		data = data[chunk:]
	}
	return nil
}
