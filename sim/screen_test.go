package sim

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"giddy/display"
	"giddy/ili9163c"
	"giddy/rgb565"
)

func begun(t *testing.T, w, h int16) *Screen {
	t.Helper()
	s := NewScreen(w, h, nil)
	require.NoError(t, s.Begin(display.DefaultBusConfig))
	return s
}

func TestDefaults(t *testing.T) {
	s := NewScreen(0, 0, nil)
	w, h := s.Size()
	assert.Equal(t, [2]int16{128, 128}, [2]int16{w, h})
	assert.NoError(t, s.Display())
}

func TestBeginValidatesBus(t *testing.T) {
	s := NewScreen(128, 128, nil)
	assert.ErrorIs(t, s.Begin(ili9163c.BusConfig{}), ErrBusFrequency)
	assert.ErrorIs(t, s.Begin(ili9163c.BusConfig{Frequency: 1, Mode: 4}), ErrBusMode)
	assert.ErrorIs(t, s.FillRect(0, 0, 1, 1, rgb565.RED), ErrNotBegun)

	require.NoError(t, s.Begin(display.DefaultBusConfig))
	assert.Equal(t, display.DefaultBusConfig, s.Bus())
}

func TestFillRect(t *testing.T) {
	s := begun(t, 128, 128)

	require.NoError(t, s.FillRect(0, 0, 128, 128, rgb565.YELLOW))
	assert.Equal(t, rgb565.YELLOW, s.At(0, 0))
	assert.Equal(t, rgb565.YELLOW, s.At(127, 127))

	require.NoError(t, s.FillRect(10, 10, 2, 2, rgb565.BLUE))
	assert.Equal(t, rgb565.BLUE, s.At(11, 11))
	assert.Equal(t, rgb565.YELLOW, s.At(12, 11))
	assert.Equal(t, uint64(2), s.Fills())
}

func TestFillRectPanelMismatch(t *testing.T) {
	small := begun(t, 96, 64)
	require.NoError(t, small.FillRect(0, 0, 128, 128, rgb565.RED))
	assert.Equal(t, rgb565.RED, small.At(95, 63))
	assert.Equal(t, rgb565.BLACK, small.At(96, 0))

	large := begun(t, 128, 160)
	require.NoError(t, large.FillRect(0, 0, 128, 128, rgb565.RED))
	assert.Equal(t, rgb565.RED, large.At(127, 127))
	assert.Equal(t, rgb565.BLACK, large.At(0, 128))

	require.NoError(t, large.FillRect(-5, -5, 3, 3, rgb565.RED))
}

func TestSetPixelAndSnapshot(t *testing.T) {
	s := begun(t, 4, 2)
	s.SetPixel(1, 1, color.RGBA{R: 0xff, G: 0xff, A: 0xff})
	s.SetPixel(9, 9, color.RGBA{R: 0xff, A: 0xff})

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	require.NoError(t, s.Snapshot(img))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(0, 0))

	assert.Error(t, s.Snapshot(image.NewRGBA(image.Rect(0, 0, 3, 3))))
}

func TestTextColor(t *testing.T) {
	s := begun(t, 8, 8)
	s.SetTextColor(rgb565.WHITE, rgb565.BLACK)
	fg, bg := s.TextColor()
	assert.Equal(t, rgb565.WHITE, fg)
	assert.Equal(t, rgb565.BLACK, bg)
}

func TestControllerOnScreen(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewScreen(128, 128, zap.New(core))

	var slept time.Duration
	var seen []rgb565.Color
	ctrl := display.NewController(
		display.Config{Bus: display.DefaultBusConfig},
		func(ili9163c.Pins) display.Driver { return s },
		display.WithSleeper(display.SleeperFunc(func(d time.Duration) {
			slept += d
			seen = append(seen, s.At(64, 64))
		})),
	)

	ctrl.Setup()
	ctrl.Process()

	assert.Equal(t, []rgb565.Color{rgb565.YELLOW, rgb565.RED}, seen)
	assert.Equal(t, time.Second, slept)
	assert.Equal(t, uint64(2), s.Fills())

	fg, bg := s.TextColor()
	assert.Equal(t, rgb565.WHITE, fg)
	assert.Equal(t, rgb565.BLACK, bg)

	assert.Equal(t, 1, logs.FilterMessage("begin").Len())
	assert.Equal(t, 2, logs.FilterMessage("fill-rect").Len())
}
