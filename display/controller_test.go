package display

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giddy/ili9163c"
	"giddy/rgb565"
)

// recorder logs driver and sleep calls in the order they happen.
type recorder struct {
	calls   []string
	slept   time.Duration
	beginFn func(cfg ili9163c.BusConfig) error
	fillErr error
	bus     ili9163c.BusConfig
}

func (r *recorder) Begin(cfg ili9163c.BusConfig) error {
	r.bus = cfg
	r.calls = append(r.calls, fmt.Sprintf("begin(%d,%t,%d)", cfg.Frequency, cfg.LSBFirst, cfg.Mode))
	if r.beginFn != nil {
		return r.beginFn(cfg)
	}
	return nil
}

func (r *recorder) SetTextColor(fg, bg rgb565.Color) {
	r.calls = append(r.calls, fmt.Sprintf("setTextColor(0x%04x,0x%04x)", uint16(fg), uint16(bg)))
}

func (r *recorder) FillRect(x, y, w, h int16, c rgb565.Color) error {
	r.calls = append(r.calls, fmt.Sprintf("fillRect(%d,%d,%d,%d,0x%04x)", x, y, w, h, uint16(c)))
	return r.fillErr
}

func (r *recorder) Sleep(d time.Duration) {
	r.slept += d
	r.calls = append(r.calls, "sleep("+d.String()+")")
}

type pin struct{ name string }

func (pin) High() {}
func (pin) Low()  {}

func newTestController(t *testing.T, rec *recorder, opts ...Option) *Controller {
	t.Helper()
	cfg := Config{
		Bus:  DefaultBusConfig,
		Pins: ili9163c.Pins{CS: pin{"cs"}, DC: pin{"dc"}, RST: pin{"rst"}},
	}
	opts = append([]Option{WithSleeper(rec)}, opts...)
	return NewController(cfg, func(ili9163c.Pins) Driver { return rec }, opts...)
}

var cycle = []string{
	"fillRect(0,0,128,128,0xffe0)",
	"sleep(500ms)",
	"fillRect(0,0,128,128,0xf800)",
	"sleep(500ms)",
}

func TestNewControllerPassesPins(t *testing.T) {
	pins := ili9163c.Pins{CS: pin{"cs"}, DC: pin{"dc"}, RST: pin{"rst"}}
	var got ili9163c.Pins
	rec := &recorder{}

	NewController(Config{Bus: DefaultBusConfig, Pins: pins}, func(p ili9163c.Pins) Driver {
		got = p
		return rec
	})

	assert.Equal(t, pins, got)
	assert.Empty(t, rec.calls, "construction must not touch the driver")
}

func TestSetup(t *testing.T) {
	rec := &recorder{}
	c := newTestController(t, rec)

	c.Setup()

	assert.Equal(t, []string{
		"begin(16000000,false,0)",
		"setTextColor(0xffff,0x0000)",
	}, rec.calls)
	assert.Equal(t, ili9163c.BusConfig{Frequency: 16_000_000}, rec.bus)
}

func TestProcessSequence(t *testing.T) {
	rec := &recorder{}
	c := newTestController(t, rec)
	c.Setup()
	rec.calls = nil

	c.Process()

	assert.Equal(t, cycle, rec.calls)
	assert.Equal(t, time.Second, rec.slept)
}

func TestProcessRepeats(t *testing.T) {
	const n = 5
	rec := &recorder{}
	c := newTestController(t, rec)
	c.Setup()
	rec.calls = nil

	for i := 0; i < n; i++ {
		c.Process()
	}

	require.Len(t, rec.calls, n*len(cycle))
	fills := 0
	for i, call := range rec.calls {
		assert.Equal(t, cycle[i%len(cycle)], call, "call %d", i)
		if strings.HasPrefix(call, "fillRect") {
			fills++
		}
	}
	assert.Equal(t, 2*n, fills)
	assert.Equal(t, n*time.Second, rec.slept)
}

func TestDriverErrorsAreReportedNotSurfaced(t *testing.T) {
	errBus := errors.New("bus timeout")
	rec := &recorder{
		beginFn: func(ili9163c.BusConfig) error { return errBus },
		fillErr: errBus,
	}

	var reported []string
	c := newTestController(t, rec, WithErrorHandler(func(op string, err error) {
		assert.ErrorIs(t, err, errBus)
		reported = append(reported, op)
	}))

	c.Setup()
	c.Process()

	// control flow is unchanged by failures
	assert.Equal(t, append([]string{
		"begin(16000000,false,0)",
		"setTextColor(0xffff,0x0000)",
	}, cycle...), rec.calls)
	assert.Equal(t, []string{"begin", "fill", "fill"}, reported)
}

func TestDefaultSleeper(t *testing.T) {
	rec := &recorder{}
	c := NewController(Config{Bus: DefaultBusConfig}, func(ili9163c.Pins) Driver { return rec })
	require.NotNil(t, c.sleep)
	require.NotNil(t, c.onErr)

	c = NewController(Config{}, func(ili9163c.Pins) Driver { return rec }, WithSleeper(nil), WithErrorHandler(nil))
	assert.NotNil(t, c.sleep)
	assert.NotNil(t, c.onErr)
}

func TestSleeperFunc(t *testing.T) {
	var got time.Duration
	SleeperFunc(func(d time.Duration) { got = d }).Sleep(FlashInterval)
	assert.Equal(t, 500*time.Millisecond, got)
}
