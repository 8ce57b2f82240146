//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"giddy/app"
	"giddy/display"
	"giddy/ili9163c"
	"giddy/sim"
	"giddy/sim/window"
)

var headless = flag.Bool("headless", false, "run without a window")
var cycles = flag.Int("cycles", 0, "stop after N flash cycles (0 = run forever)")
var width = flag.Int16("width", ili9163c.TFT_DEFAULT_WIDTH, "simulated panel width")
var height = flag.Int16("height", ili9163c.TFT_DEFAULT_HEIGHT, "simulated panel height")
var scale = flag.Int("scale", 4, "window scale factor")
var debug = flag.Bool("debug", false, "log every driver call")

func main() {
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var screen *sim.Screen
	var lp *loop

	fxApp := fx.New(
		fx.Supply(logger),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(
			newScreen,
			newController,
			newGiddy,
			newLoop,
		),
		fx.Populate(&screen, &lp),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		logger.With(zap.Error(err)).Fatal("start failed")
	}

	if *headless {
		select {
		case <-ctx.Done():
		case <-lp.finished:
		}
	} else if err := window.Run(ctx, screen, window.Options{Title: "giddy", Scale: *scale}); err != nil {
		logger.With(zap.Error(err)).Error("window failed")
	}

	logger.Info("shutting down")
	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		logger.With(zap.Error(err)).Error("stop failed")
	}

	if err := lp.err; err != nil && !errors.Is(err, context.Canceled) {
		logger.With(zap.Error(err)).Error("exited")
		os.Exit(1)
	}
	logger.With(zap.Uint64("fills", screen.Fills())).Info("exited")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newScreen(logger *zap.Logger) *sim.Screen {
	return sim.NewScreen(*width, *height, logger)
}

func newController(screen *sim.Screen, logger *zap.Logger) *display.Controller {
	l := logger.With(zap.String("via", "display-controller"))
	return display.NewController(
		display.Config{Bus: display.DefaultBusConfig},
		func(ili9163c.Pins) display.Driver { return screen },
		display.WithErrorHandler(func(op string, err error) {
			l.With(zap.String("op", op), zap.Error(err)).Warn("driver failed")
		}),
	)
}

func newGiddy(ctrl *display.Controller) *app.Giddy {
	return app.New(ctrl)
}

// loop runs the application on its own goroutine between fx start and stop.
type loop struct {
	cancel   context.CancelFunc
	finished chan struct{}
	err      error
}

func newLoop(lc fx.Lifecycle, g *app.Giddy, logger *zap.Logger) *loop {
	lp := &loop{finished: make(chan struct{})}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			lp.cancel = cancel
			go func() {
				defer close(lp.finished)
				lp.err = g.Run(ctx, *cycles)
				logger.With(zap.NamedError("result", lp.err)).Debug("loop finished")
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			lp.cancel()
			// the current flash cycle always completes
			select {
			case <-lp.finished:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return lp
}
