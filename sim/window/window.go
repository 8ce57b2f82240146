//go:build !tinygo && cgo

// Package window shows a sim.Screen in a desktop window.
package window

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"giddy/sim"
)

// Options controls the window.
type Options struct {
	Title string
	Scale int
}

// Run opens the window and blocks until it is closed or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, screen *sim.Screen, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 4
	}
	if opts.Title == "" {
		opts.Title = "giddy"
	}

	w, h := screen.Size()
	g := &game{
		ctx:    ctx,
		screen: screen,
		img:    image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(w)*opts.Scale, int(h)*opts.Scale)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

type game struct {
	ctx    context.Context
	screen *sim.Screen
	img    *image.RGBA
	fbImg  *ebiten.Image
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	return g.screen.Snapshot(g.img)
}

func (g *game) Draw(dst *ebiten.Image) {
	if g.fbImg == nil {
		b := g.img.Bounds()
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	dst.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.screen.Size()
	return int(w), int(h)
}
