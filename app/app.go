// Package app is the composition point of giddy: it owns the display
// controller and drives it from the outer loop.
package app

import (
	"context"
	"sync"
)

// Controller is what the application drives.
type Controller interface {
	Setup()
	Process()
}

type Giddy struct {
	ctrl  Controller
	setup sync.Once
}

func New(ctrl Controller) *Giddy {
	return &Giddy{ctrl: ctrl}
}

// Setup initializes the controller. Only the first call has an effect.
func (g *Giddy) Setup() {
	g.setup.Do(g.ctrl.Setup)
}

// Process runs one controller cycle.
func (g *Giddy) Process() {
	g.ctrl.Process()
}

// Run sets up and then processes until ctx is done or cycles have run.
// cycles <= 0 means forever. A started cycle always runs to completion.
func (g *Giddy) Run(ctx context.Context, cycles int) error {
	g.Setup()

	for n := 0; cycles <= 0 || n < cycles; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		g.Process()
	}
	return nil
}
