//go:build !tinygo && !cgo

package window

import (
	"context"

	"github.com/pkg/errors"

	"giddy/sim"
)

type Options struct {
	Title string
	Scale int
}

func Run(_ context.Context, _ *sim.Screen, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), use --headless")
}
