package ui

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/astar-maze/maze"
	"github.com/pdrpinto/astar-maze/render"
)

const defaultMoveDelay = 500 * time.Millisecond

// Options configures the desktop viewer.
type Options struct {
	Grid        *maze.Grid // nil shows the built-in layout
	CellSize    int
	MoveDelay   time.Duration
	WallDensity float64
	Seed        int64
	Logger      *logrus.Entry
}

func (o *Options) controller() (*Controller, error) {
	if o.Grid == nil {
		o.Grid = maze.Default()
	}
	if o.CellSize <= 0 {
		o.CellSize = render.DefaultCellSize
	}
	if o.MoveDelay <= 0 {
		o.MoveDelay = defaultMoveDelay
	}
	if o.Logger == nil {
		o.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return NewController(o.Grid, rand.New(rand.NewSource(o.Seed)), o.WallDensity, o.Logger)
}
