package ui

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/animate"
	"github.com/pdrpinto/astar-maze/maze"
)

// Controller is the toolkit-independent half of the viewer: it owns the
// current grid, its solution and the robot state. Methods are meant to be
// called from the UI goroutine only.
type Controller struct {
	grid     *maze.Grid
	start    maze.Coord
	solution maze.Solution
	robot    animate.State

	rng     *rand.Rand
	density float64
	log     *logrus.Entry
}

// NewController solves g between its markers.
func NewController(g *maze.Grid, rng *rand.Rand, density float64, log *logrus.Entry) (*Controller, error) {
	c := &Controller{rng: rng, density: density, log: log}
	if err := c.load(g); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) load(g *maze.Grid) error {
	start, err := g.Start()
	if err != nil {
		return err
	}
	sol, err := maze.SolveGrid(g, astar.WithLogger(c.log))
	if err != nil {
		return err
	}
	c.grid, c.start, c.solution = g, start, sol

	path := sol.Path
	if !sol.Found {
		// the marker stays on start when there is nothing to follow
		path = maze.Path{start}
		c.log.WithField("start", start).Warn("no path from start to goal")
	} else {
		c.log.WithFields(logrus.Fields{"length": len(path), "expanded": sol.Expanded}).Info("path found")
	}
	c.robot = animate.New(path)
	return nil
}

func (c *Controller) Grid() *maze.Grid { return c.grid }
func (c *Controller) Solution() maze.Solution { return c.solution }
func (c *Controller) Robot() animate.State { return c.robot }

func (c *Controller) RobotAt() maze.Coord {
	at, _ := c.robot.Current()
	return at
}

func (c *Controller) Start() { c.robot = animate.Start(c.robot) }
func (c *Controller) Pause() { c.robot = animate.Pause(c.robot) }
func (c *Controller) Reset() { c.robot = animate.Reset(c.robot) }

// Tick advances the robot one cell and reports whether it moved.
func (c *Controller) Tick() bool {
	before := c.robot.Position
	c.robot = animate.Step(c.robot)
	return c.robot.Position != before
}

// Regenerate replaces the grid with a random one of the same size, keeping
// the start cell, and solves it again. An unreachable goal is accepted.
func (c *Controller) Regenerate() error {
	g, err := maze.Generate(c.rng, c.grid.Rows(), c.grid.Cols(), c.start, maze.GenerateOptions{WallDensity: c.density})
	if err != nil {
		return err
	}
	if err := c.load(g); err != nil {
		return err
	}
	if g.Enclosed(c.start) {
		c.log.WithField("start", c.start).Info("robot is boxed in by walls")
		c.robot = animate.Pause(c.robot)
	}
	return nil
}
