package maze

import (
	"context"
	"errors"
	"fmt"

	astar "github.com/pdrpinto/astar-maze"
)

var ErrStartIsWall = errors.New("start cell is a wall")

// Path is an ordered walk from start to goal, both inclusive.
type Path []Coord

// Solution is the outcome of Solve. Found is false when no path exists.
type Solution struct {
	Path     Path `json:"path"`
	Found    bool `json:"found"`
	Cost     int  `json:"cost"`
	Expanded int  `json:"expanded"`
}

// graph adapts a Grid to astar.Graph with unit edge costs.
type graph struct{ g *Grid }

func (gg graph) Neighbors(c Coord) []astar.Neighbor[Coord] {
	ns := gg.g.Neighbors(c)
	out := make([]astar.Neighbor[Coord], len(ns))
	for i, n := range ns {
		out[i] = astar.Neighbor[Coord]{ID: n, Cost: 1}
	}
	return out
}

// Graph exposes g to the generic engine, for callers that want a Stepper.
func (g *Grid) Graph() astar.Graph[Coord] { return graph{g} }

// Heuristic is the Manhattan distance as an astar.Heuristic.
func Heuristic(from, to Coord) float64 { return float64(Manhattan(from, to)) }

// Solve finds a shortest 4-connected path from start to goal.
//
// Coordinates outside the grid and a walled start are rejected before any
// search runs. An unreachable goal is reported with Found == false and a nil error.
func Solve(g *Grid, start, goal Coord, opts ...astar.Option) (Solution, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return Solution{}, err
	}
	res, err := astar.Search(context.Background(), g.Graph(), start, goal, Heuristic, opts...)
	if err != nil {
		return Solution{}, fmt.Errorf("search %v -> %v: %w", start, goal, err)
	}
	return Solution{
		Path:     res.Path,
		Found:    res.Found,
		Cost:     int(res.TotalCost),
		Expanded: res.ExpandedNodes,
	}, nil
}

// SolveGrid solves between the grid's own Start and Goal markers.
func SolveGrid(g *Grid, opts ...astar.Option) (Solution, error) {
	start, err := g.Start()
	if err != nil {
		return Solution{}, err
	}
	goal, err := g.Goal()
	if err != nil {
		return Solution{}, err
	}
	return Solve(g, start, goal, opts...)
}

// NewStepper prepares a step-by-step search between start and goal.
func NewStepper(ctx context.Context, g *Grid, start, goal Coord, opts ...astar.Option) (*astar.Stepper[Coord], error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	return astar.NewStepper(ctx, g.Graph(), start, goal, Heuristic, opts...), nil
}

func checkEndpoints(g *Grid, start, goal Coord) error {
	if !g.InBounds(start) {
		return fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("goal %v: %w", goal, ErrOutOfBounds)
	}
	if g.At(start) == Wall {
		return fmt.Errorf("start %v: %w", start, ErrStartIsWall)
	}
	return nil
}

// Valid reports whether p is a 4-connected walk over walkable cells of g.
func (p Path) Valid(g *Grid) bool {
	for i, c := range p {
		if !g.Walkable(c) {
			return false
		}
		if i > 0 && Manhattan(p[i-1], c) != 1 {
			return false
		}
	}
	return true
}
