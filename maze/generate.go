package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrUnreachable = errors.New("no generated layout connects start and goal")

const (
	DefaultWallDensity = 0.3
	DefaultMaxAttempts = 50
)

// GenerateOptions tunes Generate. The zero value uses the defaults.
type GenerateOptions struct {
	// WallDensity is the probability that a cell becomes a wall.
	WallDensity float64
	// RequireReachable retries generation until the goal is reachable from start.
	RequireReachable bool
	// MaxAttempts bounds the retries made for RequireReachable.
	MaxAttempts int
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.WallDensity <= 0 || o.WallDensity >= 1 {
		o.WallDensity = DefaultWallDensity
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return o
}

// Generate scatters random walls over a rows×cols grid, keeps start as the
// Start marker and puts the Goal on a random other cell. The goal may land on
// a spot that had been a wall and may be unreachable unless RequireReachable is set.
func Generate(rng *rand.Rand, rows, cols int, start Coord, opts GenerateOptions) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows*cols < 2 {
		return nil, fmt.Errorf("%dx%d grid cannot hold both start and goal", rows, cols)
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}
	opts = opts.withDefaults()

	attempts := 1
	if opts.RequireReachable {
		attempts = opts.MaxAttempts
	}
	for i := 0; i < attempts; i++ {
		g := scatter(rng, rows, cols, start, opts.WallDensity)
		if !opts.RequireReachable {
			return g, nil
		}
		goal, _ := g.Goal()
		if g.Reachable(start)[goal] {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%d attempts at density %.2f: %w", attempts, opts.WallDensity, ErrUnreachable)
}

func scatter(rng *rand.Rand, rows, cols int, start Coord, density float64) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = Wall
		}
	}
	g.cells[start.Row*cols+start.Col] = Start

	goal := start
	for goal == start {
		goal = Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	g.cells[goal.Row*cols+goal.Col] = Goal
	return g
}
