package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGrid       = errors.New("grid has no cells")
	ErrRagged          = errors.New("grid rows have different lengths")
	ErrNoStart         = errors.New("grid has no start cell")
	ErrNoGoal          = errors.New("grid has no goal cell")
	ErrDuplicateMarker = errors.New("grid has more than one marker of a kind")
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
)

// Coord identifies a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is a rectangular, read-only maze layout.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New copies cells into a Grid. Every row must have the same, non-zero length.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: len(cells), cols: len(cells[0])}
	g.cells = make([]Cell, 0, g.rows*g.cols)
	for r, row := range cells {
		if len(row) != g.cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), g.cols, ErrRagged)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Filled returns a rows×cols grid where every cell is c.
func Filled(rows, cols int, c Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i] = c
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Walkable reports whether c is in bounds and not a wall.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.At(c) != Wall
}

// WithCell returns a copy of g with the cell at c replaced.
func (g *Grid) WithCell(c Coord, kind Cell) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	cp := &Grid{rows: g.rows, cols: g.cols, cells: append([]Cell(nil), g.cells...)}
	cp.cells[c.Row*g.cols+c.Col] = kind
	return cp, nil
}

// north, south, west, east
var directions = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the walkable cardinal neighbors of c in north, south,
// west, east order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range directions {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns every coordinate holding kind, in row-major order.
func (g *Grid) Find(kind Cell) []Coord {
	var out []Coord
	for i, c := range g.cells {
		if c == kind {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Start returns the unique start marker.
func (g *Grid) Start() (Coord, error) { return g.marker(Start, ErrNoStart) }

// Goal returns the unique goal marker.
func (g *Grid) Goal() (Coord, error) { return g.marker(Goal, ErrNoGoal) }

func (g *Grid) marker(kind Cell, missing error) (Coord, error) {
	found := g.Find(kind)
	switch len(found) {
	case 0:
		return Coord{}, missing
	case 1:
		return found[0], nil
	}
	return Coord{}, fmt.Errorf("%d %s cells: %w", len(found), kind, ErrDuplicateMarker)
}

// String renders the grid in the text format accepted by Parse.
func (g *Grid) String() string { return g.Overlay(nil) }

// Overlay renders the grid with open cells on path drawn as '*'.
func (g *Grid) Overlay(path Path) string {
	onPath := make(map[Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			pos := Coord{Row: r, Col: c}
			cell := g.At(pos)
			if cell == Open && onPath[pos] {
				b.WriteRune('*')
				continue
			}
			b.WriteRune(cell.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
