package maze

import "fmt"

// Cell is the kind of a single grid square.
type Cell int

const (
	Open Cell = iota
	Wall
	Start
	Goal
)

func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}

// Rune is the character used for c in the text format.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'E'
	}
	return ' '
}

// ParseCell maps a text-format character to a Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '#':
		return Wall, nil
	case ' ', '.':
		return Open, nil
	case 'S', 's':
		return Start, nil
	case 'E', 'e', 'G', 'g':
		return Goal, nil
	}
	return Open, fmt.Errorf("unknown cell character %q", r)
}
