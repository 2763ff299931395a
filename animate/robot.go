// Package animate holds the robot marker state that viewers advance along a solved path.
//
// State is a plain value. Every operation returns the next state and leaves its
// argument untouched, so a viewer owns exactly one copy and swaps it on each tick.
package animate

import "github.com/pdrpinto/astar-maze/maze"

// State is the position of the robot on its path and whether it is moving.
type State struct {
	Path     maze.Path
	Position int
	Moving   bool
}

// New places a stopped robot at the first cell of path.
func New(path maze.Path) State {
	return State{Path: path}
}

// Start sets the robot moving. A robot already at the end stays stopped.
func Start(s State) State {
	s.Moving = !s.AtEnd()
	return s
}

// Pause stops the robot where it is.
func Pause(s State) State {
	s.Moving = false
	return s
}

// Reset stops the robot and returns it to the first cell.
func Reset(s State) State {
	s.Position = 0
	s.Moving = false
	return s
}

// Step advances a moving robot by one cell and stops it on the last cell.
func Step(s State) State {
	if !s.Moving {
		return s
	}
	if s.AtEnd() {
		s.Moving = false
		return s
	}
	s.Position++
	if s.AtEnd() {
		s.Moving = false
	}
	return s
}

// AtEnd reports whether the robot cannot advance any further.
func (s State) AtEnd() bool {
	return s.Position >= len(s.Path)-1
}

// Current returns the robot's cell; ok is false for an empty path.
func (s State) Current() (maze.Coord, bool) {
	if len(s.Path) == 0 {
		return maze.Coord{}, false
	}
	return s.Path[s.Position], true
}
