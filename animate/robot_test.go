package animate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdrpinto/astar-maze/maze"
)

var line = maze.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}

func TestStepWalksToEnd(t *testing.T) {
	s := Start(New(line))
	assert.True(t, s.Moving)

	s = Step(s)
	assert.Equal(t, 1, s.Position)
	assert.True(t, s.Moving)

	s = Step(s)
	at, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, maze.Coord{Row: 0, Col: 2}, at)
	assert.False(t, s.Moving, "reaching the goal stops the robot")

	assert.Equal(t, s, Step(s))
}

func TestPauseAndReset(t *testing.T) {
	s := Step(Start(New(line)))
	paused := Pause(s)
	assert.False(t, paused.Moving)
	assert.Equal(t, paused, Step(paused))

	reset := Reset(paused)
	assert.Zero(t, reset.Position)
	assert.False(t, reset.Moving)
	assert.Equal(t, 1, s.Position, "operations do not mutate their input")
}

func TestStartAtEndStaysStopped(t *testing.T) {
	assert.False(t, Start(New(maze.Path{{Row: 3, Col: 3}})).Moving)
	assert.False(t, Start(New(nil)).Moving)
}

func TestEmptyPath(t *testing.T) {
	s := New(nil)
	_, ok := s.Current()
	assert.False(t, ok)
	s.Moving = true
	s = Step(s)
	assert.False(t, s.Moving)
	assert.Zero(t, s.Position)
}
