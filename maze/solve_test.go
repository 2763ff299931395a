package maze

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/pdrpinto/astar-maze"
)

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := ParseString(s)
	require.NoError(t, err)
	return g
}

func TestSolveOpenGrid(t *testing.T) {
	g, err := Filled(3, 3, Open)
	require.NoError(t, err)

	sol, err := Solve(g, Coord{0, 0}, Coord{2, 2})
	require.NoError(t, err)
	require.True(t, sol.Found)
	assert.Equal(t, Path{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, sol.Path)
	assert.Equal(t, 4, sol.Cost)
	assert.Equal(t, 9, sol.Expanded)
}

func TestSolveOpenGridIsManhattan(t *testing.T) {
	g, err := Filled(7, 9, Open)
	require.NoError(t, err)

	cases := []struct{ start, goal Coord }{
		{Coord{0, 0}, Coord{6, 8}},
		{Coord{6, 0}, Coord{0, 8}},
		{Coord{3, 4}, Coord{3, 4}},
		{Coord{5, 2}, Coord{1, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.start.String()+"->"+tc.goal.String(), func(t *testing.T) {
			sol, err := Solve(g, tc.start, tc.goal)
			require.NoError(t, err)
			require.True(t, sol.Found)
			assert.Len(t, sol.Path, Manhattan(tc.start, tc.goal)+1)
			assert.True(t, sol.Path.Valid(g))
		})
	}
}

func TestSolvePoppedFMonotone(t *testing.T) {
	g, err := Filled(3, 3, Open)
	require.NoError(t, err)
	res, err := astar.Search(context.Background(), g.Graph(), Coord{0, 0}, Coord{2, 2}, Heuristic)
	require.NoError(t, err)
	assert.IsNonDecreasing(t, res.PoppedF)
}

func TestSolveDefaultLayout(t *testing.T) {
	g := Default()
	sol, err := SolveGrid(g)
	require.NoError(t, err)
	require.True(t, sol.Found)

	start, _ := g.Start()
	goal, _ := g.Goal()
	assert.Equal(t, start, sol.Path[0])
	assert.Equal(t, goal, sol.Path[len(sol.Path)-1])
	assert.Len(t, sol.Path, 32)
	assert.True(t, sol.Path.Valid(g))
	assert.GreaterOrEqual(t, len(sol.Path), Manhattan(start, goal)+1)
}

// bfsDistance counts steps from start to goal with a plain breadth-first
// walk over open cells, or -1 when goal cannot be reached.
func bfsDistance(g *Grid, start, goal Coord) int {
	dist := map[Coord]int{start: 0}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !g.InBounds(next) || g.At(next) == Wall {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestSolveMatchesBFSOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	densities := []float64{0.1, 0.25, 0.35, 0.45}

	for i := 0; i < 600; i++ {
		rows, cols := 2+rng.Intn(14), 2+rng.Intn(14)
		start := Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		g, err := Generate(rng, rows, cols, start, GenerateOptions{WallDensity: densities[i%len(densities)]})
		require.NoError(t, err)
		goal, err := g.Goal()
		require.NoError(t, err)

		want := bfsDistance(g, start, goal)
		sol, err := Solve(g, start, goal)
		require.NoError(t, err)

		if want < 0 {
			assert.False(t, sol.Found, "grid %d:\n%s", i, g)
			continue
		}
		require.True(t, sol.Found, "grid %d:\n%s", i, g)
		assert.Equal(t, want, sol.Cost, "grid %d:\n%s", i, g)
		assert.Len(t, sol.Path, want+1, "grid %d", i)
		assert.True(t, sol.Path.Valid(g), "grid %d:\n%s", i, g.Overlay(sol.Path))
		assert.Equal(t, start, sol.Path[0])
		assert.Equal(t, goal, sol.Path[len(sol.Path)-1])
	}
}

func TestSolveStartEqualsGoal(t *testing.T) {
	g := mustParse(t, "S#\n E\n")
	sol, err := Solve(g, Coord{1, 0}, Coord{1, 0})
	require.NoError(t, err)
	assert.True(t, sol.Found)
	assert.Equal(t, Path{{1, 0}}, sol.Path)
	assert.Zero(t, sol.Cost)
}

func TestSolveNotFound(t *testing.T) {
	cases := map[string]string{
		"goal enclosed": "S    \n  #  \n #E# \n  #  \n",
		"goal behind wall column": "S #E\n  # \n  # \n",
		"goal in corner": "S  \n  #\n #E\n",
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			sol, err := SolveGrid(mustParse(t, layout))
			require.NoError(t, err)
			assert.False(t, sol.Found)
			assert.Empty(t, sol.Path)
		})
	}
}

func TestSolveGoalIsWall(t *testing.T) {
	g := mustParse(t, "S #\n")
	sol, err := Solve(g, Coord{0, 0}, Coord{0, 2})
	require.NoError(t, err)
	assert.False(t, sol.Found)
}

func TestSolvePreconditions(t *testing.T) {
	g := mustParse(t, "S #\n  E\n")

	_, err := Solve(g, Coord{-1, 0}, Coord{1, 2})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Solve(g, Coord{0, 0}, Coord{2, 2})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Solve(g, Coord{0, 2}, Coord{1, 2})
	assert.ErrorIs(t, err, ErrStartIsWall)

	_, err = SolveGrid(mustParse(t, "  E\n"))
	assert.ErrorIs(t, err, ErrNoStart)

	_, err = SolveGrid(mustParse(t, "S  \n"))
	assert.ErrorIs(t, err, ErrNoGoal)

	_, err = SolveGrid(mustParse(t, "S E S\n"))
	assert.ErrorIs(t, err, ErrDuplicateMarker)
}

func TestSolveLogsThroughOption(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	_, err := SolveGrid(Default(), astar.WithLogger(logrus.NewEntry(logger)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "goal reached")
}

func TestStepperOnGrid(t *testing.T) {
	g := Default()
	start, _ := g.Start()
	goal, _ := g.Goal()

	s, err := NewStepper(context.Background(), g, start, goal)
	require.NoError(t, err)
	defer s.Close()

	snap, err := s.Run()
	require.NoError(t, err)
	assert.True(t, snap.Found)
	assert.Equal(t, 47, snap.StepIndex)

	want, err := Solve(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, []Coord(want.Path), snap.Path)

	_, err = NewStepper(context.Background(), g, Coord{0, 0}, goal)
	assert.ErrorIs(t, err, ErrStartIsWall)
}
