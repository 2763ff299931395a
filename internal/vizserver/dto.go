package vizserver

import (
	"cmp"
	"slices"

	"github.com/pdrpinto/astar-maze/maze"
)

type createSessionRequest struct {
	Layout           string      `json:"layout"` // "default" or "random"
	Rows             int         `json:"rows"`
	Cols             int         `json:"cols"`
	Density          float64     `json:"density"`
	Seed             *int64      `json:"seed"`
	Start            *maze.Coord `json:"start"`
	RequireReachable bool        `json:"require_reachable"`
}

type createSessionResponse struct {
	ID    string     `json:"id"`
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Start maze.Coord `json:"start"`
	Goal  maze.Coord `json:"goal"`
	Maze  string     `json:"maze"`
}

type snapshotResponse struct {
	Step    int          `json:"step"`
	Current maze.Coord   `json:"current"`
	FCost   float64      `json:"f"`
	Open    []maze.Coord `json:"open"`
	Closed  []maze.Coord `json:"closed"`
	Done    bool         `json:"done"`
	Found   bool         `json:"found"`
	Path    []maze.Coord `json:"path,omitempty"`
}

type solutionResponse struct {
	maze.Solution
	Maze string `json:"maze"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// sortedKeys lists the true entries of set in row-major order.
func sortedKeys(set map[maze.Coord]bool) []maze.Coord {
	out := make([]maze.Coord, 0, len(set))
	for c, ok := range set {
		if ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b maze.Coord) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}
