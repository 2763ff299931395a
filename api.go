package astar

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrExpansionLimit is returned when a search expands more nodes than allowed by WithExpansionLimit.
var ErrExpansionLimit = errors.New("expansion limit exceeded")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search.
// Found is false when the goal is unreachable; that is not an error.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
	// PoppedF holds the f value of every expanded node, in expansion order.
	PoppedF []float64
}

// Search runs A* from startNode until goalNode is popped or the frontier is empty.
//
// The search is serial and deterministic. The context is checked between
// expansions; a cancelled context aborts with ctx.Err().
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := applyOptions(options)
	state := newSearchState(graph, startNode, goalNode, heuristic, searchOptions)

	for {
		if err := contextObject.Err(); err != nil {
			return Result[NodeType]{ExpandedNodes: state.expanded, PoppedF: state.poppedF}, err
		}

		currentItem, ok := state.popNext()
		if !ok {
			searchOptions.Logger.WithField("expanded", state.expanded).Debug("frontier exhausted")
			return Result[NodeType]{
				ExpandedNodes: state.expanded,
				Found:         false,
				PoppedF:       state.poppedF,
			}, nil
		}

		if searchOptions.ExpansionLimit > 0 && state.expanded > searchOptions.ExpansionLimit {
			return Result[NodeType]{ExpandedNodes: state.expanded, PoppedF: state.poppedF}, ErrExpansionLimit
		}

		if currentItem.Node == goalNode {
			searchOptions.Logger.WithFields(logrus.Fields{
				"expanded": state.expanded,
				"cost":     currentItem.GScore,
			}).Debug("goal reached")
			return Result[NodeType]{
				Path:          state.path(currentItem.Node),
				TotalCost:     currentItem.GScore,
				ExpandedNodes: state.expanded,
				Found:         true,
				PoppedF:       state.poppedF,
			}, nil
		}

		state.expand(currentItem)
	}
}
