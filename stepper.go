package astar

import (
	"context"

	"github.com/pdrpinto/astar-maze/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	FCost     float64
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the same search as Search, one expansion per call to Step.
type Stepper[NodeType comparable] struct {
	ctx    context.Context
	cancel context.CancelFunc
	state  *searchState[NodeType]
	limit  int

	stepCount int
	done      bool
	found     bool
	path      []NodeType
}

// NewStepper prepares a search without expanding anything yet.
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	opts := applyOptions(options)
	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType]{
		ctx:    ctx,
		cancel: cancel,
		state:  newSearchState(graph, startNode, goalNode, heuristic, opts),
		limit:  opts.ExpansionLimit,
	}
}

// Close cancels the stepper; later calls to Step report the cancellation.
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, further calls return the final state again.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.snapshot(StepSnapshot[NodeType]{Done: true, Found: s.found, Path: s.path}), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return StepSnapshot[NodeType]{Done: true, StepIndex: s.stepCount}, err
	}

	currentItem, ok := s.state.popNext()
	if !ok {
		s.done = true
		return s.snapshot(StepSnapshot[NodeType]{Done: true}), nil
	}
	s.stepCount++

	if s.limit > 0 && s.state.expanded > s.limit {
		s.done = true
		return s.snapshot(StepSnapshot[NodeType]{Current: currentItem.Node, Done: true}), ErrExpansionLimit
	}

	if currentItem.Node == s.state.goal {
		s.done = true
		s.found = true
		s.path = s.state.path(currentItem.Node)
		return s.snapshot(StepSnapshot[NodeType]{
			Current: currentItem.Node,
			FCost:   currentItem.FCost,
			Done:    true,
			Found:   true,
			Path:    s.path,
		}), nil
	}

	s.state.expand(currentItem)
	return s.snapshot(StepSnapshot[NodeType]{
		Current: currentItem.Node,
		FCost:   currentItem.FCost,
	}), nil
}

// Run steps until the search is done and returns the final snapshot.
func (s *Stepper[NodeType]) Run() (StepSnapshot[NodeType], error) {
	for {
		snap, err := s.Step()
		if err != nil || snap.Done {
			return snap, err
		}
	}
}

func (s *Stepper[NodeType]) snapshot(base StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	base.Open = s.state.openNodes()
	base.Closed = internal.CopyMap(s.state.closedSet)
	base.CameFrom = internal.CopyMap(s.state.cameFrom)
	base.StepIndex = s.stepCount
	return base
}
