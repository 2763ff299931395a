package astar

import (
	"container/heap"

	"github.com/pdrpinto/astar-maze/internal"
	"github.com/sirupsen/logrus"
)

// RelaxProposal is a candidate improvement for the cost of reaching ToNode.
type RelaxProposal[NodeType comparable] struct {
	FromNode NodeType
	ToNode   NodeType
	GScore   float64
	FCost    float64
}

// searchState owns the frontier and bookkeeping shared by Search and Stepper.
type searchState[NodeType comparable] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	logger    *logrus.Entry

	openSet   PriorityQueue[NodeType]
	closedSet map[NodeType]bool
	cameFrom  map[NodeType]NodeType
	gScore    map[NodeType]float64

	seq      uint64
	expanded int
	poppedF  []float64
}

func newSearchState[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options Options,
) *searchState[NodeType] {
	state := &searchState[NodeType]{
		graph:     graph,
		start:     startNode,
		goal:      goalNode,
		heuristic: heuristic,
		logger:    options.Logger,
		openSet:   make(PriorityQueue[NodeType], 0),
		closedSet: make(map[NodeType]bool),
		cameFrom:  make(map[NodeType]NodeType),
		gScore:    map[NodeType]float64{startNode: 0},
	}
	heap.Init(&state.openSet)
	state.push(startNode, 0, heuristic(startNode, goalNode))
	return state
}

func (s *searchState[NodeType]) push(node NodeType, g, f float64) {
	heap.Push(&s.openSet, &PriorityQueueItem[NodeType]{
		Node:   node,
		GScore: g,
		FCost:  f,
		Seq:    s.seq,
	})
	s.seq++
}

// popNext removes the best live entry from the frontier and closes its node.
// Duplicates of closed nodes and entries superseded by a cheaper cost are dropped.
func (s *searchState[NodeType]) popNext() (*PriorityQueueItem[NodeType], bool) {
	for s.openSet.Len() > 0 {
		item := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
		if s.closedSet[item.Node] || item.GScore > s.gScore[item.Node] {
			continue
		}
		s.closedSet[item.Node] = true
		s.expanded++
		s.poppedF = append(s.poppedF, item.FCost)
		return item, true
	}
	return nil, false
}

func (s *searchState[NodeType]) propose(from *PriorityQueueItem[NodeType], neighbor Neighbor[NodeType]) RelaxProposal[NodeType] {
	tentativeG := from.GScore + neighbor.Cost
	return RelaxProposal[NodeType]{
		FromNode: from.Node,
		ToNode:   neighbor.ID,
		GScore:   tentativeG,
		FCost:    tentativeG + s.heuristic(neighbor.ID, s.goal),
	}
}

// relax applies p when it reaches ToNode for the first time or strictly cheaper.
func (s *searchState[NodeType]) relax(p RelaxProposal[NodeType]) bool {
	if currentG, exists := s.gScore[p.ToNode]; exists && p.GScore >= currentG {
		return false
	}
	s.gScore[p.ToNode] = p.GScore
	s.cameFrom[p.ToNode] = p.FromNode
	// an inconsistent heuristic can improve a closed node; reopen it
	delete(s.closedSet, p.ToNode)
	s.push(p.ToNode, p.GScore, p.FCost)
	return true
}

func (s *searchState[NodeType]) expand(current *PriorityQueueItem[NodeType]) {
	for _, neighbor := range s.graph.Neighbors(current.Node) {
		proposal := s.propose(current, neighbor)
		if s.relax(proposal) {
			s.logger.WithFields(logrus.Fields{
				"node": proposal.ToNode,
				"g":    proposal.GScore,
				"f":    proposal.FCost,
			}).Trace("relaxed")
		}
	}
}

func (s *searchState[NodeType]) path(goal NodeType) []NodeType {
	return internal.ReconstructPath(s.cameFrom, goal, s.start)
}

// openNodes lists nodes that still have a live entry on the frontier.
func (s *searchState[NodeType]) openNodes() map[NodeType]bool {
	open := make(map[NodeType]bool, len(s.openSet))
	for _, item := range s.openSet {
		if s.closedSet[item.Node] || item.GScore > s.gScore[item.Node] {
			continue
		}
		open[item.Node] = true
	}
	return open
}
