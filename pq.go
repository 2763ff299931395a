package astar

// PriorityQueueItem is one frontier entry. A node may be queued more than once;
// entries whose GScore is worse than the recorded cost are skipped on pop.
type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	GScore       float64
	FCost        float64
	Seq          uint64
	IndexInQueue int
}

type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }

// Less orders by FCost, then by insertion sequence so equal-cost entries pop FIFO.
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Seq < queue[j].Seq
}

func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
