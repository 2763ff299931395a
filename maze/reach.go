package maze

// Reachable flood-fills from `from` over walkable cells. The result is empty
// when from itself is not walkable.
func (g *Grid) Reachable(from Coord) map[Coord]bool {
	reachable := make(map[Coord]bool)
	if !g.Walkable(from) {
		return reachable
	}
	reachable[from] = true
	queue := []Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(c) {
			if reachable[n] {
				continue
			}
			reachable[n] = true
			queue = append(queue, n)
		}
	}
	return reachable
}

// Enclosed reports whether all four cardinal neighbors of c are in bounds and walls.
// Cells on the border are never enclosed.
func (g *Grid) Enclosed(c Coord) bool {
	for _, d := range directions {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(n) || g.At(n) != Wall {
			return false
		}
	}
	return true
}
