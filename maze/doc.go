// Package maze models a rectangular wall/open grid with start and goal
// markers and solves it with the A* engine using Manhattan distance.
//
// Text layouts use one rune per cell: '#' wall, ' ' or '.' open, 'S' start,
// 'E' or 'G' goal.
package maze
