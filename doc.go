// Package astar provides a generic, deterministic A* pathfinding engine.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The frontier is a binary heap ordered by f = g + h. Entries with equal f are
// popped in insertion order, so a given graph, start, goal and heuristic always
// produce the same path. Grid mazes built on top of this engine live in the
// maze package.
package astar
