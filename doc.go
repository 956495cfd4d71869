// Package mazesolver provides an A* shortest-path solver for rectangular grid mazes.
//
// It exposes two main entry points:
//
//   - Solve: run the search to completion and get a Result.
//   - Session: advance the search one expansion at a time to drive UIs or debugging tools.
//
// A maze is a Grid of nodes, each recording which of its four sides are open
// passages. The search is seeded at the end cell and runs towards the start
// cell, so that the parent links it leaves behind lead from start to end.
// The open set is an array-backed binary min-heap whose slot index is stored
// on each node, giving O(log n) decrease-key.
//
// A Grid and the Session searching it are single-owner: independent searches
// must use independent grids.
package mazesolver
