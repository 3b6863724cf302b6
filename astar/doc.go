// Package astar implements the A* shortest-path algorithm over opaque
// integer-coordinate points and a caller-supplied step-cost function.
//
// A* explores candidate states in order of f = g + h, where g is the exact
// accumulated cost from the start and h is an admissible heuristic estimate
// of the remaining cost to the goal (Manhattan distance by default). The
// frontier lives in a min-heap with a lazy decrease-key strategy: improved
// candidates are pushed as duplicates and stale entries are skipped when
// popped.
//
// The search is deliberately decoupled from any grid type: it moves
// between the four axis-aligned neighbors of each Point (no diagonals) and
// asks the caller's CostFunc for every candidate edge. Returning ok=false
// marks the edge impassable, which is how walls, map edges and
// domain-specific movement rules (e.g. “climb at most one height level per
// step”) all enter the search:
//
//	path, err := astar.FindPath(start, goal, func(from, to astar.Point) (int, bool) {
//	    h, ok := terrain.Cell(to.X, to.Y) // glue a grid lookup in
//	    if !ok {
//	        return 0, false // off the map
//	    }
//	    return 1, true
//	})
//
// The returned path runs start→goal inclusive, so its edge count is
// len(path)-1. When the goal cannot be reached the search reports the
// sentinel ErrNoPath — an expected, branchable outcome, not a failure.
// Heap ordering breaks f ties with a stable total order (h, then Y, then
// X), so results are deterministic for a given input.
//
// The heuristic is admissible only while every step cost is at least the
// minimum per-step cost the heuristic assumes; the caller upholds this
// contract (the algorithm does not verify it). Costs are non-negative
// ints; overflow is undefined by design. The search is single-threaded and
// runs to exhaustion or success — a caller wanting a bound wraps the call
// or sets WithMaxCost.
//
// Complexity:
//
//   - Time:  O(E log V) over the explored region — each improvement pushes
//     one heap entry, each pop costs O(log N).
//   - Space: O(V) for the g-score and came-from maps plus O(E) worst-case
//     heap entries under lazy decrease-key.
package astar
