// Package arenakit is a small library of arena-indexed container
// abstractions and a generic A* pathfinding kernel.
//
// 🚀 What is arenakit?
//
//	A zero-dependency library built around one idea: instead of wiring
//	nodes together with pointers, every node lives in a flat backing
//	slice — the arena — and relationships are stable integer handles
//	into it. Cyclic parent/child and prev/next links become plain
//	ints, with no reference counting and no aliasing puzzles.
//
//	• grid/       — flat-vector 2D grids with row-major addressing,
//	                built row-by-row (RowGrid) or allocated up front
//	                with in-place mutation (UniformGrid)
//	• arenatree/  — tree of value-deduplicated nodes with consistent
//	                parent/child handle links and pre-order traversal
//	• arenalist/  — append-only doubly linked sequence with O(1)
//	                positional access
//	• astar/      — A* over integer points and a caller-supplied
//	                step-cost function, Manhattan heuristic by default
//
// ✨ Why choose arenakit?
//
//   - Handles, not pointers — structures stay flat, copyable and cheap
//   - Generic over the cell/node value type, constrained only by what
//     each operation needs (equality for dedup, nothing else)
//   - Deterministic — scans are row-major, A* tie-breaking is a stable
//     total order, so first-match and exact-path assertions hold
//   - Honest failure split — out-of-range and no-path are explicit
//     absent values; malformed usage panics loudly
//
// The four packages are leaves: none depends on another. Consumers glue
// them together with closures — typically a grid cell lookup inside an
// astar.CostFunc. Everything is in-memory, single-owner and append-mostly:
// no deletion or compaction of arena slots, no synchronization, no
// persistence.
//
// Quick ASCII example:
//
//	S . #        glue grid → astar:
//	. . #        cost(from,to) = 1 if to is on the map
//	. . G        and not '#', else impassable
//
//	go get github.com/katalvlaran/arenakit
package arenakit
