// Package grid provides flat-vector-backed 2D grids with row-major
// addressing, generic over the cell type.
//
// Two construction styles are supported:
//
//   - RowGrid — built incrementally, one row at a time, when the width is
//     known up front but the height is discovered while parsing input
//     (NewRowGrid + PushRow).
//   - UniformGrid — allocated to fixed Width×Height at construction, every
//     cell starting at the zero value, with in-place mutation of individual
//     cells (NewUniformGrid + Set).
//
// Both grids share the same read surface:
//
//	Cell(x, y)      // bounds-checked read, (zero, false) when absent
//	CellPtr(x, y)   // bounds-checked mutable access
//	Row(y)          // view of one row of backing storage
//	Column(x)       // copy of one column (storage is row-major)
//	Find(pred)      // first match in row-major order
//	FindAll(pred)   // every match in row-major order
//	Enumerate(fn)   // visit every (x, y) in row-major order
//
// Row-major addressing means the linear index of (x, y) is y*width + x;
// Find, FindAll and Enumerate all scan y outer, x inner. The ordering is a
// contract, not an accident: callers rely on deterministic “first match”
// semantics, e.g. to locate a unique start marker in parsed terrain.
//
// Failure semantics follow two distinct classes:
//
//   - Out-of-range reads are expected, recoverable outcomes and return an
//     explicit absent value ((zero, false) or (nil, false)) — never a panic.
//   - Malformed construction or mutation (PushRow with the wrong width,
//     Set outside the allocated area, non-positive dimensions) signals a
//     bug in the calling parser, not a runtime condition; these panic
//     loudly rather than silently corrupting the grid.
//
// Grids are single-owner, in-memory structures: no synchronization, no
// deletion or compaction, no persistence.
//
// Complexity: Cell/CellPtr/Row/Set are O(1); Column is O(H);
// Find/FindAll/Enumerate are O(W×H).
package grid
