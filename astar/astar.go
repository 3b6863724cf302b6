package astar

import "container/heap"

// neighborOffsets lists the four cardinal directions as x/y tile offsets.
// A* moves axis-aligned only; diagonal movement is expressed by the
// caller's own cost model if ever needed, not by the search.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FindPath computes a lowest-cost path from start to goal, consulting cost
// for every candidate edge. The returned path is inclusive, ordered
// start→goal; its edge count is len(path)-1.
//
// Returns:
//
//   - path, nil on success.
//   - nil, ErrNilCostFunc when cost is nil.
//   - nil, ErrNoPath when the open set empties without reaching goal.
//
// Results are deterministic for a given input: the heap orders candidates
// by f = g+h with a stable total tie-break, so exact-match assertions on
// the returned path are safe.
func FindPath(start, goal Point, cost CostFunc, opts ...Option) ([]Point, error) {
	// 1) Validate the cost function; everything else has a usable default.
	if cost == nil {
		return nil, ErrNilCostFunc
	}

	// 2) Build options from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Seed the search state: g[start]=0 and one open candidate.
	s := &searcher{
		goal:      goal,
		cost:      cost,
		heuristic: cfg.Heuristic,
		maxCost:   cfg.MaxCost,
		gScore:    map[Point]int{start: 0},
		cameFrom:  make(map[Point]Point),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, &pathNode{point: start, g: 0, h: s.heuristic(start, goal)})

	// 4) Run the main loop to success or exhaustion.
	return s.run()
}

// searcher holds the mutable state of a single FindPath execution.
type searcher struct {
	goal      Point
	cost      CostFunc
	heuristic Heuristic
	maxCost   int
	open      nodePQ        // frontier, min-ordered by f = g+h
	gScore    map[Point]int // best known accumulated cost per point
	cameFrom  map[Point]Point
}

// run pops the lowest-f candidate until it reaches the goal or exhausts
// the frontier.
func (s *searcher) run() ([]Point, error) {
	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(*pathNode)

		// Lazy decrease-key: a candidate superseded by a cheaper route to
		// the same point is stale; skip it instead of re-expanding.
		if current.g > s.gScore[current.point] {
			continue
		}

		if current.point == s.goal {
			return s.reconstruct(), nil
		}

		s.expand(current.point)
	}

	return nil, ErrNoPath
}

// expand relaxes the four cardinal neighbors of p. The caller's CostFunc
// is the single authority on traversability: ok=false skips the neighbor
// entirely, so bounds checks, walls and movement rules all live with the
// caller.
func (s *searcher) expand(p Point) {
	for _, offset := range neighborOffsets {
		neighbor := Point{X: p.X + offset[0], Y: p.Y + offset[1]}

		stepCost, ok := s.cost(p, neighbor)
		if !ok {
			continue
		}

		tentative := s.gScore[p] + stepCost
		if tentative > s.maxCost {
			continue
		}
		if best, seen := s.gScore[neighbor]; seen && tentative >= best {
			continue
		}

		// Strictly better route to neighbor: record it and push a fresh
		// candidate (the stale one, if any, is skipped on pop).
		s.gScore[neighbor] = tentative
		s.cameFrom[neighbor] = p
		heap.Push(&s.open, &pathNode{
			point: neighbor,
			g:     tentative,
			h:     s.heuristic(neighbor, s.goal),
		})
	}
}

// reconstruct walks the came-from map backward from the goal and reverses
// the result into start→goal order.
func (s *searcher) reconstruct() []Point {
	path := []Point{s.goal}
	for current := s.goal; ; {
		prev, ok := s.cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathNode is one candidate search state: a point plus its accumulated
// cost g and heuristic estimate h. Nodes are ephemeral, created and
// discarded per search.
type pathNode struct {
	point Point
	g, h  int
}

// fCost is the total priority ordering the frontier.
func (n *pathNode) fCost() int { return n.g + n.h }

// nodePQ is a min-heap of candidates ordered by fCost ascending. Ties are
// broken by a stable total order (smaller h first, then Y, then X) so a
// search over the same input always pops candidates in the same sequence.
type nodePQ []*pathNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	fi, fj := pq[i].fCost(), pq[j].fCost()
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	if pq[i].point.Y != pq[j].point.Y {
		return pq[i].point.Y < pq[j].point.Y
	}

	return pq[i].point.X < pq[j].point.X
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *pathNode.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pathNode)) }

// Pop removes and returns the last element, as required by heap.Interface.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid holding the popped node alive
	*pq = old[:n-1]

	return item
}
