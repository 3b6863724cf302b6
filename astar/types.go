// Package astar defines core types, configuration options, and sentinel
// errors for the A* pathfinding implementation.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNoPath indicates the open set was exhausted without reaching the
	// goal. This is an expected, recoverable outcome the caller branches on
	// with errors.Is, not a usage error.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrNilCostFunc indicates a nil CostFunc was passed to FindPath.
	ErrNilCostFunc = errors.New("astar: cost function is nil")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Point is a 2D integer coordinate. It is a value type, compared and
// hashed by value, and serves both as a graph vertex and as a map key
// inside the search.
type Point struct {
	X, Y int
}

// String renders the point as "x, y".
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// Manhattan returns the Manhattan distance between a and b: the sum of
// absolute coordinate differences. It is the default heuristic, admissible
// and consistent whenever every step costs at least the grid's minimum
// per-step cost.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// CostFunc answers the cost of stepping from one point to an adjacent
// point. Returning ok=false marks the edge impassable; the neighbor is
// skipped entirely. Costs must be non-negative.
type CostFunc func(from, to Point) (cost int, ok bool)

// Heuristic estimates the remaining cost from a to b. A heuristic that
// overstates the true remaining cost forfeits optimality; the caller
// upholds admissibility.
type Heuristic func(a, b Point) int

// Options configures a FindPath call.
//
// Heuristic – estimate of remaining cost; defaults to Manhattan.
// MaxCost   – candidates whose accumulated cost would exceed this cap are
// not explored. Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Heuristic Heuristic
	MaxCost   int
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// Candidates beyond the cap are never pushed, bounding otherwise
// exhaustive searches. Panics with ErrBadMaxCost on a negative cap.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options FindPath starts from:
// Manhattan heuristic, no cost cap.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		MaxCost:   math.MaxInt,
	}
}
