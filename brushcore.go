package brushcore

// brushcore is the convex brush geometry engine of a map editor: it maintains, for each brush,
// a closed convex boundary representation (vertices, edges, polygonal sides) as the intersection
// of the brush's oriented boundary planes, and updates that mesh under plane cuts, rigid
// transforms, and vertex / edge / side dragging.

import "math"

// Epsilon is the process-wide tolerance used by every geometric predicate in the engine.
// Mixing these predicates with raw float comparisons will break the convergence of the
// vertex drag loop, so don't.
const Epsilon = 0.001

// ParallelEpsilon is the wider angular tolerance used when deciding whether two
// consecutive edges are collinear enough to be merged into one.
const ParallelEpsilon = 0.01

func zero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

func pos(v float64) bool {
	return v > Epsilon
}

func neg(v float64) bool {
	return v < -Epsilon
}

func feq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func flt(a, b float64) bool {
	return b-a > Epsilon
}

func nan() float64 {
	return math.NaN()
}

func isNaN(v float64) bool {
	return math.IsNaN(v)
}

// pred returns the index that comes offset places before index i in a cycle of length count.
func pred(i, count, offset int) int {
	offset %= count
	return (i + count - offset) % count
}

// succ returns the index that comes offset places after index i in a cycle of length count.
func succ(i, count, offset int) int {
	return (i + offset) % count
}

// PointStatus classifies a point against an oriented plane (or ray) under Epsilon.
type PointStatus int

const (
	PointAbove PointStatus = iota // in the open positive half-space
	PointBelow                    // in the open negative half-space
	PointOn                       // within Epsilon of the plane
	PointInside
)
