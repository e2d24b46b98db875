package brushcore

import (
	"fmt"
	"log"
	"slices"
)

// DebugChecks turns on integrity assertions between the phases of a drag. Failures are
// logged and the engine carries on with the last state it has; they indicate a programmer
// error, not a user-facing condition. Tests enable this.
var DebugChecks = false

// CheckIntegrity verifies the global invariants of the mesh and returns a descriptive error
// for the first violation found:
//
//   - Euler characteristic V - E + F == 2 (counting only sides with an attached face)
//   - every side's edge cycle agrees with its vertex cycle (the half-edge relation)
//   - every edge is listed by both of its (distinct) neighbouring sides
//   - every vertex belongs to some side, and no two vertices share a position
//   - no two edges connect the same pair of vertices
func (bg *BrushGeometry) CheckIntegrity() error {
	sideCount := 0
	for _, side := range bg.Sides {
		if side.Face != nil {
			sideCount++
		}
	}
	if len(bg.Vertices)-len(bg.Edges)+sideCount != 2 {
		return fmt.Errorf("euler characteristic violated: V=%d E=%d F=%d", len(bg.Vertices), len(bg.Edges), sideCount)
	}

	vertexVisits := make(map[*Vertex]int, len(bg.Vertices))
	edgeVisits := make(map[*Edge]int, len(bg.Edges))

	for i, side := range bg.Sides {
		if len(side.Vertices) != len(side.Edges) {
			return fmt.Errorf("side %d has %d vertices but %d edges", i, len(side.Vertices), len(side.Edges))
		}
		for j, edge := range side.Edges {
			if edge.Left != side && edge.Right != side {
				return fmt.Errorf("edge %d of side %d does not actually belong to it", j, i)
			}
			if !slices.Contains(bg.Edges, edge) {
				return fmt.Errorf("edge %d of side %d is missing from the geometry's edge list", j, i)
			}
			edgeVisits[edge]++

			vertex := edge.StartVertex(side)
			if side.Vertices[j] != vertex {
				return fmt.Errorf("start vertex of edge %d of side %d is not at position %d in the side's vertex list", j, i, j)
			}
			if !slices.Contains(bg.Vertices, vertex) {
				return fmt.Errorf("start vertex of edge %d of side %d is missing from the geometry's vertex list", j, i)
			}
			vertexVisits[vertex]++
		}
	}

	for i, vertex := range bg.Vertices {
		if vertexVisits[vertex] == 0 {
			return fmt.Errorf("vertex %d does not belong to any side", i)
		}
		for j := i + 1; j < len(bg.Vertices); j++ {
			if vertex.Position.Equals(bg.Vertices[j].Position) {
				return fmt.Errorf("vertex %d is identical to vertex %d", i, j)
			}
		}
	}

	for i, edge := range bg.Edges {
		if edgeVisits[edge] != 2 {
			return fmt.Errorf("edge %d was visited %d times, should have been 2", i, edgeVisits[edge])
		}
		if edge.Left == edge.Right {
			return fmt.Errorf("edge %d has equal side neighbours", i)
		}
		for j := i + 1; j < len(bg.Edges); j++ {
			other := bg.Edges[j]
			if (edge.Start == other.Start && edge.End == other.End) ||
				(edge.Start == other.End && edge.End == other.Start) {
				return fmt.Errorf("edge %d is identical to edge %d", i, j)
			}
		}
	}

	return nil
}

// CheckConvexity verifies the convexity invariants of a closed mesh: every side winds
// convex in the plane of its face, and no vertex lies strictly outside any face plane.
// Unlike CheckIntegrity this is only meaningful between operations; mid-drag states are
// allowed to be transiently degenerate.
func (bg *BrushGeometry) CheckConvexity() error {
	for i, side := range bg.Sides {
		if side.Face == nil {
			continue
		}
		if side.isDegenerate() {
			return fmt.Errorf("side %d has a degenerate winding", i)
		}
		boundary := side.Face.Boundary()
		for j, vertex := range bg.Vertices {
			if boundary.PointStatus(vertex.Position) == PointAbove {
				return fmt.Errorf("vertex %d lies outside the plane of side %d", j, i)
			}
		}
	}
	return nil
}

// debugAssert runs the integrity check against the given geometry when DebugChecks is on.
// A failure is logged; the engine continues with the state it has.
func (bg *BrushGeometry) debugAssert(check *BrushGeometry) {
	if !DebugChecks {
		return
	}
	if err := check.CheckIntegrity(); err != nil {
		log.Printf("brushcore: integrity check failed: %v", err)
	}
}
