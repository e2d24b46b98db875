package brushcore

import "testing"

func TestMoveVertexZeroDelta(t *testing.T) {
	bg := unitCube(t)
	index := bg.FindVertex(NewVector(1, 1, 1))

	result := bg.MoveVertex(index, NewVector(0, 0, 0))
	if result.Moved || result.Index != index {
		t.Fatal("a zero-delta drag should not move anything")
	}
}

func TestMoveVertexOutward(t *testing.T) {
	bg := unitCube(t)
	index := bg.FindVertex(NewVector(1, 1, 1))

	result := bg.MoveVertex(index, NewVector(1, 1, 1))
	if !result.Moved {
		t.Fatal("pulling a corner outward should succeed")
	}
	if result.Deleted {
		t.Fatal("pulling a corner outward should not delete it")
	}
	if bg.FindVertex(NewVector(2, 2, 2)) == len(bg.Vertices) {
		t.Fatal("the dragged corner did not arrive at (2,2,2)")
	}
	if result.Index != bg.FindVertex(NewVector(2, 2, 2)) {
		t.Fatal("the result index does not name the dragged vertex")
	}

	// the three sides touching the corner can no longer be planar quads
	if bg.SideCount() <= 6 {
		t.Fatal("pulling a corner outward should split its incident sides, sides:", bg.SideCount())
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveVertexCollapsesOntoOpposite(t *testing.T) {
	bg := unitCube(t)
	index := bg.FindVertex(NewVector(1, 1, 1))

	result := bg.MoveVertex(index, NewVector(-2, -2, -2))
	if !result.Moved {
		t.Fatal("dragging the corner through the cube should succeed")
	}
	if !result.Deleted {
		t.Fatal("the dragged corner should have merged with the opposite corner")
	}
	if bg.FindVertex(NewVector(-1, -1, -1)) == len(bg.Vertices) {
		t.Fatal("the surviving corner at (-1,-1,-1) is gone")
	}

	if bg.VertexCount() != 7 || bg.EdgeCount() != 12 || bg.SideCount() != 7 {
		t.Fatalf("expected 7 vertices, 12 edges, 7 sides, got %d, %d, %d",
			bg.VertexCount(), bg.EdgeCount(), bg.SideCount())
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveEdgeRejectsConcaveDrag(t *testing.T) {
	bg := unitCube(t)
	edgeIndex := bg.FindEdge(NewVector(1, 1, 1), NewVector(1, 1, -1))
	combined := len(bg.Vertices) + edgeIndex

	// dragging the edge against the +X side's outward normal would fold it concave
	result := bg.MoveVertex(combined, NewVector(-1, 0, 0))
	if result.Moved {
		t.Fatal("a drag that would indent a neighbour side must be rejected")
	}
	if result.Index != combined {
		t.Fatal("a rejected drag should keep the original index")
	}
	if bg.VertexCount() != 8 || bg.EdgeCount() != 12 || bg.SideCount() != 6 {
		t.Fatal("a rejected drag changed the mesh")
	}
	requireIntegrity(t, bg)
}

func TestMoveEdgeMidpointOutward(t *testing.T) {
	bg := unitCube(t)
	edgeIndex := bg.FindEdge(NewVector(-1, -1, 1), NewVector(1, -1, 1))
	combined := len(bg.Vertices) + edgeIndex

	// pull the top front edge's midpoint upward into a ridge point
	result := bg.MoveVertex(combined, NewVector(0, 0, 2))
	if !result.Moved {
		t.Fatal("pulling an edge midpoint outward should succeed")
	}
	if bg.FindVertex(NewVector(0, -1, 3)) == len(bg.Vertices) {
		t.Fatal("the midpoint vertex did not arrive at (0,-1,3)")
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveSideRejectsParallelDrag(t *testing.T) {
	bg := unitCube(t)
	top := topSideIndex(t, bg)
	combined := len(bg.Vertices) + len(bg.Edges) + top

	result := bg.MoveVertex(combined, NewVector(1, 0, 0))
	if result.Moved {
		t.Fatal("a drag parallel to the side's plane must be rejected")
	}
	if result.Index != combined {
		t.Fatal("a rejected drag should keep the original index")
	}
	requireIntegrity(t, bg)
}

func TestMoveSideCentroidOutward(t *testing.T) {
	bg := unitCube(t)
	top := topSideIndex(t, bg)
	combined := len(bg.Vertices) + len(bg.Edges) + top

	result := bg.MoveVertex(combined, NewVector(0, 0, 1))
	if !result.Moved {
		t.Fatal("pulling a side centroid outward should succeed")
	}
	if bg.FindVertex(NewVector(0, 0, 2)) == len(bg.Vertices) {
		t.Fatal("the centroid vertex did not arrive at (0,0,2)")
	}

	// the top face was fanned apart; its face is reported dropped, the fan faces as new
	if len(result.DroppedFaces) == 0 {
		t.Fatal("fanning a side should drop its face")
	}
	if len(result.NewFaces) == 0 {
		t.Fatal("fanning a side should create new faces")
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveSideTranslates(t *testing.T) {
	bg := unitCube(t)
	top := topSideIndex(t, bg)

	result := bg.MoveSide(top, NewVector(0, 0, 1))
	if !result.Moved {
		t.Fatal("translating the top side upward should succeed")
	}
	if result.Deleted {
		t.Fatal("the translated side should survive")
	}

	// the fan collapses back into a single quad once all four corners arrive
	if bg.VertexCount() != 8 || bg.EdgeCount() != 12 || bg.SideCount() != 6 {
		t.Fatalf("expected 8 vertices, 12 edges, 6 sides, got %d, %d, %d",
			bg.VertexCount(), bg.EdgeCount(), bg.SideCount())
	}
	min, max := bg.Bounds().Min, bg.Bounds().Max
	if !min.Equals(NewVector(-1, -1, -1)) || !max.Equals(NewVector(1, 1, 2)) {
		t.Fatalf("bounds should extend to z=2, got %v .. %v", min, max)
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveEdgeTranslates(t *testing.T) {
	bg := unitCube(t)
	edgeIndex := bg.FindEdge(NewVector(-1, -1, 1), NewVector(1, -1, 1))

	result := bg.MoveEdge(edgeIndex, NewVector(0, 0, 1))
	if !result.Moved {
		t.Fatal("translating the top front edge upward should succeed")
	}
	if result.Deleted {
		t.Fatal("the translated edge should survive")
	}
	if result.Index == len(bg.Edges) {
		t.Fatal("the translated edge was not found at its new position")
	}

	// the top face tilts into a planar quad between the raised front and the old back
	if bg.FindEdge(NewVector(-1, -1, 2), NewVector(1, -1, 2)) == len(bg.Edges) {
		t.Fatal("the edge did not arrive at z=2")
	}
	if bg.VertexCount() != 8 || bg.EdgeCount() != 12 || bg.SideCount() != 6 {
		t.Fatalf("expected 8 vertices, 12 edges, 6 sides, got %d, %d, %d",
			bg.VertexCount(), bg.EdgeCount(), bg.SideCount())
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestMoveEdgeInwardCommitsOrLeavesMeshUntouched(t *testing.T) {
	bg := unitCube(t)
	edgeIndex := bg.FindEdge(NewVector(1, 1, 1), NewVector(1, 1, -1))

	// dragging the whole edge inward across the cube: a committed drag must leave a sound
	// mesh, a rejected one must leave the mesh, the index and the face lists untouched
	result := bg.MoveEdge(edgeIndex, NewVector(-2, -2, 0))
	if result.Moved {
		if err := bg.CheckIntegrity(); err != nil {
			t.Fatal("committed edge drag left a broken mesh:", err)
		}
	} else {
		if result.Index != edgeIndex {
			t.Fatal("a rejected edge drag should keep the original index")
		}
		if len(result.NewFaces) != 0 || len(result.DroppedFaces) != 0 {
			t.Fatal("a rejected edge drag should report no face changes")
		}
		if bg.VertexCount() != 8 || bg.EdgeCount() != 12 || bg.SideCount() != 6 {
			t.Fatal("a rejected edge drag changed the mesh")
		}
	}
	requireIntegrity(t, bg)
}

// topSideIndex returns the index of the side whose outward normal points up.
func topSideIndex(t testing.TB, bg *BrushGeometry) int {
	t.Helper()
	for i, side := range bg.Sides {
		if side.Face != nil && side.Face.Boundary().Normal.Equals(VecZ) {
			return i
		}
	}
	t.Fatal("no side with an upward normal")
	return -1
}
