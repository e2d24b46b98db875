package brushcore

// CutResult is the outcome of intersecting a brush with one additional half-space.
type CutResult int

const (
	// CutRedundant means the new face does not cut the polyhedron and need not be added.
	CutRedundant CutResult = iota
	// CutNull means the new face has nullified the entire brush; the mesh is left in a
	// meaningless state and must be discarded by the caller.
	CutNull
	// CutSplit means the new face has split the brush: a new side realising it has been
	// added and everything on the positive side of its plane has been cut away.
	CutSplit
)

// AddFace intersects the geometry with the half-space below the given face's boundary plane.
// On CutSplit, a new side is created and attached to the face, and the faces of any sides
// that were cut away entirely are returned as dropped, so the caller can retire their
// metadata. On CutRedundant the mesh is unchanged and the face is not attached. On CutNull
// the caller must discard the geometry.
//
// A non-nil error reports numerical collapse mid-cut (a GeometryError); the mesh is then in
// an undefined state and the caller should restore a snapshot.
func (bg *BrushGeometry) AddFace(face *Face) (CutResult, []*Face, error) {
	var droppedFaces []*Face
	result, err := bg.addFace(face, &droppedFaces)
	return result, droppedFaces, err
}

// AddFaces cuts the geometry by every given face in order, accumulating dropped faces.
// It returns false as soon as a cut nullifies the brush or fails; the mesh is then invalid.
func (bg *BrushGeometry) AddFaces(faces []*Face) ([]*Face, bool) {
	var droppedFaces []*Face
	for _, face := range faces {
		result, err := bg.addFace(face, &droppedFaces)
		if err != nil || result == CutNull {
			return droppedFaces, false
		}
	}
	return droppedFaces, true
}

func (bg *BrushGeometry) addFace(face *Face, droppedFaces *[]*Face) (CutResult, error) {
	boundary := face.Boundary()

	var keep, drop, undecided int

	// mark vertices
	for _, vertex := range bg.Vertices {
		switch boundary.PointStatus(vertex.Position) {
		case PointAbove:
			vertex.Mark = VertexDrop
			drop++
		case PointBelow:
			vertex.Mark = VertexKeep
			keep++
		default:
			vertex.Mark = VertexUndecided
			undecided++
		}
	}

	if keep+undecided == len(bg.Vertices) {
		bg.resetMarks()
		return CutRedundant, nil
	}

	if drop+undecided == len(bg.Vertices) {
		return CutNull, nil
	}

	// mark edges, splitting those that cross the plane at a new snapped vertex
	for _, edge := range bg.Edges {
		edge.updateMark()
		if edge.Mark == EdgeSplit {
			vertex := edge.split(boundary)
			bg.Vertices = append(bg.Vertices, vertex)
		}
	}

	// mark, split and drop sides, collecting the new edges bounding the cut
	var newEdges []*Edge
	i := 0
	for i < len(bg.Sides) {
		side := bg.Sides[i]
		newEdge, err := side.split()
		if err != nil {
			return CutSplit, err
		}

		switch {
		case side.Mark == SideDrop:
			if side.Face != nil {
				*droppedFaces = append(*droppedFaces, side.Face)
				side.Face.SetSide(nil)
				side.Face = nil
			}
			bg.removeSide(side)
		case side.Mark == SideSplit:
			bg.Edges = append(bg.Edges, newEdge)
			newEdges = append(newEdges, newEdge)
			side.Mark = SideUnknown
			i++
		case side.Mark == SideKeep && newEdge != nil:
			// the returned edge is an undecided edge lying in the cut plane; flip it if
			// needed so it can act as a new edge for the side being created
			if newEdge.Right != side {
				newEdge.Flip()
			}
			newEdges = append(newEdges, newEdge)
			side.Mark = SideUnknown
			i++
		default:
			side.Mark = SideUnknown
			i++
		}
	}

	// sort the new edges head-to-tail to form the polygon of the new side
	for i := 0; i < len(newEdges)-1; i++ {
		edge := newEdges[i]
		for j := i + 2; j < len(newEdges); j++ {
			candidate := newEdges[j]
			if edge.Start == candidate.End {
				newEdges[j] = newEdges[i+1]
				newEdges[i+1] = candidate
				break
			}
		}
	}

	newSide := newSideForFace(face, newEdges)
	bg.Sides = append(bg.Sides, newSide)

	// sweep: delete everything still marked for dropping, reset the remaining marks
	i = 0
	for i < len(bg.Vertices) {
		vertex := bg.Vertices[i]
		if vertex.Mark == VertexDrop {
			bg.removeVertex(vertex)
		} else {
			vertex.Mark = VertexUnknown
			i++
		}
	}

	i = 0
	for i < len(bg.Edges) {
		edge := bg.Edges[i]
		if edge.Mark == EdgeDrop {
			bg.removeEdge(edge)
		} else {
			edge.Mark = EdgeUnknown
			i++
		}
	}

	newSide.Mark = SideUnknown

	bg.bounds = boundsOfVertices(bg.Vertices)
	bg.center = centerOfVertices(bg.Vertices)
	return CutSplit, nil
}

// resetMarks returns every element to the quiescent Unknown mark.
func (bg *BrushGeometry) resetMarks() {
	for _, vertex := range bg.Vertices {
		vertex.Mark = VertexUnknown
	}
	for _, edge := range bg.Edges {
		edge.Mark = EdgeUnknown
	}
	for _, side := range bg.Sides {
		side.Mark = SideUnknown
	}
}
