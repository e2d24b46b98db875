package brushcore

import "slices"

// Mesh surgery helpers shared by the drag operations: welding vertices, dissolving
// degenerate triangles, merging coplanar neighbour sides and collinear edge runs.

// discardFace retires a face that has lost its side. A face created earlier in the same
// operation is simply deleted again from the new list; a pre-existing face is reported to
// the caller through the dropped list so its metadata can be retired.
func discardFace(face *Face, newFaces, droppedFaces *[]*Face) {
	if i := slices.Index(*newFaces, face); i >= 0 {
		*newFaces = slices.Delete(*newFaces, i, i+1)
	} else {
		*droppedFaces = append(*droppedFaces, face)
	}
	face.SetSide(nil)
}

// deleteDegenerateTriangle removes a triangle side that has collapsed onto the given edge:
// the triangle's other two edges are welded through the neighbour on the far side of the
// collapsed edge, and the triangle and the collapsed edge disappear.
func (bg *BrushGeometry) deleteDegenerateTriangle(side *Side, edge *Edge, newFaces, droppedFaces *[]*Face) {
	side.shift(slices.Index(side.Edges, edge))

	keepEdge := side.Edges[1]
	dropEdge := side.Edges[2]
	var neighbour *Side
	if dropEdge.Left == side {
		neighbour = dropEdge.Right
	} else {
		neighbour = dropEdge.Left
	}

	if keepEdge.Left == side {
		keepEdge.Left = neighbour
	} else {
		keepEdge.Right = neighbour
	}

	deleteIndex := slices.Index(neighbour.Edges, dropEdge)
	prevIndex := pred(deleteIndex, len(neighbour.Edges), 1)
	nextIndex := succ(deleteIndex, len(neighbour.Edges), 1)
	neighbour.replaceEdges(prevIndex, nextIndex, keepEdge)

	discardFace(side.Face, newFaces, droppedFaces)
	side.Face = nil

	bg.removeSide(side)
	bg.removeEdge(dropEdge)
}

// mergeVertices welds dropVertex into keepVertex. The two must be adjacent, and both sides
// incident to their shared edge must be triangles (the drag loop establishes this before a
// merge can happen). Every reference to dropVertex is retargeted at keepVertex, the two
// triangles flanking the shared edge collapse, and the shared edge and dropVertex disappear.
func (bg *BrushGeometry) mergeVertices(keepVertex, dropVertex *Vertex, newFaces, droppedFaces *[]*Face) {
	// find the edge incident to both vertices
	var dropEdge *Edge
	for _, edge := range bg.Edges {
		if (edge.Start == keepVertex && edge.End == dropVertex) ||
			(edge.End == keepVertex && edge.Start == dropVertex) {
			dropEdge = edge
			break
		}
	}

	// the drag loop never merges non-adjacent vertices
	for _, edge := range bg.Edges {
		if edge == dropEdge || (edge.Start != dropVertex && edge.End != dropVertex) {
			continue
		}
		if edge.Start == dropVertex {
			edge.Start = keepVertex
		} else {
			edge.End = keepVertex
		}

		if i := slices.Index(edge.Left.Vertices, dropVertex); i >= 0 {
			edge.Left.Vertices[i] = keepVertex
		}
		if i := slices.Index(edge.Right.Vertices, dropVertex); i >= 0 {
			edge.Right.Vertices[i] = keepVertex
		}
	}

	bg.deleteDegenerateTriangle(dropEdge.Left, dropEdge, newFaces, droppedFaces)
	bg.deleteDegenerateTriangle(dropEdge.Right, dropEdge, newFaces, droppedFaces)

	bg.removeEdge(dropEdge)
	bg.removeVertex(dropVertex)
}

// mergeEdges merges consecutive collinear edges: two edges that share a vertex, run parallel
// (within the wider angular tolerance) and separate the same two sides are replaced by one
// edge spanning their far endpoints, and the shared vertex disappears. Only sides with more
// than three vertices can contain such runs.
func (bg *BrushGeometry) mergeEdges() {
	for i := 0; i < len(bg.Edges); i++ {
		edge := bg.Edges[i]
		edgeVector := edge.Vector()
		for j := i + 1; j < len(bg.Edges); j++ {
			candidate := bg.Edges[j]
			if !edge.IncidentWith(candidate) {
				continue
			}
			if !edgeVector.ParallelTo(candidate.Vector(), ParallelEpsilon) {
				continue
			}

			if edge.End == candidate.End {
				candidate.Flip()
			}
			if edge.End == candidate.Start {
				if edge.Start == candidate.End ||
					edge.Left != candidate.Left || edge.Right != candidate.Right ||
					len(edge.Left.Vertices) <= 3 || len(edge.Right.Vertices) <= 3 {
					continue
				}
				leftSide := edge.Left
				rightSide := edge.Right

				newEdge := newEdgeBetween(edge.Start, candidate.End)
				newEdge.Left = leftSide
				newEdge.Right = rightSide
				bg.Edges = append(bg.Edges, newEdge)

				leftIndex := slices.Index(leftSide.Edges, candidate)
				leftCount := len(leftSide.Edges)
				rightIndex := slices.Index(rightSide.Edges, candidate)
				rightCount := len(rightSide.Edges)

				leftSide.replaceEdges(pred(leftIndex, leftCount, 1), succ(leftIndex, leftCount, 2), newEdge)
				rightSide.replaceEdges(pred(rightIndex, rightCount, 2), succ(rightIndex, rightCount, 1), newEdge)

				bg.removeVertex(candidate.Start)
				bg.removeEdge(candidate)
				bg.removeEdge(edge)
				break
			}

			if edge.Start == candidate.Start {
				candidate.Flip()
			}
			if edge.Start == candidate.End {
				if edge.End == candidate.Start ||
					edge.Left != candidate.Left || edge.Right != candidate.Right ||
					len(edge.Left.Vertices) <= 3 || len(edge.Right.Vertices) <= 3 {
					continue
				}
				leftSide := edge.Left
				rightSide := edge.Right

				newEdge := newEdgeBetween(candidate.Start, edge.End)
				newEdge.Left = leftSide
				newEdge.Right = rightSide
				bg.Edges = append(bg.Edges, newEdge)

				leftIndex := slices.Index(leftSide.Edges, candidate)
				leftCount := len(leftSide.Edges)
				rightIndex := slices.Index(rightSide.Edges, candidate)
				rightCount := len(rightSide.Edges)

				leftSide.replaceEdges(pred(leftIndex, leftCount, 2), succ(leftIndex, leftCount, 1), newEdge)
				rightSide.replaceEdges(pred(rightIndex, rightCount, 1), succ(rightIndex, rightCount, 2), newEdge)

				bg.removeVertex(candidate.End)
				bg.removeEdge(candidate)
				bg.removeEdge(edge)
				break
			}
		}
	}
}

// mergeNeighbours merges the side with its neighbour across the edge at the given index.
// The two may share a contiguous run of several edges; the whole run and its interior
// vertices are dissolved and the two cycles are concatenated. The neighbour side is removed;
// its face is detached and returned for the caller to retire.
func (bg *BrushGeometry) mergeNeighbours(side *Side, edgeIndex int) *Face {
	edge := side.Edges[edgeIndex]
	var neighbour *Side
	if edge.Left != side {
		neighbour = edge.Left
	} else {
		neighbour = edge.Right
	}

	sideEdgeIndex := edgeIndex
	neighbourEdgeIndex := slices.Index(neighbour.Edges, edge)

	for {
		sideEdgeIndex = succ(sideEdgeIndex, len(side.Edges), 1)
		neighbourEdgeIndex = pred(neighbourEdgeIndex, len(neighbour.Edges), 1)
		if side.Edges[sideEdgeIndex] != neighbour.Edges[neighbourEdgeIndex] {
			break
		}
	}

	// sideEdgeIndex now names the last edge of side that survives, and neighbourEdgeIndex
	// the first surviving edge of neighbour

	count := -1
	for {
		sideEdgeIndex = pred(sideEdgeIndex, len(side.Edges), 1)
		neighbourEdgeIndex = succ(neighbourEdgeIndex, len(neighbour.Edges), 1)
		count++
		if side.Edges[sideEdgeIndex] != neighbour.Edges[neighbourEdgeIndex] {
			break
		}
	}

	// sideEdgeIndex now names the first surviving edge of side, neighbourEdgeIndex the last
	// surviving edge of neighbour, and count the number of shared edges

	// rotate both cycles so the shared run sits at the tail
	side.shift(succ(sideEdgeIndex, len(side.Edges), count+1))
	neighbour.shift(neighbourEdgeIndex)

	side.Edges = side.Edges[:len(side.Edges)-count]
	side.Vertices = side.Vertices[:len(side.Vertices)-count]

	keep := len(neighbour.Edges) - count
	for i := 0; i < keep; i++ {
		edge := neighbour.Edges[i]
		vertex := neighbour.Vertices[i]
		if edge.Left == neighbour {
			edge.Left = side
		} else {
			edge.Right = side
		}
		side.Edges = append(side.Edges, edge)
		side.Vertices = append(side.Vertices, vertex)
	}

	for i := keep; i < len(neighbour.Edges); i++ {
		bg.removeEdge(neighbour.Edges[i])
		if i > keep {
			bg.removeVertex(neighbour.Vertices[i])
		}
	}

	face := neighbour.Face
	face.SetSide(nil)
	neighbour.Face = nil
	bg.removeSide(neighbour)
	return face
}

// mergeSides merges every pair of adjacent sides whose boundary planes coincide. One pass
// suffices: each merge strictly reduces the side count.
func (bg *BrushGeometry) mergeSides(newFaces, droppedFaces *[]*Face) {
	for i := 0; i < len(bg.Sides); i++ {
		side := bg.Sides[i]
		sideBoundary := NewPlaneFromPoints(
			side.Vertices[0].Position,
			side.Vertices[1].Position,
			side.Vertices[2].Position,
		)

		for j := range side.Edges {
			edge := side.Edges[j]
			var neighbour *Side
			if edge.Left != side {
				neighbour = edge.Left
			} else {
				neighbour = edge.Right
			}
			neighbourBoundary := NewPlaneFromPoints(
				neighbour.Vertices[0].Position,
				neighbour.Vertices[1].Position,
				neighbour.Vertices[2].Position,
			)

			if sideBoundary.Equals(neighbourBoundary) {
				neighbourFace := bg.mergeNeighbours(side, j)
				discardFace(neighbourFace, newFaces, droppedFaces)
				i--
				break
			}
		}
	}
}

// deleteCollinearTriangles dissolves incident triangles whose three vertices have become
// collinear after a move: the longest edge of each such triangle is removed and the opposite
// vertex is absorbed into the neighbouring side's cycle.
func (bg *BrushGeometry) deleteCollinearTriangles(incSides *[]*Side, newFaces, droppedFaces *[]*Face) {
	i := 0
	for i < len(*incSides) {
		side := (*incSides)[i]
		edgeIndex := side.collinearTriangleEdge()
		if edgeIndex == len(side.Edges) {
			i++
			continue
		}

		edge := side.Edges[edgeIndex]
		next := side.Edges[succ(edgeIndex, 3, 1)]
		nextNext := side.Edges[succ(edgeIndex, 3, 2)]

		vertex := next.EndVertex(side)

		var neighbour *Side
		if edge.Left == side {
			neighbour = edge.Right
		} else {
			neighbour = edge.Left
		}
		neighbourEdgeIndex := slices.Index(neighbour.Edges, edge)

		neighbour.Edges = slices.Insert(neighbour.Edges, neighbourEdgeIndex+1, next, nextNext)
		neighbour.Edges = slices.Delete(neighbour.Edges, neighbourEdgeIndex, neighbourEdgeIndex+1)
		neighbour.Vertices = slices.Insert(neighbour.Vertices, neighbourEdgeIndex+1, vertex)

		if next.Left == side {
			next.Left = neighbour
		} else {
			next.Right = neighbour
		}
		if nextNext.Left == side {
			nextNext.Left = neighbour
		} else {
			nextNext.Right = neighbour
		}

		bg.removeEdge(edge)
		discardFace(side.Face, newFaces, droppedFaces)
		side.Face = nil
		bg.removeSide(side)

		*incSides = slices.Delete(*incSides, i, i+1)
	}
}
