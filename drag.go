package brushcore

import (
	"slices"
	"sort"
)

// MoveResult reports the outcome of a vertex, edge or side drag.
type MoveResult struct {
	// Moved is true if the drag was performed. False means the drag would have violated
	// convexity or closedness and the mesh was left unchanged.
	Moved bool

	// Deleted is true if the dragged entity was absorbed into another during the drag
	// (for example a vertex moved into coincidence with another). Not an error.
	Deleted bool

	// Index is the logical index of the dragged entity after the drag, in the combined
	// index space vertices ⧺ edges ⧺ sides. If the entity was deleted, Index names the
	// surviving entity so a selection can follow the drag.
	Index int

	// NewFaces lists faces created by the drag (splits, fans); DroppedFaces lists
	// pre-existing faces whose sides disappeared. The caller reattaches or retires the
	// corresponding metadata.
	NewFaces     []*Face
	DroppedFaces []*Face
}

// moveOutcome is the internal result threaded through the recursive drag.
type moveOutcome struct {
	moved   bool
	deleted bool
	index   int
}

// MoveVertex drags the entity at the given index of the combined index space
// vertices ⧺ edges ⧺ sides by delta. An edge index drags the edge's midpoint (the edge is
// subdivided there first); a side index drags the side's centroid (the side is fanned into
// triangles around it first). The mesh is mutated in place; callers that need failure
// atomicity snapshot the geometry first (see NewBrushGeometryCopy).
func (bg *BrushGeometry) MoveVertex(index int, delta Vector) MoveResult {
	var newFaces, droppedFaces []*Face
	var outcome moveOutcome

	switch {
	case delta.MagnitudeSquared() == 0:
		outcome = moveOutcome{moved: false, index: index}
	case index < len(bg.Vertices):
		outcome = bg.moveVertex(index, true, delta, &newFaces, &droppedFaces)
	case index < len(bg.Vertices)+len(bg.Edges):
		outcome = bg.splitAndMoveEdge(index, delta, &newFaces, &droppedFaces)
	default:
		outcome = bg.splitAndMoveSide(index, delta, &newFaces, &droppedFaces)
	}

	return MoveResult{
		Moved:        outcome.moved,
		Deleted:      outcome.deleted,
		Index:        outcome.index,
		NewFaces:     newFaces,
		DroppedFaces: droppedFaces,
	}
}

// MoveEdge translates the edge at the given index by delta, dragging both endpoints. The
// operation runs on an internal scratch copy and commits only if both endpoint drags
// succeed; on failure the mesh is unchanged and Moved is false. Index is an edge index on
// return (not a combined-space index).
func (bg *BrushGeometry) MoveEdge(edgeIndex int, delta Vector) MoveResult {
	var newFaces, droppedFaces []*Face

	if delta.MagnitudeSquared() == 0 {
		return MoveResult{Moved: false, Index: edgeIndex}
	}

	testGeometry := NewBrushGeometryCopy(bg)
	testGeometry.RestoreFaceSides()
	bg.debugAssert(testGeometry)

	edge := testGeometry.Edges[edgeIndex]

	// remember these in case the edge gets deleted
	startVertex := edge.Start
	endVertex := edge.End

	startPosition := startVertex.Position.Add(delta)
	endPosition := endVertex.Position.Add(delta)
	dir := endVertex.Position.Sub(startVertex.Position)

	var outcome moveOutcome
	if dir.Dot(delta) > 0 {
		outcome = testGeometry.moveVertex(slices.Index(testGeometry.Vertices, endVertex), false, delta, &newFaces, &droppedFaces)
		if outcome.moved {
			outcome = testGeometry.moveVertex(slices.Index(testGeometry.Vertices, startVertex), false, delta, &newFaces, &droppedFaces)
		}
	} else {
		outcome = testGeometry.moveVertex(slices.Index(testGeometry.Vertices, startVertex), false, delta, &newFaces, &droppedFaces)
		if outcome.moved {
			outcome = testGeometry.moveVertex(slices.Index(testGeometry.Vertices, endVertex), false, delta, &newFaces, &droppedFaces)
		}
	}

	result := MoveResult{Moved: outcome.moved}
	if outcome.moved {
		bg.copyFrom(testGeometry)
		bg.debugAssert(bg)
		result.Index = bg.FindEdge(startPosition, endPosition)
		result.Deleted = result.Index == len(bg.Edges)
		result.NewFaces = newFaces
		result.DroppedFaces = droppedFaces
	} else {
		result.Index = edgeIndex
	}

	testGeometry.Release()
	bg.RestoreFaceSides()
	return result
}

// MoveSide translates the side at the given index by delta, dragging each of its vertices in
// turn (those furthest against the drag direction first). Like MoveEdge it runs on a scratch
// copy and commits only on success. Index is a side index on return.
func (bg *BrushGeometry) MoveSide(sideIndex int, delta Vector) MoveResult {
	var newFaces, droppedFaces []*Face

	dist := delta.Magnitude()
	if dist == 0 {
		return MoveResult{Moved: false, Index: sideIndex}
	}

	testGeometry := NewBrushGeometryCopy(bg)
	testGeometry.RestoreFaceSides()
	bg.debugAssert(testGeometry)

	dir := delta.Divide(dist)
	side := testGeometry.Sides[sideIndex]
	center := centerOfVertices(side.Vertices)

	sideVertexCount := len(side.Vertices)
	sideVertices := make([]Vector, sideVertexCount)
	indices := make([]int, sideVertexCount)
	dots := make([]float64, sideVertexCount)
	for i, vertex := range side.Vertices {
		sideVertices[i] = vertex.Position
		dots[i] = vertex.Position.Sub(center).Dot(dir)
		indices[i] = slices.Index(testGeometry.Vertices, vertex)
		sideVertices[i] = sideVertices[i].Add(delta)
	}

	// move the vertices trailing the drag direction first
	order := make([]int, sideVertexCount)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dots[order[a]] < dots[order[b]]
	})

	outcome := moveOutcome{moved: true}
	for i := 0; i < sideVertexCount && outcome.moved; i++ {
		outcome = testGeometry.moveVertex(indices[order[i]], false, delta, &newFaces, &droppedFaces)
	}

	result := MoveResult{Moved: outcome.moved}
	if outcome.moved {
		bg.copyFrom(testGeometry)
		bg.debugAssert(bg)
		result.Index = bg.FindSide(sideVertices)
		result.Deleted = result.Index == len(bg.Sides)
		result.NewFaces = newFaces
		result.DroppedFaces = droppedFaces
	} else {
		result.Index = sideIndex
	}

	testGeometry.Release()
	bg.RestoreFaceSides()
	return result
}

// moveVertex is the recursive heart of dragging: it moves one vertex along the drag ray as
// far as the incident geometry allows, performs the resulting mesh surgery, and calls itself
// with the remaining delta until the requested distance is consumed or the vertex is gone.
func (bg *BrushGeometry) moveVertex(vertexIndex int, mergeIncident bool, delta Vector, newFaces, droppedFaces *[]*Face) moveOutcome {
	moveDist := delta.Magnitude()
	if moveDist == 0 {
		return moveOutcome{moved: false, index: vertexIndex}
	}

	vertex := bg.Vertices[vertexIndex]
	ray := NewRay(vertex.Position, delta.Divide(moveDist))

	bg.debugAssert(bg)

	// make every incident side a triangle so the move can pivot freely
	incSides := bg.IncidentSides(vertexIndex)
	bg.splitSides(incSides, ray, vertexIndex, newFaces, droppedFaces)

	// clamp the move to the furthest point before an incident triangle flips or a
	// neighbouring side's plane is reached
	incSides = bg.IncidentSides(vertexIndex)
	actualMoveDist := bg.minVertexMoveDist(incSides, vertex, ray, moveDist)

	vertex.Position = ray.PointAt(actualMoveDist)
	newPosition := vertex.Position

	// check whether the vertex was dragged onto a non-incident edge
	for _, edge := range bg.Edges {
		if edge.Start == vertex || edge.End == vertex {
			continue
		}
		v1 := vertex.Position.Sub(edge.Start.Position)
		v2 := vertex.Position.Sub(edge.End.Position)
		if !v1.ParallelTo(v2, Epsilon) {
			continue
		}
		// the vertex lies somewhere on the line defined by the edge
		edgeVector := edge.Vector()
		dot1 := v1.Dot(edgeVector)
		dot2 := v2.Dot(edgeVector)
		if (dot1 > 0) != (dot2 > 0) {
			// the vertex lies between the edge's endpoints; undo the move
			vertex.Position = ray.Origin
			bg.mergeSides(newFaces, droppedFaces)
			bg.mergeEdges()
			return moveOutcome{moved: false, index: slices.Index(bg.Vertices, vertex)}
		}
	}

	// check whether the vertex was dragged onto another vertex; if so, weld the two
	merged := false
	for i, candidate := range bg.Vertices {
		if i == vertexIndex || !vertex.Position.Equals(candidate.Position) {
			continue
		}
		if mergeIncident {
			bg.mergeVertices(vertex, candidate, newFaces, droppedFaces)
			merged = true
			break
		}
		// undo the vertex move
		vertex.Position = ray.Origin
		bg.mergeSides(newFaces, droppedFaces)
		bg.mergeEdges()
		return moveOutcome{moved: false, index: slices.Index(bg.Vertices, vertex)}
	}

	// incident triangles may have collapsed into collinear slivers
	vertexIndex = slices.Index(bg.Vertices, vertex)
	incSides = bg.IncidentSides(vertexIndex)
	bg.deleteCollinearTriangles(&incSides, newFaces, droppedFaces)

	bg.debugAssert(bg)

	// merge everything that has become mergeable again
	bg.mergeSides(newFaces, droppedFaces)
	bg.mergeEdges()

	bg.bounds = boundsOfVertices(bg.Vertices)
	bg.center = centerOfVertices(bg.Vertices)

	newVertexIndex := bg.FindVertex(newPosition)

	// is the move concluded?
	if newVertexIndex == len(bg.Vertices) || actualMoveDist == moveDist {
		for _, v := range bg.Vertices {
			v.Position = v.Position.Snapped()
		}
		for _, side := range bg.Sides {
			if side.Face != nil && side.Face.Side() == side {
				side.Face.UpdatePoints()
			}
		}

		index := newVertexIndex
		deleted := newVertexIndex == len(bg.Vertices)
		if deleted {
			index = vertexIndex
		}
		return moveOutcome{moved: true, deleted: deleted || merged, index: index}
	}

	// the drag is not concluded: recurse with the remaining delta from the new position
	remainder := ray.Direction.Scale(moveDist - actualMoveDist)
	outcome := bg.moveVertex(newVertexIndex, mergeIncident, remainder, newFaces, droppedFaces)
	outcome.deleted = outcome.deleted || merged
	return outcome
}

// splitSides prepares the sides incident to a dragged vertex: every non-triangle is either
// split (one triangle pinched off next to the vertex, when the drag dives into the side) or
// fanned into triangles around the vertex (when the drag rises out of it or runs parallel).
func (bg *BrushGeometry) splitSides(sidesToSplit []*Side, ray Ray, vertexIndex int, newFaces, droppedFaces *[]*Face) {
	for _, side := range sidesToSplit {
		if len(side.Vertices) <= 3 {
			continue
		}

		dot := side.normal().Dot(ray.Direction)
		if neg(dot) {
			// the movement direction points down into the side
			bg.splitSide(side, vertexIndex, newFaces)
			bg.debugAssert(bg)
		} else {
			// the movement direction points up out of the side or runs parallel to it
			bg.triangulateSide(side, vertexIndex, newFaces)
			discardFace(side.Face, newFaces, droppedFaces)
			side.Face = nil
			bg.removeSide(side)
			bg.debugAssert(bg)
		}
	}
}

// splitSide pinches one triangle off the given side at the dragged vertex: a new edge is
// drawn between the vertex's two cycle neighbours, leaving the original side one vertex
// shorter and a new triangular side carrying a copy of its face.
func (bg *BrushGeometry) splitSide(sideToSplit *Side, vertexIndex int, newFaces *[]*Face) {
	vertex := bg.Vertices[vertexIndex]
	sideVertexIndex := slices.Index(sideToSplit.Vertices, vertex)

	count := len(sideToSplit.Edges)
	sideEdges := make([]*Edge, 3)
	flipped := make([]bool, 3)

	sideEdges[0] = sideToSplit.Edges[pred(sideVertexIndex, count, 1)]
	flipped[0] = sideEdges[0].Left == sideToSplit
	sideEdges[1] = sideToSplit.Edges[sideVertexIndex]
	flipped[1] = sideEdges[1].Left == sideToSplit

	splitEdge := newEdge()
	splitEdge.Start = sideToSplit.Vertices[pred(sideVertexIndex, count, 1)]
	splitEdge.End = sideToSplit.Vertices[succ(sideVertexIndex, count, 1)]
	splitEdge.Left = nil
	splitEdge.Right = sideToSplit
	sideEdges[2] = splitEdge
	flipped[2] = true
	bg.Edges = append(bg.Edges, splitEdge)

	sideToSplit.replaceEdges(pred(sideVertexIndex, count, 2), succ(sideVertexIndex, count, 1), splitEdge)

	newSide := newSideFromEdges(sideEdges, flipped)
	newSide.Face = NewFaceCopy(sideToSplit.Face.WorldBounds(), sideToSplit.Face)
	newSide.Face.SetSide(newSide)
	bg.Sides = append(bg.Sides, newSide)
	*newFaces = append(*newFaces, newSide.Face)
}

// triangulateSide replaces the given side with a fan of triangles around the dragged vertex.
// Each triangle carries a fresh copy of the side's face; the side itself is removed by the
// caller afterwards.
func (bg *BrushGeometry) triangulateSide(sideToTriangulate *Side, vertexIndex int, newFaces *[]*Face) {
	vertex := bg.Vertices[vertexIndex]
	sideVertexIndex := slices.Index(sideToTriangulate.Vertices, vertex)

	count := len(sideToTriangulate.Edges)
	sideEdges := make([]*Edge, 3)
	flipped := make([]bool, 3)

	sideEdges[0] = sideToTriangulate.Edges[sideVertexIndex]
	flipped[0] = sideEdges[0].Left == sideToTriangulate
	sideEdges[1] = sideToTriangulate.Edges[succ(sideVertexIndex, count, 1)]
	flipped[1] = sideEdges[1].Left == sideToTriangulate

	for i := 0; i < count-3; i++ {
		fanEdge := newEdge()
		fanEdge.Start = sideToTriangulate.Vertices[succ(sideVertexIndex, count, 2)]
		fanEdge.End = vertex
		fanEdge.Left = nil
		fanEdge.Right = nil
		sideEdges[2] = fanEdge
		flipped[2] = false
		bg.Edges = append(bg.Edges, fanEdge)

		newSide := newSideFromEdges(sideEdges, flipped)
		newSide.Face = NewFaceCopy(sideToTriangulate.Face.WorldBounds(), sideToTriangulate.Face)
		newSide.Face.SetSide(newSide)
		bg.Sides = append(bg.Sides, newSide)
		*newFaces = append(*newFaces, newSide.Face)

		sideEdges[0] = fanEdge
		flipped[0] = true
		sideEdges[1] = sideToTriangulate.Edges[succ(sideVertexIndex, count, 2)]
		flipped[1] = sideEdges[1].Left == sideToTriangulate

		sideVertexIndex = succ(sideVertexIndex, count, 1)
	}

	sideEdges[2] = sideToTriangulate.Edges[succ(sideVertexIndex, count, 2)]
	flipped[2] = sideEdges[2].Left == sideToTriangulate

	newSide := newSideFromEdges(sideEdges, flipped)
	newSide.Face = NewFaceCopy(sideToTriangulate.Face.WorldBounds(), sideToTriangulate.Face)
	newSide.Face.SetSide(newSide)
	bg.Sides = append(bg.Sides, newSide)
	*newFaces = append(*newFaces, newSide.Face)
}

// minVertexMoveDist clamps a requested drag distance: for each clockwise-consecutive pair of
// incident triangles it intersects the drag ray with the plane through the two triangle tips,
// and with each neighbouring side's boundary plane, and keeps the smallest positive hit.
// Beyond that distance some incident triangle would flip or a neighbour would be crossed.
func (bg *BrushGeometry) minVertexMoveDist(incSides []*Side, vertex *Vertex, ray Ray, maxDist float64) float64 {
	minDist := maxDist
	for i, side := range incSides {
		next := incSides[succ(i, len(incSides), 1)]

		side.shift(slices.Index(side.Vertices, vertex))
		next.shift(slices.Index(next.Vertices, vertex))

		plane := NewPlaneFromPoints(
			side.Vertices[1].Position,
			side.Vertices[2].Position,
			next.Vertices[2].Position,
		)
		sideDist := plane.IntersectRay(ray)

		neighbourEdge := side.Edges[1]
		var neighbourSide *Side
		if neighbourEdge.Left != side {
			neighbourSide = neighbourEdge.Left
		} else {
			neighbourSide = neighbourEdge.Right
		}
		neighbourDist := neighbourSide.Face.Boundary().IntersectRay(ray)

		if !isNaN(sideDist) && pos(sideDist) && flt(sideDist, minDist) {
			minDist = sideDist
		}
		if !isNaN(neighbourDist) && pos(neighbourDist) && flt(neighbourDist, minDist) {
			minDist = neighbourDist
		}
	}
	return minDist
}

// splitAndMoveEdge subdivides the edge at the given combined-space index at its midpoint and
// drags the new vertex. Rejected outright if the drag points against either incident side's
// outward normal, which would fold a neighbour concave.
func (bg *BrushGeometry) splitAndMoveEdge(index int, delta Vector, newFaces, droppedFaces *[]*Face) moveOutcome {
	edgeIndex := index - len(bg.Vertices)
	edge := bg.Edges[edgeIndex]

	// detect whether the drag would make the incident faces invalid
	leftNorm := edge.Left.Face.Boundary().Normal
	rightNorm := edge.Right.Face.Boundary().Normal
	if neg(delta.Dot(leftNorm)) || neg(delta.Dot(rightNorm)) {
		return moveOutcome{moved: false, index: index}
	}

	startPosition := edge.Start.Position
	endPosition := edge.End.Position

	// rotate both incident cycles so the edge sits at the tail, then replace it with two
	// halves meeting at the new midpoint vertex
	edge.Left.shift(slices.Index(edge.Left.Edges, edge) + 1)
	edge.Right.shift(slices.Index(edge.Right.Edges, edge) + 1)

	vertex := newVertexAt(edge.Center())
	bg.Vertices = append(bg.Vertices, vertex)
	edge.Left.Vertices = append(edge.Left.Vertices, vertex)
	edge.Right.Vertices = append(edge.Right.Vertices, vertex)

	newEdge1 := newEdgeBetween(edge.Start, vertex)
	newEdge1.Left = edge.Left
	newEdge1.Right = edge.Right
	newEdge2 := newEdgeBetween(vertex, edge.End)
	newEdge2.Left = edge.Left
	newEdge2.Right = edge.Right

	left := edge.Left
	right := edge.Right
	left.Edges = left.Edges[:len(left.Edges)-1]
	right.Edges = right.Edges[:len(right.Edges)-1]

	bg.Edges = append(bg.Edges, newEdge1, newEdge2)
	left.Edges = append(left.Edges, newEdge2, newEdge1)
	right.Edges = append(right.Edges, newEdge1, newEdge2)

	bg.removeEdge(edge)

	outcome := bg.moveVertex(len(bg.Vertices)-1, true, delta, newFaces, droppedFaces)
	if outcome.deleted {
		outcome.index = len(bg.Vertices) + bg.FindEdge(startPosition, endPosition)
	}
	return outcome
}

// splitAndMoveSide fans the side at the given combined-space index into triangles around its
// centroid and drags the centroid vertex. Rejected if the drag runs parallel to the side's
// plane, which could only indent the face.
func (bg *BrushGeometry) splitAndMoveSide(index int, delta Vector, newFaces, droppedFaces *[]*Face) moveOutcome {
	sideIndex := index - len(bg.Vertices) - len(bg.Edges)
	side := bg.Sides[sideIndex]

	// detect whether the drag would lead to an indented face
	norm := side.Face.Boundary().Normal
	if zero(delta.Dot(norm)) {
		return moveOutcome{moved: false, index: index}
	}

	// store the side's vertex positions so the side can be found again after the drag
	sideVertices := make([]Vector, len(side.Vertices))
	for i, v := range side.Vertices {
		sideVertices[i] = v.Position
	}

	vertex := newVertexAt(centerOfVertices(side.Vertices))
	bg.Vertices = append(bg.Vertices, vertex)

	firstEdge := newEdgeBetween(vertex, side.Edges[0].StartVertex(side))
	bg.Edges = append(bg.Edges, firstEdge)

	lastEdge := firstEdge
	for i, sideEdge := range side.Edges {
		var fanEdge *Edge
		if i == len(side.Edges)-1 {
			fanEdge = firstEdge
		} else {
			fanEdge = newEdgeBetween(vertex, sideEdge.EndVertex(side))
			bg.Edges = append(bg.Edges, fanEdge)
		}

		fanSide := newSide()
		fanSide.Vertices = append(fanSide.Vertices, vertex)
		fanSide.Edges = append(fanSide.Edges, lastEdge)
		lastEdge.Right = fanSide

		fanSide.Vertices = append(fanSide.Vertices, lastEdge.End)
		fanSide.Edges = append(fanSide.Edges, sideEdge)
		if sideEdge.Left == side {
			sideEdge.Left = fanSide
		} else {
			sideEdge.Right = fanSide
		}

		fanSide.Vertices = append(fanSide.Vertices, fanEdge.End)
		fanSide.Edges = append(fanSide.Edges, fanEdge)
		fanEdge.Left = fanSide

		fanSide.Face = NewFaceCopy(side.Face.WorldBounds(), side.Face)
		fanSide.Face.SetSide(fanSide)
		bg.Sides = append(bg.Sides, fanSide)
		*newFaces = append(*newFaces, fanSide.Face)

		lastEdge = fanEdge
	}

	*droppedFaces = append(*droppedFaces, side.Face)
	side.Face.SetSide(nil)
	side.Face = nil
	bg.removeSide(side)

	outcome := bg.moveVertex(len(bg.Vertices)-1, true, delta, newFaces, droppedFaces)
	if outcome.deleted {
		outcome.index = len(bg.Vertices) + len(bg.Edges) + bg.FindSide(sideVertices)
	}
	return outcome
}
