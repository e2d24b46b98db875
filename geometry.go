package brushcore

import "slices"

// GeometryError reports a numerical collapse detected mid-algorithm, such as a side split
// scan that cannot find two complementary keep/drop transitions. The caller is expected to
// discard the in-flight mutation and restore a saved snapshot.
type GeometryError struct {
	msg string
}

func (err *GeometryError) Error() string {
	return err.msg
}

func errGeometry(msg string) error {
	return &GeometryError{msg: msg}
}

// BrushGeometry is the explicit boundary representation of one convex brush: the closed,
// convex 2-manifold mesh of vertices, edges and polygonal sides realising the intersection
// of the brush's boundary planes. It exclusively owns all three element sequences; every
// internal pointer is a borrow into them.
//
// A BrushGeometry is single-threaded: the owning document must serialise all mutations, as
// the algorithms repeatedly invalidate their own indices while running.
type BrushGeometry struct {
	Vertices []*Vertex
	Edges    []*Edge
	Sides    []*Side

	bounds BBox
	center Vector
}

// NewBrushGeometryFromBounds creates a new BrushGeometry filling the given bounds with the
// canonical cuboid: 8 vertices, 12 edges, 6 sides. The sides carry no faces yet; the caller
// attaches them by cutting the cuboid with the brush's boundary planes via AddFace.
func NewBrushGeometryFromBounds(bounds BBox) *BrushGeometry {
	lfd := newVertexAt(NewVector(bounds.Min.X, bounds.Min.Y, bounds.Min.Z))
	lfu := newVertexAt(NewVector(bounds.Min.X, bounds.Min.Y, bounds.Max.Z))
	lbd := newVertexAt(NewVector(bounds.Min.X, bounds.Max.Y, bounds.Min.Z))
	lbu := newVertexAt(NewVector(bounds.Min.X, bounds.Max.Y, bounds.Max.Z))
	rfd := newVertexAt(NewVector(bounds.Max.X, bounds.Min.Y, bounds.Min.Z))
	rfu := newVertexAt(NewVector(bounds.Max.X, bounds.Min.Y, bounds.Max.Z))
	rbd := newVertexAt(NewVector(bounds.Max.X, bounds.Max.Y, bounds.Min.Z))
	rbu := newVertexAt(NewVector(bounds.Max.X, bounds.Max.Y, bounds.Max.Z))

	lfdlbd := newEdgeBetween(lfd, lbd)
	lbdlbu := newEdgeBetween(lbd, lbu)
	lbulfu := newEdgeBetween(lbu, lfu)
	lfulfd := newEdgeBetween(lfu, lfd)
	rfdrfu := newEdgeBetween(rfd, rfu)
	rfurbu := newEdgeBetween(rfu, rbu)
	rburbd := newEdgeBetween(rbu, rbd)
	rbdrfd := newEdgeBetween(rbd, rfd)
	lfurfu := newEdgeBetween(lfu, rfu)
	rfdlfd := newEdgeBetween(rfd, lfd)
	lbdrbd := newEdgeBetween(lbd, rbd)
	rbulbu := newEdgeBetween(rbu, lbu)

	invertNone := []bool{false, false, false, false}
	invertAll := []bool{true, true, true, true}
	invertOdd := []bool{false, true, false, true}

	left := newSideFromEdges([]*Edge{lfdlbd, lbdlbu, lbulfu, lfulfd}, invertNone)
	right := newSideFromEdges([]*Edge{rfdrfu, rfurbu, rburbd, rbdrfd}, invertNone)
	front := newSideFromEdges([]*Edge{lfurfu, rfdrfu, rfdlfd, lfulfd}, invertOdd)
	back := newSideFromEdges([]*Edge{rbulbu, lbdlbu, lbdrbd, rburbd}, invertOdd)
	top := newSideFromEdges([]*Edge{lbulfu, rbulbu, rfurbu, lfurfu}, invertAll)
	down := newSideFromEdges([]*Edge{rfdlfd, rbdrfd, lbdrbd, lfdlbd}, invertAll)

	bg := &BrushGeometry{
		Vertices: []*Vertex{lfd, lfu, lbd, lbu, rfd, rfu, rbd, rbu},
		Edges: []*Edge{
			lfdlbd, lbdlbu, lbulfu, lfulfd,
			rfdrfu, rfurbu, rburbd, rbdrfd,
			lfurfu, rfdlfd, lbdrbd, rbulbu,
		},
		Sides:  []*Side{left, right, front, back, top, down},
		bounds: bounds,
	}
	bg.center = centerOfVertices(bg.Vertices)
	return bg
}

// NewBrushGeometryCopy creates a deep copy of the given BrushGeometry. Faces are shared, not
// copied: the copy's sides point at the same Face objects, which still consider the original's
// sides their geometry until RestoreFaceSides is called on one of the two.
func NewBrushGeometryCopy(original *BrushGeometry) *BrushGeometry {
	bg := &BrushGeometry{}
	bg.copyFrom(original)
	return bg
}

// copyFrom replaces the receiver's contents with a deep copy of the original's.
func (bg *BrushGeometry) copyFrom(original *BrushGeometry) {
	bg.release()

	vertexMap := make(map[*Vertex]*Vertex, len(original.Vertices))
	edgeMap := make(map[*Edge]*Edge, len(original.Edges))

	bg.Vertices = make([]*Vertex, 0, len(original.Vertices))
	bg.Edges = make([]*Edge, 0, len(original.Edges))
	bg.Sides = make([]*Side, 0, len(original.Sides))

	for _, originalVertex := range original.Vertices {
		vertex := newVertexAt(originalVertex.Position)
		vertex.Mark = originalVertex.Mark
		vertexMap[originalVertex] = vertex
		bg.Vertices = append(bg.Vertices, vertex)
	}

	for _, originalEdge := range original.Edges {
		edge := newEdgeBetween(vertexMap[originalEdge.Start], vertexMap[originalEdge.End])
		edge.Mark = originalEdge.Mark
		edgeMap[originalEdge] = edge
		bg.Edges = append(bg.Edges, edge)
	}

	for _, originalSide := range original.Sides {
		side := newSide()
		side.Face = originalSide.Face
		side.Mark = originalSide.Mark
		for _, originalEdge := range originalSide.Edges {
			edge := edgeMap[originalEdge]
			if originalEdge.Left == originalSide {
				edge.Left = side
			} else {
				edge.Right = side
			}
			side.Edges = append(side.Edges, edge)
			side.Vertices = append(side.Vertices, edge.StartVertex(side))
		}
		bg.Sides = append(bg.Sides, side)
	}

	bg.bounds = original.bounds
	bg.center = original.center
}

// Release returns all of the geometry's elements to their pools. The geometry must not be
// used afterwards. Faces are not owned and stay untouched.
func (bg *BrushGeometry) Release() {
	bg.release()
}

func (bg *BrushGeometry) release() {
	for _, side := range bg.Sides {
		freeSide(side)
	}
	for _, edge := range bg.Edges {
		freeEdge(edge)
	}
	for _, vertex := range bg.Vertices {
		freeVertex(vertex)
	}
	bg.Sides = nil
	bg.Edges = nil
	bg.Vertices = nil
}

// Closed returns true if every side of the geometry carries a face, i.e. the mesh is a
// complete realisation of the brush's boundary.
func (bg *BrushGeometry) Closed() bool {
	for _, side := range bg.Sides {
		if side.Face == nil {
			return false
		}
	}
	return true
}

// RestoreFaceSides re-points every attached Face at the receiver's sides. Needed after
// working on a copy, since Faces are shared between a geometry and its copies.
func (bg *BrushGeometry) RestoreFaceSides() {
	for _, side := range bg.Sides {
		if side.Face != nil {
			side.Face.SetSide(side)
		}
	}
}

// Bounds returns the axis-aligned bounding box of the geometry's vertices.
func (bg *BrushGeometry) Bounds() BBox {
	return bg.bounds
}

// Center returns the centroid of the geometry's vertices.
func (bg *BrushGeometry) Center() Vector {
	return bg.center
}

// VertexCount returns the number of vertices of the mesh.
func (bg *BrushGeometry) VertexCount() int {
	return len(bg.Vertices)
}

// EdgeCount returns the number of edges of the mesh.
func (bg *BrushGeometry) EdgeCount() int {
	return len(bg.Edges)
}

// SideCount returns the number of sides of the mesh.
func (bg *BrushGeometry) SideCount() int {
	return len(bg.Sides)
}

// IncidentSides returns the sides incident to the vertex at the given index, in clockwise
// order around the vertex as seen from outside the brush.
func (bg *BrushGeometry) IncidentSides(vertexIndex int) []*Side {
	vertex := bg.Vertices[vertexIndex]

	// find any edge that is incident to the vertex
	var edge *Edge
	for _, candidate := range bg.Edges {
		if candidate.Start == vertex || candidate.End == vertex {
			edge = candidate
			break
		}
	}

	var result []*Side
	var side *Side
	if edge.Start == vertex {
		side = edge.Right
	} else {
		side = edge.Left
	}
	for {
		result = append(result, side)
		i := slices.Index(side.Edges, edge)
		edge = side.Edges[pred(i, len(side.Edges), 1)]
		if edge.Start == vertex {
			side = edge.Right
		} else {
			side = edge.Left
		}
		if side == result[0] {
			break
		}
	}

	return result
}

// removeVertex removes the given vertex from the geometry and returns it to the pool.
func (bg *BrushGeometry) removeVertex(vertex *Vertex) bool {
	i := slices.Index(bg.Vertices, vertex)
	if i < 0 {
		return false
	}
	bg.Vertices = slices.Delete(bg.Vertices, i, i+1)
	freeVertex(vertex)
	return true
}

// removeEdge removes the given edge from the geometry and returns it to the pool.
func (bg *BrushGeometry) removeEdge(edge *Edge) bool {
	i := slices.Index(bg.Edges, edge)
	if i < 0 {
		return false
	}
	bg.Edges = slices.Delete(bg.Edges, i, i+1)
	freeEdge(edge)
	return true
}

// removeSide removes the given side from the geometry and returns it to the pool.
func (bg *BrushGeometry) removeSide(side *Side) bool {
	i := slices.Index(bg.Sides, side)
	if i < 0 {
		return false
	}
	bg.Sides = slices.Delete(bg.Sides, i, i+1)
	freeSide(side)
	return true
}

// FindVertex returns the index of the vertex at the given position, or len(bg.Vertices) if
// no vertex lies there (under Epsilon).
func (bg *BrushGeometry) FindVertex(position Vector) int {
	for i, vertex := range bg.Vertices {
		if vertex.Position.Equals(position) {
			return i
		}
	}
	return len(bg.Vertices)
}

// FindEdge returns the index of the edge between the two given positions (in either order),
// or len(bg.Edges) if there is none.
func (bg *BrushGeometry) FindEdge(position1, position2 Vector) int {
	for i, edge := range bg.Edges {
		if (edge.Start.Position.Equals(position1) && edge.End.Position.Equals(position2)) ||
			(edge.Start.Position.Equals(position2) && edge.End.Position.Equals(position1)) {
			return i
		}
	}
	return len(bg.Edges)
}

// FindSide returns the index of the side whose vertex cycle matches the given positions (up
// to rotation), or len(bg.Sides) if there is none.
func (bg *BrushGeometry) FindSide(positions []Vector) int {
	for i, side := range bg.Sides {
		if len(side.Vertices) != len(positions) {
			continue
		}
		for j := range side.Vertices {
			k := 0
			for k < len(positions) && side.Vertices[(j+k)%len(positions)].Position.Equals(positions[k]) {
				k++
			}
			if k == len(positions) {
				return i
			}
		}
	}
	return len(bg.Sides)
}

// centerOfVertices returns the centroid of the given vertices.
func centerOfVertices(vertices []*Vertex) Vector {
	center := vertices[0].Position
	for _, vertex := range vertices[1:] {
		center = center.Add(vertex.Position)
	}
	return center.Divide(float64(len(vertices)))
}

// boundsOfVertices returns the AABB of the given vertices.
func boundsOfVertices(vertices []*Vertex) BBox {
	bounds := BBox{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, vertex := range vertices[1:] {
		bounds = bounds.MergePoint(vertex.Position)
	}
	return bounds
}

// VertexStatusFromRay classifies the given vertices against the plane family of the given
// origin and direction: PointAbove / PointBelow if all decided vertices lie on one side,
// PointInside as soon as both sides are populated. The editor uses this to decide which side
// of a drag plane a brush lies on.
func VertexStatusFromRay(origin, direction Vector, vertices []*Vertex) PointStatus {
	ray := NewRay(origin, direction)
	above := 0
	below := 0
	for _, vertex := range vertices {
		status := ray.PointStatus(vertex.Position)
		if status == PointAbove {
			above++
		} else if status == PointBelow {
			below++
		}
		if above > 0 && below > 0 {
			return PointInside
		}
	}
	if above > 0 {
		return PointAbove
	}
	return PointBelow
}
