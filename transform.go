package brushcore

// Translate moves every vertex of the geometry by the given delta.
func (bg *BrushGeometry) Translate(delta Vector) {
	for _, vertex := range bg.Vertices {
		vertex.Position = vertex.Position.Add(delta)
	}
	bg.bounds = bg.bounds.Translated(delta)
	bg.center = bg.center.Add(delta)
	bg.updateFacePoints()
}

// Rotate90 rotates the geometry 90° about the given axis through the given center. The
// rotation is an exact coordinate permutation, so integer positions stay integer.
func (bg *BrushGeometry) Rotate90(axis Axis, center Vector, clockwise bool) {
	for _, vertex := range bg.Vertices {
		vertex.Position = vertex.Position.Rotated90(axis, center, clockwise)
	}
	bg.bounds = bg.bounds.Rotated90(axis, center, clockwise)
	bg.center = bg.center.Rotated90(axis, center, clockwise)
	bg.updateFacePoints()
}

// Rotate rotates the geometry by the given quaternion about the given center.
func (bg *BrushGeometry) Rotate(rotation Quaternion, center Vector) {
	for _, vertex := range bg.Vertices {
		vertex.Position = rotation.RotateVec(vertex.Position.Sub(center)).Add(center)
	}
	bg.bounds = boundsOfVertices(bg.Vertices)
	bg.center = rotation.RotateVec(bg.center.Sub(center)).Add(center)
	bg.updateFacePoints()
}

// Flip mirrors the geometry along the given axis through the given center. Mirroring alone
// would turn the mesh inside out, so every edge's direction within its two sides and every
// side cycle is reversed afterwards, which keeps the outward normals pointing outward.
func (bg *BrushGeometry) Flip(axis Axis, center Vector) {
	for _, vertex := range bg.Vertices {
		vertex.Position = vertex.Position.Flipped(axis, center)
	}
	bg.bounds = bg.bounds.Flipped(axis, center)
	bg.center = bg.center.Flipped(axis, center)

	// swapping the side neighbours reverses each edge's direction within both of its sides
	for _, edge := range bg.Edges {
		edge.Left, edge.Right = edge.Right, edge.Left
	}
	// reverse both cycles, then rotate the vertex cycle by one so that vertex i is again the
	// start of edge i
	for _, side := range bg.Sides {
		side.Flip()
		last := len(side.Vertices) - 1
		side.Vertices = append([]*Vertex{side.Vertices[last]}, side.Vertices[:last]...)
	}
	bg.updateFacePoints()
}

// Snap is a declared grid-snapping operation whose contract is still open: whether it should
// re-snap all vertices to integers (which every mutation already does) or align the brush to
// the surrounding editor's current grid is unspecified until the editor defines a grid size.
// TODO: implement once the owning editor specifies its grid.
func (bg *BrushGeometry) Snap() {
}

// updateFacePoints re-derives every attached face's three-point boundary representation
// after a transform has moved the mesh under it. Faces currently realised by another
// geometry's sides (a copy that has not called RestoreFaceSides) are left alone.
func (bg *BrushGeometry) updateFacePoints() {
	for _, side := range bg.Sides {
		if side.Face != nil && side.Face.Side() == side {
			side.Face.UpdatePoints()
		}
	}
}
