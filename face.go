package brushcore

// Face is the logical surface of a brush: one oriented boundary plane plus the attribute
// metadata carried along with it. The engine treats the attributes as an opaque bag that it
// copies and re-parents; only the boundary plane and the side back-pointer matter to it.
// Texture alignment semantics live entirely outside the engine.
type Face struct {
	// The three integer-snapped points that define the boundary plane, in side winding order.
	Points [3]Vector

	// TexName, XOffset, YOffset, Rotation, XScale and YScale are the opaque texture
	// attributes. The engine never interprets them.
	TexName          string
	XOffset, YOffset float64
	Rotation         float64
	XScale, YScale   float64

	worldBounds BBox
	boundary    Plane
	side        *Side
}

// NewFace creates a new Face from its three boundary points (snapped to integer coordinates)
// and the world bounds it was created against.
func NewFace(worldBounds BBox, p0, p1, p2 Vector) *Face {
	face := &Face{
		worldBounds: worldBounds,
		XScale:      1,
		YScale:      1,
	}
	face.setPoints(p0.Snapped(), p1.Snapped(), p2.Snapped())
	return face
}

// NewFaceCopy creates a copy of the given template Face against the given world bounds.
// The copy shares the template's boundary and attributes but is attached to no side.
func NewFaceCopy(worldBounds BBox, template *Face) *Face {
	face := *template
	face.worldBounds = worldBounds
	face.side = nil
	return &face
}

func (face *Face) setPoints(p0, p1, p2 Vector) {
	face.Points[0] = p0
	face.Points[1] = p1
	face.Points[2] = p2
	face.boundary = NewPlaneFromPoints(p0, p1, p2)
}

// Boundary returns the oriented boundary plane of the Face.
func (face *Face) Boundary() Plane {
	return face.boundary
}

// WorldBounds returns the world bounds the Face was created against.
func (face *Face) WorldBounds() BBox {
	return face.worldBounds
}

// Side returns the geometric polygon currently realising the Face on its brush's mesh, or
// nil if the Face is detached.
func (face *Face) Side() *Side {
	return face.side
}

// SetSide attaches the Face to the given Side (or detaches it if nil).
func (face *Face) SetSide(side *Side) {
	face.side = side
}

// UpdatePoints recomputes the Face's stored three-point boundary representation from its
// attached side's current vertex positions. Called after a drag has moved the side's vertices.
func (face *Face) UpdatePoints() {
	if face.side == nil || len(face.side.Vertices) < 3 {
		return
	}
	face.setPoints(
		face.side.Vertices[0].Position.Snapped(),
		face.side.Vertices[1].Position.Snapped(),
		face.side.Vertices[2].Position.Snapped(),
	)
}
