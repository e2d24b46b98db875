package brushcore

import "math"

// Plane is an oriented plane in Hesse normal form: a unit Normal and the Distance of the
// plane from the origin along that normal. Points p on the plane satisfy Normal·p == Distance.
type Plane struct {
	Normal   Vector
	Distance float64
}

// NewPlane creates a new Plane from a unit normal and a distance.
func NewPlane(normal Vector, distance float64) Plane {
	return Plane{Normal: normal, Distance: distance}
}

// NewPlaneFromPoints creates a new Plane through the three given points. The orientation
// follows the engine's side winding: the normal is (p2 - p0) × (p1 - p0), normalized.
func NewPlaneFromPoints(p0, p1, p2 Vector) Plane {
	normal := p2.Sub(p0).Cross(p1.Sub(p0)).Unit()
	return Plane{Normal: normal, Distance: normal.Dot(p0)}
}

// SignedDistance returns the signed distance of the given point from the Plane
// (positive on the side the normal points to).
func (plane Plane) SignedDistance(point Vector) float64 {
	return plane.Normal.Dot(point) - plane.Distance
}

// PointStatus classifies the given point against the Plane under the global Epsilon.
func (plane Plane) PointStatus(point Vector) PointStatus {
	dist := plane.SignedDistance(point)
	if pos(dist) {
		return PointAbove
	}
	if neg(dist) {
		return PointBelow
	}
	return PointOn
}

// IntersectLine returns the distance along the given line (origin + t*direction, any t) at
// which it intersects the Plane. Returns NaN if the line is parallel to the Plane.
func (plane Plane) IntersectLine(origin, direction Vector) float64 {
	denom := plane.Normal.Dot(direction)
	if zero(denom) {
		return math.NaN()
	}
	return plane.Normal.Dot(plane.AnchorPoint().Sub(origin)) / denom
}

// IntersectRay returns the distance along the given Ray at which it intersects the Plane.
// Returns NaN if the Ray is parallel to the Plane or the intersection lies behind its origin.
func (plane Plane) IntersectRay(ray Ray) float64 {
	dist := plane.IntersectLine(ray.Origin, ray.Direction)
	if math.IsNaN(dist) || neg(dist) {
		return math.NaN()
	}
	return dist
}

// AnchorPoint returns an arbitrary point on the Plane.
func (plane Plane) AnchorPoint() Vector {
	return plane.Normal.Scale(plane.Distance)
}

// Equals returns true if the two Planes coincide in orientation and position under Epsilon.
func (plane Plane) Equals(other Plane) bool {
	return plane.Normal.Equals(other.Normal) && feq(plane.Distance, other.Distance)
}

// axisPlane projects 3D points onto the axis-aligned coordinate plane that the given normal
// is most perpendicular to, preserving the winding sense of polygons facing the normal.
// It is used by the 2D point-in-polygon test during ray picking.
type axisPlane struct {
	x, y Axis
}

// axisPlaneFor picks the projection plane for the given normal.
func axisPlaneFor(normal Vector) axisPlane {
	ax, ay, az := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)
	switch {
	case ax >= ay && ax >= az:
		if normal.X >= 0 {
			return axisPlane{x: AxisY, y: AxisZ}
		}
		return axisPlane{x: AxisZ, y: AxisY}
	case ay >= ax && ay >= az:
		if normal.Y >= 0 {
			return axisPlane{x: AxisZ, y: AxisX}
		}
		return axisPlane{x: AxisX, y: AxisZ}
	default:
		if normal.Z >= 0 {
			return axisPlane{x: AxisX, y: AxisY}
		}
		return axisPlane{x: AxisY, y: AxisX}
	}
}

// project maps the given point into 2D coordinates on the axis plane.
func (ap axisPlane) project(point Vector) (x, y float64) {
	return point.Component(ap.x), point.Component(ap.y)
}
