package brushcore

// PickRay casts the given ray against the brush and returns the nearest side it enters,
// together with the hit distance. Returns (nil, NaN) if the ray misses the brush. Sides are
// only hit from the front (the side of the outward normal), so a ray cast from inside the
// brush hits nothing.
func (bg *BrushGeometry) PickRay(ray Ray) (*Side, float64) {
	var picked *Side
	pickedDist := nan()

	for _, side := range bg.Sides {
		if side.Face == nil {
			continue
		}
		dist := side.intersectRay(ray)
		if isNaN(dist) {
			continue
		}
		if isNaN(pickedDist) || dist < pickedDist {
			picked = side
			pickedDist = dist
		}
	}

	return picked, pickedDist
}

// PickRayEdge returns the edge closest to the given ray within the given maximum distance,
// together with the distance along the ray of the closest point. Returns (nil, NaN) if no
// edge comes close enough. This is the picking primitive behind edge selection handles.
func (bg *BrushGeometry) PickRayEdge(ray Ray, maxDistance float64) (*Edge, float64) {
	var picked *Edge
	pickedRayDist := nan()
	closest := maxDistance * maxDistance

	for _, edge := range bg.Edges {
		distSquared, rayDist, ok := edge.IntersectRay(ray)
		if !ok || distSquared > closest {
			continue
		}
		closest = distSquared
		picked = edge
		pickedRayDist = rayDist
	}

	return picked, pickedRayDist
}

// Contains returns true if the given point lies inside the brush (or on its boundary, under
// Epsilon).
func (bg *BrushGeometry) Contains(point Vector) bool {
	for _, side := range bg.Sides {
		var boundary Plane
		if side.Face != nil {
			boundary = side.Face.Boundary()
		} else {
			boundary = NewPlaneFromPoints(
				side.Vertices[0].Position,
				side.Vertices[1].Position,
				side.Vertices[2].Position,
			)
		}
		if boundary.PointStatus(point) == PointAbove {
			return false
		}
	}
	return true
}
