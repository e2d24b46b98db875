package brushcore

// BBox is an axis-aligned bounding box, used both as the construction input for a new brush
// (the world bounds the initial cuboid fills) and as the cached bounds of a brush's vertices.
type BBox struct {
	Min Vector
	Max Vector
}

// NewBBox creates a new BBox spanning the two given corner points.
func NewBBox(min, max Vector) BBox {
	return BBox{Min: min, Max: max}
}

// MergePoint returns a copy of the BBox grown to contain the given point.
func (box BBox) MergePoint(point Vector) BBox {
	if point.X < box.Min.X {
		box.Min.X = point.X
	}
	if point.Y < box.Min.Y {
		box.Min.Y = point.Y
	}
	if point.Z < box.Min.Z {
		box.Min.Z = point.Z
	}
	if point.X > box.Max.X {
		box.Max.X = point.X
	}
	if point.Y > box.Max.Y {
		box.Max.Y = point.Y
	}
	if point.Z > box.Max.Z {
		box.Max.Z = point.Z
	}
	return box
}

// Center returns the center point of the BBox.
func (box BBox) Center() Vector {
	return box.Min.Add(box.Max).Scale(0.5)
}

// Size returns the dimensions of the BBox.
func (box BBox) Size() Vector {
	return box.Max.Sub(box.Min)
}

// Contains returns true if the given point lies inside the BBox (within Epsilon).
func (box BBox) Contains(point Vector) bool {
	return point.X >= box.Min.X-Epsilon && point.X <= box.Max.X+Epsilon &&
		point.Y >= box.Min.Y-Epsilon && point.Y <= box.Max.Y+Epsilon &&
		point.Z >= box.Min.Z-Epsilon && point.Z <= box.Max.Z+Epsilon
}

// Translated returns a copy of the BBox moved by the given delta.
func (box BBox) Translated(delta Vector) BBox {
	box.Min = box.Min.Add(delta)
	box.Max = box.Max.Add(delta)
	return box
}

// repaired returns a copy of the BBox with Min and Max swapped per-component where a
// transform has inverted their ordering.
func (box BBox) repaired() BBox {
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Rotated90 returns a copy of the BBox rotated 90° about the given axis through the given center.
func (box BBox) Rotated90(axis Axis, center Vector, clockwise bool) BBox {
	box.Min = box.Min.Rotated90(axis, center, clockwise)
	box.Max = box.Max.Rotated90(axis, center, clockwise)
	return box.repaired()
}

// Flipped returns a copy of the BBox mirrored along the given axis through the given center.
func (box BBox) Flipped(axis Axis, center Vector) BBox {
	box.Min = box.Min.Flipped(axis, center)
	box.Max = box.Max.Flipped(axis, center)
	return box.repaired()
}
