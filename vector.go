package brushcore

import "math"

// Axis identifies one of the three world axes for the exact transforms (90° rotation, flipping).
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// VecX represents a unit vector in the global X direction.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global Y direction.
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global Z direction.
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D vector used for positions, directions and deltas throughout the engine.
// Any Vector functions that modify the calling Vector return copies of the modified Vector,
// meaning you can do method-chaining easily. Vectors are value types; don't store pointers to them.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector with the other Vector added to it.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns the cross product of the calling Vector and the other Vector.
func (vec Vector) Cross(other Vector) Vector {
	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec
}

// Dot returns the dot product of the calling Vector and the other Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude()
// as it avoids math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Scale returns a copy of the Vector scaled by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide returns a copy of the Vector divided by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are close enough in all components (under Epsilon).
func (vec Vector) Equals(other Vector) bool {
	return feq(vec.X, other.X) && feq(vec.Y, other.Y) && feq(vec.Z, other.Z)
}

// IsZero returns true if all components of the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return zero(vec.X) && zero(vec.Y) && zero(vec.Z)
}

// ParallelTo returns true if the calling Vector and the other Vector point along the same
// line (in either direction), within the given tolerance.
func (vec Vector) ParallelTo(other Vector, tolerance float64) bool {
	cross := vec.Unit().Cross(other.Unit())
	return math.Abs(cross.X) <= tolerance && math.Abs(cross.Y) <= tolerance && math.Abs(cross.Z) <= tolerance
}

// Snapped returns a copy of the Vector with every component rounded to the nearest integer.
// Every vertex position in a brush is snapped after each completed operation to stop
// floating-point drift from accumulating over long editing sessions.
func (vec Vector) Snapped() Vector {
	vec.X = math.Round(vec.X)
	vec.Y = math.Round(vec.Y)
	vec.Z = math.Round(vec.Z)
	return vec
}

// Component returns the component of the Vector along the given Axis.
func (vec Vector) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return vec.X
	case AxisY:
		return vec.Y
	}
	return vec.Z
}

// Rotated90 returns a copy of the Vector rotated 90° about the given axis through the given
// center. The rotation is an exact coordinate permutation; no floating-point rotation matrix
// is involved.
func (vec Vector) Rotated90(axis Axis, center Vector, clockwise bool) Vector {
	vec = vec.Sub(center)
	switch axis {
	case AxisX:
		if clockwise {
			vec.Y, vec.Z = vec.Z, -vec.Y
		} else {
			vec.Y, vec.Z = -vec.Z, vec.Y
		}
	case AxisY:
		if clockwise {
			vec.X, vec.Z = -vec.Z, vec.X
		} else {
			vec.X, vec.Z = vec.Z, -vec.X
		}
	case AxisZ:
		if clockwise {
			vec.X, vec.Y = vec.Y, -vec.X
		} else {
			vec.X, vec.Y = -vec.Y, vec.X
		}
	}
	return vec.Add(center)
}

// Flipped returns a copy of the Vector mirrored along the given axis through the given center.
func (vec Vector) Flipped(axis Axis, center Vector) Vector {
	switch axis {
	case AxisX:
		vec.X = 2*center.X - vec.X
	case AxisY:
		vec.Y = 2*center.Y - vec.Y
	case AxisZ:
		vec.Z = 2*center.Z - vec.Z
	}
	return vec
}
