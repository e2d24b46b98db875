package brushcore

import "math"

// Quaternion represents a rotation. Like Vector, it is a value type whose methods return
// modified copies.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the given components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionFromAxisAngle creates a new Quaternion representing a rotation of angle
// radians about the given axis. The axis should be of unit length.
func NewQuaternionFromAxisAngle(axis Vector, angle float64) Quaternion {
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// Mult returns the product of the calling Quaternion with the other Quaternion
// (the rotation "other, then quat").
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y + quat.Y*other.W + quat.Z*other.X - quat.X*other.Z,
		Z: quat.W*other.Z + quat.Z*other.W + quat.X*other.Y - quat.Y*other.X,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Conjugated returns the conjugate of the Quaternion.
func (quat Quaternion) Conjugated() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Dot returns the dot product of the calling Quaternion and the other Quaternion.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// RotateVec returns the given Vector rotated by the Quaternion.
func (quat Quaternion) RotateVec(vec Vector) Vector {
	p := Quaternion{X: vec.X, Y: vec.Y, Z: vec.Z}
	r := quat.Mult(p).Mult(quat.Conjugated())
	return Vector{X: r.X, Y: r.Y, Z: r.Z}
}
