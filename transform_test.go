package brushcore

import (
	"math"
	"testing"
)

func vertexPositions(bg *BrushGeometry) []Vector {
	positions := make([]Vector, len(bg.Vertices))
	for i, vertex := range bg.Vertices {
		positions[i] = vertex.Position
	}
	return positions
}

func TestTranslateRoundTrip(t *testing.T) {
	bg := unitCube(t)
	original := vertexPositions(bg)

	delta := NewVector(3, -7, 12)
	bg.Translate(delta)
	if !bg.Center().Equals(delta) {
		t.Fatal("center did not follow the translation:", bg.Center())
	}
	bg.Translate(delta.Invert())

	for i, position := range vertexPositions(bg) {
		if !position.Equals(original[i]) {
			t.Fatalf("vertex %d did not return to %v, is at %v", i, original[i], position)
		}
	}
	requireIntegrity(t, bg)
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		bg := unitCube(t)
		original := vertexPositions(bg)

		center := NewVector(2, 3, 4)
		bg.Flip(axis, center)
		requireIntegrity(t, bg)
		requireConvex(t, bg)

		bg.Flip(axis, center)
		for i, position := range vertexPositions(bg) {
			if !position.Equals(original[i]) {
				t.Fatalf("axis %d: vertex %d did not return to %v, is at %v", axis, i, original[i], position)
			}
		}
		requireIntegrity(t, bg)
		requireConvex(t, bg)
		bg.Release()
	}
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		bg := unitCube(t)
		original := vertexPositions(bg)

		center := NewVector(5, 0, -3)
		for i := 0; i < 4; i++ {
			bg.Rotate90(axis, center, true)
			requireIntegrity(t, bg)
			requireConvex(t, bg)
			requireSnapped(t, bg)
		}

		for i, position := range vertexPositions(bg) {
			if !position.Equals(original[i]) {
				t.Fatalf("axis %d: vertex %d did not return to %v, is at %v", axis, i, original[i], position)
			}
		}
		bg.Release()
	}
}

func TestRotate90MovesCorner(t *testing.T) {
	bg := unitCube(t)
	bg.Translate(NewVector(4, 0, 0))

	bg.Rotate90(AxisZ, NewVector(0, 0, 0), true)

	// clockwise about +Z: (x, y) -> (y, -x)
	min, max := bg.Bounds().Min, bg.Bounds().Max
	if !min.Equals(NewVector(-1, -5, -1)) || !max.Equals(NewVector(1, -3, 1)) {
		t.Fatalf("rotated bounds are wrong: %v .. %v", min, max)
	}
	requireIntegrity(t, bg)
	requireConvex(t, bg)
}

func TestRotateQuaternionQuarterTurn(t *testing.T) {
	bg := unitCube(t)
	bg.Translate(NewVector(4, 0, 0))

	rotation := NewQuaternionFromAxisAngle(VecZ, math.Pi/2)
	bg.Rotate(rotation, NewVector(0, 0, 0))

	// counter-clockwise about +Z: the cube at x=4 ends up at y=4
	center := bg.Center()
	if !center.Equals(NewVector(0, 4, 0)) {
		t.Fatal("rotated center is wrong:", center)
	}
	requireIntegrity(t, bg)
	requireConvex(t, bg)
}

func TestFlipKeepsNormalsOutward(t *testing.T) {
	bg := unitCube(t)
	bg.Flip(AxisX, NewVector(0, 0, 0))

	// every face normal must still point away from the center
	for i, side := range bg.Sides {
		normal := side.Face.Boundary().Normal
		outward := centerOfVertices(side.Vertices).Sub(bg.Center())
		if normal.Dot(outward) <= 0 {
			t.Fatalf("side %d normal %v points inward after flipping", i, normal)
		}
	}
	requireConvex(t, bg)
}

func TestSnapIsStillAStub(t *testing.T) {
	bg := unitCube(t)
	before := vertexPositions(bg)
	bg.Snap()
	for i, position := range vertexPositions(bg) {
		if !position.Equals(before[i]) {
			t.Fatal("Snap is specified as a stub until the editor defines a grid")
		}
	}
}
