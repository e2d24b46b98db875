package brushcore

import (
	"math"
	"testing"
)

func TestCutRedundant(t *testing.T) {
	bg := unitCube(t)
	face := testFace(testWorldBounds(), NewVector(0, 0, 1), 2)

	result, dropped, err := bg.AddFace(face)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutRedundant {
		t.Fatal("a plane above the cube should be redundant, got", result)
	}
	if len(dropped) != 0 {
		t.Fatal("a redundant cut dropped faces")
	}
	if face.Side() != nil {
		t.Fatal("a redundant face was attached to the mesh")
	}
	if bg.VertexCount() != 8 || bg.EdgeCount() != 12 || bg.SideCount() != 6 {
		t.Fatal("a redundant cut changed the mesh")
	}
	requireIntegrity(t, bg)
}

func TestCutNull(t *testing.T) {
	bg := unitCube(t)
	face := testFace(testWorldBounds(), NewVector(0, 0, 1), -2)

	result, _, err := bg.AddFace(face)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutNull {
		t.Fatal("a plane below the cube should nullify it, got", result)
	}
	// the mesh is meaningless now; the caller discards it
	bg.Release()
}

func TestCutTwiceIsRedundant(t *testing.T) {
	bg := unitCube(t)
	world := testWorldBounds()

	sqrt2 := math.Sqrt(2)
	first := testFace(world, NewVector(1/sqrt2, 1/sqrt2, 0), 0)
	result, _, err := bg.AddFace(first)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutSplit {
		t.Fatal("first diagonal cut should split, got", result)
	}

	second := testFace(world, NewVector(1/sqrt2, 1/sqrt2, 0), 0)
	result, _, err = bg.AddFace(second)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutRedundant {
		t.Fatal("repeating the same cut should be redundant, got", result)
	}
}

func TestCutDiagonal(t *testing.T) {
	bg := unitCube(t)
	world := testWorldBounds()

	sqrt2 := math.Sqrt(2)
	face := testFace(world, NewVector(1/sqrt2, 1/sqrt2, 0), 0)
	result, dropped, err := bg.AddFace(face)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutSplit {
		t.Fatal("diagonal cut should split the cube, got", result)
	}

	// the plane passes exactly through two opposite vertical cube edges: the two sides on
	// the cut-away half drop, top and bottom shrink to triangles, and a new quad closes the
	// mesh again
	if len(dropped) != 2 {
		t.Fatal("expected 2 dropped faces, got", len(dropped))
	}
	if bg.VertexCount() != 6 || bg.EdgeCount() != 9 || bg.SideCount() != 5 {
		t.Fatalf("expected 6 vertices, 9 edges, 5 sides, got %d, %d, %d",
			bg.VertexCount(), bg.EdgeCount(), bg.SideCount())
	}
	if !bg.Closed() {
		t.Fatal("cut mesh is not closed")
	}
	if face.Side() == nil {
		t.Fatal("the new face was not attached to a side")
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestCutCorner(t *testing.T) {
	bg := unitCube(t)
	world := testWorldBounds()

	// x+y+z = 2 slices off exactly the corner at (1,1,1)
	sqrt3 := math.Sqrt(3)
	face := NewFace(world,
		NewVector(1, 1, 0),
		NewVector(1, 0, 1),
		NewVector(0, 1, 1),
	)
	if !face.Boundary().Normal.Equals(NewVector(1/sqrt3, 1/sqrt3, 1/sqrt3)) {
		t.Fatal("corner cut face has the wrong normal:", face.Boundary().Normal)
	}

	result, dropped, err := bg.AddFace(face)
	if err != nil {
		t.Fatal(err)
	}
	if result != CutSplit {
		t.Fatal("corner cut should split the cube, got", result)
	}
	if len(dropped) != 0 {
		t.Fatal("cutting a single corner should drop no face, got", len(dropped))
	}

	// relative to the cube: one corner vertex traded for three split points, three new
	// edges, one new triangular side
	if bg.VertexCount() != 10 || bg.EdgeCount() != 15 || bg.SideCount() != 7 {
		t.Fatalf("expected 10 vertices, 15 edges, 7 sides, got %d, %d, %d",
			bg.VertexCount(), bg.EdgeCount(), bg.SideCount())
	}
	if len(face.Side().Vertices) != 3 {
		t.Fatal("the new side should be a triangle, has", len(face.Side().Vertices), "vertices")
	}
	if bg.FindVertex(NewVector(1, 1, 1)) != len(bg.Vertices) {
		t.Fatal("the cut-away corner vertex is still present")
	}

	requireIntegrity(t, bg)
	requireConvex(t, bg)
	requireSnapped(t, bg)
}

func TestAddFacesNullAborts(t *testing.T) {
	world := testWorldBounds()
	bg := NewBrushGeometryFromBounds(world)

	faces := []*Face{
		testFace(world, NewVector(0, 0, 1), 1),
		testFace(world, NewVector(0, 0, -1), -2), // empty intersection with the first
	}
	if _, ok := bg.AddFaces(faces); ok {
		t.Fatal("an empty plane intersection should report failure")
	}
	bg.Release()
}

func TestMarksQuiescentBetweenOperations(t *testing.T) {
	bg := unitCube(t)
	for _, vertex := range bg.Vertices {
		if vertex.Mark != VertexUnknown {
			t.Fatal("vertex mark not reset after cutting")
		}
	}
	for _, edge := range bg.Edges {
		if edge.Mark != EdgeUnknown {
			t.Fatal("edge mark not reset after cutting")
		}
	}
	for _, side := range bg.Sides {
		if side.Mark != SideUnknown {
			t.Fatal("side mark not reset after cutting")
		}
	}
}

func BenchmarkAddFaces(b *testing.B) {
	world := testWorldBounds()
	faces := []*Face{
		testFace(world, NewVector(1, 0, 0), 1),
		testFace(world, NewVector(-1, 0, 0), 1),
		testFace(world, NewVector(0, 1, 0), 1),
		testFace(world, NewVector(0, -1, 0), 1),
		testFace(world, NewVector(0, 0, 1), 1),
		testFace(world, NewVector(0, 0, -1), 1),
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bg := NewBrushGeometryFromBounds(world)
		if _, ok := bg.AddFaces(faces); !ok {
			b.Fatal("could not rebuild the cube")
		}
		bg.Release()
	}
}
