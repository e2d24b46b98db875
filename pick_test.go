package brushcore

import (
	"math"
	"testing"
)

func TestPickRayHitsNearestSide(t *testing.T) {
	bg := unitCube(t)

	ray := NewRay(NewVector(5, 0, 0), NewVector(-1, 0, 0))
	side, dist := bg.PickRay(ray)
	if side == nil {
		t.Fatal("a ray aimed at the cube missed it")
	}
	if !feq(dist, 4) {
		t.Fatal("expected hit distance 4, got", dist)
	}
	if !side.Face.Boundary().Normal.Equals(VecX) {
		t.Fatal("the ray should hit the +X side, hit normal", side.Face.Boundary().Normal)
	}
}

func TestPickRayMissesFromBehind(t *testing.T) {
	bg := unitCube(t)

	// sides are only hit from the front, so a ray from inside hits nothing
	ray := NewRay(NewVector(0, 0, 0), NewVector(1, 0, 0))
	if side, _ := bg.PickRay(ray); side != nil {
		t.Fatal("a ray cast from inside the brush should not hit a front face")
	}

	ray = NewRay(NewVector(5, 5, 5), NewVector(1, 1, 1).Unit())
	if side, _ := bg.PickRay(ray); side != nil {
		t.Fatal("a ray pointing away from the brush should miss")
	}
}

func TestPickRayMissesPastTheSide(t *testing.T) {
	bg := unitCube(t)

	ray := NewRay(NewVector(5, 3, 0), NewVector(-1, 0, 0))
	if side, _ := bg.PickRay(ray); side != nil {
		t.Fatal("a ray passing beside the cube should miss")
	}
}

func TestPickRayEdge(t *testing.T) {
	bg := unitCube(t)

	// aim just past the top front edge between (-1,-1,1) and (1,-1,1)
	ray := NewRay(NewVector(0, -5, 1.2), NewVector(0, 1, 0))
	edge, rayDist := bg.PickRayEdge(ray, 0.5)
	if edge == nil {
		t.Fatal("no edge picked near the top front edge")
	}
	if math.IsNaN(rayDist) || rayDist <= 0 {
		t.Fatal("picked edge has no sensible ray distance:", rayDist)
	}
	center := edge.Center()
	if !center.Equals(NewVector(0, -1, 1)) {
		t.Fatal("picked the wrong edge, center", center)
	}

	// far away from every edge nothing is picked
	if edge, _ := bg.PickRayEdge(NewRay(NewVector(0, -5, 8), NewVector(0, 1, 0)), 0.5); edge != nil {
		t.Fatal("picked an edge far away from the ray")
	}
}

func TestEdgeIntersectRayBehindOrigin(t *testing.T) {
	bg := unitCube(t)
	index := bg.FindEdge(NewVector(-1, -1, 1), NewVector(1, -1, 1))
	edge := bg.Edges[index]

	ray := NewRay(NewVector(0, -5, 1), NewVector(0, -1, 0))
	if _, _, ok := edge.IntersectRay(ray); ok {
		t.Fatal("an edge behind the ray origin should not intersect")
	}
}
