package brushcore

// The three B-rep element kinds. Each carries a transient mark that is only meaningful while
// a cut or drag is in flight; between operations every mark is Unknown.

// VertexMark is the transient classification of a Vertex during an operation.
type VertexMark int

const (
	VertexDrop VertexMark = iota
	VertexKeep
	VertexUndecided
	VertexNew
	VertexUnknown
)

// EdgeMark is the transient classification of an Edge during an operation.
type EdgeMark int

const (
	EdgeDrop EdgeMark = iota
	EdgeKeep
	EdgeSplit
	EdgeUndecided
	EdgeNew
	EdgeUnknown
)

// SideMark is the transient classification of a Side during an operation.
type SideMark int

const (
	SideKeep SideMark = iota
	SideDrop
	SideSplit
	SideNew
	SideUnknown
)

// Vertex is a corner of the brush mesh. Every Vertex is referenced by at least two edges and
// is owned by exactly one BrushGeometry.
type Vertex struct {
	Position Vector
	Mark     VertexMark
}

// Edge is an unordered pair of vertices separating exactly two sides. Orientation only has
// meaning relative to one of those sides; see StartVertex.
type Edge struct {
	Start *Vertex
	End   *Vertex
	Left  *Side
	Right *Side
	Mark  EdgeMark
}

// StartVertex returns the vertex the Edge starts at when walked along the given side's cycle.
// For the right side that is Start; for the left side the Edge runs backwards, so it is End.
// This per-side convention stands in for storing two half-edges.
func (edge *Edge) StartVertex(side *Side) *Vertex {
	if edge.Left == side {
		return edge.End
	}
	if edge.Right == side {
		return edge.Start
	}
	return nil
}

// EndVertex returns the vertex the Edge ends at when walked along the given side's cycle.
func (edge *Edge) EndVertex(side *Side) *Vertex {
	if edge.Left == side {
		return edge.Start
	}
	if edge.Right == side {
		return edge.End
	}
	return nil
}

// Vector returns the direction of the Edge from Start to End, irrespective of any side.
func (edge *Edge) Vector() Vector {
	return edge.End.Position.Sub(edge.Start.Position)
}

// VectorFor returns the direction of the Edge as walked along the given side's cycle.
func (edge *Edge) VectorFor(side *Side) Vector {
	return edge.EndVertex(side).Position.Sub(edge.StartVertex(side).Position)
}

// Center returns the midpoint of the Edge.
func (edge *Edge) Center() Vector {
	return edge.Start.Position.Add(edge.End.Position).Scale(0.5)
}

// IncidentWith returns true if the two Edges share a vertex.
func (edge *Edge) IncidentWith(other *Edge) bool {
	return edge.Start == other.Start || edge.Start == other.End ||
		edge.End == other.Start || edge.End == other.End
}

// Flip reverses the Edge in place: endpoints and side neighbours are swapped, so the edge
// denotes the same unordered pair with the opposite orientation.
func (edge *Edge) Flip() {
	edge.Left, edge.Right = edge.Right, edge.Left
	edge.Start, edge.End = edge.End, edge.Start
}

// updateMark derives the Edge's mark from its endpoint marks during a cut: one kept and one
// dropped endpoint makes a Split edge, otherwise the edge follows its decided endpoints.
func (edge *Edge) updateMark() {
	var keep, drop, undecided int

	switch edge.Start.Mark {
	case VertexKeep:
		keep++
	case VertexDrop:
		drop++
	case VertexUndecided:
		undecided++
	}

	switch edge.End.Mark {
	case VertexKeep:
		keep++
	case VertexDrop:
		drop++
	case VertexUndecided:
		undecided++
	}

	switch {
	case keep == 1 && drop == 1:
		edge.Mark = EdgeSplit
	case keep > 0:
		edge.Mark = EdgeKeep
	case drop > 0:
		edge.Mark = EdgeDrop
	default:
		edge.Mark = EdgeUndecided
	}
}

// split intersects the Edge with the given plane, allocates a new Vertex at the (snapped)
// intersection point and swaps it in for the dropped endpoint. The new Vertex is returned so
// the owning geometry can take ownership of it.
func (edge *Edge) split(plane Plane) *Vertex {
	origin := edge.Start.Position
	direction := edge.End.Position.Sub(edge.Start.Position).Unit()

	vertex := newVertex()
	dist := plane.IntersectLine(origin, direction)
	vertex.Position = origin.Add(direction.Scale(dist)).Snapped()
	vertex.Mark = VertexNew

	if edge.Start.Mark == VertexDrop {
		edge.Start = vertex
	} else {
		edge.End = vertex
	}

	return vertex
}

// IntersectRay computes the closest approach between the Edge and the given Ray. It returns
// the squared distance between them and the distance along the Ray of the closest point, or
// ok == false if the closest point lies behind the Ray's origin. This is the editor's edge
// picking primitive.
func (edge *Edge) IntersectRay(ray Ray) (distanceSquared, rayDistance float64, ok bool) {
	u := edge.Vector()
	w := edge.Start.Position.Sub(ray.Origin)

	a := u.Dot(u)
	b := u.Dot(ray.Direction)
	c := ray.Direction.Dot(ray.Direction)
	d := u.Dot(w)
	e := ray.Direction.Dot(w)
	dd := a*c - b*b

	var sn, tn float64
	sd, td := dd, dd

	if zero(dd) {
		sn = 0
		sd = 1
		tn = e
		td = c
	} else {
		sn = b*e - c*d
		tn = a*e - b*d
		if sn < 0 {
			sn = 0
			tn = e
			td = c
		} else if sn > sd {
			sn = sd
			tn = e + b
			td = c
		}
	}

	if tn < 0 {
		return 0, 0, false
	}

	var sc, tc float64
	if !zero(sn) {
		sc = sn / sd
	}
	if !zero(tn) {
		tc = tn / td
	}

	dp := w.Add(u.Scale(sc)).Sub(ray.Direction.Scale(tc))
	return dp.MagnitudeSquared(), tc, true
}

// Side is the geometric polygon realising one Face on the mesh: an ordered cycle of vertices
// and an equal-length cycle of edges such that edge i runs from vertex i to vertex i+1 when
// walked with StartVertex / EndVertex.
type Side struct {
	Vertices []*Vertex
	Edges    []*Edge
	Face     *Face
	Mark     SideMark
}

// newSideFromEdges builds a Side from the given edges. invert[i] marks edges whose stored
// orientation runs against the new side's winding; those edges get the side as their Left
// neighbour, the others as their Right.
func newSideFromEdges(edges []*Edge, invert []bool) *Side {
	side := newSide()
	for i, edge := range edges {
		side.Edges = append(side.Edges, edge)
		if invert[i] {
			edge.Left = side
			side.Vertices = append(side.Vertices, edge.End)
		} else {
			edge.Right = side
			side.Vertices = append(side.Vertices, edge.Start)
		}
	}
	return side
}

// newSideForFace builds the Side realising the given Face from a cycle of new edges produced
// by a cut. All the new edges take the new side as their Left neighbour.
func newSideForFace(face *Face, edges []*Edge) *Side {
	side := newSide()
	side.Face = face
	for _, edge := range edges {
		edge.Left = side
		side.Edges = append(side.Edges, edge)
		side.Vertices = append(side.Vertices, edge.StartVertex(side))
	}
	face.SetSide(side)
	return side
}

// normal returns the direction of the Side's outward normal computed from its vertex cycle
// (not normalized).
func (side *Side) normal() Vector {
	v1 := side.Vertices[len(side.Vertices)-1].Position.Sub(side.Vertices[0].Position)
	v2 := side.Vertices[1].Position.Sub(side.Vertices[0].Position)
	return v1.Cross(v2)
}

// replaceEdges replaces the run of edges strictly between index1 and index2 (walking forward
// through the cycle) with the single given edge, keeping the vertex cycle in step.
func (side *Side) replaceEdges(index1, index2 int, edge *Edge) {
	if index2 > index1 {
		// vertices index1+1 .. index2 and edges index1+1 .. index2-1 are cut out
		vertices := make([]*Vertex, 0, len(side.Vertices)-(index2-index1)+1)
		vertices = append(vertices, side.Vertices[:index1+1]...)
		vertices = append(vertices, edge.StartVertex(side), edge.EndVertex(side))
		vertices = append(vertices, side.Vertices[index2+1:]...)
		side.Vertices = vertices

		edges := make([]*Edge, 0, len(side.Edges)-(index2-index1)+2)
		edges = append(edges, side.Edges[:index1+1]...)
		edges = append(edges, edge)
		edges = append(edges, side.Edges[index2:]...)
		side.Edges = edges
	} else {
		// the run wraps around the end of the cycle: keep index2+1 .. index1, then the new edge
		vertices := make([]*Vertex, 0, index1-index2+2)
		vertices = append(vertices, edge.EndVertex(side))
		vertices = append(vertices, side.Vertices[index2+1:index1+1]...)
		vertices = append(vertices, edge.StartVertex(side))
		side.Vertices = vertices

		edges := make([]*Edge, 0, index1-index2+1)
		edges = append(edges, side.Edges[index2:index1+1]...)
		edges = append(edges, edge)
		side.Edges = edges
	}
}

// split scans the Side's edge cycle after the edges have been marked during a cut. It decides
// the side's own mark, and for a properly split side allocates and splices in the one new edge
// that closes the kept arc. For a side kept with a single undecided edge, that edge is
// returned so the cut can use it as a bridge into the new side's cycle.
func (side *Side) split() (*Edge, error) {
	var keep, drop, split, undecided int
	var undecidedEdge *Edge

	splitIndex1 := -2
	splitIndex2 := -2

	lastMark := side.Edges[len(side.Edges)-1].Mark
	for i, edge := range side.Edges {
		currentMark := edge.Mark
		switch currentMark {
		case EdgeSplit:
			if edge.StartVertex(side).Mark == VertexKeep {
				splitIndex1 = i
			} else {
				splitIndex2 = i
			}
			split++
		case EdgeUndecided:
			undecided++
			undecidedEdge = edge
		case EdgeKeep:
			if lastMark == EdgeDrop {
				splitIndex2 = i
			}
			keep++
		case EdgeDrop:
			if lastMark == EdgeKeep {
				if i > 0 {
					splitIndex1 = i - 1
				} else {
					splitIndex1 = len(side.Edges) - 1
				}
			}
			drop++
		}
		lastMark = currentMark
	}

	if keep == len(side.Edges) {
		side.Mark = SideKeep
		return nil, nil
	}

	if undecided == 1 && keep == len(side.Edges)-1 {
		side.Mark = SideKeep
		return undecidedEdge, nil
	}

	if drop+undecided == len(side.Edges) {
		side.Mark = SideDrop
		return nil, nil
	}

	if splitIndex1 < 0 || splitIndex2 < 0 {
		return nil, errGeometry("invalid brush detected during side split")
	}

	side.Mark = SideSplit

	edge := newEdge()
	edge.Start = side.Edges[splitIndex1].EndVertex(side)
	edge.End = side.Edges[splitIndex2].StartVertex(side)
	edge.Left = nil
	edge.Right = side
	edge.Mark = EdgeNew

	side.replaceEdges(splitIndex1, splitIndex2, edge)
	return edge, nil
}

// Flip reverses the Side's vertex and edge cycles in place. On its own this does not keep
// vertex i at the start of edge i; the mirroring transform also swaps every edge's side
// neighbours and rotates the reversed vertex cycle by one to restore that relation.
func (side *Side) Flip() {
	for i, j := 0, len(side.Vertices)-1; i < j; i, j = i+1, j-1 {
		side.Vertices[i], side.Vertices[j] = side.Vertices[j], side.Vertices[i]
	}
	for i, j := 0, len(side.Edges)-1; i < j; i, j = i+1, j-1 {
		side.Edges[i], side.Edges[j] = side.Edges[j], side.Edges[i]
	}
}

// shift rotates the Side's vertex and edge cycles so that the element at the given offset
// comes first. The polygon is unchanged; only the starting element of the cycle moves.
func (side *Side) shift(offset int) {
	count := len(side.Edges)
	if offset%count == 0 {
		return
	}

	newEdges := make([]*Edge, 0, count)
	newVertices := make([]*Vertex, 0, count)
	for i := 0; i < count; i++ {
		index := succ(i, count, offset)
		newEdges = append(newEdges, side.Edges[index])
		newVertices = append(newVertices, side.Vertices[index])
	}
	side.Edges = newEdges
	side.Vertices = newVertices
}

// isDegenerate returns true if the Side's winding has collapsed: some pair of consecutive
// edges no longer turns in the direction of the face normal.
func (side *Side) isDegenerate() bool {
	for i, edge := range side.Edges {
		next := side.Edges[succ(i, len(side.Edges), 1)]

		edgeVector := edge.VectorFor(side)
		nextVector := next.VectorFor(side)
		cross := nextVector.Cross(edgeVector)
		if !pos(cross.Dot(side.Face.Boundary().Normal)) {
			return true
		}
	}
	return false
}

// collinearTriangleEdge checks whether the Side is a triangle with three collinear vertices.
// If so it returns the index of the longest of the three edges (the one to remove); otherwise
// it returns len(side.Edges).
func (side *Side) collinearTriangleEdge() int {
	if len(side.Edges) > 3 {
		return len(side.Edges)
	}

	edgeVector1 := side.Edges[0].Vector()
	edgeVector2 := side.Edges[1].Vector()
	if !edgeVector1.ParallelTo(edgeVector2, Epsilon) {
		return len(side.Edges)
	}

	edgeVector3 := side.Edges[2].Vector()
	length1 := edgeVector1.MagnitudeSquared()
	length2 := edgeVector2.MagnitudeSquared()
	length3 := edgeVector3.MagnitudeSquared()

	if length1 > length2 {
		if length1 > length3 {
			return 0
		}
		return 2
	}
	if length2 > length3 {
		return 1
	}
	return 2
}

// intersectRay returns the distance at which the given Ray enters the Side, or NaN if the
// Ray misses it or approaches from behind. The hit point is projected onto an axis-aligned
// plane and tested against the polygon with an even-odd crossing count.
func (side *Side) intersectRay(ray Ray) float64 {
	boundary := side.Face.Boundary()
	dot := boundary.Normal.Dot(ray.Direction)
	if !neg(dot) {
		return nan()
	}

	dist := boundary.IntersectRay(ray)
	if isNaN(dist) {
		return nan()
	}

	ap := axisPlaneFor(boundary.Normal)
	hit := ray.PointAt(dist)
	hitX, hitY := ap.project(hit)

	last := side.Vertices[len(side.Vertices)-1]
	v0x, v0y := ap.project(last.Position)
	v0x -= hitX
	v0y -= hitY

	c := 0
	for _, vertex := range side.Vertices {
		v1x, v1y := ap.project(vertex.Position)
		v1x -= hitX
		v1y -= hitY

		if (zero(v0x) && zero(v0y)) || (zero(v1x) && zero(v1y)) {
			// the hit point coincides with a polygon vertex, cancel the search
			c = 1
			break
		}

		// An edge crosses the positive X axis if its endpoint Y coordinates have different
		// signs (counting 0 as negative) and the crossing happens at a non-negative X.
		if (v0y > 0 && v1y <= 0) || (v0y <= 0 && v1y > 0) {
			if v0x > 0 && v1x > 0 {
				c++
			} else if (v0x > 0 && v1x <= 0) || (v0x <= 0 && v1x > 0) {
				x := -v0y*(v1x-v0x)/(v1y-v0y) + v0x
				if x >= 0 {
					c++
				}
			}
		}

		v0x, v0y = v1x, v1y
	}

	if c%2 == 0 {
		return nan()
	}
	return dist
}
