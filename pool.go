package brushcore

// Free-list pools for the three element kinds. A brush edit churns through vertices, edges
// and sides at high frequency while dragging, so the engine recycles them through free lists
// of at most poolSize entries each. Allocation falls back to the general allocator when a list
// is empty, and objects freed while a list is full are left to the garbage collector. Pooled objects
// have stable addresses for as long as they are live, which the cut and drag algorithms rely
// on: a side's edge pointers must survive neighbouring allocations mid-operation.
//
// The pools are process-wide and not safe for concurrent use, like the rest of the engine.
// No pointer to a pooled object may be retained across the public API boundary after the
// owning geometry has released it.

const poolSize = 256

type freeList[T any] struct {
	free []*T
}

func (p *freeList[T]) get() *T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		p.free = p.free[:n-1]
		return item
	}
	return new(T)
}

func (p *freeList[T]) put(item *T) {
	if len(p.free) < poolSize {
		var blank T
		*item = blank
		p.free = append(p.free, item)
	}
}

var (
	vertexPool = freeList[Vertex]{free: make([]*Vertex, 0, poolSize)}
	edgePool   = freeList[Edge]{free: make([]*Edge, 0, poolSize)}
	sidePool   = freeList[Side]{free: make([]*Side, 0, poolSize)}
)

func newVertex() *Vertex {
	v := vertexPool.get()
	v.Mark = VertexNew
	return v
}

func newVertexAt(position Vector) *Vertex {
	v := newVertex()
	v.Position = position
	return v
}

func freeVertex(v *Vertex) {
	vertexPool.put(v)
}

func newEdge() *Edge {
	e := edgePool.get()
	e.Mark = EdgeNew
	return e
}

func newEdgeBetween(start, end *Vertex) *Edge {
	e := newEdge()
	e.Start = start
	e.End = end
	return e
}

func freeEdge(e *Edge) {
	edgePool.put(e)
}

func newSide() *Side {
	s := sidePool.get()
	s.Mark = SideNew
	return s
}

func freeSide(s *Side) {
	s.Vertices = nil
	s.Edges = nil
	sidePool.put(s)
}
