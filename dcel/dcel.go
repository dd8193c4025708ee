// Package dcel implements a doubly-connected edge list (DCEL), the planar
// subdivision structure every higher-level algorithm in geomkernel (monotone
// partitioning, triangulation, Voronoi construction) builds its output on.
//
// Vertices, half-edges, and faces are held in flat slices on the DCEL and
// referenced by index rather than pointer. Splitting a face only ever
// appends to these slices, so indices handed out by one call stay valid
// across later calls - there is no entity relocation and no need for a
// garbage collector pass over the mesh.
package dcel

import (
	"fmt"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/predicate"
)

// invalidIndex marks an absent reference, the index-arena analogue of a nil
// pointer.
const invalidIndex = -1

// Vertex is a point in the subdivision together with one of its departing
// half-edges.
type Vertex struct {
	Point        point.Point
	IncidentEdge int // index into DCEL.halfEdges, or invalidIndex
}

// HalfEdge is one directed side of an edge in the subdivision.
type HalfEdge struct {
	Origin       int // index into DCEL.vertices
	Next         int // index into DCEL.halfEdges
	Prev         int // index into DCEL.halfEdges
	Twin         int // index into DCEL.halfEdges
	IncidentFace int // index into DCEL.faces, the face to this half-edge's left
}

// Face is a region of the subdivision bounded by one outer half-edge loop
// and zero or more inner (hole) loops.
type Face struct {
	Outer int   // index into DCEL.halfEdges, invalidIndex for the unbounded face
	Inner []int // indices into DCEL.halfEdges, one per hole boundary
}

// DCEL is a doubly-connected edge list over a simple polygon (or, after
// Split calls, a more general planar subdivision built from one).
type DCEL struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face
}

// New constructs a DCEL from a simple polygon's vertices, assumed to be
// oriented counterclockwise. It creates one bounded face for the polygon's
// interior and one unbounded face for its exterior.
func New(points []point.Point) *DCEL {
	d := &DCEL{}
	if len(points) < 3 {
		return d
	}

	for _, p := range points {
		d.vertices = append(d.vertices, Vertex{Point: p, IncidentEdge: invalidIndex})
	}

	n := len(d.vertices)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		h1 := len(d.halfEdges)
		h2 := h1 + 1
		d.halfEdges = append(d.halfEdges,
			HalfEdge{Origin: i, Twin: h2},
			HalfEdge{Origin: next, Twin: h1},
		)
		d.vertices[i].IncidentEdge = h1
	}

	// CCW half-edges live at even indices, CW (twin) half-edges at odd
	// indices, mirroring the construction order above.
	m := len(d.halfEdges)
	for i := 0; i < m; i++ {
		if i%2 == 0 {
			d.halfEdges[i].Next = (i + 2) % m
			d.halfEdges[i].Prev = ((i-2)%m + m) % m
		} else {
			d.halfEdges[i].Prev = (i + 2) % m
			d.halfEdges[i].Next = ((i-2)%m + m) % m
		}
	}

	interior := Face{Outer: 0, Inner: nil}
	exterior := Face{Outer: invalidIndex, Inner: []int{1}}
	d.faces = append(d.faces, interior, exterior)

	for i := 0; i < m; i += 2 {
		d.halfEdges[i].IncidentFace = 0
	}
	for i := 1; i < m; i += 2 {
		d.halfEdges[i].IncidentFace = 1
	}

	return d
}

// Vertices returns the DCEL's vertices. The returned slice shares storage
// with the DCEL and must not be mutated by callers.
func (d *DCEL) Vertices() []Vertex { return d.vertices }

// HalfEdges returns the DCEL's half-edges. The returned slice shares storage
// with the DCEL and must not be mutated by callers.
func (d *DCEL) HalfEdges() []HalfEdge { return d.halfEdges }

// Faces returns the DCEL's faces. The returned slice shares storage with the
// DCEL and must not be mutated by callers.
func (d *DCEL) Faces() []Face { return d.faces }

// VertexPoint returns the coordinates of vertex v.
func (d *DCEL) VertexPoint(v int) point.Point {
	return d.vertices[v].Point
}

// Origin returns the vertex index at the origin of half-edge e.
func (d *DCEL) Origin(e int) int {
	return d.halfEdges[e].Origin
}

// Destination returns the vertex index at the destination of half-edge e,
// i.e. the origin of e's twin.
func (d *DCEL) Destination(e int) int {
	return d.halfEdges[d.halfEdges[e].Twin].Origin
}

// edgeSegmentPoints returns the two endpoints of half-edge e as points.
func (d *DCEL) edgeSegmentPoints(e int) (origin, dest point.Point) {
	return d.VertexPoint(d.Origin(e)), d.VertexPoint(d.Destination(e))
}

// GetDepartingEdges returns every half-edge whose origin is vertex v, in
// order around v.
func (d *DCEL) GetDepartingEdges(v int) []int {
	first := d.vertices[v].IncidentEdge
	if d.halfEdges[first].Origin != v {
		first = d.halfEdges[first].Twin
	}

	var out []int
	e := first
	for {
		out = append(out, e)
		e = d.halfEdges[d.halfEdges[e].Twin].Next
		if e == first {
			break
		}
	}
	return out
}

// FindDepartingEdgesWithCommonFace returns, for vertices v1 and v2, a pair
// of half-edges departing from each that share an incident face - the face
// a diagonal between v1 and v2 would have to cross. It returns
// (invalidIndex, invalidIndex) if no such pair exists.
func (d *DCEL) FindDepartingEdgesWithCommonFace(v1, v2 int) (e1, e2 int) {
	for _, a := range d.GetDepartingEdges(v1) {
		faceA := d.halfEdges[a].IncidentFace
		for _, b := range d.GetDepartingEdges(v2) {
			if d.halfEdges[b].IncidentFace == faceA {
				return a, b
			}
		}
	}
	return invalidIndex, invalidIndex
}

// AnyIntersectionsExist reports whether the candidate diagonal (orig,dest)
// crosses any edge of the face boundary walked from origDepartEdge, other
// than the two boundary edges at orig (origDepartEdge and its prev) and
// edges incident to dest itself.
func (d *DCEL) AnyIntersectionsExist(orig, dest, origDepartEdge int) bool {
	origPoint := d.VertexPoint(orig)
	destPoint := d.VertexPoint(dest)

	e := d.halfEdges[origDepartEdge].Next
	stop := d.halfEdges[origDepartEdge].Prev
	for e != stop {
		if d.halfEdges[e].Origin == dest || d.halfEdges[d.halfEdges[e].Twin].Origin == dest {
			e = d.halfEdges[e].Next
			continue
		}
		a, b := d.edgeSegmentPoints(e)
		if predicate.IntersectionExists(origPoint, destPoint, a, b) {
			return true
		}
		e = d.halfEdges[e].Next
	}
	return false
}

// IsConvex reports whether vertex v, whose departing half-edge is
// departingEdge, is a convex vertex of its incident face - i.e. whether the
// incoming edge turns left (or straight) into the outgoing edge.
func (d *DCEL) IsConvex(v, departingEdge int) bool {
	incoming := d.halfEdges[departingEdge].Prev
	inOrigin, inDest := d.edgeSegmentPoints(incoming)
	_, outDest := d.edgeSegmentPoints(departingEdge)

	pos := predicate.Orientation(inOrigin, inDest, outDest)
	return pos == predicate.Left || pos == predicate.Beyond || pos == predicate.Destination
}

// MakesInteriorConnection reports whether the candidate diagonal from orig
// to dest passes through the interior of orig's incident face rather than
// its exterior, based on orig's convexity.
func (d *DCEL) MakesInteriorConnection(orig, dest, origDepartEdge int) bool {
	_, vNext := d.edgeSegmentPoints(origDepartEdge)
	vPrev, _ := d.edgeSegmentPoints(d.halfEdges[origDepartEdge].Prev)
	origPoint := d.VertexPoint(orig)
	destPoint := d.VertexPoint(dest)

	if d.IsConvex(orig, origDepartEdge) {
		return predicate.Orientation(origPoint, destPoint, vNext) == predicate.Right &&
			predicate.Orientation(origPoint, destPoint, vPrev) == predicate.Left
	}
	exterior := predicate.Orientation(origPoint, destPoint, vNext) == predicate.Left &&
		predicate.Orientation(origPoint, destPoint, vPrev) == predicate.Right
	return !exterior
}

// DiagonalData reports the result of a diagonal feasibility check between
// two vertices.
type DiagonalData struct {
	DepartingEdgeV1 int
	DepartingEdgeV2 int
	IsValid         bool
}

// Diagonal determines whether a diagonal between v1 and v2 can validly
// split their common face: they must not be the same vertex, must share an
// incident face, must not already be neighbors, the candidate segment must
// not cross any other edge of that face, and it must pass through the
// face's interior at both endpoints.
func (d *DCEL) Diagonal(v1, v2 int) DiagonalData {
	if v1 == v2 {
		return DiagonalData{DepartingEdgeV1: invalidIndex, DepartingEdgeV2: invalidIndex}
	}

	e1, e2 := d.FindDepartingEdgesWithCommonFace(v1, v2)
	if e1 == invalidIndex || e2 == invalidIndex {
		return DiagonalData{DepartingEdgeV1: invalidIndex, DepartingEdgeV2: invalidIndex}
	}

	if d.halfEdges[d.halfEdges[e1].Next].Origin == v2 {
		return DiagonalData{DepartingEdgeV1: invalidIndex, DepartingEdgeV2: invalidIndex}
	}
	if d.halfEdges[d.halfEdges[e2].Next].Origin == v1 {
		return DiagonalData{DepartingEdgeV1: invalidIndex, DepartingEdgeV2: invalidIndex}
	}

	if d.AnyIntersectionsExist(v1, v2, e1) {
		return DiagonalData{DepartingEdgeV1: invalidIndex, DepartingEdgeV2: invalidIndex}
	}

	valid := d.MakesInteriorConnection(v1, v2, e1) && d.MakesInteriorConnection(v2, v1, e2)
	return DiagonalData{DepartingEdgeV1: e1, DepartingEdgeV2: e2, IsValid: valid}
}

// Split inserts a diagonal between v1 and v2, splitting their shared face
// into two. It is a no-op and returns false if Diagonal rejects the
// diagonal. On success it appends exactly two half-edges and one face to
// the DCEL's arenas; no existing index is invalidated.
func (d *DCEL) Split(v1, v2 int) bool {
	diag := d.Diagonal(v1, v2)
	if !diag.IsValid {
		return false
	}

	e1Idx := len(d.halfEdges)
	e2Idx := e1Idx + 1

	dep1 := diag.DepartingEdgeV1
	dep2 := diag.DepartingEdgeV2
	f1 := d.halfEdges[dep1].IncidentFace
	f2Idx := len(d.faces)

	e1 := HalfEdge{Origin: v1, Next: dep2, Prev: d.halfEdges[dep1].Prev, Twin: e2Idx, IncidentFace: f1}
	e2 := HalfEdge{Origin: v2, Next: dep1, Prev: d.halfEdges[dep2].Prev, Twin: e1Idx, IncidentFace: f2Idx}

	d.halfEdges[d.halfEdges[dep1].Prev].Next = e1Idx
	d.halfEdges[dep1].Prev = e2Idx

	d.halfEdges[d.halfEdges[dep2].Prev].Next = e2Idx
	d.halfEdges[dep2].Prev = e1Idx

	d.halfEdges = append(d.halfEdges, e1, e2)

	innerOfF1 := append([]int(nil), d.faces[f1].Inner...)
	d.faces = append(d.faces, Face{Outer: e2Idx, Inner: innerOfF1})
	d.faces[f1].Outer = e1Idx
	d.faces[f1].Inner = nil

	e := e2Idx
	for {
		d.halfEdges[e].IncidentFace = f2Idx
		e = d.halfEdges[e].Next
		if e == e2Idx {
			break
		}
	}

	return true
}

// Validate walks the DCEL's topology and returns an error describing the
// first structural invariant violation found: every half-edge's twin's twin
// must be itself, every half-edge's next/prev must be mutually consistent,
// walking next around a face must return to the start, and the number of
// half-edges must be exactly twice the number of edges (an even count).
func (d *DCEL) Validate() error {
	if len(d.halfEdges)%2 != 0 {
		return fmt.Errorf("dcel: expected an even number of half-edges (two per edge), got %d", len(d.halfEdges))
	}

	for i, e := range d.halfEdges {
		if d.halfEdges[e.Twin].Twin != i {
			return fmt.Errorf("dcel: half-edge %d's twin %d does not point back to it", i, e.Twin)
		}
		if d.halfEdges[e.Next].Prev != i {
			return fmt.Errorf("dcel: half-edge %d's next %d does not have it as prev", i, e.Next)
		}
		if d.halfEdges[e.Prev].Next != i {
			return fmt.Errorf("dcel: half-edge %d's prev %d does not have it as next", i, e.Prev)
		}
	}

	for vi, v := range d.vertices {
		if v.IncidentEdge == invalidIndex {
			return fmt.Errorf("dcel: vertex %d has no incident edge", vi)
		}
		first := v.IncidentEdge
		if d.halfEdges[first].Origin != vi {
			first = d.halfEdges[first].Twin
		}
		if d.halfEdges[first].Origin != vi {
			return fmt.Errorf("dcel: vertex %d's incident edge does not touch it", vi)
		}
		e := first
		iters := 0
		for {
			e = d.halfEdges[d.halfEdges[e].Twin].Next
			iters++
			if iters > len(d.halfEdges) {
				return fmt.Errorf("dcel: vertex %d's edge fan does not close up", vi)
			}
			if e == first {
				break
			}
		}
	}

	return nil
}
