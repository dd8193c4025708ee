// Package monotone partitions a simple polygon into y-monotone pieces via a
// plane sweep, then triangulates each resulting piece.
package monotone

import (
	"fmt"

	"github.com/tomkrieg108/geomkernel/dcel"
	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/polygon"
	"github.com/tomkrieg108/geomkernel/predicate"
)

// VertexCategory classifies a simple polygon's vertex for the purposes of
// monotone partitioning.
type VertexCategory uint8

const (
	Start VertexCategory = iota
	End
	Split
	Merge
	Regular
)

// String returns a human-readable name for the category.
func (c VertexCategory) String() string {
	switch c {
	case Start:
		return "Start"
	case End:
		return "End"
	case Split:
		return "Split"
	case Merge:
		return "Merge"
	case Regular:
		return "Regular"
	default:
		return "Unknown"
	}
}

// Partition partitions a simple CCW polygon into y-monotone pieces and
// triangulates them, building up a dcel.DCEL as it goes.
type Partition struct {
	points                 []point.Point
	mesh                   *dcel.DCEL
	categories             []VertexCategory
	monotoneDiagonals      [][2]int
	triangulationDiagonals [][2]int
}

// New builds a Partition over a well-formed simple polygon's vertices,
// assumed to be ordered counterclockwise, and classifies every vertex.
func New(points []point.Point) (*Partition, error) {
	ok, err := polygon.IsWellFormed(points)
	if !ok {
		return nil, err
	}

	m := &Partition{points: points, mesh: dcel.New(points)}
	m.categorize()
	return m, nil
}

// DCEL returns the underlying DCEL, which accumulates diagonals as
// MakeMonotone and Triangulate are called.
func (m *Partition) DCEL() *dcel.DCEL {
	return m.mesh
}

// Categories returns the vertex category computed for every input vertex,
// indexed the same way as the points passed to New.
func (m *Partition) Categories() []VertexCategory {
	return m.categories
}

// MonotoneDiagonals returns the vertex-index pairs of every diagonal
// inserted by MakeMonotone.
func (m *Partition) MonotoneDiagonals() [][2]int {
	return m.monotoneDiagonals
}

// TriangulationDiagonals returns the vertex-index pairs of every diagonal
// inserted by Triangulate.
func (m *Partition) TriangulationDiagonals() [][2]int {
	return m.triangulationDiagonals
}

func diagonalSplitError(v1, v2 int) error {
	return fmt.Errorf("monotone: diagonal (%d, %d) rejected by DCEL.Split", v1, v2)
}

func (m *Partition) n() int {
	return len(m.points)
}

func (m *Partition) prev(v int) int {
	n := m.n()
	return (v - 1 + n) % n
}

func (m *Partition) next(v int) int {
	return (v + 1) % m.n()
}

// isBelow reports whether a is below b in sweep-priority terms, i.e. b is
// swept before a.
func isBelow(a, b point.Point) bool {
	return b.Compare(a) < 0
}

// isConvexAngle reports whether the interior angle at v (with neighbors
// prevPoint and nextPoint, per the CCW convention) is at most 180 degrees:
// nextPoint lies left of the directed edge prevPoint->v, or straight ahead
// beyond v on its extension.
func isConvexAngle(prevPoint, v, nextPoint point.Point) bool {
	pos := predicate.Orientation(prevPoint, v, nextPoint)
	return pos == predicate.Left || pos == predicate.Beyond
}

// categorize classifies every vertex per spec §4.4.1.
func (m *Partition) categorize() {
	n := m.n()
	m.categories = make([]VertexCategory, n)

	for v := 0; v < n; v++ {
		p := m.points[v]
		pr := m.points[m.prev(v)]
		nx := m.points[m.next(v)]

		prevBelow := isBelow(pr, p)
		nextBelow := isBelow(nx, p)
		convex := isConvexAngle(pr, p, nx)

		switch {
		case prevBelow && nextBelow && convex:
			m.categories[v] = Start
		case prevBelow && nextBelow && !convex:
			m.categories[v] = Split
		case !prevBelow && !nextBelow && convex:
			m.categories[v] = End
		case !prevBelow && !nextBelow && !convex:
			m.categories[v] = Merge
		default:
			m.categories[v] = Regular
		}
	}
}

// boundedFaces returns the index of every face in the mesh other than the
// unbounded exterior face, which Split never touches (see dcel.New: the
// unbounded face always stays at index 1).
func (m *Partition) boundedFaces() []int {
	var out []int
	for i := range m.mesh.Faces() {
		if i != 1 {
			out = append(out, i)
		}
	}
	return out
}

// faceVertices walks a face's boundary and returns its vertex indices in
// CCW order, starting from an arbitrary vertex on the boundary.
func (m *Partition) faceVertices(face int) ([]int, error) {
	f := m.mesh.Faces()[face]
	if f.Outer == -1 {
		return nil, fmt.Errorf("monotone: face %d has no outer boundary", face)
	}

	var out []int
	e := f.Outer
	for {
		out = append(out, m.mesh.Origin(e))
		e = m.mesh.HalfEdges()[e].Next
		if e == f.Outer {
			break
		}
		if len(out) > len(m.mesh.Vertices())+1 {
			return nil, fmt.Errorf("monotone: face %d boundary walk did not close", face)
		}
	}
	return out, nil
}
