package monotone

import (
	"slices"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/predicate"
)

// Triangulate triangulates every y-monotone face produced by MakeMonotone,
// per spec §4.4.3, appending every emitted diagonal to the mesh via
// dcel.DCEL.Split. MakeMonotone must be called first.
func (m *Partition) Triangulate() error {
	for _, face := range m.boundedFaces() {
		if err := m.triangulateFace(face); err != nil {
			return err
		}
	}
	return nil
}

func (m *Partition) triangulateFace(face int) error {
	vertices, err := m.faceVertices(face)
	if err != nil {
		return err
	}
	if len(vertices) < 3 {
		return nil
	}
	if len(vertices) == 3 {
		return nil // already a triangle; nothing to do
	}

	n := len(vertices)
	posOf := make(map[int]int, n)
	for i, v := range vertices {
		posOf[v] = i
	}

	sorted := append([]int(nil), vertices...)
	slices.SortFunc(sorted, func(a, b int) int {
		return m.points[a].Compare(m.points[b])
	})

	topPos := posOf[sorted[0]]
	bottomPos := posOf[sorted[n-1]]

	chainOf := make(map[int]int, n)
	pos := topPos
	for {
		chainOf[vertices[pos]] = 0
		if pos == bottomPos {
			break
		}
		pos = (pos + 1) % n
	}
	pos = (bottomPos + 1) % n
	for pos != topPos {
		chainOf[vertices[pos]] = 1
		pos = (pos + 1) % n
	}

	var faceDiagonals [][2]int
	emit := func(a, b int) {
		if a == b {
			return
		}
		faceDiagonals = append(faceDiagonals, [2]int{a, b})
	}

	stack := []int{sorted[0], sorted[1]}

	for i := 2; i < n-1; i++ {
		vi := sorted[i]
		top := stack[len(stack)-1]

		if chainOf[vi] != chainOf[top] {
			for j := len(stack) - 1; j > 0; j-- {
				emit(vi, stack[j])
			}
			last := stack[len(stack)-1]
			stack = []int{last, vi}
		} else {
			lastPopped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for len(stack) > 0 && diagonalVisible(m.points[vi], m.points[lastPopped], m.points[stack[len(stack)-1]], chainOf[vi] == 0) {
				lastPopped = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				emit(vi, lastPopped)
			}
			stack = append(stack, lastPopped, vi)
		}
	}

	bottom := sorted[n-1]
	for j := 1; j < len(stack)-1; j++ {
		emit(bottom, stack[j])
	}

	for _, d := range faceDiagonals {
		if !m.mesh.Split(d[0], d[1]) {
			return diagonalSplitError(d[0], d[1])
		}
	}
	m.triangulationDiagonals = append(m.triangulationDiagonals, faceDiagonals...)

	return nil
}

// diagonalVisible reports whether the diagonal from vi to candidate lies
// inside the monotone polygon, given the triangle formed by vi, the
// previously-popped vertex (top), and candidate (the new top of stack).
// onChain0 distinguishes which of the two monotone chains vi sits on, since
// the turn direction that signals visibility is mirrored between them.
func diagonalVisible(vi, top, candidate point.Point, onChain0 bool) bool {
	area := predicate.SignedArea(candidate, top, vi)
	if onChain0 {
		return area > 0
	}
	return area < 0
}
