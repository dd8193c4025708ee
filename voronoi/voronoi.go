// Package voronoi builds the Voronoi diagram of a set of sites with
// Fortune's sweep-line algorithm, clipped to a caller-supplied bounding
// box. It is grounded on the original Voronoi_V2 design's RBTree-backed
// beach line (here rbtree.Tree, with a stateful sweep-aware comparator),
// generalized from a single monolithic implementation into a beach line
// (beach.go), an event-driven sweep (fortune.go), and bounding-box
// termination (clip.go).
package voronoi

import (
	"math"
	"sort"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/rectangle"
)

// Edge is one bisector edge of the diagram, between the cells of sites
// Left and Right, running from A to B.
type Edge struct {
	Left, Right int
	A, B        point.Point
}

// Face is a site's Voronoi cell, described by its boundary points in
// angular order around the site. This is a simplification of a full
// half-edge face walk: since every Voronoi cell is convex, sorting its
// edges' endpoints by angle around the site always recovers the correct
// boundary order without needing to stitch bounding-box edges into the
// cell's loop.
type Face struct {
	Site     int
	Boundary []point.Point
}

// Diagram is a Voronoi diagram under construction, or already built, for
// Sites. New only records the sites; Construct runs the sweep and clips
// the result to a bounding box, after which Vertices, Edges and Faces
// report the outcome.
type Diagram struct {
	Sites  []point.Point
	Bounds rectangle.Rectangle

	edges    []Edge
	vertices []point.Point
}

// New prepares a Diagram for sites. Sites must be distinct; duplicate
// sites produce an arc that never develops breakpoints and are silently
// absorbed into whichever duplicate was processed first. Call Construct
// to actually run the sweep.
func New(sites []point.Point) *Diagram {
	return &Diagram{Sites: sites}
}

// Construct runs Fortune's algorithm over the diagram's sites and clips
// the result to box, populating Vertices, Edges and Faces. It returns d
// so callers can chain voronoi.New(sites).Construct(box).
func (d *Diagram) Construct(box rectangle.Rectangle) *Diagram {
	d.Bounds = box
	if len(d.Sites) < 2 {
		return d
	}

	b := newBuilder(d.Sites)
	b.run()
	b.clipDiagram(box)

	for _, e := range b.edges {
		if e.hasA && e.hasB {
			d.edges = append(d.edges, Edge{Left: e.left, Right: e.right, A: e.a, B: e.b})
		}
	}
	d.vertices = dedupePoints(b.vertices)
	return d
}

// Edges returns the diagram's bounded bisector edges. Empty until
// Construct has been called.
func (d *Diagram) Edges() []Edge { return d.edges }

// Vertices returns the diagram's Voronoi vertices: the circumcenters
// where three or more cells meet, deduplicated. Empty until Construct
// has been called.
func (d *Diagram) Vertices() []point.Point { return d.vertices }

func dedupePoints(pts []point.Point) []point.Point {
	out := make([]point.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, existing := range out {
			if existing.Eq(p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// Faces groups the diagram's edges by site and returns each cell's
// boundary points in angular order around the site.
func (d *Diagram) Faces() []Face {
	bySite := make(map[int][]point.Point)
	addPoint := func(site int, p point.Point) {
		for _, existing := range bySite[site] {
			if existing.Eq(p) {
				return
			}
		}
		bySite[site] = append(bySite[site], p)
	}
	for _, e := range d.edges {
		addPoint(e.Left, e.A)
		addPoint(e.Left, e.B)
		addPoint(e.Right, e.A)
		addPoint(e.Right, e.B)
	}

	faces := make([]Face, 0, len(bySite))
	for site, pts := range bySite {
		center := d.Sites[site]
		sort.Slice(pts, func(i, j int) bool {
			ai := math.Atan2(pts[i].Y()-center.Y(), pts[i].X()-center.X())
			aj := math.Atan2(pts[j].Y()-center.Y(), pts[j].X()-center.X())
			return ai < aj
		})
		faces = append(faces, Face{Site: site, Boundary: pts})
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i].Site < faces[j].Site })
	return faces
}
