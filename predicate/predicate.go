// Package predicate implements the numerically robust geometric primitives
// that every higher layer of geomkernel is built on: orientation, collinearity,
// segment intersection, angles, perpendicular bisectors, parabolas (used by
// the Voronoi beach line), and circumcircles (used by Voronoi circle events).
//
// Every function here is pure and side-effect-free; none of them panic on
// degenerate input. Where the natural answer is a classification rather than
// a yes/no question, the function returns a rich enum value instead of
// collapsing the result to a bool.
package predicate

import (
	"math"

	geomkernel "github.com/tomkrieg108/geomkernel"
	"github.com/tomkrieg108/geomkernel/numeric"
	"github.com/tomkrieg108/geomkernel/point"
)

// RelativePosition classifies the position of a point c relative to a
// directed segment a->b.
type RelativePosition uint8

const (
	// Left indicates c lies to the left of the directed line a->b.
	Left RelativePosition = iota
	// Right indicates c lies to the right of the directed line a->b.
	Right
	// Origin indicates c coincides with a.
	Origin
	// Destination indicates c coincides with b.
	Destination
	// Between indicates c is collinear with a->b and strictly between them.
	Between
	// Behind indicates c is collinear with a->b, strictly before a.
	Behind
	// Beyond indicates c is collinear with a->b, strictly beyond b.
	Beyond
)

// String returns a human-readable name for the RelativePosition.
func (r RelativePosition) String() string {
	switch r {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Origin:
		return "Origin"
	case Destination:
		return "Destination"
	case Between:
		return "Between"
	case Behind:
		return "Behind"
	case Beyond:
		return "Beyond"
	default:
		return "Unknown"
	}
}

// SignedArea returns twice the signed area of the triangle (a,b,c).
// A counterclockwise ordering yields a positive result, clockwise yields
// negative, and collinear points yield (approximately) zero.
func SignedArea(a, b, c point.Point) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
}

// Orientation classifies point c's position relative to the directed
// segment a->b, distinguishing the seven cases a sweep or DCEL diagonal
// check needs: a simple left/right turn, coincidence with an endpoint, or
// one of the three collinear sub-cases (behind a, between a and b, or
// beyond b).
func Orientation(a, b, c point.Point) RelativePosition {
	area := SignedArea(a, b, c)
	eps := geomkernel.GetEpsilon() * (a.DistanceToPoint(b) + a.DistanceToPoint(c) + 1)

	if area > eps {
		return Left
	}
	if area < -eps {
		return Right
	}
	if a.Eq(c) {
		return Origin
	}
	if b.Eq(c) {
		return Destination
	}

	ab := b.Sub(a)
	ac := c.Sub(a)
	if ab.X()*ac.X() < 0 || ab.Y()*ac.Y() < 0 {
		return Behind
	}
	if ab.DistanceSquaredToPoint(point.Origin()) < ac.DistanceSquaredToPoint(point.Origin()) {
		return Beyond
	}
	return Between
}

// Collinear reports whether a, b, and c lie on a common line (within the
// global epsilon tolerance), including the degenerate case of coincident
// points.
func Collinear(a, b, c point.Point) bool {
	eps := geomkernel.GetEpsilon() * (a.DistanceToPoint(b) + a.DistanceToPoint(c) + 1)
	return math.Abs(SignedArea(a, b, c)) <= eps
}

// xor reports whether exactly one of p, q is true.
func xor(p, q bool) bool {
	return p != q
}

// IntersectionExists reports whether segments (a,b) and (c,d) touch at all:
// they cross in their interiors, an endpoint of one lies on the other, or
// endpoints coincide.
func IntersectionExists(a, b, c, d point.Point) bool {
	oc := Orientation(a, b, c)
	od := Orientation(a, b, d)
	oa := Orientation(c, d, a)
	ob := Orientation(c, d, b)

	if oc == Between || od == Between || oa == Between || ob == Between {
		return true
	}
	if oc == Origin || oc == Destination || od == Origin || od == Destination {
		return true
	}
	if oa == Origin || oa == Destination || ob == Origin || ob == Destination {
		return true
	}

	return xor(oc == Left, od == Left) && xor(oa == Left, ob == Left)
}

// StrictIntersectionExists reports whether segments (a,b) and (c,d) cross
// transversally in their interiors; unlike IntersectionExists it is false
// for touching endpoints or collinear overlaps.
func StrictIntersectionExists(a, b, c, d point.Point) bool {
	oc := Orientation(a, b, c)
	od := Orientation(a, b, d)
	oa := Orientation(c, d, a)
	ob := Orientation(c, d, b)

	return xor(oc == Left, od == Left) && xor(oa == Left, ob == Left)
}

// ComputeIntersection computes the intersection point of the infinite lines
// through a->b and c->d, returning ok=false if the lines are parallel or
// coincident. The result is not clamped to either segment; callers wanting a
// segment-bounded answer should additionally check containment.
func ComputeIntersection(a, b, c, d point.Point) (p point.Point, ok bool) {
	ab := b.Sub(a)
	cd := d.Sub(c)

	// Normal to CD.
	nx, ny := cd.Y(), -cd.X()
	denominator := nx*ab.X() + ny*ab.Y()

	if numeric.FloatEquals(denominator, 0, geomkernel.GetEpsilon()) {
		return point.Point{}, false
	}

	ac := c.Sub(a)
	numerator := nx*ac.X() + ny*ac.Y()
	t := numerator / denominator

	return point.New(a.X()+t*ab.X(), a.Y()+t*ab.Y()), true
}

// Angle returns the signed angle in radians from vector a->b to vector b->c,
// in the range [-pi, pi]. Positive values indicate a counterclockwise turn.
func Angle(a, b, c point.Point) float64 {
	u := b.Sub(a)
	v := c.Sub(b)
	dot := u.X()*v.X() + u.Y()*v.Y()
	det := u.X()*v.Y() - u.Y()*v.X()
	return math.Atan2(det, dot)
}

// Bisector returns a point on, and the direction of, the perpendicular
// bisector of segment (a,b): the returned point is the segment's midpoint
// and the returned vector is perpendicular to a->b. ok is false if a and b
// coincide.
func Bisector(a, b point.Point) (origin, direction point.Point, ok bool) {
	if a.Eq(b) {
		return point.Point{}, point.Point{}, false
	}
	mid := point.New((a.X()+b.X())/2, (a.Y()+b.Y())/2)
	ab := b.Sub(a)
	perp := point.New(-ab.Y(), ab.X())
	return mid, perp, true
}

// Parabola represents the curve traced by points equidistant from a focus
// point and a horizontal directrix line y = directrix: y = a*x^2 + b*x + c.
// It is the building block of Fortune's algorithm's beach line.
type Parabola struct {
	A, B, C     float64
	degenerate  bool
	focus       point.Point
	directrix   float64
}

// NewParabola constructs the parabola of points equidistant from focus and
// the horizontal line y=directrix. If focus.Y() equals directrix, the
// "parabola" degenerates to a vertical ray at x=focus.X(); IsDegenerate
// reports this case.
func NewParabola(focus point.Point, directrix float64) Parabola {
	p := Parabola{focus: focus, directrix: directrix}
	if numeric.FloatEquals(focus.Y(), directrix, geomkernel.GetEpsilon()) {
		p.degenerate = true
		return p
	}
	denom := 2 * (focus.Y() - directrix)
	p.A = 1 / denom
	p.B = -2 * focus.X() * p.A
	p.C = (focus.X()*focus.X()+focus.Y()*focus.Y()-directrix*directrix)*p.A
	return p
}

// IsDegenerate reports whether the parabola's focus lies on the directrix,
// in which case Y is undefined everywhere except at the focus's x.
func (p Parabola) IsDegenerate() bool {
	return p.degenerate
}

// Y evaluates the parabola at x. Calling Y on a degenerate parabola returns
// math.NaN().
func (p Parabola) Y(x float64) float64 {
	if p.degenerate {
		return math.NaN()
	}
	return p.A*x*x + p.B*x + p.C
}

// Circumcircle computes the center and radius of the circle passing through
// a, b, and c. ok is false if the three points are collinear (no finite
// circumcircle exists).
func Circumcircle(a, b, c point.Point) (center point.Point, radius float64, ok bool) {
	ax, ay := a.X(), a.Y()
	bx, by := b.X(), b.Y()
	cx, cy := c.X(), c.Y()

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if numeric.FloatEquals(d, 0, geomkernel.GetEpsilon()) {
		return point.Point{}, 0, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d

	center = point.New(ux, uy)
	radius = center.DistanceToPoint(a)
	return center, radius, true
}
