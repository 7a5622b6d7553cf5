package perfectcut

import "math"

// minKnifeExtent is the half-size of the knife strip when the polygon is
// small. The strip grows with the polygon so it always behaves as a true
// half-plane.
const minKnifeExtent = 10.0

// Knife is the cutting half-plane. Before transformation it is the region
// x <= 0; it is translated by Position along x and then rotated by Angle
// degrees about the world origin. Because rotation comes second, changing
// Angle sweeps the cut line around the origin at a fixed offset, not around
// the shape's own center.
type Knife struct {
	Position float64
	Angle    float64 // degrees
}

// NewKnife returns the knife at the given offset and angle in degrees.
func NewKnife(position, angle float64) Knife {
	return Knife{Position: position, Angle: angle}
}

// Matrix returns the transform from knife space into world space:
// translate by Position, then rotate by Angle about the origin.
func (k Knife) Matrix() Matrix {
	return Rotate(radians(k.Angle)).Multiply(Translate(k.Position, 0))
}

// Normal returns the unit vector pointing away from the kept side.
func (k Knife) Normal() Point {
	sin, cos := math.Sincos(radians(k.Angle))
	return Point{X: cos, Y: sin}
}

// Contains reports whether p lies on the kept side of the knife
// (boundary included).
func (k Knife) Contains(p Point) bool {
	return p.Dot(k.Normal()) <= k.Position
}

// Polygon returns the knife as a finite strip
// [-extent, 0] x [-extent, extent] in knife space, mapped into world space.
func (k Knife) Polygon(extent float64) Polygon {
	m := k.Matrix()
	return NewPolygon(
		m.TransformPoint(Pt(-extent, -extent)),
		m.TransformPoint(Pt(-extent, extent)),
		m.TransformPoint(Pt(0, extent)),
		m.TransformPoint(Pt(0, -extent)),
	)
}

// Line returns the endpoints of the visible cut line, the knife boundary
// from (Position, -extent) to (Position, extent) rotated into world space.
func (k Knife) Line(extent float64) (Point, Point) {
	m := k.Matrix()
	return m.TransformPoint(Pt(0, -extent)), m.TransformPoint(Pt(0, extent))
}

// ExtentFor returns a strip half-size large enough to cover shape entirely
// on the kept side, so the finite strip acts as an infinite half-plane.
func (k Knife) ExtentFor(shape Polygon) float64 {
	return math.Max(minKnifeExtent, math.Abs(k.Position)+shape.Radius()+1)
}

// Span returns the range of p·Normal over the vertices of shape. The knife
// keeps all of shape when Position >= hi and none of it when
// Position <= lo.
func (k Knife) Span(shape Polygon) (lo, hi float64) {
	n := k.Normal()
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range shape.pts {
		d := v.Dot(n)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
