package perfectcut

import (
	"fmt"
	"math"
)

// areaEpsilon is the smallest area treated as non-degenerate.
const areaEpsilon = 1e-12

// Polygon is an immutable closed ring of vertices. The closing edge from the
// last vertex back to the first is implicit. Vertex order defines the
// boundary, so the ring must be simple for area and intersection results to
// be meaningful.
//
// The zero value is an empty polygon with zero area.
type Polygon struct {
	pts []Point
}

// NewPolygon creates a polygon from the given vertices. The slice is copied.
// A repeated closing vertex equal to the first one is dropped.
//
// NewPolygon never fails; use Validate before scoring or searching.
func NewPolygon(pts ...Point) Polygon {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Polygon{pts: cp}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.pts)
}

// At returns the i-th vertex.
func (p Polygon) At(i int) Point {
	return p.pts[i]
}

// Points returns a copy of the vertices.
func (p Polygon) Points() []Point {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)
	return cp
}

// IsEmpty reports whether the polygon has no vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.pts) == 0
}

// SignedArea returns the shoelace area of the ring.
// Positive for counter-clockwise rings (y up), negative for clockwise.
func (p Polygon) SignedArea() float64 {
	return SignedArea(p.pts)
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// SignedArea computes the shoelace area of a closed ring given by pts.
// Fewer than 3 points or collinear points yield 0.
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := pts[n-1]
	for _, cur := range pts {
		sum += prev.Cross(cur)
		prev = cur
	}
	return sum / 2
}

// Centroid returns the area centroid of the polygon. For degenerate polygons
// it falls back to the vertex average.
func (p Polygon) Centroid() Point {
	n := len(p.pts)
	if n == 0 {
		return Point{}
	}
	a := p.SignedArea()
	if math.Abs(a) < areaEpsilon {
		var c Point
		for _, v := range p.pts {
			c = c.Add(v)
		}
		return c.Mul(1 / float64(n))
	}
	var cx, cy float64
	prev := p.pts[n-1]
	for _, cur := range p.pts {
		f := prev.Cross(cur)
		cx += (prev.X + cur.X) * f
		cy += (prev.Y + cur.Y) * f
		prev = cur
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Bounds returns the axis-aligned bounding box as min and max corners.
func (p Polygon) Bounds() (lo, hi Point) {
	if len(p.pts) == 0 {
		return Point{}, Point{}
	}
	lo, hi = p.pts[0], p.pts[0]
	for _, v := range p.pts[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// Radius returns the largest distance from the origin to any vertex.
func (p Polygon) Radius() float64 {
	var r float64
	for _, v := range p.pts {
		r = math.Max(r, v.Length())
	}
	return r
}

// Transform returns a new polygon with m applied to every vertex.
func (p Polygon) Transform(m Matrix) Polygon {
	out := make([]Point, len(p.pts))
	for i, v := range p.pts {
		out[i] = m.TransformPoint(v)
	}
	return Polygon{pts: out}
}

// Validate checks that the polygon can be scored: at least 3 finite
// vertices and a strictly positive area. The returned error wraps
// ErrInvalidShape.
func (p Polygon) Validate() error {
	if len(p.pts) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidShape, len(p.pts))
	}
	for i, v := range p.pts {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d is not finite", ErrInvalidShape, i)
		}
	}
	if a := p.Area(); a < areaEpsilon {
		return fmt.Errorf("%w: zero area", ErrInvalidShape)
	}
	return nil
}
