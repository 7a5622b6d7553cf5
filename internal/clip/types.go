// Package clip provides half-plane clipping for polygon rings.
package clip

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// HalfPlane is the closed region of points p with p·Normal <= Offset.
type HalfPlane struct {
	Normal Point
	Offset float64
}

// Distance returns the signed distance-like value p·Normal - Offset.
// Non-positive values are inside. It is a true distance only for a
// unit Normal.
func (h HalfPlane) Distance(p Point) float64 {
	return p.X*h.Normal.X + p.Y*h.Normal.Y - h.Offset
}
