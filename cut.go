package perfectcut

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/gogpu/perfectcut/internal/clip"
)

// CutResult is the part of a polygon kept by a knife.
type CutResult struct {
	// Pieces holds the disjoint pieces of the intersection. It is empty when
	// the knife misses the polygon and has several entries when the knife
	// line crosses a non-convex polygon more than twice.
	Pieces []Polygon

	// Area is the summed area of all pieces.
	Area float64
}

// IsEmpty reports whether the knife kept nothing.
func (r CutResult) IsEmpty() bool {
	return len(r.Pieces) == 0
}

// Cut intersects shape with the knife at the given position and angle
// (degrees) and returns the kept pieces. Empty and multi-piece results are
// ordinary outcomes, not errors.
//
// An error wrapping ErrInvalidShape is returned only when shape has fewer
// than 3 vertices or a non-finite coordinate, and one wrapping
// ErrInvalidKnife when position or angle is not finite. A zero-area ring
// cuts to an empty result.
func Cut(shape Polygon, position, angle float64) (CutResult, error) {
	if err := checkCut(shape, position, angle); err != nil {
		return CutResult{}, err
	}

	if shape.Area() < areaEpsilon {
		return CutResult{}, nil
	}

	k := NewKnife(position, angle)

	// Far from the shape the strip would need an extent that no longer
	// resolves the shape in float64, so settle those cases without clipping.
	switch lo, hi := k.Span(shape); {
	case position <= lo:
		return CutResult{}, nil
	case position >= hi:
		return CutResult{Pieces: []Polygon{shape}, Area: shape.Area()}, nil
	}

	subject := polyclip.Polygon{toContour(shape)}
	knife := polyclip.Polygon{toContour(k.Polygon(k.ExtentFor(shape)))}

	var res CutResult
	for _, c := range subject.Construct(polyclip.INTERSECTION, knife) {
		if len(c) < 3 {
			continue
		}
		piece := fromContour(c)
		a := piece.Area()
		if a < areaEpsilon {
			continue
		}
		res.Pieces = append(res.Pieces, piece)
		res.Area += a
	}
	return res, nil
}

// CutArea returns only the area kept by the knife. It clips the ring
// against the exact half-plane without building pieces, which makes it the
// cheaper choice inside search loops. It agrees with Cut(...).Area up to
// rounding.
func CutArea(shape Polygon, position, angle float64) (float64, error) {
	if err := checkCut(shape, position, angle); err != nil {
		return 0, err
	}
	return cutArea(shape, NewKnife(position, angle)), nil
}

// cutArea assumes validated input.
func cutArea(shape Polygon, k Knife) float64 {
	n := k.Normal()
	h := clip.HalfPlane{Normal: clip.Pt(n.X, n.Y), Offset: k.Position}

	ring := make([]clip.Point, len(shape.pts))
	for i, v := range shape.pts {
		ring[i] = clip.Pt(v.X, v.Y)
	}
	return clip.Area(clip.ClipRing(ring, h))
}

func checkCut(shape Polygon, position, angle float64) error {
	if len(shape.pts) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidShape, len(shape.pts))
	}
	for i, v := range shape.pts {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d is not finite", ErrInvalidShape, i)
		}
	}
	if !isFinite(position) || !isFinite(angle) {
		return fmt.Errorf("%w: position %v angle %v", ErrInvalidKnife, position, angle)
	}
	return nil
}

func toContour(p Polygon) polyclip.Contour {
	c := make(polyclip.Contour, len(p.pts))
	for i, v := range p.pts {
		c[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	return c
}

func fromContour(c polyclip.Contour) Polygon {
	pts := make([]Point, len(c))
	for i, v := range c {
		pts[i] = Point{X: v.X, Y: v.Y}
	}
	return NewPolygon(pts...)
}
