package perfectcut

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

// ShapeKind selects a shape for BuildShape.
type ShapeKind int

const (
	// Regular is the fixed five-vertex brownie.
	Regular ShapeKind = iota
	// Irregular is a randomly generated "chaos" outline.
	Irregular
)

// String returns the kind name used on the command line.
func (k ShapeKind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Irregular:
		return "irregular"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind parses "regular" or "irregular".
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "regular", "pentagon":
		return Regular, nil
	case "irregular", "chaos":
		return Irregular, nil
	}
	return 0, fmt.Errorf("perfectcut: unknown shape kind %q", s)
}

// BuildShape returns a shape of the given kind. Irregular shapes require
// WithRand; Regular ignores all options.
func BuildShape(kind ShapeKind, opts ...ShapeOption) (Polygon, error) {
	switch kind {
	case Regular:
		return Pentagon(), nil
	case Irregular:
		o := defaultShapeOptions()
		for _, opt := range opts {
			opt(&o)
		}
		if o.rng == nil {
			return Polygon{}, ErrNoRandSource
		}
		return chaos(o), nil
	}
	return Polygon{}, fmt.Errorf("perfectcut: unknown shape kind %v", kind)
}

// Pentagon returns the reference brownie:
// (-2,-2) (1,-3) (3,0) (2,3) (-3,2). Its area is 24.5.
func Pentagon() Polygon {
	return NewPolygon(
		Pt(-2, -2),
		Pt(1, -3),
		Pt(3, 0),
		Pt(2, 3),
		Pt(-3, 2),
	)
}

// Chaos generates an irregular outline from rng. The same seeded source
// yields the same shape. A nil rng falls back to a source given with
// WithRand; with neither, Chaos panics with ErrNoRandSource. Use BuildShape
// to get the error returned instead.
func Chaos(rng *rand.Rand, opts ...ShapeOption) Polygon {
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if rng != nil {
		o.rng = rng
	}
	if o.rng == nil {
		panic(ErrNoRandSource)
	}
	return chaos(o)
}

// chaos builds a star-shaped polar outline around the origin:
//
//	r(t) = base + a1*sin(f1*t + p1) + a2*sin(lobes*t + p2) + noise
//
// with r clamped to minRadius, then rotates it about its centroid. A polar
// outline with strictly positive radius never crosses itself.
func chaos(o shapeOptions) Polygon {
	rng := o.rng
	n := o.vertices

	lowAmp := uniform(rng, 0.2, 0.5) * o.baseRadius / DefaultBaseRadius
	lowFreq := float64(1 + rng.IntN(2))
	lowPhase := uniform(rng, 0, 2*math.Pi)

	lobes := float64(4 + rng.IntN(5)) // 4..8
	lobeAmp := uniform(rng, 0.1, 0.3) * o.baseRadius / DefaultBaseRadius
	lobePhase := uniform(rng, 0, 2*math.Pi)

	noise := 0.04 * o.baseRadius / DefaultBaseRadius
	rotation := uniform(rng, 0, 2*math.Pi)

	Logger().Debug("perfectcut: chaos shape",
		slog.Int("vertices", n),
		slog.Float64("lowAmp", lowAmp),
		slog.Float64("lobes", lobes),
		slog.Float64("lobeAmp", lobeAmp),
		slog.Float64("rotation", rotation))

	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		r := o.baseRadius +
			lowAmp*math.Sin(lowFreq*t+lowPhase) +
			lobeAmp*math.Sin(lobes*t+lobePhase) +
			uniform(rng, -noise, noise)
		r = math.Max(r, o.minRadius)
		sin, cos := math.Sincos(t)
		pts[i] = Point{X: r * cos, Y: r * sin}
	}

	shape := NewPolygon(pts...)
	return shape.Transform(RotateAbout(rotation, shape.Centroid()))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
