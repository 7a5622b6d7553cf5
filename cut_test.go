package perfectcut

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uShape is a 3x3 square with a 1x2 notch cut from the top middle.
// Its area is 7.
func uShape() Polygon {
	return NewPolygon(
		Pt(0, 0), Pt(3, 0), Pt(3, 3), Pt(2, 3),
		Pt(2, 1), Pt(1, 1), Pt(1, 3), Pt(0, 3),
	)
}

// randomConvex returns a convex polygon whose vertices lie on a circle.
func randomConvex(rng *rand.Rand) Polygon {
	n := 3 + rng.IntN(10)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	slices.Sort(angles)

	center := Pt(rng.Float64()*2-1, rng.Float64()*2-1)
	r := 0.5 + 2*rng.Float64()
	pts := make([]Point, n)
	for i, a := range angles {
		pts[i] = center.Add(Pt(math.Cos(a), math.Sin(a)).Mul(r))
	}
	return NewPolygon(pts...)
}

func TestCut_PentagonAtOrigin(t *testing.T) {
	shape := Pentagon()

	res, err := Cut(shape, 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Pieces, 1)

	assert.InDelta(t, 24.5, shape.Area(), 1e-12)
	assert.InDelta(t, 347.0/30.0, res.Area, 1e-9)

	pct, err := Score(res.Area, shape.Area())
	require.NoError(t, err)
	assert.InDelta(t, -5.57823, pct, 1e-5)
}

func TestCut_Extremes(t *testing.T) {
	shape := Pentagon()

	miss, err := Cut(shape, -10, 0)
	require.NoError(t, err)
	assert.True(t, miss.IsEmpty())
	assert.Zero(t, miss.Area)

	all, err := Cut(shape, 10, 0)
	require.NoError(t, err)
	require.Len(t, all.Pieces, 1)
	assert.InDelta(t, shape.Area(), all.Area, 1e-9)
}

func TestCut_MultiplePieces(t *testing.T) {
	// Keeping y >= 2 cuts off both prongs of the U.
	res, err := Cut(uShape(), -2, -90)
	require.NoError(t, err)

	assert.Len(t, res.Pieces, 2)
	assert.InDelta(t, 2.0, res.Area, 1e-9)

	var sum float64
	for _, p := range res.Pieces {
		assert.InDelta(t, 1.0, p.Area(), 1e-9)
		sum += p.Area()
	}
	assert.InDelta(t, res.Area, sum, 1e-12, "Area is the sum of piece areas")
}

func TestCut_Idempotent(t *testing.T) {
	shape := Chaos(rand.New(rand.NewPCG(7, 7)))

	a, err := Cut(shape, 0.3, 47)
	require.NoError(t, err)
	b, err := Cut(shape, 0.3, 47)
	require.NoError(t, err)

	assert.Equal(t, a.Area, b.Area)
	assert.Equal(t, len(a.Pieces), len(b.Pieces))
}

func TestCut_Errors(t *testing.T) {
	_, err := Cut(NewPolygon(Pt(0, 0), Pt(1, 1)), 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidShape), "got %v", err)

	_, err = Cut(Pentagon(), math.NaN(), 0)
	assert.True(t, errors.Is(err, ErrInvalidKnife), "got %v", err)

	_, err = Cut(Pentagon(), 0, math.Inf(-1))
	assert.True(t, errors.Is(err, ErrInvalidKnife), "got %v", err)

	_, err = CutArea(Polygon{}, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidShape), "got %v", err)
}

func TestCut_DegenerateShape(t *testing.T) {
	line := NewPolygon(Pt(-1, -1), Pt(0, 0), Pt(1, 1))

	res, err := Cut(line, 0, 0)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	area, err := CutArea(line, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, area)
}

func TestCutArea_MatchesCut(t *testing.T) {
	shapes := map[string]Polygon{
		"pentagon": Pentagon(),
		"u":        uShape(),
		"chaos":    Chaos(rand.New(rand.NewPCG(3, 11))),
	}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for _, angle := range []float64{0, 17.5, 60, 90, 133, 180, 251} {
				for _, pos := range []float64{-3.3, -1.1, 0.2, 1.7, 2.9} {
					full, err := Cut(shape, pos, angle)
					require.NoError(t, err)
					fast, err := CutArea(shape, pos, angle)
					require.NoError(t, err)
					assert.InDelta(t, full.Area, fast, 1e-7, "pos %v angle %v", pos, angle)
				}
			}
		})
	}
}

func TestCutArea_MonotoneForConvexShapes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for trial := 0; trial < 200; trial++ {
		shape := randomConvex(rng)
		angle := rng.Float64()*360 - 180

		prev := -1.0
		for pos := -6.0; pos <= 6.0; pos += 0.125 {
			area, err := CutArea(shape, pos, angle)
			require.NoError(t, err)
			if area < prev-1e-9 {
				t.Fatalf("trial %d angle %v: area dropped from %v to %v at position %v",
					trial, angle, prev, area, pos)
			}
			prev = area
		}
		assert.InDelta(t, shape.Area(), prev, 1e-9, "trial %d: far right keeps everything", trial)
	}
}

func TestCutArea_QuarterOfSquare(t *testing.T) {
	sq := NewPolygon(Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1))

	// The diagonal through the origin splits the square in half at any
	// multiple of 45 degrees.
	for _, angle := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		area, err := CutArea(sq, 0, angle)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, area, 1e-9, "angle %v", angle)
	}

	area, err := CutArea(sq, 0.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, area, 1e-12)
}

func TestCut_FarPositions(t *testing.T) {
	shapes := map[string]Polygon{
		"pentagon": Pentagon(),
		"chaos":    Chaos(rand.New(rand.NewPCG(13, 21))),
	}
	positions := []float64{-1e300, -1e17, -1e6, -50, 50, 1e6, 1e16, 1e17, 1e300}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for _, angle := range []float64{0, 37, 90, 211} {
				for _, pos := range positions {
					full, err := Cut(shape, pos, angle)
					require.NoError(t, err)
					fast, err := CutArea(shape, pos, angle)
					require.NoError(t, err)
					assert.InDelta(t, fast, full.Area, 1e-9, "pos %v angle %v", pos, angle)

					if pos > 0 {
						require.Len(t, full.Pieces, 1, "pos %v angle %v", pos, angle)
						assert.InDelta(t, shape.Area(), full.Area, 1e-9)
					} else {
						assert.True(t, full.IsEmpty(), "pos %v angle %v", pos, angle)
					}
				}
			}
		})
	}
}

func TestKnifeSpan(t *testing.T) {
	lo, hi := NewKnife(0, 0).Span(Pentagon())
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 3.0, hi)

	lo, hi = NewKnife(0, 90).Span(Pentagon())
	assert.InDelta(t, -3.0, lo, 1e-12)
	assert.InDelta(t, 3.0, hi, 1e-12)
}
