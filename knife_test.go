package perfectcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnifeMatrix_TranslatesBeforeRotating(t *testing.T) {
	// The boundary point (0,0) in knife space lands at Position along the
	// rotated x axis, i.e. the line keeps its offset from the world origin.
	k := NewKnife(1, 90)
	got := k.Matrix().TransformPoint(Pt(0, 0))
	if !pointsNear(got, Pt(0, 1), 1e-12) {
		t.Errorf("boundary origin = %v, want (0, 1)", got)
	}
}

func TestKnifeContains(t *testing.T) {
	tests := []struct {
		name string
		k    Knife
		p    Point
		want bool
	}{
		{"left of vertical line", NewKnife(0, 0), Pt(-1, 5), true},
		{"right of vertical line", NewKnife(0, 0), Pt(1, 5), false},
		{"on the line", NewKnife(2, 0), Pt(2, -3), true},
		{"below horizontal line", NewKnife(1, 90), Pt(7, 0.5), true},
		{"above horizontal line", NewKnife(1, 90), Pt(7, 1.5), false},
		{"flipped", NewKnife(0, 180), Pt(1, 0), true},
		{"diagonal", NewKnife(0, 45), Pt(1, -2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.Contains(tt.p); got != tt.want {
				t.Errorf("%+v.Contains(%v) = %v, want %v", tt.k, tt.p, got, tt.want)
			}
		})
	}
}

func TestKnifePolygon_MatchesHalfPlane(t *testing.T) {
	for _, angle := range []float64{0, 30, 90, 135, 180, 275} {
		k := NewKnife(0.75, angle)
		strip := k.Polygon(10)

		assert.InDelta(t, 200.0, strip.Area(), 1e-9, "angle %v", angle)
		for i := 0; i < strip.Len(); i++ {
			v := strip.At(i)
			assert.LessOrEqual(t, v.Dot(k.Normal()), k.Position+1e-9, "angle %v vertex %d", angle, i)
		}
	}
}

func TestKnifeLine(t *testing.T) {
	a, b := NewKnife(2, 0).Line(10)
	assert.True(t, pointsNear(a, Pt(2, -10), 1e-12), "a = %v", a)
	assert.True(t, pointsNear(b, Pt(2, 10), 1e-12), "b = %v", b)

	a, b = NewKnife(2, 90).Line(10)
	assert.True(t, pointsNear(a, Pt(10, 2), 1e-9), "a = %v", a)
	assert.True(t, pointsNear(b, Pt(-10, 2), 1e-9), "b = %v", b)
}

func TestKnifeExtentFor(t *testing.T) {
	assert.Equal(t, minKnifeExtent, NewKnife(0, 0).ExtentFor(Pentagon()))

	big := Pentagon().Transform(Matrix{A: 10, E: 10})
	k := NewKnife(-3, 0)
	assert.InDelta(t, 3+big.Radius()+1, k.ExtentFor(big), 1e-12)
	assert.Greater(t, big.Radius(), 30.0)
}
