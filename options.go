package perfectcut

import "math/rand/v2"

// Search defaults.
const (
	DefaultMinPosition = -4.0
	DefaultMaxPosition = 4.0
	DefaultIterations  = 20
)

// SearchOption configures a Search call.
//
// Example:
//
//	res, err := perfectcut.Search(shape, 30,
//	    perfectcut.WithBracket(-3, 3),
//	    perfectcut.WithIterations(8),
//	)
type SearchOption func(*searchOptions)

type searchOptions struct {
	min, max   float64
	iterations int
	observer   func(Step)
}

func defaultSearchOptions() searchOptions {
	return searchOptions{
		min:        DefaultMinPosition,
		max:        DefaultMaxPosition,
		iterations: DefaultIterations,
	}
}

// WithBracket sets the initial search interval [min, max]. It must contain
// the optimal position; otherwise the search converges onto a bracket end.
func WithBracket(min, max float64) SearchOption {
	return func(o *searchOptions) {
		o.min = min
		o.max = max
	}
}

// WithIterations sets the number of bisection steps. Each step halves the
// bracket, so the final width is the initial width / 2^n. Zero is allowed
// and returns the midpoint of the initial bracket.
func WithIterations(n int) SearchOption {
	return func(o *searchOptions) {
		o.iterations = n
	}
}

// WithObserver registers fn to be called synchronously after every
// iteration, for progress display. The observer cannot stop the search.
func WithObserver(fn func(Step)) SearchOption {
	return func(o *searchOptions) {
		o.observer = fn
	}
}

// Shape defaults for the irregular generator.
const (
	DefaultChaosVertices = 300
	DefaultBaseRadius    = 2.0
	DefaultMinRadius     = 0.5
)

// ShapeOption configures BuildShape and Chaos.
type ShapeOption func(*shapeOptions)

type shapeOptions struct {
	vertices   int
	baseRadius float64
	minRadius  float64
	rng        *rand.Rand
}

func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		vertices:   DefaultChaosVertices,
		baseRadius: DefaultBaseRadius,
		minRadius:  DefaultMinRadius,
	}
}

// WithVertices sets the vertex count of an irregular shape. Values below 3
// are raised to 3.
func WithVertices(n int) ShapeOption {
	return func(o *shapeOptions) {
		o.vertices = max(n, 3)
	}
}

// WithBaseRadius sets the mean radius of an irregular shape.
func WithBaseRadius(r float64) ShapeOption {
	return func(o *shapeOptions) {
		o.baseRadius = r
	}
}

// WithMinRadius sets the lower clamp of the irregular radius. The clamp
// keeps the outline away from the origin so the polar outline stays
// simple. Non-positive values are ignored.
func WithMinRadius(r float64) ShapeOption {
	return func(o *shapeOptions) {
		if r > 0 {
			o.minRadius = r
		}
	}
}

// WithRand sets the random source for irregular shapes. Passing the same
// seeded source reproduces the same shape.
func WithRand(rng *rand.Rand) ShapeOption {
	return func(o *shapeOptions) {
		o.rng = rng
	}
}
