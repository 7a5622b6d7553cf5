package perfectcut

import "errors"

var (
	// ErrInvalidShape is returned when a polygon has fewer than 3 vertices,
	// non-finite coordinates, or zero area. Scoring and searching need a
	// strictly positive total area.
	ErrInvalidShape = errors.New("perfectcut: invalid shape")

	// ErrInvalidKnife is returned when a knife position or angle is not
	// finite.
	ErrInvalidKnife = errors.New("perfectcut: invalid knife")

	// ErrInvalidBracket is returned when a search bracket is reversed or
	// not finite.
	ErrInvalidBracket = errors.New("perfectcut: invalid search bracket")

	// ErrInvalidIterations is returned for a negative iteration count.
	ErrInvalidIterations = errors.New("perfectcut: invalid iteration count")

	// ErrNoSignChange is returned by Bisect when f has the same sign at both
	// ends of the interval, so a root is not guaranteed inside it.
	ErrNoSignChange = errors.New("perfectcut: function does not change sign on the interval")

	// ErrNotFinite is returned by Bisect when f yields NaN or Inf.
	ErrNotFinite = errors.New("perfectcut: function value is not finite")

	// ErrNoRandSource is returned when an irregular shape is requested
	// without a random source.
	ErrNoRandSource = errors.New("perfectcut: irregular shape needs a random source")
)
