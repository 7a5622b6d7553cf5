package perfectcut

import (
	"fmt"
	"log/slog"
	"math"
)

// Root finder defaults.
const (
	DefaultBisectIterations = 50
	DefaultBisectTolerance  = 1e-9
)

// BisectStep records one iteration of Bisect.
type BisectStep struct {
	Iteration int     // 0-based
	Mid       float64 // midpoint evaluated
	Value     float64 // f(Mid)
	HalfWidth float64 // half the interval width before the update
}

// BisectResult is the outcome of Bisect.
type BisectResult struct {
	Root  float64
	Steps []BisectStep

	// Exact is set when the loop stopped because |f| fell below the
	// tolerance at a midpoint or an interval end, rather than by running out
	// of iterations.
	Exact bool
}

// BisectOption configures Bisect.
type BisectOption func(*bisectOptions)

type bisectOptions struct {
	iterations int
	tolerance  float64
}

// WithMaxIterations caps the number of bisection steps.
func WithMaxIterations(n int) BisectOption {
	return func(o *bisectOptions) {
		o.iterations = n
	}
}

// WithTolerance sets the |f(mid)| threshold for stopping early. Zero
// disables the early stop unless a midpoint is an exact root.
func WithTolerance(eps float64) BisectOption {
	return func(o *bisectOptions) {
		o.tolerance = eps
	}
}

// Bisect finds a root of a continuous f in [a, b].
//
// f(a) and f(b) must have opposite signs, otherwise the error wraps
// ErrNoSignChange. An end where f is already within the tolerance of zero is
// returned at once. Each step halves the interval, keeping the half where
// the sign changes, and stops early when |f(mid)| drops below the
// tolerance. Unlike Search the number of steps therefore varies.
func Bisect(f func(float64) float64, a, b float64, opts ...BisectOption) (BisectResult, error) {
	o := bisectOptions{
		iterations: DefaultBisectIterations,
		tolerance:  DefaultBisectTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !isFinite(a) || !isFinite(b) || a > b {
		return BisectResult{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBracket, a, b)
	}
	if o.iterations < 0 {
		return BisectResult{}, fmt.Errorf("%w: %d", ErrInvalidIterations, o.iterations)
	}

	fa, fb := f(a), f(b)
	if !isFinite(fa) || !isFinite(fb) {
		return BisectResult{}, fmt.Errorf("%w: f(%v)=%v f(%v)=%v", ErrNotFinite, a, fa, b, fb)
	}
	switch {
	case math.Abs(fa) <= o.tolerance:
		return BisectResult{Root: a, Exact: true}, nil
	case math.Abs(fb) <= o.tolerance:
		return BisectResult{Root: b, Exact: true}, nil
	case (fa < 0) == (fb < 0):
		return BisectResult{}, fmt.Errorf("%w: f(%v)=%v f(%v)=%v", ErrNoSignChange, a, fa, b, fb)
	}

	res := BisectResult{Steps: make([]BisectStep, 0, o.iterations)}
	lo, hi, flo := a, b, fa
	log := Logger()

	for i := 0; i < o.iterations; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if !isFinite(fmid) {
			return res, fmt.Errorf("%w: f(%v)=%v", ErrNotFinite, mid, fmid)
		}
		res.Steps = append(res.Steps, BisectStep{
			Iteration: i,
			Mid:       mid,
			Value:     fmid,
			HalfWidth: (hi - lo) / 2,
		})
		log.Debug("perfectcut: bisect step",
			slog.Int("iteration", i),
			slog.Float64("mid", mid),
			slog.Float64("value", fmid))

		if math.Abs(fmid) < o.tolerance || fmid == 0 {
			res.Root = mid
			res.Exact = true
			return res, nil
		}
		if (flo < 0) != (fmid < 0) {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}

	res.Root = (lo + hi) / 2
	return res, nil
}
