package perfectcut

import (
	"fmt"
	"log/slog"
)

// Step is one bisection iteration as reported to an observer.
type Step struct {
	Iteration int     // 0-based
	Position  float64 // knife position evaluated
	Area      float64 // area kept at Position
	Error     float64 // Score of Area
	Min, Max  float64 // bracket after the update
}

// SearchResult is the outcome of Search.
//
// PositionHistory, ErrorHistory and AreaHistory are aligned by iteration
// and always have exactly as many entries as iterations were run.
type SearchResult struct {
	OptimalPosition float64
	PositionHistory []float64
	ErrorHistory    []float64
	AreaHistory     []float64

	// Min and Max are the final bracket; OptimalPosition is its midpoint.
	Min, Max float64

	Angle     float64
	TotalArea float64
}

// Iterations returns the number of iterations recorded.
func (r SearchResult) Iterations() int {
	return len(r.PositionHistory)
}

// FinalError returns the last recorded error, or false when no iteration
// ran.
func (r SearchResult) FinalError() (float64, bool) {
	if len(r.ErrorHistory) == 0 {
		return 0, false
	}
	return r.ErrorHistory[len(r.ErrorHistory)-1], true
}

// Search bisects the knife position at a fixed angle (degrees) toward the
// cut that keeps exactly half of shape's area.
//
// Kept area is assumed non-decreasing in position over the bracket. Every
// iteration evaluates the bracket midpoint, records position, error and
// area, then moves the lower end up when the kept area is below half and the
// upper end down otherwise. All iterations always run; there is no
// tolerance exit.
//
// The search never reports a convergence failure. If the bracket does not
// contain the half-area position the result converges onto a bracket end,
// and if the area were not monotone the answer could be a local one. In
// both cases exactly the requested number of iterations still run.
//
// Errors wrap ErrInvalidShape, ErrInvalidKnife, ErrInvalidBracket or
// ErrInvalidIterations and are reported before any iteration runs.
func Search(shape Polygon, angle float64, opts ...SearchOption) (SearchResult, error) {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := shape.Validate(); err != nil {
		return SearchResult{}, err
	}
	if !isFinite(angle) {
		return SearchResult{}, fmt.Errorf("%w: angle %v", ErrInvalidKnife, angle)
	}
	if !isFinite(o.min) || !isFinite(o.max) || o.min > o.max {
		return SearchResult{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBracket, o.min, o.max)
	}
	if o.iterations < 0 {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidIterations, o.iterations)
	}

	total := shape.Area()
	target := total / 2
	lo, hi := o.min, o.max

	res := SearchResult{
		PositionHistory: make([]float64, 0, o.iterations),
		ErrorHistory:    make([]float64, 0, o.iterations),
		AreaHistory:     make([]float64, 0, o.iterations),
		Angle:           angle,
		TotalArea:       total,
	}

	log := Logger()
	for i := 0; i < o.iterations; i++ {
		mid := (lo + hi) / 2
		area := cutArea(shape, NewKnife(mid, angle))
		e := score(area, total)

		res.PositionHistory = append(res.PositionHistory, mid)
		res.ErrorHistory = append(res.ErrorHistory, e)
		res.AreaHistory = append(res.AreaHistory, area)

		if area < target {
			lo = mid
		} else {
			hi = mid
		}

		log.Debug("perfectcut: search step",
			slog.Int("iteration", i),
			slog.Float64("position", mid),
			slog.Float64("area", area),
			slog.Float64("error", e))

		if o.observer != nil {
			o.observer(Step{
				Iteration: i,
				Position:  mid,
				Area:      area,
				Error:     e,
				Min:       lo,
				Max:       hi,
			})
		}
	}

	res.Min, res.Max = lo, hi
	res.OptimalPosition = (lo + hi) / 2

	log.Info("perfectcut: search done",
		slog.Float64("angle", angle),
		slog.Int("iterations", o.iterations),
		slog.Float64("position", res.OptimalPosition))

	return res, nil
}
