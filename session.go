package perfectcut

import (
	"math/rand/v2"
)

// DefaultAutoLockIterations is the iteration count used for live
// re-centering of the knife while the angle changes.
const DefaultAutoLockIterations = 8

// Session is the state of one game round: the shape, the knife the player
// has set, and the last search. It is a plain value owned by the caller.
// Methods never modify the receiver; they return an updated copy.
type Session struct {
	Shape     Polygon
	TotalArea float64
	Knife     Knife

	// LastSearch is the most recent search result, or nil once the knife
	// moved since it was computed.
	LastSearch *SearchResult
}

// Evaluation is the score of the current knife.
type Evaluation struct {
	CutArea float64
	Error   float64
	Tier    Tier
}

// NewSession starts a round on shape with the knife at position 0, angle 0.
// The shape must pass Validate.
func NewSession(shape Polygon) (Session, error) {
	if err := shape.Validate(); err != nil {
		return Session{}, err
	}
	return Session{Shape: shape, TotalArea: shape.Area()}, nil
}

// RandomChaosSession starts a round on a chaos shape drawn from rng, with
// a random knife angle in [0, 180] and the knife parked at the low end of
// the default bracket.
func RandomChaosSession(rng *rand.Rand, opts ...ShapeOption) (Session, error) {
	s, err := NewSession(Chaos(rng, opts...))
	if err != nil {
		return Session{}, err
	}
	s.Knife = NewKnife(DefaultMinPosition, uniform(rng, 0, 180))
	return s, nil
}

// WithKnife returns the session with the knife moved. Any previous search
// result is dropped because it no longer matches the knife.
func (s Session) WithKnife(position, angle float64) Session {
	s.Knife = NewKnife(position, angle)
	s.LastSearch = nil
	return s
}

// Evaluate scores the current knife.
func (s Session) Evaluate() (Evaluation, error) {
	area, err := CutArea(s.Shape, s.Knife.Position, s.Knife.Angle)
	if err != nil {
		return Evaluation{}, err
	}
	e, err := Score(area, s.TotalArea)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{CutArea: area, Error: e, Tier: Grade(e)}, nil
}

// RunSearch searches at the session's knife angle and stores the result in
// the returned session. The knife itself is not moved.
func (s Session) RunSearch(opts ...SearchOption) (Session, SearchResult, error) {
	res, err := Search(s.Shape, s.Knife.Angle, opts...)
	if err != nil {
		return s, SearchResult{}, err
	}
	s.LastSearch = &res
	return s, res, nil
}

// AutoLock runs a short search at the current angle and moves the knife to
// the position found. Non-positive iterations use
// DefaultAutoLockIterations.
func (s Session) AutoLock(iterations int, opts ...SearchOption) (Session, error) {
	if iterations <= 0 {
		iterations = DefaultAutoLockIterations
	}
	opts = append(opts[:len(opts):len(opts)], WithIterations(iterations))
	res, err := Search(s.Shape, s.Knife.Angle, opts...)
	if err != nil {
		return s, err
	}
	s.Knife.Position = res.OptimalPosition
	s.LastSearch = nil
	return s, nil
}
