package main

import (
	"math/rand/v2"

	"github.com/gogpu/perfectcut"
)

// newSession builds the starting round. When knife is nil a regular shape
// starts with the knife at the origin and an irregular one starts as a
// random chaos round; otherwise the given knife is used.
func newSession(kind perfectcut.ShapeKind, rng *rand.Rand, knife *perfectcut.Knife) (perfectcut.Session, error) {
	if kind == perfectcut.Irregular && knife == nil {
		return perfectcut.RandomChaosSession(rng)
	}

	shape, err := perfectcut.BuildShape(kind, perfectcut.WithRand(rng))
	if err != nil {
		return perfectcut.Session{}, err
	}
	s, err := perfectcut.NewSession(shape)
	if err != nil {
		return perfectcut.Session{}, err
	}
	if knife != nil {
		s = s.WithKnife(knife.Position, knife.Angle)
	}
	return s, nil
}
