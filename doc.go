// Package perfectcut measures how evenly a straight knife splits a polygon.
//
// # Overview
//
// A [Knife] is a half-plane given by an offset (position) and an angle in
// degrees. [Cut] intersects a [Polygon] with the knife, [Score] turns the
// kept area into a signed percentage error against an exact half, and
// [Search] bisects the knife position at a fixed angle until the kept area
// converges on half of the total, recording every step.
//
// # Quick Start
//
//	shape := perfectcut.Pentagon()
//
//	piece, err := perfectcut.Cut(shape, 0, 0)
//	if err != nil {
//	    return err
//	}
//	pct, _ := perfectcut.Score(piece.Area, shape.Area())
//
//	res, err := perfectcut.Search(shape, 0, perfectcut.WithIterations(20))
//	// res.OptimalPosition, res.ErrorHistory, ...
//
// # Knife Geometry
//
// Before transformation the knife keeps x <= 0. It is translated by the
// position along x and then rotated about the world origin, so the angle
// sweeps the cut line around (0,0) at a fixed offset. Kept area grows with
// position for every angle.
//
// # Coordinate System
//
//   - Y increases up; positive signed area is counter-clockwise
//   - Knife angles are in degrees, [Matrix] rotations in radians
//
// # State
//
// All functions are pure and safe to call from many goroutines on the same
// polygon. Game state lives in a caller-owned [Session] value.
package perfectcut
