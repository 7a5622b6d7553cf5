package perfectcut

import (
	"fmt"
	"math"
)

// Score returns the percentage by which cutArea misses half of totalArea:
//
//	((cutArea - totalArea/2) / (totalArea/2)) * 100
//
// The result is signed. Negative means the kept piece is smaller than half,
// positive means it is larger, and 0 is a perfect split. Search compares
// areas with the same sign, so "closer to 0 is better" holds everywhere.
//
// totalArea must be finite and strictly positive; otherwise Score returns
// an error wrapping ErrInvalidShape instead of NaN or Inf.
func Score(cutArea, totalArea float64) (float64, error) {
	if !isFinite(totalArea) || totalArea <= 0 {
		return 0, fmt.Errorf("%w: total area %v", ErrInvalidShape, totalArea)
	}
	return score(cutArea, totalArea), nil
}

func score(cutArea, totalArea float64) float64 {
	target := totalArea / 2
	return (cutArea - target) / target * 100
}

// Tier is the feedback band for a score.
type Tier int

// Feedback bands, best first.
const (
	TierPerfect Tier = iota
	TierSuper
	TierGood
	TierUnbalanced
	TierVeryUnbalanced
)

// tierLimits are the exclusive upper bounds of |score| for each tier
// except the last.
var tierLimits = [...]float64{1, 2, 5, 10}

// Grade returns the feedback tier for a score. Only the magnitude counts.
func Grade(score float64) Tier {
	s := math.Abs(score)
	for i, limit := range tierLimits {
		if s < limit {
			return Tier(i)
		}
	}
	return TierVeryUnbalanced
}

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect cut"
	case TierSuper:
		return "super"
	case TierGood:
		return "good attempt"
	case TierUnbalanced:
		return "unbalanced split"
	case TierVeryUnbalanced:
		return "very unbalanced"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}
