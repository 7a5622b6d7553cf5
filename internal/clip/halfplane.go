package clip

// ClipRing clips a closed ring against h using the Sutherland-Hodgman
// rule and returns the clipped ring. For a non-convex ring the boundary
// may cross the half-plane edge several times; the result is then a single
// ring whose separate lobes are joined by zero-width bridges along the edge.
// Bridges enclose no area, so Area of the result is still exact.
//
// Returns nil when nothing of the ring lies inside h.
func ClipRing(ring []Point, h HalfPlane) []Point {
	n := len(ring)
	if n == 0 {
		return nil
	}

	out := make([]Point, 0, n+2)
	prev := ring[n-1]
	prevD := h.Distance(prev)
	inside := 0

	for _, cur := range ring {
		curD := h.Distance(cur)
		switch {
		case curD <= 0 && prevD <= 0:
			out = append(out, cur)
		case curD <= 0:
			// Entering: emit the crossing, then the vertex.
			out = append(out, prev.Lerp(cur, prevD/(prevD-curD)), cur)
		case prevD <= 0:
			// Leaving: emit only the crossing.
			out = append(out, prev.Lerp(cur, prevD/(prevD-curD)))
		}
		if curD <= 0 {
			inside++
		}
		prev, prevD = cur, curD
	}

	if inside == 0 {
		return nil
	}
	return out
}

// Area returns the absolute shoelace area of a closed ring.
func Area(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := ring[n-1]
	for _, cur := range ring {
		sum += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
