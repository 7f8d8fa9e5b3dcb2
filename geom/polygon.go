package geom

// DedupeEpsilon is the minimum distance between consecutive path points.
// Pointer sampling during a freehand drag emits near-duplicate points;
// anything closer than this is collapsed before further processing.
const DedupeEpsilon = 0.5

// NormalizePolygon cleans a raw freehand path into a usable polygon.
//
// Paths with fewer than 3 points are returned unchanged; the caller must
// treat them as "no selection" rather than an error. Otherwise the path is
// deduplicated (consecutive points closer than DedupeEpsilon collapse into
// the first of the run) and self-intersections are removed in a single
// greedy pass: for every intersecting pair of non-adjacent edges, the
// later edge's starting vertex is dropped.
//
// The pass is intentionally not repeated. Inputs with nested crossings can
// still produce a self-intersecting result; downstream consumers accept
// that. Concavity is preserved — this is not a convex hull.
//
// If deduplication leaves fewer than 3 points, the original path is
// returned unchanged. If crossing removal would leave fewer than 3, the
// deduplicated point set is returned instead; the result never collapses
// below a triangle once the input had one.
func NormalizePolygon(p Path) Path {
	if p.PointCount() < 3 {
		return p
	}
	deduped := collapseJitter(p)
	if deduped.PointCount() < 3 {
		return p
	}
	return removeCrossings(deduped)
}

// collapseJitter drops consecutive points closer than DedupeEpsilon to the
// last kept point. The first and last points are never compared against
// each other; the closing edge is handled by polygon closure, not here.
func collapseJitter(p Path) Path {
	n := p.PointCount()
	out := make(Path, 0, len(p))
	out = append(out, p[0], p[1])
	lastX, lastY := p[0], p[1]
	for i := 1; i < n; i++ {
		pt := p.At(i)
		if distSq(pt.X, pt.Y, lastX, lastY) < DedupeEpsilon*DedupeEpsilon {
			continue
		}
		out = append(out, pt.X, pt.Y)
		lastX, lastY = pt.X, pt.Y
	}
	return out
}

// removeCrossings performs the single-pass greedy self-intersection
// removal. Edge i runs from point i to point (i+1) mod n, so the closing
// edge participates. All marks are computed against the incoming point
// set before any vertex is removed.
func removeCrossings(p Path) Path {
	n := p.PointCount()
	drop := make([]bool, n)
	for i := 0; i < n; i++ {
		a1 := p.At(i)
		a2 := p.At((i + 1) % n)
		for j := i + 1; j < n; j++ {
			if adjacentEdges(i, j, n) {
				continue
			}
			b1 := p.At(j)
			b2 := p.At((j + 1) % n)
			if SegmentsIntersect(a1, a2, b1, b2) {
				drop[j] = true
			}
		}
	}

	kept := make(Path, 0, len(p))
	for i := 0; i < n; i++ {
		if drop[i] {
			continue
		}
		pt := p.At(i)
		kept = append(kept, pt.X, pt.Y)
	}
	if kept.PointCount() < 3 {
		return p
	}
	return kept
}

// adjacentEdges reports whether edges i and j (i < j) share a vertex.
// Edge 0 and edge n-1 are adjacent through the polygon closure.
func adjacentEdges(i, j, n int) bool {
	return j == i+1 || (i == 0 && j == n-1)
}

// SegmentsIntersect reports whether segments a1-a2 and b1-b2 properly
// cross. It uses the orientation-sign test with strict inequalities, so
// collinear overlaps and segments that merely touch at an endpoint do not
// count as intersecting.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient returns the cross product (b-a) x (c-a): positive when c lies to
// the left of the directed line a->b, negative to the right, zero when
// collinear.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// PointInPolygon reports whether p lies inside the polygon using even-odd
// ray casting. The polygon is implicitly closed. For an axis-aligned
// boundary the test is half-open: points on the left or top edge are
// inside, points on the right or bottom edge are outside (a consequence
// of the strict crossing comparison).
func PointInPolygon(p Point, poly Path) bool {
	n := poly.PointCount()
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := poly.At(i)
		pj := poly.At(j)
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
