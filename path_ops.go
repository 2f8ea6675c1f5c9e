package blockpath

import "math"

// Path operations for flattening, bounding box computation, and containment
// testing. Renderers consume Flatten; hit-testing of block shapes uses
// Contains on the same path that was used to draw them.

// DefaultFlattenTolerance is the maximum distance between a curve and its
// polyline approximation when no tolerance is given.
const DefaultFlattenTolerance = 0.1

// Flatten converts the path to polylines, one per subpath, with curves and
// arcs approximated to within tolerance. Closed subpaths repeat their first
// point at the end.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}

	var result [][]Point
	var sub []Point
	var current, start Point

	flush := func() {
		if len(sub) > 1 {
			result = append(result, sub)
		}
		sub = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			sub = append(sub, e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			sub = append(sub, e.Point)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, func(pt Point) {
				sub = append(sub, pt)
			})
			current = e.Point
		case Arc:
			arcStart, segs := arcToCubics(e)
			if arcStart.Distance(current) > arcJoinEpsilon {
				sub = append(sub, arcStart)
			}
			prev := arcStart
			for _, c := range segs {
				flattenCubic(prev, c.Control1, c.Control2, c.Point, tolerance, func(pt Point) {
					sub = append(sub, pt)
				})
				prev = c.Point
			}
			current = arcPoint(e.Center, e.Radius, e.EndAngle)
		case Close:
			if current != start {
				sub = append(sub, start)
			}
			current = start
		}
	}
	flush()
	return result
}

// flattenCubic recursively subdivides a cubic Bezier until flat enough,
// emitting every point after p0.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, fn func(pt Point)) {
	// Flatness test: control point deviation from the chord, after
	// Roger Willcocks. Flat when max deviation <= tolerance.
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	if math.Max(ux*ux+uy*uy, vx*vx+vy*vy) <= 16*tolerance*tolerance {
		fn(p3)
		return
	}

	// de Casteljau subdivision at t=0.5
	ab := p0.Lerp(p1, 0.5)
	bc := p1.Lerp(p2, 0.5)
	cd := p2.Lerp(p3, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	mid := abc.Lerp(bcd, 0.5)

	flattenCubic(p0, ab, abc, mid, tolerance, fn)
	flattenCubic(mid, bcd, cd, p3, tolerance, fn)
}

// Bounds returns the axis-aligned bounding box of the path as min and max
// corners. Curves are bounded by their control hulls, arcs by their
// flattened approximation, so the box is tight for polygonal outlines and
// slightly conservative across curved motifs.
func (p *Path) Bounds() (Point, Point) {
	minPt := Point{X: math.MaxFloat64, Y: math.MaxFloat64}
	maxPt := Point{X: -math.MaxFloat64, Y: -math.MaxFloat64}
	found := false

	expand := func(pt Point) {
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Y = math.Min(minPt.Y, pt.Y)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Y = math.Max(maxPt.Y, pt.Y)
		found = true
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			expand(e.Point)
		case LineTo:
			expand(e.Point)
		case CubicTo:
			expand(e.Control1)
			expand(e.Control2)
			expand(e.Point)
		case Arc:
			arcStart, segs := arcToCubics(e)
			expand(arcStart)
			for _, c := range segs {
				expand(c.Control1)
				expand(c.Control2)
				expand(c.Point)
			}
		case Close:
		}
	}

	if !found {
		return Point{}, Point{}
	}
	return minPt, maxPt
}

// Contains tests if a point is inside the path using the non-zero fill
// rule, treating every subpath as closed. Block editors use this for
// hit-testing against the same outline they rendered.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Winding returns the winding number of the path around a point.
func (p *Path) Winding(pt Point) int {
	var winding int
	for _, sub := range p.Flatten(DefaultFlattenTolerance) {
		n := len(sub)
		for i := 0; i < n; i++ {
			winding += lineWinding(sub[i], sub[(i+1)%n], pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}
