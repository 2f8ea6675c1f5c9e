package blockpath

import "math"

// PathElement represents a single element in a path.
// Coordinates are stored absolute; relative arguments are resolved against
// the current point when the element is appended.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Arc draws a circular arc around Center from StartAngle to EndAngle
// (radians, 0 = +x, increasing toward +y). Clockwise selects the sweep
// direction on a y-down screen.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

func (Arc) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path accumulates drawing commands for one block outline.
//
// Every append operation takes a relative flag; relative coordinates are
// offsets from the current point, the cursor every command advances. The
// exit control point of the last cubic is tracked explicitly so that
// SmoothCurveTo can reflect it deterministically.
//
// A Path is not safe for concurrent use; confine one build sequence to one
// goroutine.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	lastCtrl Point // Exit control point of the last cubic
	smooth   bool  // lastCtrl is valid (previous element was a cubic)
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// resolve converts a possibly-relative point to absolute coordinates.
func (p *Path) resolve(pt Point, relative bool) Point {
	if relative {
		return p.current.Add(pt)
	}
	return pt
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point, relative bool) {
	pt = p.resolve(pt, relative)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.smooth = false
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point, relative bool) {
	pt = p.resolve(pt, relative)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.smooth = false
}

// CubicTo draws a cubic Bezier curve to end with control points c1 and c2.
// With relative set, all three points are offsets from the current point.
func (p *Path) CubicTo(end, c1, c2 Point, relative bool) {
	c1 = p.resolve(c1, relative)
	c2 = p.resolve(c2, relative)
	end = p.resolve(end, relative)
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    end,
	})
	p.current = end
	p.lastCtrl = c2
	p.smooth = true
}

// SmoothCurveTo draws a cubic Bezier curve whose first control point is the
// reflection of the previous cubic's exit control point about the current
// point. If the previous element was not a cubic, the first control point is
// the current point itself.
func (p *Path) SmoothCurveTo(end, c2 Point, relative bool) {
	c1 := p.current
	if p.smooth {
		c1 = p.current.Mul(2).Sub(p.lastCtrl)
	}
	c2 = p.resolve(c2, relative)
	end = p.resolve(end, relative)
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    end,
	})
	p.current = end
	p.lastCtrl = c2
	p.smooth = true
}

// ArcTo draws a circular arc of the given radius around center, sweeping
// from startAngle to endAngle (radians). The cursor advances to the arc's
// end point; no connecting line is drawn from the current point to the
// arc's start.
func (p *Path) ArcTo(center Point, radius, startAngle, endAngle float64, clockwise, relative bool) {
	center = p.resolve(center, relative)
	p.elements = append(p.elements, Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	})
	p.current = arcPoint(center, radius, endAngle)
	p.smooth = false
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.smooth = false
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.smooth = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.lastCtrl = p.lastCtrl
	result.smooth = p.smooth
	return result
}

// Transform returns a copy of the path with the transformation applied to
// all points. Arcs are expanded to cubic Bezier segments first so that
// non-uniform transforms remain exact.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point), false)
			current = e.Point
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point), false)
			current = e.Point
		case CubicTo:
			result.CubicTo(
				m.TransformPoint(e.Point),
				m.TransformPoint(e.Control1),
				m.TransformPoint(e.Control2),
				false,
			)
			current = e.Point
		case Arc:
			start, segs := arcToCubics(e)
			if start.Distance(current) > arcJoinEpsilon {
				result.LineTo(m.TransformPoint(start), false)
			}
			for _, c := range segs {
				result.CubicTo(
					m.TransformPoint(c.Point),
					m.TransformPoint(c.Control1),
					m.TransformPoint(c.Control2),
					false,
				)
			}
			current = arcPoint(e.Center, e.Radius, e.EndAngle)
		case Close:
			result.Close()
		}
	}
	return result
}

// arcJoinEpsilon absorbs the trig rounding between a cursor and the computed
// start point of an arc that begins exactly at it.
const arcJoinEpsilon = 1e-9

// arcPoint returns the point on a circle at the given angle.
func arcPoint(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// arcToCubics approximates an arc with cubic Bezier segments of at most 90
// degrees each. It returns the arc's start point and the segments.
func arcToCubics(a Arc) (Point, []CubicTo) {
	const twoPi = 2 * math.Pi

	sweep := a.EndAngle - a.StartAngle
	if a.Clockwise {
		// On a y-down screen, increasing angle sweeps clockwise.
		for sweep < 0 {
			sweep += twoPi
		}
	} else {
		for sweep > 0 {
			sweep -= twoPi
		}
	}

	start := arcPoint(a.Center, a.Radius, a.StartAngle)
	if sweep == 0 {
		return start, nil
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep) / maxAngle))
	angleStep := sweep / float64(numSegments)

	segs := make([]CubicTo, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		a1 := a.StartAngle + float64(i)*angleStep
		a2 := a1 + angleStep
		segs = append(segs, arcSegment(a.Center, a.Radius, a1, a2))
	}
	return start, segs
}

// arcSegment approximates a single arc segment (<=90 degrees) with one
// cubic Bezier. The control point distance follows the standard formula for
// cubic approximation of circular arcs.
func arcSegment(center Point, r, a1, a2 float64) CubicTo {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := center.X + r*cos1
	y1 := center.Y + r*sin1
	x2 := center.X + r*cos2
	y2 := center.Y + r*sin2

	return CubicTo{
		Control1: Point{X: x1 - alpha*r*sin1, Y: y1 + alpha*r*cos1},
		Control2: Point{X: x2 + alpha*r*sin2, Y: y2 - alpha*r*cos2},
		Point:    Point{X: x2, Y: y2},
	}
}
