package blockpath

import (
	"math"
	"reflect"
	"testing"
)

// segmentEndpoints returns the endpoint of every drawing element, in order.
func segmentEndpoints(t *testing.T, p *Path) []Point {
	t.Helper()
	var pts []Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		case Arc:
			pts = append(pts, arcPoint(e.Center, e.Radius, e.EndAngle))
		default:
			t.Fatalf("unexpected element %T", elem)
		}
	}
	return pts
}

// segmentDeltas converts a path that starts at start into per-element
// relative displacements.
func segmentDeltas(t *testing.T, p *Path, start Point) []Point {
	t.Helper()
	var deltas []Point
	prev := start
	for _, pt := range segmentEndpoints(t, p) {
		deltas = append(deltas, pt.Sub(prev))
		prev = pt
	}
	return deltas
}

func startedPath(at Point) *Path {
	p := NewPath()
	p.MoveTo(at, false)
	return p
}

func TestAddNotch_LeftToRightScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotchWidth = 20
	cfg.NotchHeight = 4
	b := NewOutlineBuilder(cfg)

	start := Pt(100, 50)
	p := startedPath(start)
	b.AddNotch(p, LeftToRight)

	want := []Point{{X: 5, Y: 0}, {X: 6, Y: 4}, {X: 3, Y: 0}, {X: 6, Y: -4}}
	got := segmentDeltas(t, p, start)[1:] // skip the initial MoveTo
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notch deltas = %v, want %v", got, want)
	}

	if net := p.CurrentPoint().Sub(start); net != Pt(20, 0) {
		t.Errorf("net displacement = %v, want (20,0)", net)
	}
}

func TestAddNotch_NetDisplacement(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
	}{
		{"minimum width", 15, 4},
		{"default", 15, 0},
		{"wide", 42, 6},
		{"tall", 20, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.NotchWidth = tt.width
			cfg.NotchHeight = tt.height
			b := NewOutlineBuilder(cfg)

			start := Pt(10, 10)

			ltr := startedPath(start)
			b.AddNotch(ltr, LeftToRight)
			if net := ltr.CurrentPoint().Sub(start); net != Pt(tt.width, 0) {
				t.Errorf("left-to-right net = %v, want (%v,0)", net, tt.width)
			}

			rtl := startedPath(start)
			b.AddNotch(rtl, RightToLeft)
			if net := rtl.CurrentPoint().Sub(start); net != Pt(-tt.width, 0) {
				t.Errorf("right-to-left net = %v, want (-%v,0)", net, tt.width)
			}
		})
	}
}

func TestAddNotch_ReverseTraversal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotchWidth = 20
	cfg.NotchHeight = 4
	b := NewOutlineBuilder(cfg)

	start := Pt(30, 60)

	ltr := startedPath(start)
	b.AddNotch(ltr, LeftToRight)
	forward := append([]Point{start}, segmentEndpoints(t, ltr)[1:]...)

	// Trace the same trapezoid from its far end.
	rtl := startedPath(forward[len(forward)-1])
	b.AddNotch(rtl, RightToLeft)
	backward := append([]Point{forward[len(forward)-1]}, segmentEndpoints(t, rtl)[1:]...)

	for i := range forward {
		if got, want := backward[i], forward[len(forward)-1-i]; got != want {
			t.Errorf("vertex %d = %v, want %v (reverse of forward trace)", i, got, want)
		}
	}
}

func TestAddJaggedTeeth_FixedGeometry(t *testing.T) {
	start := Pt(200, 20)

	// The teeth are a collapsed-block marker of standard size, so the
	// geometry must not depend on the configuration.
	configs := []LayoutConfig{
		DefaultConfig(),
		{NotchWidth: 60, NotchHeight: 20, BlockCornerRadius: 1, PuzzleTabWidth: 30},
		{NotchWidth: 15},
	}

	want := []Point{{X: 8, Y: 0}, {X: 0, Y: 4}, {X: 8, Y: 4}, {X: -16, Y: 8}, {X: 8, Y: 0}}
	for _, cfg := range configs {
		p := startedPath(start)
		NewOutlineBuilder(cfg).AddJaggedTeeth(p)

		got := segmentDeltas(t, p, start)[1:]
		if !reflect.DeepEqual(got, want) {
			t.Errorf("config %+v: teeth deltas = %v, want %v", cfg, got, want)
		}
		if net := p.CurrentPoint().Sub(start); net != Pt(8, 16) {
			t.Errorf("config %+v: net = %v, want (8,16)", cfg, net)
		}
	}
}

func TestAddPuzzleTab_Geometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PuzzleTabWidth = 8
	b := NewOutlineBuilder(cfg)

	start := Pt(0, 0)
	p := startedPath(start)
	b.AddPuzzleTab(p)

	elems := p.Elements()
	if len(elems) != 4 { // MoveTo + LineTo + CubicTo + CubicTo
		t.Fatalf("expected 4 elements, got %d", len(elems))
	}

	lead, ok := elems[1].(LineTo)
	if !ok || lead.Point != Pt(0, 5) {
		t.Fatalf("lead-in = %#v, want LineTo (0,5)", elems[1])
	}

	c1, ok := elems[2].(CubicTo)
	if !ok {
		t.Fatalf("expected CubicTo, got %T", elems[2])
	}
	if c1.Control1 != Pt(0, 15) || c1.Control2 != Pt(-8, -3) || c1.Point != Pt(-8, 12.5) {
		t.Errorf("first curve = %+v, want c1 (0,15) c2 (-8,-3) end (-8,12.5)", c1)
	}

	c2, ok := elems[3].(CubicTo)
	if !ok {
		t.Fatalf("expected CubicTo, got %T", elems[3])
	}
	// Smooth curve: control1 is the previous exit control point reflected
	// about the join.
	wantC1 := c1.Point.Mul(2).Sub(c1.Control2)
	if c2.Control1 != wantC1 {
		t.Errorf("smooth control1 = %v, want reflection %v", c2.Control1, wantC1)
	}
	if c2.Control2 != Pt(0, 10) || c2.Point != Pt(0, 20) {
		t.Errorf("second curve = %+v, want c2 (0,10) end (0,20)", c2)
	}

	// The curves net (0,15); with the lead-in the segment nets (0,20) and
	// returns to the original vertical axis.
	if net := c2.Point.Sub(lead.Point); net != Pt(0, 15) {
		t.Errorf("curve net = %v, want (0,15)", net)
	}
	if net := p.CurrentPoint().Sub(start); net != Pt(0, PuzzleTabHeight) {
		t.Errorf("segment net = %v, want (0,%v)", net, float64(PuzzleTabHeight))
	}
}

func TestAddPuzzleTab_NegatedWidthMirrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PuzzleTabWidth = -cfg.PuzzleTabWidth // male tab, caller-selected polarity
	b := NewOutlineBuilder(cfg)

	p := startedPath(Pt(0, 0))
	b.AddPuzzleTab(p)

	c1 := p.Elements()[2].(CubicTo)
	if c1.Point != Pt(8, 12.5) || c1.Control2 != Pt(8, -3) {
		t.Errorf("negated width should mirror horizontally, got end %v c2 %v", c1.Point, c1.Control2)
	}
	if net := p.CurrentPoint(); net != Pt(0, PuzzleTabHeight) {
		t.Errorf("net = %v, want (0,%v)", net, float64(PuzzleTabHeight))
	}
}

func TestTopLeftCorner_Scenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlockCornerRadius = 8
	b := NewOutlineBuilder(cfg)

	origin := Pt(100, 100)
	p := startedPath(origin)

	b.MoveToTopLeftCornerStart(p)
	if got := p.CurrentPoint(); got != origin.Add(Pt(0, 8)) {
		t.Fatalf("corner start = %v, want %v", got, origin.Add(Pt(0, 8)))
	}

	b.AddTopLeftCorner(p)

	arc, ok := p.Elements()[2].(Arc)
	if !ok {
		t.Fatalf("expected Arc element, got %T", p.Elements()[2])
	}
	if arc.Center != origin.Add(Pt(8, 8)) {
		t.Errorf("arc center = %v, want %v", arc.Center, origin.Add(Pt(8, 8)))
	}
	if arc.Radius != 8 {
		t.Errorf("arc radius = %v, want 8", arc.Radius)
	}
	if arc.StartAngle != math.Pi || arc.EndAngle != 1.5*math.Pi || !arc.Clockwise {
		t.Errorf("arc sweep = %v..%v clockwise=%v, want 180..270 degrees clockwise",
			arc.StartAngle, arc.EndAngle, arc.Clockwise)
	}

	// The quarter circle lands on the top edge, cornerRadius right of the
	// pre-move point.
	end := p.CurrentPoint()
	want := origin.Add(Pt(8, 0))
	if end.Distance(want) > 1e-9 {
		t.Errorf("cursor after corner = %v, want %v", end, want)
	}
}

func TestOutlineBuilder_PureFunctions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotchWidth = 24
	b := NewOutlineBuilder(cfg)

	build := func() *Path {
		p := startedPath(Pt(5, 5))
		b.AddNotch(p, LeftToRight)
		b.AddPuzzleTab(p)
		b.AddJaggedTeeth(p)
		b.MoveToTopLeftCornerStart(p)
		b.AddTopLeftCorner(p)
		return p
	}

	first := build()
	second := build()
	if !reflect.DeepEqual(first.Elements(), second.Elements()) {
		t.Error("identical builder calls against fresh paths produced different command sequences")
	}
}
