package blockpath

import (
	"fmt"
	"math"
)

// Direction selects the traversal direction of an outline edge. Notches are
// approached from either side depending on which edge of the silhouette is
// being traced.
type Direction int

const (
	// LeftToRight traces an edge with increasing x.
	LeftToRight Direction = iota
	// RightToLeft traces an edge with decreasing x.
	RightToLeft
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left_to_right"
	case RightToLeft:
		return "right_to_left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Notch geometry. A notch is a trapezoidal step: a flat lead-in, a diagonal
// down, a short flat, and a diagonal back up. The two diagonals and the flat
// between them consume MinNotchWidth units; the rest of the configured width
// is lead-in.
const (
	notchSlopeWidth = 6
	notchFlatWidth  = 3
)

// Jagged teeth geometry. The teeth mark a truncated (collapsed) block and
// have a standard size independent of block scale, so the dimensions are
// constants rather than configuration.
const (
	jaggedToothRun   = 8
	jaggedToothDrop  = 4
	jaggedSweepBack  = 16
	jaggedSweepDrop  = 8
	jaggedTeethSpanX = 8
	jaggedTeethSpanY = 16
)

// Puzzle tab geometry. The tab is a straight lead-in followed by two cubic
// curves that bow out by the configured tab width and return to the edge.
const (
	puzzleTabLeadIn    = 5
	puzzleTabBowDepth  = 10
	puzzleTabCurveSpan = 7.5
	// PuzzleTabHeight is the total vertical extent of a puzzle tab
	// segment: the lead-in plus both curves.
	PuzzleTabHeight = puzzleTabLeadIn + 2*puzzleTabCurveSpan
)

// OutlineBuilder appends block silhouette motifs to a path.
//
// Each method is pure geometry: it appends commands relative to the path's
// current point and performs no validation. Validate the configuration with
// LayoutConfig.Validate before building; a sub-minimum notch width produces
// a degenerate (negative-length) lead-in rather than an error.
type OutlineBuilder struct {
	config LayoutConfig
}

// NewOutlineBuilder creates a builder for the given configuration snapshot.
func NewOutlineBuilder(config LayoutConfig) *OutlineBuilder {
	return &OutlineBuilder{config: config}
}

// Config returns the builder's configuration snapshot.
func (b *OutlineBuilder) Config() LayoutConfig {
	return b.config
}

// AddNotch appends a connection notch as four relative line segments
// forming a trapezoidal step. The same trapezoid is traced from the
// opposite end when dir is RightToLeft, so the silhouette is identical
// regardless of traversal direction. Net displacement is
// (±NotchWidth, 0).
func (b *OutlineBuilder) AddNotch(p *Path, dir Direction) {
	leadIn := b.config.NotchWidth - MinNotchWidth
	h := b.config.NotchHeight

	if dir == LeftToRight {
		p.LineTo(Pt(leadIn, 0), true)
		p.LineTo(Pt(notchSlopeWidth, h), true)
		p.LineTo(Pt(notchFlatWidth, 0), true)
		p.LineTo(Pt(notchSlopeWidth, -h), true)
	} else {
		p.LineTo(Pt(-notchSlopeWidth, h), true)
		p.LineTo(Pt(-notchFlatWidth, 0), true)
		p.LineTo(Pt(-notchSlopeWidth, -h), true)
		p.LineTo(Pt(-leadIn, 0), true)
	}
}

// AddJaggedTeeth appends the truncated-block indicator: a fixed zig-zag of
// five relative line segments. Net displacement is always
// (jaggedTeethSpanX, jaggedTeethSpanY) = (8, 16), independent of
// configuration.
func (b *OutlineBuilder) AddJaggedTeeth(p *Path) {
	p.LineTo(Pt(jaggedToothRun, 0), true)
	p.LineTo(Pt(0, jaggedToothDrop), true)
	p.LineTo(Pt(jaggedToothRun, jaggedToothDrop), true)
	p.LineTo(Pt(-jaggedSweepBack, jaggedSweepDrop), true)
	p.LineTo(Pt(jaggedToothRun, 0), true)
}

// AddPuzzleTab appends an interlocking tab traced top to bottom: a straight
// lead-in, a cubic curve bowing out by the configured tab width, and a
// mirrored smooth curve closing the tab back onto the original vertical
// axis. The two curves net (0, 15); with the lead-in the whole segment nets
// (0, PuzzleTabHeight).
//
// A positive tab width bows toward -x (a female receptacle on a left-facing
// edge); callers negate the configured width to trace the male counterpart.
func (b *OutlineBuilder) AddPuzzleTab(p *Path) {
	w := b.config.PuzzleTabWidth

	p.LineTo(Pt(0, puzzleTabLeadIn), true)
	p.CubicTo(
		Pt(-w, puzzleTabCurveSpan),
		Pt(0, puzzleTabBowDepth),
		Pt(-w, -8),
		true,
	)
	p.SmoothCurveTo(
		Pt(w, puzzleTabCurveSpan),
		Pt(w, -2.5),
		true,
	)
}

// MoveToTopLeftCornerStart repositions the cursor, without drawing, to the
// canonical start of a rounded-rectangle trace: BlockCornerRadius units
// below the current point, on the left edge.
func (b *OutlineBuilder) MoveToTopLeftCornerStart(p *Path) {
	p.MoveTo(Pt(0, b.config.BlockCornerRadius), true)
}

// AddTopLeftCorner appends the quarter-circle arc joining the left edge to
// the top edge: centered BlockCornerRadius units right of the current
// point, sweeping clockwise from 180 to 270 degrees. The cursor ends on the
// top edge, BlockCornerRadius right of and above the current point.
func (b *OutlineBuilder) AddTopLeftCorner(p *Path) {
	r := b.config.BlockCornerRadius
	p.ArcTo(Pt(r, 0), r, math.Pi, 1.5*math.Pi, true, true)
}
