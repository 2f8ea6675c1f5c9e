package blockpath

// notchInsetX is the distance from a block's left edge to the start of its
// connection notches.
const notchInsetX = 15

// BlockShape describes one block silhouette for AddBlockOutline. Lengths
// are in the same units as the layout configuration, relative to the
// block's top-left corner.
type BlockShape struct {
	// Width and Height are the block's nominal extents. They must leave
	// room for the configured motifs (notch inset plus notch width on the
	// horizontal edges, corner radius and tab height on the left edge);
	// like the motif operations, AddBlockOutline does not validate them.
	Width  float64
	Height float64

	// PreviousConnection cuts a female notch into the top edge.
	PreviousConnection bool

	// NextConnection adds a male notch under the bottom edge.
	NextConnection bool

	// OutputConnection adds a male puzzle tab off the left edge.
	OutputConnection bool

	// Collapsed replaces the top of the right edge with jagged teeth,
	// marking a truncated block.
	Collapsed bool

	// InputConnectionYs lists the top offsets, in ascending order, of
	// female puzzle-tab sockets cut into the right edge. Ignored for
	// collapsed blocks.
	InputConnectionYs []float64
}

// AddBlockOutline traces a complete closed block silhouette clockwise from
// the path's current point, which becomes the block's top-left corner:
// rounded top-left corner, top edge, right edge, bottom edge, left edge.
// The subpath is closed back to the corner start.
func (b *OutlineBuilder) AddBlockOutline(p *Path, s BlockShape) {
	r := b.config.BlockCornerRadius
	origin := p.CurrentPoint()
	at := func(x, y float64) Point {
		return Pt(origin.X+x, origin.Y+y)
	}

	b.MoveToTopLeftCornerStart(p)
	b.AddTopLeftCorner(p)

	// Top edge, left to right.
	if s.PreviousConnection {
		p.LineTo(at(notchInsetX, 0), false)
		b.AddNotch(p, LeftToRight)
	}
	p.LineTo(at(s.Width, 0), false)

	// Right edge, top to bottom. A collapsed block keeps its right edge at
	// the teeth's horizontal offset, marking the truncation.
	if s.Collapsed {
		b.AddJaggedTeeth(p)
		p.LineTo(at(s.Width+jaggedTeethSpanX, s.Height), false)
	} else {
		for _, y := range s.InputConnectionYs {
			p.LineTo(at(s.Width, y), false)
			// A positive tab width bows the socket into the block interior.
			b.AddPuzzleTab(p)
		}
		p.LineTo(at(s.Width, s.Height), false)
	}

	// Bottom edge, right to left.
	if s.NextConnection {
		p.LineTo(at(notchInsetX+b.config.NotchWidth, s.Height), false)
		b.AddNotch(p, RightToLeft)
	}
	p.LineTo(at(0, s.Height), false)

	// Left edge, bottom to top. The output tab is the top-to-bottom
	// puzzle tab traced in reverse, bowing out of the block.
	if s.OutputConnection {
		w := b.config.PuzzleTabWidth
		p.LineTo(at(0, r+PuzzleTabHeight), false)
		p.CubicTo(
			Pt(-w, -puzzleTabCurveSpan),
			Pt(0, -puzzleTabBowDepth),
			Pt(-w, 8),
			true,
		)
		p.SmoothCurveTo(
			Pt(w, -puzzleTabCurveSpan),
			Pt(w, 2.5),
			true,
		)
		p.LineTo(Pt(0, -puzzleTabLeadIn), true)
	}
	p.Close()
}
