// Package blockpath constructs the puzzle-piece outline geometry used by
// visual block-programming editors.
//
// # Overview
//
// blockpath turns a layout configuration (notch width and height, corner
// radius, puzzle-tab width) into closed vector paths describing block
// silhouettes: connection notches, interlocking puzzle tabs, jagged
// collapsed-block teeth, and rounded corners. The finished paths can be
// filled, stroked, and hit-tested by any consumer; the render/ package
// provides a software rasterizer.
//
// # Quick Start
//
//	cfg := blockpath.DefaultConfig()
//	b := blockpath.NewOutlineBuilder(cfg)
//
//	p := blockpath.NewPath()
//	p.MoveTo(blockpath.Pt(40, 40), false)
//	b.AddBlockOutline(p, blockpath.BlockShape{
//	    Width:              180,
//	    Height:             60,
//	    PreviousConnection: true,
//	    NextConnection:     true,
//	})
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +y
//
// All lengths are abstract units in the caller's coordinate space. Apply a
// display scale to the configuration (LayoutConfig.Scaled) or to a finished
// path (Path.Transform) before rasterizing.
//
// # Concurrency
//
// A Path confines one build sequence to one goroutine. Distinct Path values
// are fully independent; builders hold only an immutable configuration
// snapshot and are safe to share.
package blockpath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
