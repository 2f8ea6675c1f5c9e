package blockpath

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig reports a layout configuration that cannot produce a
// well-formed block outline. It is a configuration-validation error, distinct
// from any drawing failure: the geometry operations themselves never return
// errors and assume a validated configuration.
var ErrInvalidConfig = errors.New("invalid layout config")

// MinNotchWidth is the smallest usable notch width: the two diagonal runs
// (6 units each) plus the 3-unit flat between them. Any width above the
// minimum becomes the notch's flat lead-in.
const MinNotchWidth = notchSlopeWidth + notchFlatWidth + notchSlopeWidth

// LayoutConfig holds the named geometry values a block outline is built
// from. Values are lengths in workspace units; all must be non-negative.
//
// A LayoutConfig is an immutable snapshot: pass it by value and do not
// mutate it while a path build is in flight. There is no process-wide
// shared instance.
type LayoutConfig struct {
	// NotchWidth is the total width of a connection notch, at least
	// MinNotchWidth.
	NotchWidth float64 `toml:"notch_width"`

	// NotchHeight is the depth of a connection notch.
	NotchHeight float64 `toml:"notch_height"`

	// BlockCornerRadius is the radius of a block's rounded corners.
	BlockCornerRadius float64 `toml:"block_corner_radius"`

	// PuzzleTabWidth is how far a puzzle tab bows out from its edge.
	// Callers negate it to flip a female receptacle into a male tab.
	PuzzleTabWidth float64 `toml:"puzzle_tab_width"`
}

// DefaultConfig returns the standard block geometry.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		NotchWidth:        15,
		NotchHeight:       4,
		BlockCornerRadius: 8,
		PuzzleTabWidth:    8,
	}
}

// Validate checks that the configuration can produce a well-formed outline.
// All errors wrap ErrInvalidConfig.
func (c LayoutConfig) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"notch_width", c.NotchWidth},
		{"notch_height", c.NotchHeight},
		{"block_corner_radius", c.BlockCornerRadius},
		{"puzzle_tab_width", c.PuzzleTabWidth},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, v.name, v.value)
		}
		if v.value < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidConfig, v.name, v.value)
		}
	}
	if c.NotchWidth < MinNotchWidth {
		return fmt.Errorf("%w: notch_width %v below minimum %v",
			ErrInvalidConfig, c.NotchWidth, float64(MinNotchWidth))
	}
	return nil
}

// Scaled returns a copy of the configuration with every length multiplied
// by the display scale factor. Use it to convert workspace units to view
// pixels before building paths.
func (c LayoutConfig) Scaled(factor float64) LayoutConfig {
	return LayoutConfig{
		NotchWidth:        c.NotchWidth * factor,
		NotchHeight:       c.NotchHeight * factor,
		BlockCornerRadius: c.BlockCornerRadius * factor,
		PuzzleTabWidth:    c.PuzzleTabWidth * factor,
	}
}

// ParseConfig decodes a TOML document into a LayoutConfig and validates it.
// Keys missing from the document keep their DefaultConfig values.
func ParseConfig(data []byte) (LayoutConfig, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(data, &c); err != nil {
		return LayoutConfig{}, fmt.Errorf("parse layout config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return LayoutConfig{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a TOML layout configuration file. Block
// editor themes ship geometry overrides this way.
func LoadConfig(path string) (LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutConfig{}, fmt.Errorf("load layout config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return LayoutConfig{}, fmt.Errorf("load layout config %s: %w", path, err)
	}
	Logger().Debug("loaded layout config", "path", path,
		"notch_width", c.NotchWidth, "corner_radius", c.BlockCornerRadius)
	return c, nil
}
