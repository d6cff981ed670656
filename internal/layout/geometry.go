package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry indicates page dimensions that leave no usable area.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// US Letter in points (1in = 72pt) with one-inch margins.
const (
	DefaultPageWidth  = 612
	DefaultPageHeight = 792
	DefaultMargin     = 72
)

// Geometry describes a page and its uniform margin, in points.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// DefaultGeometry returns US Letter with one-inch margins.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:  DefaultPageWidth,
		Height: DefaultPageHeight,
		Margin: DefaultMargin,
	}
}

// Validate rejects geometries whose usable width or height is zero or
// negative, or too short to hold one emphasized line. Layout on such a
// page would break to a new page forever.
func (g Geometry) Validate() error {
	for _, v := range []float64{g.Width, g.Height, g.Margin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", ErrInvalidGeometry, v)
		}
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page %gx%g must be positive", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Margin < 0 {
		return fmt.Errorf("%w: margin %g must not be negative", ErrInvalidGeometry, g.Margin)
	}
	if g.UsableWidth() <= 0 {
		return fmt.Errorf("%w: margin %g leaves no usable width on a %g wide page", ErrInvalidGeometry, g.Margin, g.Width)
	}
	if g.UsableHeight() <= 0 {
		return fmt.Errorf("%w: margin %g leaves no usable height on a %g high page", ErrInvalidGeometry, g.Margin, g.Height)
	}
	if g.UsableHeight() < lineHeight(EmphasizedFontSize) {
		return fmt.Errorf("%w: usable height %g cannot fit a %gpt line", ErrInvalidGeometry, g.UsableHeight(), lineHeight(EmphasizedFontSize))
	}
	return nil
}

// UsableWidth returns the width between the left and right margins.
func (g Geometry) UsableWidth() float64 {
	return g.Width - 2*g.Margin
}

// UsableHeight returns the height between the top and bottom margins.
func (g Geometry) UsableHeight() float64 {
	return g.Height - 2*g.Margin
}

// Top returns the y coordinate where the first line of a page is drawn.
func (g Geometry) Top() float64 {
	return g.Height - g.Margin
}
