package render

import "fmt"

// Geometry is the pixel dimensions of a raster. Any buffer it describes has
// exactly Width*Height elements.
type Geometry struct {
	Height int
	Width  int
}

func (g Geometry) Pixels() int {
	return g.Width * g.Height
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Viewport is the rectangle of the complex plane mapped onto a raster. The
// upper left corner has the smaller real part and the larger imaginary part.
type Viewport struct {
	LowerRight Point
	UpperLeft  Point
}

func (v Viewport) PlaneWidth() float64 {
	return v.LowerRight.Re - v.UpperLeft.Re
}

func (v Viewport) PlaneHeight() float64 {
	return v.UpperLeft.Im - v.LowerRight.Im
}

// Validate rejects degenerate viewports, whose plane width or height is not
// strictly positive. The mapper divides by both.
func (v Viewport) Validate() error {
	if v.PlaneWidth() <= 0 || v.PlaneHeight() <= 0 {
		return fmt.Errorf("degenerate viewport %s to %s", v.UpperLeft, v.LowerRight)
	}
	return nil
}
