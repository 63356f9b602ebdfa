package render

// PixelToPoint returns the complex-plane point for pixel (col, row) of a
// raster with geometry g showing viewport v. Row 0 maps to the top of the
// viewport, increasing rows move down the plane. The function is defined on
// the closed domain [0,W]x[0,H]; (W,H) lands on the viewport's lower right
// corner.
func PixelToPoint(g Geometry, col int, row int, v Viewport) Point {
	return Point{
		Re: v.UpperLeft.Re + float64(col)*v.PlaneWidth()/float64(g.Width),
		Im: v.UpperLeft.Im - float64(row)*v.PlaneHeight()/float64(g.Height),
	}
}
