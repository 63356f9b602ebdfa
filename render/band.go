package render

import (
	"fmt"

	"ParallelMandelbrot/task"
)

// RenderBand fills pixels with the grayscale rendering of band b of a full
// raster with geometry g showing viewport v, row major within the band.
// Every sample point is mapped from the full geometry at the pixel's
// absolute row, so the bytes a band produces are bitwise independent of how
// the raster was partitioned. Bounded points are written as 0, escaped
// points as 255 minus the escape iteration. A slice whose length does not
// match the band means the caller partitioned the buffer wrong; that is a
// contract breach and panics rather than returning an error.
func RenderBand(pixels []byte, g Geometry, v Viewport, b task.Band) {
	if len(pixels) != b.Rows*g.Width {
		panic(fmt.Sprintf("render: buffer length %d does not match band %s of %s", len(pixels), b, g))
	}

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < g.Width; col++ {
			value := byte(0)
			if i, escaped := EscapeTime(PixelToPoint(g, col, b.Start+row, v), MaxIterations); escaped {
				value = byte(255 - i)
			}
			pixels[row*g.Width+col] = value
		}
	}
}
