package render

import (
	"bytes"
	"testing"

	"ParallelMandelbrot/task"
)

func TestRenderBandIntensityMapping(t *testing.T) {
	// A 1x1 raster samples its own upper left corner.
	g := Geometry{Height: 1, Width: 1}
	band := task.Band{Rows: 1, Start: 0}

	// (3,0) escapes at iteration 0, so the pixel is 255 - 0.
	escaping := Viewport{
		LowerRight: Point{Re: 3.1, Im: -0.1},
		UpperLeft:  Point{Re: 3.0, Im: 0.1},
	}
	pixels := []byte{0x55}
	RenderBand(pixels, g, escaping, band)
	if pixels[0] != 255 {
		t.Fatalf("expected intensity 255 for escape at iteration 0, got %d", pixels[0])
	}

	// (0,0) never escapes, so the pixel is 0.
	bounded := Viewport{
		LowerRight: Point{Re: 0.1, Im: -0.1},
		UpperLeft:  Point{Re: 0.0, Im: 0.1},
	}
	pixels = []byte{0x55}
	RenderBand(pixels, g, bounded, band)
	if pixels[0] != 0 {
		t.Fatalf("expected intensity 0 for a bounded point, got %d", pixels[0])
	}
}

func TestRenderBandRowMajorOrder(t *testing.T) {
	// Left half of the viewport is far outside the escape radius, right half
	// is the set interior. Every row must read escaped-then-bounded.
	g := Geometry{Height: 2, Width: 2}
	v := Viewport{
		LowerRight: Point{Re: 3.0, Im: -0.05},
		UpperLeft:  Point{Re: -3.0, Im: 0.05},
	}
	pixels := make([]byte, g.Pixels())
	RenderBand(pixels, g, v, task.Band{Rows: g.Height, Start: 0})

	for row := 0; row < g.Height; row++ {
		if pixels[row*g.Width] == 0 {
			t.Fatalf("row %d: expected the left column to escape", row)
		}
		if pixels[row*g.Width+1] != 0 {
			t.Fatalf("row %d: expected the right column to be bounded, got %d", row, pixels[row*g.Width+1])
		}
	}
}

func TestRenderBandMatchesFullRaster(t *testing.T) {
	// Rendering a band in isolation must produce exactly the bytes the same
	// rows get in a whole-raster render. Band-local coordinate arithmetic can
	// drift from the full mapping by an ulp and flip pixels that sit on an
	// iteration boundary, so the comparison is byte-for-byte.
	g := Geometry{Height: 30, Width: 40}
	v := Viewport{
		LowerRight: Point{Re: -1.0, Im: 0.20},
		UpperLeft:  Point{Re: -1.20, Im: 0.35},
	}

	full := make([]byte, g.Pixels())
	RenderBand(full, g, v, task.Band{Rows: g.Height, Start: 0})

	for _, band := range []task.Band{
		{Rows: 7, Start: 0},
		{Rows: 7, Start: 11},
		{Rows: 1, Start: g.Height - 1},
	} {
		pixels := make([]byte, band.Rows*g.Width)
		RenderBand(pixels, g, v, band)
		if !bytes.Equal(pixels, full[band.Start*g.Width:band.End()*g.Width]) {
			t.Fatalf("band %s differs from the same rows of the full raster", band)
		}
	}
}

func TestRenderBandPanicsOnLengthMismatch(t *testing.T) {
	g := Geometry{Height: 4, Width: 4}
	v := Viewport{
		LowerRight: Point{Re: 1.0, Im: -1.0},
		UpperLeft:  Point{Re: -1.0, Im: 1.0},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a mismatched buffer length")
		}
	}()
	RenderBand(make([]byte, g.Pixels()-1), g, v, task.Band{Rows: g.Height, Start: 0})
}
