package render

import (
	"fmt"
	"sync"

	"ParallelMandelbrot/task"
)

// PartitionBands splits height rows into at most workers contiguous bands
// that tile the raster with no gaps or overlaps. Band height is the ceiling
// of height/workers; the last band absorbs the remainder. When height is
// smaller than workers only height single-row bands are produced, never an
// empty one.
func PartitionBands(height int, workers int) []task.Band {
	if height <= 0 || workers <= 0 {
		return nil
	}

	rowsPerBand := (height + workers - 1) / workers
	bands := make([]task.Band, 0, workers)
	for start := 0; start < height; start += rowsPerBand {
		rows := rowsPerBand
		if start+rows > height {
			rows = height - start
		}
		bands = append(bands, task.Band{Rows: rows, Start: start})
	}
	return bands
}

// Render fills pixels with the rendering of viewport v at geometry g, one
// goroutine per band writing to its own disjoint sub-slice of pixels. The
// disjoint split is the only concurrency mechanism; no band ever touches
// another band's bytes. Render blocks until every band has finished. Because
// every band maps its pixels from the full geometry, the output is
// byte-for-byte identical for every worker count. A panicking band fails the
// whole render and the buffer contents are then unspecified; partial results
// are never reported as success.
func Render(pixels []byte, g Geometry, v Viewport, workers int) error {
	if len(pixels) != g.Pixels() {
		return fmt.Errorf("render: buffer length %d does not match geometry %s", len(pixels), g)
	}
	if workers <= 0 {
		return fmt.Errorf("render: worker count %d is not positive", workers)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	bands := PartitionBands(g.Height, workers)
	errs := make(chan error, len(bands))
	wait := &sync.WaitGroup{}

	for _, band := range bands {
		band := band
		slice := pixels[band.Start*g.Width : band.End()*g.Width]
		wait.Add(1)
		go func() {
			defer wait.Done()
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("render: band starting at row %d: %v", band.Start, r)
				}
			}()
			RenderBand(slice, g, v, band)
		}()
	}

	wait.Wait()
	close(errs)
	for err := range errs {
		return err
	}
	return nil
}
