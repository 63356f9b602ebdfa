package task

import "fmt"

// Band is a contiguous run of whole raster rows assigned to one worker.
// Together the bands of a render exactly tile the raster height.
type Band struct {
	Rows  int
	Start int
}

// End is the first row after the band.
func (b Band) End() int {
	return b.Start + b.Rows
}

func (b Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("Start: %d ", b.Start)
	output += fmt.Sprintf("Rows: %d}", b.Rows)
	return output
}
