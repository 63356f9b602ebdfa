package task

import "fmt"

// Task is one band of the output raster handed to a worker over rpc. The
// worker fills Pixels with Band.Rows times the image width grayscale bytes.
type Task struct {
	Band          Band
	ID            uint
	Pixels        []byte
	WorkerAddress string
}

func NewTask(id uint, band Band) Task {
	return Task{
		Band: band,
		ID:   id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Band: %s ", t.Band)
	output += fmt.Sprintf("Pixel Count: %d}", len(t.Pixels))
	return output
}
