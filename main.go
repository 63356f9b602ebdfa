package main

import (
	"flag"
	"fmt"
	"os"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/parse"
	"ParallelMandelbrot/render"
	"ParallelMandelbrot/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	coordinatorFile string
	workerFile      string
	workers         int
)

func main() {
	flag.StringVar(&coordinatorFile, "coordinator", "", "Settings file; run as the coordinator of a distributed render")
	flag.StringVar(&workerFile, "worker", "", "Settings file; run as a worker of a distributed render")
	flag.IntVar(&workers, "workers", 0, "Concurrent bands for a local render; defaults to the CPU count")
	flag.Parse()

	switch {
	case coordinatorFile != "":
		startCoordinator()
	case workerFile != "":
		startWorker()
	default:
		renderLocal(flag.Args())
	}
}

func startCoordinator() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)
	c := coordinator.NewCoordinator(coordinatorFile)
	misc.CheckError(c.Run(), logger, misc.Fatal)
}

func startWorker() {
	w := worker.NewWorker(workerFile)
	w.ProcessTasks()
}

func renderLocal(args []string) {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: mandelbrot FILE WIDTHxHEIGHT UPPERLEFT LOWERRIGHT")
		fmt.Fprintf(os.Stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", os.Args[0])
		os.Exit(1)
	}

	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	geometry, err := parse.Dimensions(args[1])
	misc.CheckError(err, logger, misc.Fatal)
	upperLeft, err := parse.Complex(args[2])
	misc.CheckError(err, logger, misc.Fatal)
	lowerRight, err := parse.Complex(args[3])
	misc.CheckError(err, logger, misc.Fatal)

	settings := render.Settings{
		Height:     geometry.Height,
		LowerRight: lowerRight,
		UpperLeft:  upperLeft,
		Width:      geometry.Width,
		Workers:    workers,
	}
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	pixels := make([]byte, geometry.Pixels())
	misc.CheckError(render.Render(pixels, geometry, settings.Viewport(), settings.Workers), logger, misc.Fatal)
	misc.CheckError(misc.WriteGrayPNG(args[0], pixels, geometry.Width, geometry.Height), logger, misc.Fatal)
	logger.Infof("Saved image to %s", args[0])
}
