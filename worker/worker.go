package worker

import (
	"fmt"
	"time"

	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/render"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

// Worker renders bands on behalf of a remote coordinator. It pulls one band
// task at a time, fills the band's pixel buffer with the shared render core
// and returns it.
type Worker struct {
	coordinatorAddress string
	geometry           render.Geometry
	logger             bslogger.Logger
	myAddress          string
	tasksCompleted     int
	viewport           render.Viewport

	ServerClient multirpc.TcpServerClient
}

func NewWorker(settingsFile string) *Worker {
	settings := NewSettings(settingsFile)
	worker := &Worker{
		coordinatorAddress: settings.CoordinatorAddress,
		logger:             bslogger.NewLogger("Worker", bslogger.Normal, nil),
	}

	// Find a free port to use for this worker
	port, err := misc.GetFreePort()
	misc.CheckError(err, worker.logger, misc.Fatal)
	worker.logger.Debugf("Found free port: %d", port)
	worker.myAddress = fmt.Sprintf("%s:%d", misc.GetLocalAddress(), port)
	worker.logger = bslogger.NewLogger(fmt.Sprintf("Worker %s", worker.myAddress), bslogger.Normal, nil)
	worker.ServerClient = multirpc.NewTcpServerClient(worker, worker.myAddress, worker.myAddress, settings.CoordinatorAddress, settings.CoordinatorAddress)
	misc.CheckError(worker.ServerClient.Server.Run(), worker.logger, misc.Fatal)

	// Register with the coordinator
	misc.CheckError(worker.ServerClient.Client.Connect(), worker.logger, misc.Fatal)
	var nothing misc.Nothing
	misc.CheckError(worker.ServerClient.Client.Call("Coordinator.RegisterWorker", worker.myAddress, &nothing), worker.logger, misc.Fatal)

	// Get the raster geometry and viewport from the coordinator
	var renderSettings render.Settings
	misc.CheckError(worker.ServerClient.Client.Call("Coordinator.GetRenderSettings", nothing, &renderSettings), worker.logger, misc.Fatal)
	worker.geometry = renderSettings.Geometry()
	worker.viewport = renderSettings.Viewport()

	go worker.tickers()

	return worker
}

func (w *Worker) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			w.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			var reply bool
			err := w.ServerClient.Client.Call("Coordinator.RollCall", junk, &reply)
			if err != nil {
				// Cannot communicate with the coordinator so we should shut down
				w.logger.Warningf("Coordinator missed roll call: %s", err)
				w.ServerClient.Client.Disconnect()
				w.ServerClient.Server.Stop()
				continue
			}

		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.logger.Infof("Bands [Completed: %d]", w.tasksCompleted)
		}
	}
}

// ProcessTasks renders band tasks until the coordinator reports that all
// tasks are handed out, then deregisters and shuts down.
func (w *Worker) ProcessTasks() {
	w.logger.Info("Processing tasks")

	var nothing misc.Nothing
	startTime := time.Now()

	for {
		var taskTodo task.Task
		err := w.ServerClient.Client.Call("Coordinator.GetTask", w.myAddress, &taskTodo)
		if err != nil {
			// This is an expected error. No more work to do
			if err.Error() == "all tasks handed out" {
				break
			}
			w.logger.Fatalf("Unable to get a task: %s", err.Error())
		}

		band := taskTodo.Band
		taskTodo.Pixels = make([]byte, band.Rows*w.geometry.Width)
		render.RenderBand(taskTodo.Pixels, w.geometry, w.viewport, band)

		err = w.ServerClient.Client.Call("Coordinator.ReturnTask", taskTodo, &nothing)
		if err != nil {
			w.logger.Errorf("Unable to return a task: %s", err.Error())
			break
		}
		w.tasksCompleted++
	}

	w.logger.Info("Done processing tasks")
	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime))

	w.logger.Info("Shutting down")
	w.ServerClient.Client.Call("Coordinator.DeRegisterWorker", w.myAddress, &nothing)
	misc.CheckError(w.ServerClient.Client.Disconnect(), w.logger, misc.Warning)
	misc.CheckError(w.ServerClient.Server.Stop(), w.logger, misc.Warning)
}

func (w *Worker) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
