package coordinator

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/render"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

// Coordinator owns the full pixel buffer of a distributed render. It splits
// the raster into band tasks, hands them to registered workers over rpc and
// copies each returned band into its disjoint slice of the buffer.
type Coordinator struct {
	bands              []task.Band
	clients            map[string]*multirpc.TcpClient
	ingestedTasks      []bool // tasks already copied into pixels, indexed by task ID
	logger             bslogger.Logger
	mutex              sync.Mutex
	pixels             []byte
	renderDone         chan struct{} // closed once every band has been ingested
	settings           settings
	taskCount          uint
	taskGeneratedCount uint
	taskIngestedCount  uint
	tasksDone          chan task.Task
	tasksHandedOut     map[string]map[uint]task.Task // keep track of all tasks workers have
	tasksTodo          chan task.Task
	workerWait         *sync.WaitGroup

	Server multirpc.TcpServer
}

func NewCoordinator(settingsFile string) *Coordinator {
	settings := NewSettings(settingsFile)
	bands := render.PartitionBands(settings.RenderSettings.Height, settings.RenderSettings.BandCount)

	coordinator := &Coordinator{
		bands:          bands,
		clients:        make(map[string]*multirpc.TcpClient),
		ingestedTasks:  make([]bool, len(bands)),
		logger:         bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		pixels:         make([]byte, settings.RenderSettings.Geometry().Pixels()),
		renderDone:     make(chan struct{}),
		settings:       settings,
		taskCount:      uint(len(bands)),
		tasksDone:      make(chan task.Task, len(bands)),
		tasksHandedOut: make(map[string]map[uint]task.Task),
		tasksTodo:      make(chan task.Task, len(bands)),
		workerWait:     &sync.WaitGroup{},
	}

	coordinator.Server = multirpc.NewTcpServer(coordinator, settings.ServerAddress, "CoordinatorServer")

	// Create a directory for this run and keep a copy of the settings so the
	// run can be duplicated in the future
	runDir := filepath.Join(settings.SavePath, settings.RunName)
	if _, err := os.Stat(runDir); os.IsNotExist(err) {
		misc.CheckError(os.Mkdir(runDir, os.ModePerm), coordinator.logger, misc.Fatal)
	}
	settingsBytes, err := json.Marshal(settings)
	misc.CheckError(err, coordinator.logger, misc.Warning)
	_, err = misc.WriteFile(filepath.Join(runDir, "settings.json"), settingsBytes)
	misc.CheckError(err, coordinator.logger, misc.Warning)

	return coordinator
}

// Run serves band tasks until every band has been returned, writes the
// assembled image and waits for all workers to disconnect.
func (c *Coordinator) Run() error {
	misc.CheckError(c.Server.Run(), c.logger, misc.Fatal)

	go c.tickers()
	go c.generateTasks()
	c.ingestTasks()

	path := filepath.Join(c.settings.SavePath, c.settings.RunName, c.settings.OutputName)
	err := misc.WriteGrayPNG(path, c.pixels, c.settings.RenderSettings.Width, c.settings.RenderSettings.Height)
	if err != nil {
		return err
	}
	c.logger.Infof("Saved image to %s", path)

	c.mutex.Lock()
	remaining := len(c.clients)
	c.mutex.Unlock()
	c.logger.Infof("Waiting for %d workers to disconnect", remaining)
	c.workerWait.Wait()
	return c.Server.Stop()
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")

			// Snapshot the pool so the rpc calls run without the lock held
			c.mutex.Lock()
			clients := make([]*multirpc.TcpClient, 0, len(c.clients))
			for _, v := range c.clients {
				clients = append(clients, v)
			}
			c.mutex.Unlock()

			var junk misc.Nothing
			for _, v := range clients {
				var reply bool
				err := v.Call("Worker.RollCall", junk, &reply)
				if err != nil {
					// Cannot communicate with the worker
					c.logger.Warningf("Worker %s missed roll call: %s", v.Name(), err)

					// Remove worker from pool
					var nothing misc.Nothing
					misc.CheckError(c.DeRegisterWorker(v.Name(), &nothing), c.logger, misc.Warning)
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.mutex.Lock()
			generated, ingested := c.taskGeneratedCount, c.taskIngestedCount
			c.mutex.Unlock()
			c.logger.Infof("Bands [Generated: %d] [Ingested: %d] [Todo: %d]", generated, ingested, c.taskCount-ingested)
		}
	}
}

func (c *Coordinator) generateTasks() {
	c.logger.Info("Generating tasks")

	// tasksTodo stays open for the whole run: deregistration puts a departed
	// worker's unreturned tasks back into it at any point, so "no more work"
	// is signalled by renderDone instead of closing the channel.
	for i, band := range c.bands {
		c.tasksTodo <- task.NewTask(uint(i), band)
		c.mutex.Lock()
		c.taskGeneratedCount++
		c.mutex.Unlock()
	}

	c.logger.Debugf("Done generating %d tasks", c.taskCount)
}

func (c *Coordinator) ingestTasks() {
	c.logger.Info("Ingesting tasks")

	width := c.settings.RenderSettings.Width
	startTime := time.Now()

	ingested := uint(0)
	for ingested < c.taskCount {
		taskReceived := <-c.tasksDone

		if taskReceived.ID >= c.taskCount {
			c.logger.Fatalf("Task %d is not a generated task", taskReceived.ID)
		}
		// A worker that deregistered after returning a band but before the
		// result was ingested gets its band re-queued and rendered twice
		if c.ingestedTasks[taskReceived.ID] {
			c.logger.Debugf("Ignoring duplicate result for task %d", taskReceived.ID)
			continue
		}

		band := taskReceived.Band
		if len(taskReceived.Pixels) != band.Rows*width {
			c.logger.Fatalf("Task %d returned %d pixels for band %s", taskReceived.ID, len(taskReceived.Pixels), band)
		}
		copy(c.pixels[band.Start*width:band.End()*width], taskReceived.Pixels)
		c.ingestedTasks[taskReceived.ID] = true
		ingested++

		c.mutex.Lock()
		c.taskIngestedCount = ingested
		delete(c.tasksHandedOut[taskReceived.WorkerAddress], taskReceived.ID)
		c.mutex.Unlock()
	}

	close(c.renderDone)
	c.logger.Debugf("Done ingesting %d tasks in %s", ingested, time.Since(startTime))
}

func (c *Coordinator) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Create a client to communicate with this worker
	client := multirpc.NewTcpClient(workerServerAddress, workerServerAddress)
	misc.CheckError(client.Connect(), c.logger, misc.Warning)

	c.mutex.Lock()
	c.clients[workerServerAddress] = &client
	c.tasksHandedOut[workerServerAddress] = make(map[uint]task.Task)
	c.mutex.Unlock()

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	c.workerWait.Add(1)

	return nil
}

func (c *Coordinator) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	c.mutex.Lock()
	outstanding := c.tasksHandedOut[workerServerAddress]
	client := c.clients[workerServerAddress]
	delete(c.tasksHandedOut, workerServerAddress)
	delete(c.clients, workerServerAddress)
	c.mutex.Unlock()

	// Put tasks this worker has not returned yet back into the tasksTodo pool
	go func(tasks map[uint]task.Task) {
		for _, v := range tasks {
			select {
			case c.tasksTodo <- v:
			case <-c.renderDone:
				// The band already came back from another worker
				return
			}
		}
	}(outstanding)

	// Disconnect from worker
	if client != nil {
		misc.CheckError(client.Disconnect(), c.logger, misc.Warning)
	}

	c.logger.Infof("Worker left: %s", workerServerAddress)
	c.workerWait.Done()

	return nil
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, reply *task.Task) error {
	select {
	case todo := <-c.tasksTodo:
		c.mutex.Lock()
		todo.WorkerAddress = workerAddress
		c.tasksHandedOut[workerAddress][todo.ID] = todo
		c.mutex.Unlock()
		*reply = todo
		return nil
	case <-c.renderDone:
		c.logger.Info("Telling worker that all tasks are handed out")
		return errors.New("all tasks handed out")
	}
}

func (c *Coordinator) ReturnTask(done task.Task, nothing *misc.Nothing) error {
	select {
	case c.tasksDone <- done:
	case <-c.renderDone:
		// Late duplicate result, the image is already assembled
	}
	return nil
}

func (c *Coordinator) GetRenderSettings(nothing misc.Nothing, settings *render.Settings) error {
	*settings = c.settings.RenderSettings
	return nil
}
