package coordinator

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/render"

	"github.com/BrugadaSyndrome/bslogger"
)

type settings struct {
	logger bslogger.Logger

	OutputName     string
	RenderSettings render.Settings
	RunName        string
	SavePath       string
	ServerAddress  string
}

func NewSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Run Name: %s\n", s.RunName)
	output += fmt.Sprintf("Output Name: %s\n", s.OutputName)
	output += s.RenderSettings.String()
	return output
}

func (s *settings) Verify() error {
	misc.CheckError(s.RenderSettings.Verify(), s.logger, misc.Fatal)
	if s.OutputName == "" {
		s.OutputName = "mandelbrot.png"
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	return nil
}
