package render

import (
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	BandCount  int
	Height     int
	LowerRight Point
	UpperLeft  Point
	Width      int
	Workers    int
}

func (s *Settings) Geometry() Geometry {
	return Geometry{Height: s.Height, Width: s.Width}
}

func (s *Settings) Viewport() Viewport {
	return Viewport{LowerRight: s.LowerRight, UpperLeft: s.UpperLeft}
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Geometry: %s\n", s.Geometry())
	output += fmt.Sprintf("Upper Left: %s\n", s.UpperLeft)
	output += fmt.Sprintf("Lower Right: %s\n", s.LowerRight)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	output += fmt.Sprintf("Band Count: %d\n", s.BandCount)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	if s.Height <= 0 {
		s.Height = 750
	}
	if s.Width <= 0 {
		s.Width = 1000
	}
	if s.UpperLeft == (Point{}) && s.LowerRight == (Point{}) {
		s.UpperLeft = Point{Re: -2.5, Im: 1.25}
		s.LowerRight = Point{Re: 1.0, Im: -1.25}
		s.logger.Infof("Defaulting viewport to %s, %s", s.UpperLeft, s.LowerRight)
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.BandCount <= 0 {
		s.BandCount = s.Workers
	}
	if s.BandCount > s.Height {
		s.BandCount = s.Height
	}

	return s.Viewport().Validate()
}
