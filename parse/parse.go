// Package parse converts the command-line pair strings into the values the
// renderer consumes. Malformed input is reported here, before any rendering
// starts.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"ParallelMandelbrot/render"
)

// Dimensions parses a raster geometry of the form "WIDTHxHEIGHT". Both
// dimensions must be positive integers.
func Dimensions(s string) (render.Geometry, error) {
	left, right, err := pair(s, "x")
	if err != nil {
		return render.Geometry{}, fmt.Errorf("invalid dimensions %q - %s", s, err)
	}
	width, err := strconv.Atoi(left)
	if err != nil {
		return render.Geometry{}, fmt.Errorf("invalid dimensions %q - %s", s, err)
	}
	height, err := strconv.Atoi(right)
	if err != nil {
		return render.Geometry{}, fmt.Errorf("invalid dimensions %q - %s", s, err)
	}
	if width <= 0 || height <= 0 {
		return render.Geometry{}, fmt.Errorf("invalid dimensions %q - width and height must be positive", s)
	}
	return render.Geometry{Height: height, Width: width}, nil
}

// Complex parses a complex-plane point of the form "RE,IM".
func Complex(s string) (render.Point, error) {
	left, right, err := pair(s, ",")
	if err != nil {
		return render.Point{}, fmt.Errorf("invalid point %q - %s", s, err)
	}
	re, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return render.Point{}, fmt.Errorf("invalid point %q - %s", s, err)
	}
	im, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return render.Point{}, fmt.Errorf("invalid point %q - %s", s, err)
	}
	return render.Point{Im: im, Re: re}, nil
}

func pair(s string, separator string) (string, string, error) {
	left, right, found := strings.Cut(s, separator)
	if !found {
		return "", "", fmt.Errorf("missing %q separator", separator)
	}
	return left, right, nil
}
