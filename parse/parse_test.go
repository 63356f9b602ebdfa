package parse

import (
	"testing"

	"ParallelMandelbrot/render"
)

func TestDimensions(t *testing.T) {
	cases := []struct {
		input string
		want  render.Geometry
		ok    bool
	}{
		{input: "1000x750", want: render.Geometry{Height: 750, Width: 1000}, ok: true},
		{input: "1x1", want: render.Geometry{Height: 1, Width: 1}, ok: true},
		{input: "", ok: false},
		{input: "1000", ok: false},
		{input: "1000x", ok: false},
		{input: "x750", ok: false},
		{input: "1000x750y", ok: false},
		{input: "1000,750", ok: false},
		{input: "0x750", ok: false},
		{input: "-1000x750", ok: false},
	}

	for _, c := range cases {
		got, err := Dimensions(c.input)
		if c.ok && err != nil {
			t.Fatalf("Dimensions(%q): unexpected error %v", c.input, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("Dimensions(%q): expected an error, got %s", c.input, got)
		}
		if c.ok && got != c.want {
			t.Fatalf("Dimensions(%q): expected %s, got %s", c.input, c.want, got)
		}
	}
}

func TestComplex(t *testing.T) {
	cases := []struct {
		input string
		want  render.Point
		ok    bool
	}{
		{input: "1.25,-0.0625", want: render.Point{Re: 1.25, Im: -0.0625}, ok: true},
		{input: "-1.20,0.35", want: render.Point{Re: -1.20, Im: 0.35}, ok: true},
		{input: "10,20", want: render.Point{Re: 10, Im: 20}, ok: true},
		{input: "", ok: false},
		{input: "10,", ok: false},
		{input: ",-0.0625", ok: false},
		{input: "10,20xy", ok: false},
		{input: "0.5", ok: false},
	}

	for _, c := range cases {
		got, err := Complex(c.input)
		if c.ok && err != nil {
			t.Fatalf("Complex(%q): unexpected error %v", c.input, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("Complex(%q): expected an error, got %s", c.input, got)
		}
		if c.ok && got != c.want {
			t.Fatalf("Complex(%q): expected %s, got %s", c.input, c.want, got)
		}
	}
}
