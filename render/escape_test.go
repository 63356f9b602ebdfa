package render

import "testing"

func TestEscapeTimeOriginNeverEscapes(t *testing.T) {
	// z stays 0 forever for c = 0, regardless of the limit.
	for _, limit := range []int{1, 10, 255, 10000} {
		if i, escaped := EscapeTime(Point{}, limit); escaped {
			t.Fatalf("origin escaped at iteration %d with limit %d", i, limit)
		}
	}
}

func TestEscapeTimeImmediateEscape(t *testing.T) {
	// First iterate is c itself, so any point with |c|^2 > 4 escapes at 0.
	points := []Point{
		{Re: 2.1},
		{Re: -2.1},
		{Im: 2.5},
		{Re: 3, Im: 0},
		{Re: 1.5, Im: -1.5},
	}
	for _, c := range points {
		i, escaped := EscapeTime(c, 255)
		if !escaped {
			t.Fatalf("expected %s to escape", c)
		}
		if i != 0 {
			t.Fatalf("expected %s to escape at iteration 0, got %d", c, i)
		}
	}
}

func TestEscapeTimeBoundaryPoint(t *testing.T) {
	// c = (2,0) sits exactly on the escape radius: the first iterate has
	// squared norm 4, which is not strictly greater than 4, so escape is
	// detected one step later.
	i, escaped := EscapeTime(Point{Re: 2}, 255)
	if !escaped {
		t.Fatal("expected (2,0) to escape")
	}
	if i != 1 {
		t.Fatalf("expected (2,0) to escape at iteration 1, got %d", i)
	}
}

func TestEscapeTimeBoundedInteriorPoint(t *testing.T) {
	// c = (-0.5,0) lies in the main cardioid.
	if i, escaped := EscapeTime(Point{Re: -0.5}, 10000); escaped {
		t.Fatalf("interior point escaped at iteration %d", i)
	}
}

func TestEscapeTimeZeroDistinctFromBounded(t *testing.T) {
	_, escapedFar := EscapeTime(Point{Re: 3}, 255)
	_, escapedOrigin := EscapeTime(Point{}, 255)
	if !escapedFar || escapedOrigin {
		t.Fatalf("escape at iteration 0 (%t) must be distinguishable from no escape (%t)", escapedFar, escapedOrigin)
	}
}

func TestEscapeTimeRespectsLimit(t *testing.T) {
	// A point just outside the set needs several iterations; with limit 1 it
	// must be reported as bounded.
	c := Point{Re: 0.5, Im: 0.5}
	if i, escaped := EscapeTime(c, 255); !escaped || i < 1 {
		t.Fatalf("expected %s to escape after a few iterations, got (%d, %t)", c, i, escaped)
	}
	if _, escaped := EscapeTime(c, 1); escaped {
		t.Fatalf("expected %s to stay within the bound for a single iteration", c)
	}
}
