package render

import "fmt"

// Point is a point on the complex plane. It doubles as the iterated value in
// the escape-time recurrence.
type Point struct {
	Im float64
	Re float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.Re, p.Im)
}
