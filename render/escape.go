package render

// MaxIterations is the escape-time limit used for rendering. Escape indexes
// stay below it, so 255-i always fits in a byte.
const MaxIterations = 255

// EscapeTime iterates z = z*z + c from z = 0 and reports the 0-indexed
// iteration at which the squared norm of z first exceeds 4, the proven
// escape radius for the recurrence. ok is false when the point does not
// escape within limit iterations; the iteration value is meaningless then.
// Escape at iteration 0 and no escape are distinct results.
func EscapeTime(c Point, limit int) (iteration int, ok bool) {
	var zRe, zIm float64
	for i := 0; i < limit; i++ {
		zRe, zIm = zRe*zRe-zIm*zIm+c.Re, 2*zRe*zIm+c.Im
		if zRe*zRe+zIm*zIm > 4.0 {
			return i, true
		}
	}
	return 0, false
}
