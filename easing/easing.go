// Package easing provides the interpolation curves used to fade the
// overlay in and out. All curves map a clamped progress value in [0, 1]
// to an output in [0, 1], with f(0) = 0 and f(1) = 1.
package easing

// Curve maps animation progress to an eased value.
type Curve func(t float64) float64

// Clamp constrains t to the [0, 1] range.
func Clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Linear passes progress through unchanged.
func Linear(t float64) float64 {
	return Clamp(t)
}

// InQuad accelerates from zero.
func InQuad(t float64) float64 {
	t = Clamp(t)
	return t * t
}

// OutQuad decelerates to one.
func OutQuad(t float64) float64 {
	t = Clamp(t)
	return t * (2 - t)
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	t = Clamp(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	d := 2*t - 2
	return 1 + d*d*d/2
}
