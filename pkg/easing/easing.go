// Package easing provides the fade/easing curves used by the confetti
// animation. All curves take a progress value t in [0, 1] and return an
// eased value in [0, 1].
//
// Reference: https://easings.net/
package easing

import "math"

// Curve maps normalized progress in [0,1] to a fraction in [0,1]. Confetti
// use it as a fade-out curve: the result scales the confetto's opacity.
type Curve func(t float64) float64

// Linear is the identity curve (no easing).
func Linear(t float64) float64 {
	return t
}

// OutCubic starts fast and ends slow.
// f(t) = 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InCubic starts slow and ends fast.
// f(t) = t³
func InCubic(t float64) float64 {
	return t * t * t
}

// InOutCubic starts slow, speeds up in the middle and ends slow.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutQuad starts fast and ends slow, softer than OutCubic.
// f(t) = 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InQuad starts slow and ends fast.
// f(t) = t²
func InQuad(t float64) float64 {
	return t * t
}

// OutExpo starts very fast and ends very slow.
// f(t) = 1 - 2^(-10t)
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Reverse turns a fade-in shaped curve into a fade-out one:
// Reverse(c)(t) = c(1-t). A confetto fading to nothing at end of life uses
// Reverse(Linear) or similar.
func Reverse(c Curve) Curve {
	return func(t float64) float64 {
		return c(1 - t)
	}
}

// Lerp interpolates linearly between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
