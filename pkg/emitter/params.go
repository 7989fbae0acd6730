package emitter

import (
	"math/rand"

	"github.com/gonewx/confetti/pkg/easing"
)

// Range is a closed numeric interval sampled uniformly once per spawned
// confetto. A degenerate range (Min == Max) is a fixed value.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a degenerate range holding a single value.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Random samples the range. If Min >= Max the range is treated as fixed and
// Min is returned.
func (r Range) Random() float64 {
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Params describe how a Manager randomizes each confetto at launch. Values
// are in engine units: pixels (or degrees) and milliseconds.
//
// The target-velocity ranges are optional; nil leaves the corresponding
// channel uncapped, which matches a confetto that accelerates for its whole
// life.
type Params struct {
	VelocityX Range
	VelocityY Range

	AccelerationX Range
	AccelerationY Range

	TargetVelocityX *Range
	TargetVelocityY *Range

	InitialRotation          Range
	RotationalVelocity       Range
	RotationalAcceleration   Range
	TargetRotationalVelocity *Range

	// TTL is the confetto time-to-live in milliseconds. Negative means the
	// lifetime is bounded only by the confetto leaving the region.
	TTL Range

	// Fade is the fade-out curve applied over each confetto's lifetime.
	// nil keeps confetti fully opaque.
	Fade easing.Curve
}
