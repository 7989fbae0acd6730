package confetto

import "math"

// neverCrosses is the sentinel crossing time for motion that stays inside
// its bound forever. It doubles as the "unbounded" lifetime value.
const neverCrosses int64 = math.MaxInt64

// MotionChannel describes one independently evolving scalar dimension of a
// confetto: x position, y position, or rotation angle. All three share the
// same two-phase motion model — constant acceleration until the velocity cap
// is reached (if any), then constant velocity at the cap.
//
// Units are pixels (or degrees) and milliseconds: velocity is px/ms,
// acceleration is px/ms².
type MotionChannel struct {
	// Initial is the starting position (or angle in degrees).
	Initial float64
	// Velocity is the initial velocity.
	Velocity float64
	// Acceleration is the constant acceleration. Zero, positive and
	// negative are all valid.
	Acceleration float64
	// TargetVelocity is the velocity cap. nil means no cap: the channel
	// accelerates forever.
	TargetVelocity *float64

	// targetTime is derived once in prepare and never renegotiated until
	// the next reset. nil means the cap is never reached.
	targetTime *int64
}

// prepare computes the derived time-to-reach-target for this channel.
func (ch *MotionChannel) prepare() {
	ch.targetTime = timeToReachTarget(ch.TargetVelocity, ch.Velocity, ch.Acceleration)
}

// positionAt evaluates the two-phase displacement equation at time t (ms
// since the channel started moving).
func (ch *MotionChannel) positionAt(t int64) float64 {
	return displacement(t, ch.Initial, ch.Velocity, ch.Acceleration, ch.targetTime, ch.TargetVelocity)
}

// crossingTime returns the earliest time at which this channel's position
// leaves [minBound, maxBound], or neverCrosses if it stays inside forever.
// prepare must have run first so targetTime is valid.
func (ch *MotionChannel) crossingTime(minBound, maxBound float64) int64 {
	return boundCrossingTime(ch.Initial, ch.Velocity, ch.Acceleration,
		ch.targetTime, ch.TargetVelocity, minBound, maxBound)
}

// timeToReachTarget computes how many milliseconds it takes for a velocity
// under constant acceleration to hit the target cap.
//
// Returns nil when there is no cap, or when the cap is never reached (zero
// acceleration with the current velocity below the cap). A cap that is
// already met or exceeded at t=0 saturates to 0 rather than reporting an
// error.
func timeToReachTarget(target *float64, velocity, acceleration float64) *int64 {
	if target == nil {
		return nil
	}
	if acceleration != 0 {
		// Velocity is linear in time, so this is exact.
		t := int64((*target - velocity) / acceleration)
		if t < 0 {
			t = 0
		}
		return &t
	}
	if *target < velocity {
		// Constant velocity already past the would-be cap.
		zero := int64(0)
		return &zero
	}
	return nil
}

// boundCrossingTime returns the earliest time (ms) at which a position
// following the two-phase motion model leaves [minBound, maxBound], or
// neverCrosses if it never does.
//
// targetTime and target come from timeToReachTarget for the same channel:
// the accelerating phase runs until targetTime (forever when nil or
// negative), then motion continues at the target velocity.
func boundCrossingTime(pos, velocity, acceleration float64, targetTime *int64,
	target *float64, minBound, maxBound float64) int64 {
	if acceleration != 0 {
		if targetTime == nil || *targetTime < 0 {
			// Single accelerating phase. Acceleration eventually dominates,
			// so the exit happens through the bound in its direction.
			// Solve bound = pos + v·t + 0.5·a·t² for t.
			bound := minBound
			if acceleration > 0 {
				bound = maxBound
			}
			disc := velocity*velocity + 2*acceleration*(bound-pos)
			if disc < 0 {
				return neverCrosses
			}
			root := math.Sqrt(disc)
			if t := (-root - velocity) / acceleration; t > 0 {
				return int64(t)
			}
			if t := (root - velocity) / acceleration; t > 0 {
				return int64(t)
			}
			return neverCrosses
		}

		// The accelerating phase stays inside the bound until the cap is
		// reached, so the crossing can only happen in the constant-velocity
		// phase, moving in the cap's direction.
		tv := *target
		if tv == 0 {
			return neverCrosses
		}
		bound := minBound
		if tv > 0 {
			bound = maxBound
		}
		// bound = pos + v·tm + 0.5·a·tm² + tv·(t - tm), solved for t.
		tm := float64(*targetTime)
		t := (bound - pos - velocity*tm - 0.5*acceleration*tm*tm + tv*tm) / tv
		if t > 0 {
			return int64(t)
		}
		return neverCrosses
	}

	// Zero acceleration: velocity is constant. If the cap kicked in
	// (targetTime non-nil) the effective velocity is the cap itself.
	v := velocity
	if targetTime != nil {
		v = *target
	}
	if v == 0 {
		return neverCrosses
	}
	bound := minBound
	if v > 0 {
		bound = maxBound
	}
	if t := (bound - pos) / v; t > 0 {
		return int64(t)
	}
	return neverCrosses
}

// displacement evaluates position at time t under the two-phase motion
// model. Phase 1 (t < targetTime, or always when targetTime is nil) is the
// kinematic equation xi + vi·t + 0.5·a·t². Phase 2 adds constant-velocity
// travel at vTarget on top of the displacement accumulated up to targetTime,
// which makes the function continuous at the phase boundary by construction.
func displacement(t int64, xi, vi, a float64, targetTime *int64, vTarget *float64) float64 {
	if targetTime == nil || t < *targetTime {
		ft := float64(t)
		return xi + vi*ft + 0.5*a*ft*ft
	}
	tm := float64(*targetTime)
	return xi + vi*tm + 0.5*a*tm*tm + float64(t-*targetTime)*(*vTarget)
}
