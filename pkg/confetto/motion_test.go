package confetto

import (
	"math"
	"testing"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// TestTimeToReachTarget covers every branch of the target-time solver.
func TestTimeToReachTarget(t *testing.T) {
	tests := []struct {
		name         string
		target       *float64
		velocity     float64
		acceleration float64
		want         *int64
	}{
		{"no cap", nil, 5, 1, nil},
		{"accelerating toward cap", f64(10), 0, 0.5, i64(20)},
		{"decelerating toward cap", f64(0), 10, -0.5, i64(20)},
		{"cap already exceeded clamps to zero", f64(-5), 5, 1, i64(0)},
		{"zero acceleration, cap below velocity", f64(2), 5, 0, i64(0)},
		{"zero acceleration, cap above velocity", f64(10), 5, 0, nil},
		{"zero acceleration, cap equals velocity", f64(5), 5, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeToReachTarget(tt.target, tt.velocity, tt.acceleration)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("timeToReachTarget() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("timeToReachTarget() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

// TestTimeToReachTargetVelocityIdentity verifies that at the computed time
// the velocity actually equals the cap: vi + a·t* == V, up to the 1ms
// truncation of the result.
func TestTimeToReachTargetVelocityIdentity(t *testing.T) {
	cases := []struct {
		velocity     float64
		acceleration float64
		target       float64
	}{
		{0, 0.5, 10},
		{10, -0.5, 0},
		{-3, 0.25, 5},
		{2, 0.001, 4},
	}

	for _, c := range cases {
		got := timeToReachTarget(f64(c.target), c.velocity, c.acceleration)
		if got == nil {
			t.Fatalf("timeToReachTarget(%v, %v, %v) = nil, want a time", c.target, c.velocity, c.acceleration)
		}
		v := c.velocity + c.acceleration*float64(*got)
		// Truncation to whole milliseconds may leave up to |a| of error.
		if math.Abs(v-c.target) > math.Abs(c.acceleration)+1e-9 {
			t.Errorf("velocity at t*=%d is %v, want %v", *got, v, c.target)
		}
	}
}

// TestBoundCrossingTime covers the bound-crossing solver branch by branch.
func TestBoundCrossingTime(t *testing.T) {
	tests := []struct {
		name         string
		pos          float64
		velocity     float64
		acceleration float64
		targetTime   *int64
		target       *float64
		minBound     float64
		maxBound     float64
		want         int64
	}{
		{
			name: "constant velocity toward max bound",
			pos:  0, velocity: 5, minBound: 0, maxBound: 100,
			want: 20,
		},
		{
			name: "constant velocity toward min bound",
			pos:  50, velocity: -5, minBound: 0, maxBound: 100,
			want: 10,
		},
		{
			name: "zero velocity never crosses",
			pos:  50, minBound: 0, maxBound: 100,
			want: neverCrosses,
		},
		{
			name: "pure acceleration from rest",
			pos:  0, velocity: 0, acceleration: 0.5, minBound: 0, maxBound: 100,
			want: 20, // 100 = 0.5·0.5·t² → t = 20
		},
		{
			name: "deceleration falls back through min bound",
			pos:  0, velocity: 10, acceleration: -1, minBound: 0, maxBound: 50,
			want: 20, // x(t) = 10t - 0.5t² returns to 0 at t = 20
		},
		{
			name: "acceleration cannot reach its bound",
			pos:  0, velocity: 0, acceleration: 1, minBound: -100, maxBound: -50,
			want: neverCrosses, // already above maxBound, negative discriminant
		},
		{
			name: "crossing during constant-velocity phase",
			pos:  0, velocity: 0, acceleration: 1,
			targetTime: i64(10), target: f64(10),
			minBound: 0, maxBound: 1000,
			want: 105, // 50px in phase 1, then (1000-50)/10 more ms
		},
		{
			name: "negative cap crosses min bound",
			pos:  0, velocity: 0, acceleration: -1,
			targetTime: i64(10), target: f64(-10),
			minBound: -1000, maxBound: 1000,
			want: 105,
		},
		{
			name: "zero target velocity parks inside the bound",
			pos:  0, velocity: 5, acceleration: -1,
			targetTime: i64(5), target: f64(0),
			minBound: 0, maxBound: 100,
			want: neverCrosses,
		},
		{
			name: "zero acceleration with cap uses the cap velocity",
			pos:  0, velocity: 5, acceleration: 0,
			targetTime: i64(0), target: f64(2),
			minBound: 0, maxBound: 100,
			want: 50,
		},
		{
			name: "negative targetTime treated as no transition",
			pos:  0, velocity: 0, acceleration: 0.5,
			targetTime: i64(-1), target: f64(10),
			minBound: 0, maxBound: 100,
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boundCrossingTime(tt.pos, tt.velocity, tt.acceleration,
				tt.targetTime, tt.target, tt.minBound, tt.maxBound)
			if got != tt.want {
				t.Errorf("boundCrossingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestBoundCrossingMonotonicity checks that pushing harder toward a bound
// never makes the crossing later.
func TestBoundCrossingMonotonicity(t *testing.T) {
	t.Run("increasing velocity", func(t *testing.T) {
		prev := neverCrosses
		for v := 1.0; v <= 20; v++ {
			got := boundCrossingTime(0, v, 0, nil, nil, 0, 1000)
			if got > prev {
				t.Fatalf("crossing time grew from %d to %d when velocity rose to %v", prev, got, v)
			}
			prev = got
		}
	})

	t.Run("increasing acceleration", func(t *testing.T) {
		prev := neverCrosses
		for a := 0.1; a <= 2.0; a += 0.1 {
			got := boundCrossingTime(0, 0, a, nil, nil, 0, 1000)
			if got > prev {
				t.Fatalf("crossing time grew from %d to %d when acceleration rose to %v", prev, got, a)
			}
			prev = got
		}
	})
}

// TestDisplacementContinuity checks there is no jump at the phase boundary:
// the phase-2 formula at targetTime equals the phase-1 formula there.
func TestDisplacementContinuity(t *testing.T) {
	const (
		xi = 3.0
		vi = 0.0
		a  = 0.01
		tm = int64(100)
	)
	vTarget := vi + a*float64(tm) // cap consistent with the solver

	phase1 := func(t float64) float64 { return xi + vi*t + 0.5*a*t*t }

	atBoundary := displacement(tm, xi, vi, a, i64(tm), &vTarget)
	if math.Abs(atBoundary-phase1(float64(tm))) > 1e-9 {
		t.Errorf("displacement at targetTime = %v, phase-1 value = %v", atBoundary, phase1(float64(tm)))
	}

	// Neighboring samples should differ by roughly one millisecond of
	// travel at the cap velocity, not by a discontinuity.
	before := displacement(tm-1, xi, vi, a, i64(tm), &vTarget)
	after := displacement(tm+1, xi, vi, a, i64(tm), &vTarget)
	if math.Abs(atBoundary-before) > 2*vTarget || math.Abs(after-atBoundary) > 2*vTarget {
		t.Errorf("displacement jumps around the boundary: %v, %v, %v", before, atBoundary, after)
	}
}

// TestDisplacementUncapped verifies the plain kinematic equation when no
// cap exists.
func TestDisplacementUncapped(t *testing.T) {
	got := displacement(10, 1, 2, 0.5, nil, nil)
	want := 1 + 2*10 + 0.5*0.5*100.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("displacement() = %v, want %v", got, want)
	}
}
