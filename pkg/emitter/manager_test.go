package emitter

import (
	"image"
	"testing"

	"github.com/gonewx/confetti/pkg/confetto"
)

var testBound = image.Rect(-10000, -10000, 10000, 10000)

// countingGenerator tracks how many confetti were actually allocated, to
// verify pool reuse.
type countingGenerator struct {
	made int
}

func (g *countingGenerator) Generate() *confetto.Confetto {
	g.made++
	return confetto.New(nil)
}

func stillParams(ttl int64) Params {
	return Params{TTL: Fixed(float64(ttl))}
}

// TestBurstMode verifies rate 0 launches InitialCount confetti exactly once.
func TestBurstMode(t *testing.T) {
	gen := &countingGenerator{}
	m := NewManager(gen, PointSource(0, 0), testBound,
		Config{InitialCount: 8}, stillParams(100))

	m.Update(0)
	if m.ActiveCount() != 8 {
		t.Fatalf("ActiveCount() = %d after burst, want 8", m.ActiveCount())
	}
	if m.Launched() != 8 {
		t.Fatalf("Launched() = %d after burst, want 8", m.Launched())
	}

	m.Update(50)
	if m.Launched() != 8 {
		t.Errorf("Launched() = %d, burst fired more than once", m.Launched())
	}
	if m.Done() {
		t.Error("Done() = true while confetti are still alive")
	}

	m.Update(200)
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d past the TTL, want 0", m.ActiveCount())
	}
	if !m.Done() {
		t.Error("Done() = false after the burst finished")
	}
	if len(m.pool) != 8 {
		t.Errorf("pool holds %d confetti, want all 8 recycled", len(m.pool))
	}
}

// TestBurstDefaultsToOne verifies an all-zero schedule still launches one
// confetto.
func TestBurstDefaultsToOne(t *testing.T) {
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{}, stillParams(100))

	m.Update(0)
	if m.Launched() != 1 {
		t.Errorf("Launched() = %d, want 1", m.Launched())
	}
}

// TestContinuousRate verifies the rate scheduler launches on its own clock
// regardless of frame timing.
func TestContinuousRate(t *testing.T) {
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{EmissionRate: 100}, stillParams(10000)) // one every 10ms

	m.Update(0)
	if m.Launched() != 1 {
		t.Fatalf("Launched() = %d at t=0, want 1", m.Launched())
	}

	// One uneven jump forward still produces one confetto per 10ms slot.
	m.Update(95)
	if m.Launched() != 10 {
		t.Errorf("Launched() = %d at t=95, want 10", m.Launched())
	}

	m.Update(100)
	if m.Launched() != 11 {
		t.Errorf("Launched() = %d at t=100, want 11", m.Launched())
	}
}

// TestEmissionDuration verifies emission stops once the window closes.
func TestEmissionDuration(t *testing.T) {
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{EmissionRate: 100, EmissionDuration: 50}, stillParams(10000))

	m.Update(50)
	launched := m.Launched()
	m.Update(500)
	if m.Launched() != launched {
		t.Errorf("Launched() grew from %d to %d after the emission window", launched, m.Launched())
	}
}

// TestMaxActive verifies the live-confetti cap.
func TestMaxActive(t *testing.T) {
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{InitialCount: 10, MaxActive: 3}, stillParams(100))

	m.Update(0)
	if m.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d, want capped at 3", m.ActiveCount())
	}
}

// TestMaxLaunched verifies the total cap and that it completes the
// animation.
func TestMaxLaunched(t *testing.T) {
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{EmissionRate: 1000, MaxLaunched: 5}, stillParams(100))

	m.Update(1000)
	if m.Launched() != 5 {
		t.Fatalf("Launched() = %d, want 5", m.Launched())
	}

	m.Update(1200)
	if !m.Done() {
		t.Error("Done() = false after the launch cap was exhausted")
	}
}

// TestPoolReuse verifies recycled confetti are reused instead of
// regenerated.
func TestPoolReuse(t *testing.T) {
	gen := &countingGenerator{}
	m := NewManager(gen, PointSource(0, 0), testBound,
		Config{InitialCount: 4}, stillParams(50))

	m.Update(0)
	m.Update(100) // everything terminates and is recycled
	if gen.made != 4 {
		t.Fatalf("generator made %d confetti, want 4", gen.made)
	}

	m.Reset()
	m.Update(0)
	if m.ActiveCount() != 4 {
		t.Fatalf("ActiveCount() = %d after Reset, want 4", m.ActiveCount())
	}
	if gen.made != 4 {
		t.Errorf("generator made %d confetti, want the pool reused without new allocations", gen.made)
	}
}

// TestLaunchAppliesCaps verifies target-velocity ranges reach the confetto
// so a capped preset actually caps motion.
func TestLaunchAppliesCaps(t *testing.T) {
	target := Fixed(0.5)
	params := Params{
		VelocityY:       Fixed(0),
		AccelerationY:   Fixed(0.01),
		TargetVelocityY: &target,
		TTL:             Fixed(100000),
	}
	m := NewManager(&countingGenerator{}, PointSource(0, 0), testBound,
		Config{InitialCount: 1}, params)

	m.Update(0)
	c := m.active[0]

	// Cap reached at t = 0.5 / 0.01 = 50ms; afterwards motion is linear.
	m.Update(50)
	atCap := c.CurrentY()
	m.Update(150)
	want := atCap + 100*0.5
	if diff := c.CurrentY() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("CurrentY() = %v after the cap, want %v", c.CurrentY(), want)
	}
}

// TestRangeRandom verifies range sampling behavior.
func TestRangeRandom(t *testing.T) {
	if got := Fixed(3.5).Random(); got != 3.5 {
		t.Errorf("Fixed(3.5).Random() = %v, want 3.5", got)
	}
	if got := (Range{Min: 5, Max: 2}).Random(); got != 5 {
		t.Errorf("inverted range Random() = %v, want Min", got)
	}

	r := Range{Min: -2, Max: 2}
	for i := 0; i < 100; i++ {
		v := r.Random()
		if v < r.Min || v >= r.Max {
			t.Fatalf("Random() = %v outside [%v, %v)", v, r.Min, r.Max)
		}
	}
}

// TestSourceAt verifies spawn points stay on the source segment.
func TestSourceAt(t *testing.T) {
	t.Run("point source", func(t *testing.T) {
		s := PointSource(30, 40)
		for i := 0; i < 10; i++ {
			x, y := s.At()
			if x != 30 || y != 40 {
				t.Fatalf("At() = (%v, %v), want (30, 40)", x, y)
			}
		}
	})

	t.Run("horizontal line source", func(t *testing.T) {
		s := LineSource(0, 5, 100, 5)
		for i := 0; i < 100; i++ {
			x, y := s.At()
			if x < 0 || x > 100 {
				t.Fatalf("At() x = %v outside the segment", x)
			}
			if y != 5 {
				t.Fatalf("At() y = %v, want 5", y)
			}
		}
	})
}
