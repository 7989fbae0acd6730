// Package emitter drives fleets of confetti: it owns the object pool,
// schedules emission over time and recycles confetti once the kinematics
// engine reports them terminated. The per-confetto math itself lives in
// pkg/confetto; this package is the container/emitter collaborator around
// it.
package emitter

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/confetti/pkg/confetto"
)

// Generator produces fresh confetti for a Manager, with their Renderer
// already attached. It is only invoked when the recycle pool is empty, so a
// steady-state animation allocates nothing per frame.
type Generator interface {
	Generate() *confetto.Confetto
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func() *confetto.Confetto

func (f GeneratorFunc) Generate() *confetto.Confetto { return f() }

// Config controls a Manager's emission schedule.
type Config struct {
	// InitialCount confetti are launched in a burst when the animation
	// starts. With EmissionRate == 0 this burst is the whole animation
	// (at least one confetto is launched even when zero).
	InitialCount int

	// EmissionRate is the continuous launch rate in confetti per second.
	// 0 means burst-only.
	EmissionRate float64

	// EmissionDuration limits how long (ms) continuous emission runs.
	// 0 means emission never stops on its own.
	EmissionDuration int64

	// MaxActive caps how many confetti may be alive at once. 0 = unlimited.
	MaxActive int

	// MaxLaunched caps the total number of confetti ever launched.
	// 0 = unlimited.
	MaxLaunched int
}

// Manager owns and drives a set of confetti inside a bounding region.
//
// The caller supplies monotonically increasing elapsed time (ms since the
// animation started) to Update each frame; the manager launches confetti
// according to its Config, updates every active confetto and moves
// terminated ones back into the recycle pool.
type Manager struct {
	cfg    Config
	params Params
	source Source
	bound  image.Rectangle
	gen    Generator

	pool   []*confetto.Confetto
	active []*confetto.Confetto

	launched  int
	nextSpawn float64
	burstDone bool
	elapsed   int64
}

// NewManager creates a manager that spawns confetti from source, confines
// them to bound and randomizes each launch from params.
func NewManager(gen Generator, source Source, bound image.Rectangle, cfg Config, params Params) *Manager {
	return &Manager{
		cfg:    cfg,
		params: params,
		source: source,
		bound:  bound,
		gen:    gen,
	}
}

// Update advances the animation to the given elapsed time (ms since the
// animation started). It launches any confetti due by now, updates all
// active confetti and recycles the terminated ones.
func (m *Manager) Update(elapsed int64) {
	m.elapsed = elapsed
	m.spawn(elapsed)

	alive := m.active[:0]
	for _, c := range m.active {
		if c.ApplyUpdate(elapsed) {
			c.Reset()
			m.pool = append(m.pool, c)
		} else {
			alive = append(alive, c)
		}
	}
	m.active = alive
}

// Draw renders every active confetto.
func (m *Manager) Draw(dst *ebiten.Image) {
	for _, c := range m.active {
		c.Draw(dst)
	}
}

// ActiveCount returns how many confetti are currently alive.
func (m *Manager) ActiveCount() int { return len(m.active) }

// Launched returns the total number of confetti launched so far.
func (m *Manager) Launched() int { return m.launched }

// Done reports whether emission has finished and every launched confetto
// has terminated.
func (m *Manager) Done() bool {
	if len(m.active) > 0 || m.launched == 0 {
		return false
	}
	if m.cfg.EmissionRate == 0 {
		return m.burstDone
	}
	if m.cfg.MaxLaunched > 0 && m.launched >= m.cfg.MaxLaunched {
		return true
	}
	return m.cfg.EmissionDuration > 0 && m.elapsed >= m.cfg.EmissionDuration
}

// Reset recycles all active confetti and rewinds the emission schedule so
// the manager can run the animation again from elapsed 0.
func (m *Manager) Reset() {
	for _, c := range m.active {
		c.Reset()
		m.pool = append(m.pool, c)
	}
	m.active = m.active[:0]
	m.launched = 0
	m.nextSpawn = 0
	m.burstDone = false
	m.elapsed = 0
}

// spawn launches everything due at the given elapsed time: the initial
// burst once, then rate-scheduled confetti while emission is running.
func (m *Manager) spawn(elapsed int64) {
	if !m.burstDone {
		n := m.cfg.InitialCount
		if n == 0 && m.cfg.EmissionRate == 0 {
			n = 1
		}
		for i := 0; i < n && m.canSpawn(); i++ {
			m.launch(elapsed)
		}
		m.burstDone = true
		m.nextSpawn = float64(elapsed)
	}

	if m.cfg.EmissionRate <= 0 {
		return
	}
	if m.cfg.EmissionDuration > 0 && elapsed > m.cfg.EmissionDuration {
		return
	}

	interval := 1000.0 / m.cfg.EmissionRate
	for float64(elapsed) >= m.nextSpawn {
		if m.canSpawn() {
			// The initial delay below uses the scheduled time, not the
			// frame time, so slow frames don't bunch confetti together.
			m.launch(int64(m.nextSpawn))
		}
		m.nextSpawn += interval
		// Guard against a runaway loop when the rate is tiny or elapsed
		// jumps far ahead.
		if m.nextSpawn > float64(elapsed)+10000 {
			break
		}
	}
}

// canSpawn checks the active/launched caps.
func (m *Manager) canSpawn() bool {
	if m.cfg.MaxActive > 0 && len(m.active) >= m.cfg.MaxActive {
		return false
	}
	if m.cfg.MaxLaunched > 0 && m.launched >= m.cfg.MaxLaunched {
		return false
	}
	return true
}

// launch configures one confetto from the params, prepares it against the
// bound and adds it to the active set. at is the manager-clock time (ms) at
// which the confetto begins to move; it becomes the confetto's initial
// delay so that every confetto shares the manager's clock.
func (m *Manager) launch(at int64) {
	c := m.obtain()

	x, y := m.source.At()
	c.SetInitialDelay(at)
	c.SetInitialX(x)
	c.SetInitialY(y)
	c.SetVelocityX(m.params.VelocityX.Random())
	c.SetVelocityY(m.params.VelocityY.Random())
	c.SetAccelerationX(m.params.AccelerationX.Random())
	c.SetAccelerationY(m.params.AccelerationY.Random())
	if m.params.TargetVelocityX != nil {
		c.SetTargetVelocityX(m.params.TargetVelocityX.Random())
	}
	if m.params.TargetVelocityY != nil {
		c.SetTargetVelocityY(m.params.TargetVelocityY.Random())
	}
	c.SetInitialRotation(m.params.InitialRotation.Random())
	c.SetRotationalVelocity(m.params.RotationalVelocity.Random())
	c.SetRotationalAcceleration(m.params.RotationalAcceleration.Random())
	if m.params.TargetRotationalVelocity != nil {
		c.SetTargetRotationalVelocity(m.params.TargetRotationalVelocity.Random())
	}
	c.SetTTL(int64(m.params.TTL.Random()))
	c.SetFade(m.params.Fade)

	c.Prepare(m.bound)

	m.active = append(m.active, c)
	m.launched++
}

// obtain pops a recycled confetto, falling back to the generator when the
// pool is empty.
func (m *Manager) obtain() *confetto.Confetto {
	if n := len(m.pool); n > 0 {
		c := m.pool[n-1]
		m.pool = m.pool[:n-1]
		return c
	}
	return m.gen.Generate()
}
