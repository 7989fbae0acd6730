// Package confetto implements the per-particle kinematics engine behind the
// confetti animation: position, rotation and opacity of a single confetto as
// a pure function of elapsed time.
//
// A Confetto goes through three phases: configuration via the setters,
// a single Prepare call against the bounding region, then repeated
// ApplyUpdate calls with monotonically increasing elapsed time until it
// reports terminated. Prepare must run after configuration and before the
// first ApplyUpdate; this is a caller contract and is not checked on the
// per-frame hot path. A terminated confetto can be returned to a pool with
// Reset and reconfigured for reuse.
//
// A Confetto has no internal locking. Different confetti may be updated from
// different goroutines, but each individual confetto must only ever be
// touched by one goroutine at a time.
//
// All times are milliseconds; velocities are pixels (or degrees) per
// millisecond.
package confetto

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/confetti/pkg/easing"
)

// MaxAlpha is the fully opaque alpha value.
const MaxAlpha = 255

// Renderer draws a confetto shape. Implementations receive the draw options
// with a freshly reset GeoM and the current alpha already scaled into the
// ColorScale; they are responsible for composing the shape's own transform
// (centering, rotation in degrees, final translation to x/y) on top.
type Renderer interface {
	Render(dst *ebiten.Image, op *ebiten.DrawImageOptions, x, y, rotation float64)
}

// Confetto holds the configured motion parameters and live draw state of a
// single confetto.
type Confetto struct {
	renderer Renderer
	drawOpts ebiten.DrawImageOptions

	// Configured states.
	initialDelay int64
	x            MotionChannel
	y            MotionChannel
	rotation     MotionChannel
	ttl          int64 // negative = not bounded by TTL
	fade         easing.Curve

	// Derived once in Prepare.
	lifetime int64

	// Current draw states.
	currentX, currentY float64
	currentRotation    float64
	alpha              int // [0, MaxAlpha]
	started            bool
	terminated         bool
}

// New creates a confetto that renders through r. The zero state matches what
// Reset produces: no motion, no TTL bound, fully opaque.
func New(r Renderer) *Confetto {
	c := &Confetto{renderer: r}
	c.Reset()
	return c
}

// Prepare computes the derived motion state against the given bounding
// region. It must be called exactly once after all parameters are set and
// before the first ApplyUpdate.
//
// The confetto's lifetime becomes the earliest of its TTL (when
// non-negative) and the times at which x or y would exit the bound.
func (c *Confetto) Prepare(bound image.Rectangle) {
	c.x.prepare()
	c.y.prepare()
	c.rotation.prepare()

	c.lifetime = neverCrosses
	if c.ttl >= 0 {
		c.lifetime = c.ttl
	}
	if t := c.x.crossingTime(float64(bound.Min.X), float64(bound.Max.X)); t < c.lifetime {
		c.lifetime = t
	}
	if t := c.y.crossingTime(float64(bound.Min.Y), float64(bound.Max.Y)); t < c.lifetime {
		c.lifetime = t
	}
}

// ApplyUpdate recomputes the confetto's draw state for the given time since
// the start of the animation and reports whether it has terminated.
//
// It is a pure function of passed and the prepared parameters: calling it
// twice with the same value yields the same state. Before the initial delay
// elapses nothing is updated. Once terminated, further calls are no-ops
// until Reset.
func (c *Confetto) ApplyUpdate(passed int64) bool {
	animated := passed - c.initialDelay
	c.started = animated >= 0

	if c.started && !c.terminated {
		c.currentX = c.x.positionAt(animated)
		c.currentY = c.y.positionAt(animated)
		c.currentRotation = c.rotation.positionAt(animated)

		if c.fade != nil {
			progress := 1.0
			if c.lifetime > 0 {
				progress = float64(animated) / float64(c.lifetime)
			}
			a := int(math.Round(c.fade(progress) * MaxAlpha))
			if a < 0 {
				a = 0
			} else if a > MaxAlpha {
				a = MaxAlpha
			}
			c.alpha = a
		} else {
			c.alpha = MaxAlpha
		}

		c.terminated = animated >= c.lifetime
	}

	return c.terminated
}

// Draw renders the confetto. It is a no-op before the initial delay elapses
// and after termination; when active it resets the reusable draw options,
// scales in the current alpha and delegates to the renderer.
func (c *Confetto) Draw(dst *ebiten.Image) {
	if !c.started || c.terminated || c.renderer == nil {
		return
	}
	c.drawOpts.GeoM.Reset()
	c.drawOpts.ColorScale.Reset()
	c.drawOpts.ColorScale.ScaleAlpha(float32(c.alpha) / MaxAlpha)
	c.renderer.Render(dst, &c.drawOpts, c.currentX, c.currentY, c.currentRotation)
}

// Reset returns the confetto to its default state so a pool can reuse it.
// The renderer is kept: a recycled confetto keeps its shape.
func (c *Confetto) Reset() {
	c.initialDelay = 0
	c.x = MotionChannel{}
	c.y = MotionChannel{}
	c.rotation = MotionChannel{}
	c.ttl = -1
	c.fade = nil

	c.lifetime = 0

	c.currentX = 0
	c.currentY = 0
	c.currentRotation = 0
	c.alpha = MaxAlpha
	c.started = false
	c.terminated = false
}

// Setters for the configured states.

// SetRenderer replaces the drawing collaborator.
func (c *Confetto) SetRenderer(r Renderer) { c.renderer = r }

// SetInitialDelay sets how many milliseconds pass before the confetto
// starts moving.
func (c *Confetto) SetInitialDelay(ms int64) { c.initialDelay = ms }

func (c *Confetto) SetInitialX(v float64)        { c.x.Initial = v }
func (c *Confetto) SetInitialY(v float64)        { c.y.Initial = v }
func (c *Confetto) SetInitialRotation(v float64) { c.rotation.Initial = v }

func (c *Confetto) SetVelocityX(v float64)          { c.x.Velocity = v }
func (c *Confetto) SetVelocityY(v float64)          { c.y.Velocity = v }
func (c *Confetto) SetRotationalVelocity(v float64) { c.rotation.Velocity = v }

func (c *Confetto) SetAccelerationX(v float64)          { c.x.Acceleration = v }
func (c *Confetto) SetAccelerationY(v float64)          { c.y.Acceleration = v }
func (c *Confetto) SetRotationalAcceleration(v float64) { c.rotation.Acceleration = v }

// SetTargetVelocityX caps the x velocity. Confetti start uncapped; Reset
// removes a previously set cap.
func (c *Confetto) SetTargetVelocityX(v float64) { c.x.TargetVelocity = &v }

// SetTargetVelocityY caps the y velocity.
func (c *Confetto) SetTargetVelocityY(v float64) { c.y.TargetVelocity = &v }

// SetTargetRotationalVelocity caps the rotational velocity.
func (c *Confetto) SetTargetRotationalVelocity(v float64) { c.rotation.TargetVelocity = &v }

// SetTTL sets the time-to-live in milliseconds. A negative value means the
// lifetime is bounded only by the confetto exiting the prepared region.
func (c *Confetto) SetTTL(ms int64) { c.ttl = ms }

// SetFade installs the fade-out curve: a function from normalized lifetime
// progress in [0,1] to an opacity fraction in [0,1]. nil keeps the confetto
// fully opaque for its whole life.
func (c *Confetto) SetFade(curve easing.Curve) { c.fade = curve }

// Accessors for the current draw states.

func (c *Confetto) CurrentX() float64        { return c.currentX }
func (c *Confetto) CurrentY() float64        { return c.currentY }
func (c *Confetto) CurrentRotation() float64 { return c.currentRotation }

// Alpha returns the current opacity in [0, MaxAlpha].
func (c *Confetto) Alpha() int { return c.alpha }

// Started reports whether the initial delay has elapsed.
func (c *Confetto) Started() bool { return c.started }

// Terminated reports whether the confetto has reached the end of its
// lifetime.
func (c *Confetto) Terminated() bool { return c.terminated }

// Lifetime returns the prepared lifetime in milliseconds. math.MaxInt64
// means the confetto never terminates on its own.
func (c *Confetto) Lifetime() int64 { return c.lifetime }
