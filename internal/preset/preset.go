package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/confetti/pkg/easing"
	"github.com/gonewx/confetti/pkg/emitter"
)

// Preset is one named emitter configuration from a preset file.
//
// Motion fields are strings in ParseValue syntax (fixed or "[min max]") and
// use author-friendly per-second units: velocities in px/s (degrees/s for
// rotation), accelerations in px/s². Params converts them to the engine's
// per-millisecond units. Durations are plain milliseconds.
type Preset struct {
	Name string `yaml:"name"`

	// Emission schedule.
	InitialCount     int     `yaml:"initialCount"`
	EmissionRate     float64 `yaml:"emissionRate"`     // confetti per second, 0 = burst only
	EmissionDuration int64   `yaml:"emissionDuration"` // ms, 0 = unlimited
	MaxActive        int     `yaml:"maxActive"`
	MaxLaunched      int     `yaml:"maxLaunched"`

	// Per-confetto motion, in per-second units.
	VelocityX     string `yaml:"velocityX"`
	VelocityY     string `yaml:"velocityY"`
	AccelerationX string `yaml:"accelerationX"`
	AccelerationY string `yaml:"accelerationY"`

	// Optional velocity caps; empty = uncapped.
	TargetVelocityX string `yaml:"targetVelocityX"`
	TargetVelocityY string `yaml:"targetVelocityY"`

	InitialRotation          string `yaml:"initialRotation"`
	RotationalVelocity       string `yaml:"rotationalVelocity"`
	RotationalAcceleration   string `yaml:"rotationalAcceleration"`
	TargetRotationalVelocity string `yaml:"targetRotationalVelocity"`

	// TTL in milliseconds; a negative fixed value means no TTL bound.
	TTL string `yaml:"ttl"`

	// Fade names an easing curve (see easing.ByName); empty = no fade.
	Fade string `yaml:"fade"`
}

// File is the root of a preset YAML document.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Parse decodes a preset document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return &f, nil
}

// Load reads and decodes a preset file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}
	return Parse(data)
}

// Find returns the preset with the given name.
func (f *File) Find(name string) (*Preset, bool) {
	for i := range f.Presets {
		if f.Presets[i].Name == name {
			return &f.Presets[i], true
		}
	}
	return nil, false
}

// Config maps the preset's emission schedule onto an emitter Config.
func (p *Preset) Config() emitter.Config {
	return emitter.Config{
		InitialCount:     p.InitialCount,
		EmissionRate:     p.EmissionRate,
		EmissionDuration: p.EmissionDuration,
		MaxActive:        p.MaxActive,
		MaxLaunched:      p.MaxLaunched,
	}
}

// Params resolves the preset's motion fields into emitter Params,
// converting per-second units to the engine's per-millisecond ones.
func (p *Preset) Params() (emitter.Params, error) {
	var params emitter.Params
	var err error

	if params.VelocityX, err = perSecond(p.VelocityX, "velocityX"); err != nil {
		return params, err
	}
	if params.VelocityY, err = perSecond(p.VelocityY, "velocityY"); err != nil {
		return params, err
	}
	if params.AccelerationX, err = perSecondSq(p.AccelerationX, "accelerationX"); err != nil {
		return params, err
	}
	if params.AccelerationY, err = perSecondSq(p.AccelerationY, "accelerationY"); err != nil {
		return params, err
	}
	if params.TargetVelocityX, err = optionalPerSecond(p.TargetVelocityX, "targetVelocityX"); err != nil {
		return params, err
	}
	if params.TargetVelocityY, err = optionalPerSecond(p.TargetVelocityY, "targetVelocityY"); err != nil {
		return params, err
	}

	if params.InitialRotation, err = parseField(p.InitialRotation, "initialRotation"); err != nil {
		return params, err
	}
	if params.RotationalVelocity, err = perSecond(p.RotationalVelocity, "rotationalVelocity"); err != nil {
		return params, err
	}
	if params.RotationalAcceleration, err = perSecondSq(p.RotationalAcceleration, "rotationalAcceleration"); err != nil {
		return params, err
	}
	if params.TargetRotationalVelocity, err = optionalPerSecond(p.TargetRotationalVelocity, "targetRotationalVelocity"); err != nil {
		return params, err
	}

	if p.TTL == "" {
		params.TTL = emitter.Fixed(-1)
	} else if params.TTL, err = parseField(p.TTL, "ttl"); err != nil {
		return params, err
	}

	if p.Fade != "" {
		curve, ok := easing.ByName(p.Fade)
		if !ok {
			return params, fmt.Errorf("preset %s: unknown fade curve %q", p.Name, p.Fade)
		}
		params.Fade = curve
	}

	return params, nil
}

func parseField(s, field string) (emitter.Range, error) {
	r, err := ParseValue(s)
	if err != nil {
		return emitter.Range{}, fmt.Errorf("field %s: %w", field, err)
	}
	return r, nil
}

// perSecond parses a field and converts px/s to px/ms.
func perSecond(s, field string) (emitter.Range, error) {
	r, err := parseField(s, field)
	if err != nil {
		return emitter.Range{}, err
	}
	return emitter.Range{Min: r.Min / 1000, Max: r.Max / 1000}, nil
}

// perSecondSq parses a field and converts px/s² to px/ms².
func perSecondSq(s, field string) (emitter.Range, error) {
	r, err := parseField(s, field)
	if err != nil {
		return emitter.Range{}, err
	}
	const msSq = 1000 * 1000
	return emitter.Range{Min: r.Min / msSq, Max: r.Max / msSq}, nil
}

func optionalPerSecond(s, field string) (*emitter.Range, error) {
	if s == "" {
		return nil, nil
	}
	r, err := perSecond(s, field)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
