package easing

import "github.com/tanema/gween/ease"

// FromTween adapts a gween easing function to a Curve by evaluating it over
// a unit tween (begin 0, change 1, duration 1). This opens the full gween
// catalog (sine, bounce, elastic, ...) to anything that takes a Curve.
func FromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// curves is the registry used by preset files to pick a fade curve by name.
// The hand-rolled curves above cover the common cases; the rest are bridged
// from gween.
var curves = map[string]Curve{
	"linear":     Linear,
	"inQuad":     InQuad,
	"outQuad":    OutQuad,
	"inCubic":    InCubic,
	"outCubic":   OutCubic,
	"inOutCubic": InOutCubic,
	"outExpo":    OutExpo,

	"inSine":     FromTween(ease.InSine),
	"outSine":    FromTween(ease.OutSine),
	"inOutSine":  FromTween(ease.InOutSine),
	"inQuart":    FromTween(ease.InQuart),
	"outQuart":   FromTween(ease.OutQuart),
	"inExpo":     FromTween(ease.InExpo),
	"inCirc":     FromTween(ease.InCirc),
	"outCirc":    FromTween(ease.OutCirc),
	"outBounce":  FromTween(ease.OutBounce),
	"outElastic": FromTween(ease.OutElastic),
}

// ByName looks up a registered curve. Names ending in ":reverse" return the
// reversed curve, which is the usual shape for a fade-out (opaque at birth,
// transparent at death).
func ByName(name string) (Curve, bool) {
	const reverseSuffix = ":reverse"
	if n := len(name) - len(reverseSuffix); n > 0 && name[n:] == reverseSuffix {
		c, ok := curves[name[:n]]
		if !ok {
			return nil, false
		}
		return Reverse(c), true
	}
	c, ok := curves[name]
	return c, ok
}
