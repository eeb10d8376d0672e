package tweener

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease selects the easing curve applied to normalized progress.
type Ease uint8

const (
	Linear Ease = iota

	InSine
	OutSine
	InOutSine

	InQuad
	OutQuad
	InOutQuad

	InCubic
	OutCubic
	InOutCubic

	InQuart
	OutQuart
	InOutQuart

	InQuint
	OutQuint
	InOutQuint

	InExpo
	OutExpo
	InOutExpo

	InCirc
	OutCirc
	InOutCirc

	InBack
	OutBack
	InOutBack

	InElastic
	OutElastic
	InOutElastic

	InBounce
	OutBounce
	InOutBounce

	// The flash family oscillates and returns to the start value: f(1) is 0,
	// not 1.
	Flash
	InFlash
	OutFlash
	InOutFlash

	OutInSine
	OutInQuad
	OutInCubic
	OutInQuart
	OutInQuint
	OutInExpo
	OutInCirc
	OutInBack
	OutInElastic
	OutInBounce

	easeCount
)

// gweenFuncs maps every non-flash ease onto its gween implementation.
var gweenFuncs = [easeCount]ease.TweenFunc{
	Linear:       ease.Linear,
	InSine:       ease.InSine,
	OutSine:      ease.OutSine,
	InOutSine:    ease.InOutSine,
	InQuad:       ease.InQuad,
	OutQuad:      ease.OutQuad,
	InOutQuad:    ease.InOutQuad,
	InCubic:      ease.InCubic,
	OutCubic:     ease.OutCubic,
	InOutCubic:   ease.InOutCubic,
	InQuart:      ease.InQuart,
	OutQuart:     ease.OutQuart,
	InOutQuart:   ease.InOutQuart,
	InQuint:      ease.InQuint,
	OutQuint:     ease.OutQuint,
	InOutQuint:   ease.InOutQuint,
	InExpo:       ease.InExpo,
	OutExpo:      ease.OutExpo,
	InOutExpo:    ease.InOutExpo,
	InCirc:       ease.InCirc,
	OutCirc:      ease.OutCirc,
	InOutCirc:    ease.InOutCirc,
	InBack:       ease.InBack,
	OutBack:      ease.OutBack,
	InOutBack:    ease.InOutBack,
	InElastic:    ease.InElastic,
	OutElastic:   ease.OutElastic,
	InOutElastic: ease.InOutElastic,
	InBounce:     ease.InBounce,
	OutBounce:    ease.OutBounce,
	InOutBounce:  ease.InOutBounce,
	OutInSine:    ease.OutInSine,
	OutInQuad:    ease.OutInQuad,
	OutInCubic:   ease.OutInCubic,
	OutInQuart:   ease.OutInQuart,
	OutInQuint:   ease.OutInQuint,
	OutInExpo:    ease.OutInExpo,
	OutInCirc:    ease.OutInCirc,
	OutInBack:    ease.OutInBack,
	OutInElastic: ease.OutInElastic,
	OutInBounce:  ease.OutInBounce,
}

var easeNames = [easeCount]string{
	Linear:       "linear",
	InSine:       "inSine",
	OutSine:      "outSine",
	InOutSine:    "inOutSine",
	InQuad:       "inQuad",
	OutQuad:      "outQuad",
	InOutQuad:    "inOutQuad",
	InCubic:      "inCubic",
	OutCubic:     "outCubic",
	InOutCubic:   "inOutCubic",
	InQuart:      "inQuart",
	OutQuart:     "outQuart",
	InOutQuart:   "inOutQuart",
	InQuint:      "inQuint",
	OutQuint:     "outQuint",
	InOutQuint:   "inOutQuint",
	InExpo:       "inExpo",
	OutExpo:      "outExpo",
	InOutExpo:    "inOutExpo",
	InCirc:       "inCirc",
	OutCirc:      "outCirc",
	InOutCirc:    "inOutCirc",
	InBack:       "inBack",
	OutBack:      "outBack",
	InOutBack:    "inOutBack",
	InElastic:    "inElastic",
	OutElastic:   "outElastic",
	InOutElastic: "inOutElastic",
	InBounce:     "inBounce",
	OutBounce:    "outBounce",
	InOutBounce:  "inOutBounce",
	Flash:        "flash",
	InFlash:      "inFlash",
	OutFlash:     "outFlash",
	InOutFlash:   "inOutFlash",
	OutInSine:    "outInSine",
	OutInQuad:    "outInQuad",
	OutInCubic:   "outInCubic",
	OutInQuart:   "outInQuart",
	OutInQuint:   "outInQuint",
	OutInExpo:    "outInExpo",
	OutInCirc:    "outInCirc",
	OutInBack:    "outInBack",
	OutInElastic: "outInElastic",
	OutInBounce:  "outInBounce",
}

// Evaluate maps normalized progress t through the easing curve.
//
// Every ease except the flash family returns exactly 0 at t=0 and 1 at t=1.
// Back and elastic overshoot outside [0, 1] in between, and t itself may lie
// outside [0, 1] when a Curve remaps it; neither is clamped. Unknown values
// behave as Linear.
func (e Ease) Evaluate(t float64) float64 {
	switch e {
	case Flash:
		return math.Sin(t*math.Pi*4) * (1 - t)
	case InFlash:
		return math.Sin(t*math.Pi*2) * t
	case OutFlash:
		return math.Sin(t*math.Pi*2) * (1 - t)
	case InOutFlash:
		if t < 0.5 {
			return math.Sin(t*math.Pi*4) * t * 2
		}
		return math.Sin(t*math.Pi*4) * (1 - t) * 2
	}
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	if e >= easeCount || e == Linear {
		return t
	}
	return float64(gweenFuncs[e](float32(t), 0, 1, 1))
}

// Func returns the curve as a gween ease function, for code that drives
// gween tweens directly.
func (e Ease) Func() ease.TweenFunc {
	if e < easeCount {
		if fn := gweenFuncs[e]; fn != nil {
			return fn
		}
	}
	return func(t, b, c, d float32) float32 {
		return b + c*float32(e.Evaluate(float64(t/d)))
	}
}

func (e Ease) String() string {
	if e < easeCount {
		return easeNames[e]
	}
	return fmt.Sprintf("Ease(%d)", uint8(e))
}

// ParseEase returns the ease with the given name, ignoring case.
func ParseEase(name string) (Ease, error) {
	for i, n := range easeNames {
		if strings.EqualFold(n, name) {
			return Ease(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown ease %q", name)
}

// Eases returns every defined ease in declaration order.
func Eases() []Ease {
	all := make([]Ease, easeCount)
	for i := range all {
		all[i] = Ease(i)
	}
	return all
}
