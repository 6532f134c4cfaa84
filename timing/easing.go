// Package timing turns elapsed time into the eased progress that drives the
// animation of a series.
package timing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

var ErrUnknownEasing = errors.New("unknown easing")

// Easing maps a linear progress in [0, 1] to an eased progress.
type Easing func(float64) float64

func Linear(t float64) float64 {
	return t
}

var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// Lookup returns the easing registered under name. The empty name is the
// default "ease" curve.
func Lookup(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease":
		return Ease, nil
	case "linear":
		return Linear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	case "spring":
		return Spring(60, 6, 0.5), nil
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownEasing)
	}
}

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 32
)

// CubicBezier builds the easing of a cubic bezier curve going from (0, 0) to
// (1, 1) with the control points (x1, y1) and (x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	var (
		cx = 3 * x1
		bx = 3*(x2-x1) - cx
		ax = 1 - cx - bx
		cy = 3 * y1
		by = 3*(y2-y1) - cy
		ay = 1 - cy - by
	)
	sampleX := func(s float64) float64 {
		return ((ax*s+bx)*s + cx) * s
	}
	sampleY := func(s float64) float64 {
		return ((ay*s+by)*s + cy) * s
	}
	derivX := func(s float64) float64 {
		return (3*ax*s+2*bx)*s + cx
	}
	solve := func(x float64) float64 {
		s := x
		for i := 0; i < newtonIterations; i++ {
			diff := sampleX(s) - x
			if math.Abs(diff) < newtonEpsilon {
				return s
			}
			d := derivX(s)
			if math.Abs(d) < newtonEpsilon {
				break
			}
			s -= diff / d
		}
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < bisectIterations; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < newtonEpsilon {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return sampleY(solve(t))
	}
}

const springSamples = 120

// Spring builds an easing from a damped spring moving from 0 to 1. The spring
// is simulated once; its overshoot is cut so that the progress never goes
// backward nor beyond 1.
func Spring(fps int, frequency, damping float64) Easing {
	var (
		spring  = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
		samples = make([]float64, springSamples+1)
		pos     float64
		vel     float64
	)
	for i := 1; i < len(samples); i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = math.Max(samples[i-1], math.Min(pos, 1))
	}
	samples[springSamples] = 1
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		var (
			at   = t * springSamples
			ix   = int(at)
			frac = at - float64(ix)
		)
		return samples[ix] + (samples[ix+1]-samples[ix])*frac
	}
}
