package timing

import (
	"context"
	"math"
	"time"

	"github.com/midbel/animcharts/logging"
)

// Timeline tells when an animation starts, how long it lasts and how its
// progress is eased.
type Timeline struct {
	Begin    time.Duration
	Duration time.Duration
	Easing   Easing
}

// Progress returns the eased progress after elapsed time. It stays at 0 until
// Begin and reaches exactly 1 at the end of the timeline.
func (t Timeline) Progress(elapsed time.Duration) float64 {
	elapsed -= t.Begin
	if elapsed < 0 {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}
	p := float64(elapsed) / float64(t.Duration)
	if t.Easing != nil {
		p = t.Easing(p)
	}
	return clamp(p)
}

// Frames samples the timeline at fps frames per second, the delay before
// Begin excepted. The first frame is 0, the last is 1 and no frame goes
// backward.
func (t Timeline) Frames(fps int) []float64 {
	if fps <= 0 {
		fps = 1
	}
	n := int(math.Ceil(t.Duration.Seconds() * float64(fps)))
	if n < 1 {
		n = 1
	}
	list := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		elapsed := t.Begin + time.Duration(float64(t.Duration)*float64(i)/float64(n))
		list[i] = math.Max(list[i-1], t.Progress(elapsed))
	}
	list[n] = 1
	return list
}

// Hooks are called by Run.
type Hooks struct {
	OnStart func()
	OnTick  func(float64)
	OnEnd   func()
}

// Run plays the timeline in real time at fps frames per second. It returns
// when the last frame has been delivered or when ctx is done.
func (t Timeline) Run(ctx context.Context, fps int, hooks Hooks) error {
	if fps <= 0 {
		fps = 60
	}
	if t.Begin > 0 {
		timer := time.NewTimer(t.Begin)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if hooks.OnStart != nil {
		hooks.OnStart()
	}
	var (
		now    = time.Now()
		ticker = time.NewTicker(time.Second / time.Duration(fps))
		last   float64
	)
	defer ticker.Stop()

	tl := t
	tl.Begin = 0
	for last < 1 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		last = math.Max(last, tl.Progress(time.Since(now)))
		if hooks.OnTick != nil {
			hooks.OnTick(last)
		}
	}
	logging.Debug().
		Add(logging.Component("timing")).
		Add(logging.Duration(time.Since(now))).
		Msg("timeline completed")
	if hooks.OnEnd != nil {
		hooks.OnEnd()
	}
	return nil
}

func clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}
