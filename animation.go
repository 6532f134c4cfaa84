package charts

import (
	"math"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"

	"github.com/midbel/animcharts/logging"
)

const (
	PhaseStatic    = "static"
	PhaseAnimating = "animating"
)

const (
	stateStatic    statekit.StateID = PhaseStatic
	stateAnimating statekit.StateID = PhaseAnimating
)

const (
	eventAnimate statekit.EventType = "ANIMATE"
	eventSettle  statekit.EventType = "SETTLE"
	eventTick    statekit.EventType = "TICK"
	eventEnd     statekit.EventType = "END"
	eventFocus   statekit.EventType = "FOCUS"
)

// replacement is the payload of ANIMATE and SETTLE. fresh asks to forget
// the displayed geometry instead of transitioning from it.
type replacement[G any] struct {
	geometry []G
	fresh    bool
}

// State is the memory a series keeps between two renderings. It is only
// changed by the actions of the series machine.
type State[G any] struct {
	Previous    []G
	HasPrevious bool
	Current     []G
	Displayed   []G

	TotalLength float64
	Dasharray   string
	Progress    float64

	Token      string
	Generation int
	Focus      int
	Finished   bool
}

// Options configures an Animator.
type Options[G any] struct {
	Name   string
	Active bool

	Blender Blender[G]

	// Reveal draws the first generation by stroking its path progressively
	// instead of blending it. It needs Measurer.
	Reveal      bool
	Measurer    PathMeasurer[G]
	DashPattern []float64

	OnStart func()
	OnEnd   func()
}

// Animator owns the animation state of one series.
type Animator[G any] struct {
	opts   Options[G]
	state  *State[G]
	interp *statekit.Interpreter[*State[G]]
}

func NewAnimator[G any](opts Options[G]) (*Animator[G], error) {
	a := &Animator[G]{
		opts: opts,
		state: &State[G]{
			Token:    uuid.NewString(),
			Focus:    -1,
			Finished: true,
		},
	}
	machine, err := a.machine()
	if err != nil {
		return nil, err
	}
	a.interp = statekit.NewInterpreter(machine)
	a.interp.UpdateContext(func(c **State[G]) {
		*c = a.state
	})
	a.interp.Start()
	return a, nil
}

func (a *Animator[G]) machine() (*statekit.MachineConfig[*State[G]], error) {
	return statekit.NewMachine[*State[G]]("series").
		WithInitial(stateStatic).
		WithContext(a.state).
		WithAction("begin", a.begin).
		WithAction("settle", a.settle).
		WithAction("tick", a.tick).
		WithAction("finish", a.finish).
		WithAction("focus", a.focus).
		WithGuard("validProgress", validProgress[G]).
		State(stateStatic).
			On(eventAnimate).Target(stateAnimating).Do("begin").
			On(eventSettle).Target(stateStatic).Do("settle").
			On(eventFocus).Target(stateStatic).Do("focus").
			Done().
		State(stateAnimating).
			On(eventAnimate).Target(stateAnimating).Do("begin").
			On(eventSettle).Target(stateStatic).Do("settle").
			On(eventTick).Target(stateAnimating).Guard("validProgress").Do("tick").
			On(eventEnd).Target(stateStatic).Do("finish").
			On(eventFocus).Target(stateAnimating).Do("focus").
			Done().
		Build()
}

// Replace gives the series its new geometry. Nothing happens when it equals
// the current one. Otherwise a new generation starts from what is displayed
// now, or the geometry is shown at once when animation is not active.
func (a *Animator[G]) Replace(geometry []G) {
	if a.state.Generation > 0 && Equal(geometry, a.state.Current) {
		return
	}
	a.send(geometry, false)
}

// Reset gives the series its new geometry and forgets the displayed one: the
// transition starts from nothing and the animation token changes.
func (a *Animator[G]) Reset(geometry []G) {
	a.send(geometry, true)
}

func (a *Animator[G]) send(geometry []G, fresh bool) {
	event := statekit.Event{
		Type: eventAnimate,
		Payload: replacement[G]{
			geometry: geometry,
			fresh:    fresh,
		},
	}
	if !a.opts.Active {
		event.Type = eventSettle
	}
	a.interp.Send(event)
}

// Tick moves the running animation to progress t. Ticks outside [0, 1] or
// going backward are ignored.
func (a *Animator[G]) Tick(t float64) {
	if !a.Animating() {
		return
	}
	a.interp.Send(statekit.Event{
		Type:    eventTick,
		Payload: t,
	})
}

// End completes the running animation.
func (a *Animator[G]) End() {
	if !a.Animating() {
		return
	}
	a.interp.Send(statekit.Event{Type: eventEnd})
}

// MoveFocus moves the focused element by delta, wrapping around.
func (a *Animator[G]) MoveFocus(delta int) {
	a.interp.Send(statekit.Event{
		Type:    eventFocus,
		Payload: delta,
	})
}

func (a *Animator[G]) Phase() string {
	return string(a.interp.State().Value)
}

func (a *Animator[G]) Animating() bool {
	return a.interp.Matches(stateAnimating)
}

// Finished reports whether the last generation is completely displayed.
// Decorations such as labels wait for it.
func (a *Animator[G]) Finished() bool {
	return a.state.Finished
}

func (a *Animator[G]) Token() string {
	return a.state.Token
}

func (a *Animator[G]) Displayed() []G {
	return a.state.Displayed
}

func (a *Animator[G]) Focus() int {
	return a.state.Focus
}

// Frame is a copy of what has to be drawn for the series.
type Frame[G any] struct {
	Geometry   []G
	Dasharray  string
	Progress   float64
	Animating  bool
	Finished   bool
	Token      string
	Generation int
	Focus      int
}

func (a *Animator[G]) Frame() Frame[G] {
	return Frame[G]{
		Geometry:   a.state.Displayed,
		Dasharray:  a.state.Dasharray,
		Progress:   a.state.Progress,
		Animating:  a.Animating(),
		Finished:   a.state.Finished,
		Token:      a.state.Token,
		Generation: a.state.Generation,
		Focus:      a.state.Focus,
	}
}

func (a *Animator[G]) begin(ctx **State[G], event statekit.Event) {
	rep, ok := event.Payload.(replacement[G])
	if !ok {
		return
	}
	s := *ctx
	if rep.fresh {
		s.Token = uuid.NewString()
		s.Displayed = nil
	}
	s.Previous = s.Displayed
	s.HasPrevious = len(s.Displayed) > 0
	s.Current = rep.geometry
	s.Generation++
	s.Progress = 0
	s.Finished = false
	s.TotalLength = 0
	if a.revealing(s) {
		s.TotalLength = MeasureLength(a.opts.Measurer, s.Current)
	}
	a.render(s)

	logging.Debug().
		Add(logging.Series(a.opts.Name)).
		Add(logging.Generation(s.Generation)).
		Add(logging.Token(s.Token)).
		Add(logging.Count(len(s.Current))).
		Msg("animation started")
	if a.opts.OnStart != nil {
		a.opts.OnStart()
	}
}

func (a *Animator[G]) settle(ctx **State[G], event statekit.Event) {
	rep, ok := event.Payload.(replacement[G])
	if !ok {
		return
	}
	s := *ctx
	if rep.fresh {
		s.Token = uuid.NewString()
		s.Displayed = nil
	}
	s.Previous = s.Displayed
	s.HasPrevious = len(s.Displayed) > 0
	s.Current = rep.geometry
	s.Displayed = rep.geometry
	s.Generation++
	s.Progress = 1
	s.Dasharray = ""
	s.Finished = true
}

func (a *Animator[G]) tick(ctx **State[G], event statekit.Event) {
	t, ok := event.Payload.(float64)
	if !ok {
		return
	}
	s := *ctx
	s.Progress = t
	a.render(s)
}

func (a *Animator[G]) finish(ctx **State[G], _ statekit.Event) {
	s := *ctx
	s.Progress = 1
	s.Displayed = s.Current
	s.Dasharray = ""
	s.Finished = true

	logging.Debug().
		Add(logging.Series(a.opts.Name)).
		Add(logging.Generation(s.Generation)).
		Msg("animation ended")
	if a.opts.OnEnd != nil {
		a.opts.OnEnd()
	}
}

func (a *Animator[G]) focus(ctx **State[G], event statekit.Event) {
	delta, ok := event.Payload.(int)
	if !ok {
		return
	}
	s := *ctx
	n := len(s.Displayed)
	if n == 0 {
		s.Focus = -1
		return
	}
	if s.Focus < 0 && delta > 0 {
		delta--
	}
	s.Focus = ((max(s.Focus, 0)+delta)%n + n) % n
}

func (a *Animator[G]) revealing(s *State[G]) bool {
	return a.opts.Reveal && !s.HasPrevious
}

// render computes the displayed geometry of s at its progress.
func (a *Animator[G]) render(s *State[G]) {
	if a.revealing(s) {
		s.Displayed = s.Current
		s.Dasharray = RevealDasharray(s.TotalLength, s.Progress, a.opts.DashPattern)
		return
	}
	s.Dasharray = ""
	if a.opts.Blender == nil {
		s.Displayed = s.Current
		return
	}
	s.Displayed = a.opts.Blender.Blend(s.Previous, s.Current, s.Progress)
}

func validProgress[G any](s *State[G], event statekit.Event) bool {
	t, ok := event.Payload.(float64)
	if !ok || math.IsNaN(t) {
		return false
	}
	return t >= 0 && t <= 1 && t >= s.Progress
}
