package charts

import (
	svg "github.com/ajstarks/svgo"
)

// Series is a chart series owning its animation state.
type Series interface {
	Title() string
	// Update composes the geometry of data and starts a transition from what
	// is displayed.
	Update([]Record)
	// Reset composes the geometry of data and starts over from nothing.
	Reset([]Record)
	Tick(float64)
	End()
	Animating() bool
	Finished() bool
	Render(*svg.SVG)
}

// Animation holds the knobs shared by every kind of series.
type Animation struct {
	Active           bool
	AnimateNewValues bool

	OnStart func()
	OnEnd   func()
}

type LineSeries struct {
	Name   string
	Config LineConfig
	Style  LineStyle

	*Animator[Point]
}

func NewLineSeries(name string, cfg LineConfig, style LineStyle, anim Animation) (*LineSeries, error) {
	a, err := NewAnimator(Options[Point]{
		Name:   name,
		Active: anim.Active,
		Blender: LineBlender{
			Width:            cfg.XAxis.Width,
			Height:           cfg.YAxis.Height,
			AnimateNewValues: anim.AnimateNewValues,
		},
		Reveal:      true,
		Measurer:    PolylineLength{},
		DashPattern: ParseDashPattern(style.DashPattern),
		OnStart:     anim.OnStart,
		OnEnd:       anim.OnEnd,
	})
	if err != nil {
		return nil, err
	}
	s := LineSeries{
		Name:     name,
		Config:   cfg,
		Style:    style,
		Animator: a,
	}
	return &s, nil
}

func (s *LineSeries) Title() string {
	return s.Name
}

func (s *LineSeries) Update(data []Record) {
	s.Replace(ComposeLine(s.Config, data))
}

func (s *LineSeries) Reset(data []Record) {
	s.Animator.Reset(ComposeLine(s.Config, data))
}

func (s *LineSeries) Render(canvas *svg.SVG) {
	style := s.Style
	if style.Title == "" {
		style.Title = s.Name
	}
	RenderLine(canvas, s.Frame(), style)
}

type BarSeries struct {
	Name   string
	Config BarConfig
	Style  BarStyle

	*Animator[Rect]
}

func NewBarSeries(name string, cfg BarConfig, style BarStyle, anim Animation) (*BarSeries, error) {
	a, err := NewAnimator(Options[Rect]{
		Name:    name,
		Active:  anim.Active,
		Blender: BarBlender{Layout: cfg.Layout},
		OnStart: anim.OnStart,
		OnEnd:   anim.OnEnd,
	})
	if err != nil {
		return nil, err
	}
	s := BarSeries{
		Name:     name,
		Config:   cfg,
		Style:    style,
		Animator: a,
	}
	return &s, nil
}

func (s *BarSeries) Title() string {
	return s.Name
}

func (s *BarSeries) Update(data []Record) {
	s.Replace(ComposeBar(s.Config, data))
}

func (s *BarSeries) Reset(data []Record) {
	s.Animator.Reset(ComposeBar(s.Config, data))
}

func (s *BarSeries) Render(canvas *svg.SVG) {
	RenderBars(canvas, s.Frame(), s.Style)
}

type PieSeries struct {
	Name   string
	Config PieConfig
	Style  PieStyle

	*Animator[Sector]
}

func NewPieSeries(name string, cfg PieConfig, style PieStyle, anim Animation) (*PieSeries, error) {
	a, err := NewAnimator(Options[Sector]{
		Name:    name,
		Active:  anim.Active,
		Blender: BlendFunc[Sector](BlendSectors),
		OnStart: anim.OnStart,
		OnEnd:   anim.OnEnd,
	})
	if err != nil {
		return nil, err
	}
	s := PieSeries{
		Name:     name,
		Config:   cfg,
		Style:    style,
		Animator: a,
	}
	return &s, nil
}

func (s *PieSeries) Title() string {
	return s.Name
}

func (s *PieSeries) Update(data []Record) {
	s.Replace(ComposePie(s.Config, data))
}

func (s *PieSeries) Reset(data []Record) {
	s.Animator.Reset(ComposePie(s.Config, data))
}

func (s *PieSeries) Render(canvas *svg.SVG) {
	RenderPie(canvas, s.Frame(), s.Style)
}
