package dash

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	charts "github.com/midbel/animcharts"
	"github.com/midbel/animcharts/timing"
)

var (
	ErrConfigNotFound    = errors.New("config not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnknownKind       = errors.New("unknown chart kind")
	ErrMissingEnv        = errors.New("missing environment variable")
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultPath   = "out.svg"
	DefaultDelim  = ","
)

const (
	KindLine = "line"
	KindBar  = "bar"
	KindPie  = "pie"
)

const (
	TypeNumber   = "number"
	TypeCategory = "category"
	TypeTime     = "time"
)

// DefaultTimeFormat is the layout of the dates of a time axis.
const DefaultTimeFormat = time.DateOnly

const (
	PosTop    = "top"
	PosRight  = "right"
	PosBottom = "bottom"
	PosLeft   = "left"
)

const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

type Padding struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

type Legend struct {
	Title    string   `yaml:"title" json:"title"`
	Position []string `yaml:"position" json:"position"`
}

type Limit struct {
	Beg int `yaml:"beg" json:"beg"`
	End int `yaml:"end" json:"end"`
}

// Data tells where the records come from. Category is the column giving the
// categories; each entry of Values gives one series.
type Data struct {
	Path      string   `yaml:"path" json:"path"`
	Sheet     string   `yaml:"sheet" json:"sheet"`
	Delimiter string   `yaml:"delimiter" json:"delimiter"`
	Category  string   `yaml:"category" json:"category"`
	Values    []string `yaml:"values" json:"values"`
	Limit     Limit    `yaml:"limit" json:"limit"`
}

// Input configures one side of the plot: x is the horizontal one. Position
// always applies to that side; the other settings follow the role of the axis
// (see Config.roles).
type Input struct {
	Type     string    `yaml:"type" json:"type"`
	Domain   []float64 `yaml:"domain" json:"domain"`
	Ticks    int       `yaml:"ticks" json:"ticks"`
	Position string    `yaml:"position" json:"position"`
	Format   string    `yaml:"format" json:"format"`

	AllowDuplicatedCategory bool `yaml:"allow_duplicated_category" json:"allow_duplicated_category"`
}

func (i Input) isNumber() bool {
	return i.Type == TypeNumber
}

func (i Input) isTime() bool {
	return i.Type == TypeTime
}

func (i Input) timeFormat() string {
	if i.Format == "" {
		return DefaultTimeFormat
	}
	return i.Format
}

type BarOptions struct {
	MinPointSize float64 `yaml:"min_point_size" json:"min_point_size"`
	Gap          float64 `yaml:"gap" json:"gap"`
	CategoryGap  float64 `yaml:"category_gap" json:"category_gap"`
	Stacked      bool    `yaml:"stacked" json:"stacked"`
	Background   string  `yaml:"background" json:"background"`
}

type PieOptions struct {
	Cx           string  `yaml:"cx" json:"cx"`
	Cy           string  `yaml:"cy" json:"cy"`
	InnerRadius  string  `yaml:"inner_radius" json:"inner_radius"`
	OuterRadius  string  `yaml:"outer_radius" json:"outer_radius"`
	StartAngle   float64 `yaml:"start_angle" json:"start_angle"`
	EndAngle     float64 `yaml:"end_angle" json:"end_angle"`
	MinAngle     float64 `yaml:"min_angle" json:"min_angle"`
	PaddingAngle float64 `yaml:"padding_angle" json:"padding_angle"`
}

// AnimationOptions are given in milliseconds.
type AnimationOptions struct {
	Active           bool   `yaml:"active" json:"active"`
	AnimateNewValues bool   `yaml:"animate_new_values" json:"animate_new_values"`
	Begin            int    `yaml:"begin" json:"begin"`
	Duration         int    `yaml:"duration" json:"duration"`
	Easing           string `yaml:"easing" json:"easing"`
	FPS              int    `yaml:"fps" json:"fps"`
}

func (a AnimationOptions) Timeline() (timing.Timeline, error) {
	ease, err := timing.Lookup(a.Easing)
	if err != nil {
		return timing.Timeline{}, err
	}
	tl := timing.Timeline{
		Begin:    time.Duration(a.Begin) * time.Millisecond,
		Duration: time.Duration(a.Duration) * time.Millisecond,
		Easing:   ease,
	}
	return tl, nil
}

type Config struct {
	Title  string  `yaml:"title" json:"title"`
	Output string  `yaml:"output" json:"output"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Pad    Padding `yaml:"padding" json:"padding"`
	Layout string  `yaml:"layout" json:"layout"`
	Kind   string  `yaml:"kind" json:"kind"`

	Data Data  `yaml:"data" json:"data"`
	X    Input `yaml:"x" json:"x"`
	Y    Input `yaml:"y" json:"y"`

	Style     Style            `yaml:"style" json:"style"`
	Bar       BarOptions       `yaml:"bar" json:"bar"`
	Pie       PieOptions       `yaml:"pie" json:"pie"`
	Animation AnimationOptions `yaml:"animation" json:"animation"`
	Legend    Legend           `yaml:"legend" json:"legend"`
}

func Default() Config {
	cfg := Config{
		Output: DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Pad: Padding{
			Top:    20,
			Right:  20,
			Bottom: 40,
			Left:   60,
		},
		Layout: LayoutHorizontal,
		Kind:   KindLine,
		Style:  GlobalStyle(),
		Animation: AnimationOptions{
			Active:           true,
			AnimateNewValues: true,
			Duration:         1500,
			Easing:           "ease",
			FPS:              30,
		},
	}
	cfg.Data.Delimiter = DefaultDelim
	cfg.X = Input{
		Type:     TypeCategory,
		Position: PosBottom,
	}
	cfg.Y = Input{
		Type:     TypeNumber,
		Ticks:    5,
		Position: PosLeft,
	}
	cfg.Pie.EndAngle = 360
	cfg.Pie.OuterRadius = "80%"
	return cfg
}

// Validate reports every problem of c at once.
func (c Config) Validate() error {
	var msgs []string
	if c.Width <= 0 || c.Height <= 0 {
		msgs = append(msgs, "width and height should be positive")
	}
	if c.Width-c.Pad.Left-c.Pad.Right <= 0 || c.Height-c.Pad.Top-c.Pad.Bottom <= 0 {
		msgs = append(msgs, "padding leaves no room to draw")
	}
	switch c.Kind {
	case KindLine, KindBar, KindPie:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
	switch c.Layout {
	case LayoutHorizontal, LayoutVertical:
	default:
		msgs = append(msgs, fmt.Sprintf("layout %q should be horizontal or vertical", c.Layout))
	}
	if c.Data.Path == "" {
		msgs = append(msgs, "data path is missing")
	}
	if len(c.Data.Values) == 0 {
		msgs = append(msgs, "no value column given")
	}
	if c.Kind == KindPie && len(c.Data.Values) > 1 {
		msgs = append(msgs, "a pie has only one value column")
	}
	for _, in := range []Input{c.X, c.Y} {
		switch in.Type {
		case TypeNumber, TypeCategory, TypeTime:
		default:
			msgs = append(msgs, fmt.Sprintf("axis type %q should be number, category or time", in.Type))
		}
		if n := len(in.Domain); n != 0 && n != 2 {
			msgs = append(msgs, "axis domain needs two values")
		}
	}
	if _, val := c.roles(); val.Type != TypeNumber && c.Kind != KindPie {
		msgs = append(msgs, "one axis should be a number axis")
	}
	switch c.Style.TextPosition {
	case "", "text-before", "text-after":
	default:
		msgs = append(msgs, fmt.Sprintf("text position %q should be text-before or text-after", c.Style.TextPosition))
	}
	for _, str := range []string{c.Pie.Cx, c.Pie.Cy, c.Pie.InnerRadius, c.Pie.OuterRadius} {
		if _, err := charts.ParseLength(str); err != nil {
			msgs = append(msgs, fmt.Sprintf("invalid length %q", str))
		}
	}
	if _, err := timing.Lookup(c.Animation.Easing); err != nil {
		msgs = append(msgs, err.Error())
	}
	if c.Animation.Duration < 0 || c.Animation.Begin < 0 || c.Animation.FPS < 0 {
		msgs = append(msgs, "animation timings should not be negative")
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (c Config) layout() charts.Layout {
	if c.Layout == LayoutVertical {
		return charts.Vertical
	}
	return charts.Horizontal
}

func (c Config) area() charts.Box {
	return charts.Box{
		Width:  c.Width - c.Pad.Left - c.Pad.Right,
		Height: c.Height - c.Pad.Top - c.Pad.Bottom,
	}
}

// Dashboard is a chart built from a Config together with its series.
type Dashboard struct {
	Chart    charts.Chart
	Series   []charts.Series
	Timeline timing.Timeline
	FPS      int

	cfg Config
}

// Build creates the chart and its series without data.
func (c Config) Build() (*Dashboard, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tl, err := c.Animation.Timeline()
	if err != nil {
		return nil, err
	}
	d := Dashboard{
		Chart:    createChart(c),
		Timeline: tl,
		FPS:      c.Animation.FPS,
		cfg:      c,
	}
	var (
		p    = c.plot(nil)
		anim = charts.Animation{
			Active:           c.Animation.Active,
			AnimateNewValues: c.Animation.AnimateNewValues,
		}
	)
	for i, col := range c.Data.Values {
		var (
			name = columnName(col)
			s    charts.Series
		)
		switch c.Kind {
		case KindLine:
			s, err = charts.NewLineSeries(name, p.lineConfig(i), c.Style.lineStyle(i), anim)
		case KindBar:
			s, err = charts.NewBarSeries(name, p.barConfig(i), c.Style.barStyle(i, c.Bar), anim)
		case KindPie:
			s, err = charts.NewPieSeries(name, p.pieConfig(i), c.Style.pieStyle(), anim)
		}
		if err != nil {
			return nil, err
		}
		d.Series = append(d.Series, s)
	}
	return &d, nil
}

// Update gives new records to every series. Axes are computed again.
func (d *Dashboard) Update(data []charts.Record) {
	d.apply(data)
	for _, s := range d.Series {
		s.Update(data)
	}
}

// Reset gives new records to every series and restarts their animation from
// nothing.
func (d *Dashboard) Reset(data []charts.Record) {
	d.apply(data)
	for _, s := range d.Series {
		s.Reset(data)
	}
}

func (d *Dashboard) apply(data []charts.Record) {
	p := d.cfg.plot(data)
	d.Chart.Left, d.Chart.Right, d.Chart.Top, d.Chart.Bottom = nil, nil, nil, nil
	if d.cfg.Kind != KindPie {
		p.place(&d.Chart, d.cfg)
	}
	for i, s := range d.Series {
		switch s := s.(type) {
		case *charts.LineSeries:
			s.Config = p.lineConfig(i)
		case *charts.BarSeries:
			s.Config = p.barConfig(i)
		case *charts.PieSeries:
			s.Config = p.pieConfig(i)
		}
	}
}

func (d *Dashboard) Tick(t float64) {
	for _, s := range d.Series {
		s.Tick(t)
	}
}

func (d *Dashboard) End() {
	for _, s := range d.Series {
		s.End()
	}
}

func (d *Dashboard) Animating() bool {
	for _, s := range d.Series {
		if s.Animating() {
			return true
		}
	}
	return false
}

func (d *Dashboard) Render(w io.Writer) error {
	return d.Chart.Render(w, d.Series...)
}

func createChart(cfg Config) charts.Chart {
	ch := charts.Chart{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Padding: charts.Padding{
			Top:    cfg.Pad.Top,
			Right:  cfg.Pad.Right,
			Bottom: cfg.Pad.Bottom,
			Left:   cfg.Pad.Left,
		},
	}
	ch.Legend.Title = cfg.Legend.Title
	for _, p := range cfg.Legend.Position {
		ch.Legend.Orient |= orientation(p)
	}
	return ch
}

func orientation(pos string) charts.Orientation {
	switch pos {
	case PosTop:
		return charts.OrientTop
	case PosBottom:
		return charts.OrientBottom
	case PosRight:
		return charts.OrientRight
	case PosLeft:
		return charts.OrientLeft
	default:
		return 0
	}
}
