package dash

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	charts "github.com/midbel/animcharts"
)

func salesRecords() []charts.Record {
	return []charts.Record{
		{"month": "Jan", "sales": "10", "costs": "4"},
		{"month": "Feb", "sales": "20", "costs": "8"},
		{"month": "Mar", "sales": "15", "costs": "12"},
	}
}

func salesConfig(kind string, values ...string) Config {
	cfg := Default()
	cfg.Kind = kind
	cfg.Data = Data{
		Path:      "sales.csv",
		Category:  "month",
		Values:    values,
		Delimiter: DefaultDelim,
	}
	return cfg
}

func TestPlotLine(t *testing.T) {
	var (
		data   = salesRecords()
		cfg    = salesConfig(KindLine, "sales")
		p      = cfg.plot(data)
		points = charts.ComposeLine(p.lineConfig(0), data)
		want   = [][2]float64{{120, 270}, {360, 0}, {600, 135}}
	)
	if p.bandSize != 240 {
		t.Fatalf("band size: want 240, got %f", p.bandSize)
	}
	if len(points) != len(want) {
		t.Fatalf("points: want %d, got %d", len(want), len(points))
	}
	for i, pt := range points {
		if !pt.Defined() {
			t.Errorf("point %d: should be defined", i)
			continue
		}
		if !closeTo(pt.X.V, want[i][0]) || !closeTo(pt.Y.V, want[i][1]) {
			t.Errorf("point %d: want %v, got (%f, %f)", i, want[i], pt.X.V, pt.Y.V)
		}
	}
}

func TestPlotStacked(t *testing.T) {
	var (
		data = []charts.Record{
			{"month": "Jan", "a": "1", "b": "2"},
			{"month": "Feb", "a": "3", "b": "2"},
		}
		cfg = salesConfig(KindBar, "a", "b")
	)
	cfg.Bar.Stacked = true

	p := cfg.plot(data)
	if _, hi := p.value.Scale.Domain(); hi != 5 {
		t.Errorf("value domain: want 5 as upper bound, got %f", hi)
	}
	bc := p.barConfig(1)
	if len(bc.Stacked) != 2 || bc.Stacked[1] != [2]float64{3, 5} {
		t.Errorf("stacked pairs: got %v", bc.Stacked)
	}
	first, second := p.barConfig(0).Position, bc.Position
	if first != second {
		t.Errorf("stacked bars should share their position: %v != %v", first, second)
	}
}

func TestStackValues(t *testing.T) {
	data := []charts.Record{
		{"a": 1, "b": 2},
		{"a": 3},
	}
	got := stackValues([]string{"a", "b"}, data)
	want := [][][2]float64{
		{{0, 1}, {0, 3}},
		{{1, 3}, {3, 3}},
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("stack %d/%d: want %v, got %v", i, j, want[i][j], got[i][j])
			}
		}
	}
}

func TestDomainOf(t *testing.T) {
	values := func(rec charts.Record) []float64 {
		f, ok := charts.FieldKey("v").Extract(rec).Float()
		if !ok {
			return nil
		}
		return []float64{f}
	}
	tests := []struct {
		Name   string
		Input  Input
		Data   []charts.Record
		Lo, Hi float64
	}{
		{
			Name:  "configured",
			Input: Input{Domain: []float64{-10, 10}},
			Data:  []charts.Record{{"v": 100}},
			Lo:    -10,
			Hi:    10,
		},
		{
			Name: "positive",
			Data: []charts.Record{{"v": 5}, {"v": 12}},
			Lo:   0,
			Hi:   12,
		},
		{
			Name: "negative",
			Data: []charts.Record{{"v": -5}, {"v": 3}, {"v": nil}},
			Lo:   -5,
			Hi:   3,
		},
		{
			Name: "empty",
			Lo:   0,
			Hi:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			lo, hi := domainOf(tt.Input, tt.Data, values)
			if lo != tt.Lo || hi != tt.Hi {
				t.Errorf("want [%f, %f], got [%f, %f]", tt.Lo, tt.Hi, lo, hi)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	data := []charts.Record{
		{"name": "a"},
		{"name": "b"},
		{"name": "a"},
		{},
	}
	key := charts.FieldKey("name")
	if got := strings.Join(categories(key, data, false), ","); got != "a,b,3" {
		t.Errorf("unique categories: got %s", got)
	}
	if got := strings.Join(categories(key, data, true), ","); got != "a,b,a,3" {
		t.Errorf("duplicated categories: got %s", got)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	cfg := salesConfig("radar", "sales")
	if _, err := cfg.Build(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDashboardAnimation(t *testing.T) {
	for _, kind := range []string{KindLine, KindBar, KindPie} {
		t.Run(kind, func(t *testing.T) {
			d, err := salesConfig(kind, "sales").Build()
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if len(d.Series) != 1 {
				t.Fatalf("series: want 1, got %d", len(d.Series))
			}
			d.Update(salesRecords())
			if !d.Animating() {
				t.Fatalf("update should start an animation")
			}
			d.Tick(0.5)

			var buf bytes.Buffer
			if err := d.Render(&buf); err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if !strings.Contains(buf.String(), `<g id="sales">`) {
				t.Errorf("series group missing")
			}
			d.End()
			if d.Animating() {
				t.Errorf("animation should be ended")
			}
			for _, s := range d.Series {
				if !s.Finished() {
					t.Errorf("%s: should be finished", s.Title())
				}
			}
		})
	}
}

func TestDashboardInactive(t *testing.T) {
	cfg := salesConfig(KindLine, "sales", "costs")
	cfg.Animation.Active = false

	d, err := cfg.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	d.Update(salesRecords())
	if d.Animating() {
		t.Fatalf("inactive animation should show data at once")
	}
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "stroke-dasharray") {
		t.Errorf("no line should be revealed")
	}
	if !strings.Contains(buf.String(), `<g id="costs">`) {
		t.Errorf("second series missing")
	}
}

func TestDashboardAxes(t *testing.T) {
	cfg := salesConfig(KindBar, "sales")
	cfg.Layout = LayoutVertical
	cfg.X.Position = PosTop

	d, err := cfg.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	d.Update(salesRecords())
	if d.Chart.Top == nil || d.Chart.Left == nil {
		t.Fatalf("axes not placed: top=%v left=%v", d.Chart.Top, d.Chart.Left)
	}
	if d.Chart.Left.Type != charts.AxisCategory {
		t.Errorf("vertical layout should put categories on the left axis")
	}
	if d.Chart.Bottom != nil {
		t.Errorf("bottom axis should not be set")
	}
}

func TestRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Layout   string
		X        Input
		Y        Input
		Category string
		Value    string
	}{
		{
			Name:     "horizontal defaults",
			Layout:   LayoutHorizontal,
			X:        Input{Type: TypeCategory},
			Y:        Input{Type: TypeNumber, Ticks: 5},
			Category: TypeCategory,
			Value:    TypeNumber,
		},
		{
			Name:     "vertical with horizontal defaults",
			Layout:   LayoutVertical,
			X:        Input{Type: TypeCategory},
			Y:        Input{Type: TypeNumber, Ticks: 5},
			Category: TypeCategory,
			Value:    TypeNumber,
		},
		{
			Name:     "vertical given by side",
			Layout:   LayoutVertical,
			X:        Input{Type: TypeNumber, Ticks: 5},
			Y:        Input{Type: TypeCategory},
			Category: TypeCategory,
			Value:    TypeNumber,
		},
		{
			Name:     "numeric categories",
			Layout:   LayoutVertical,
			X:        Input{Type: TypeNumber, Ticks: 5},
			Y:        Input{Type: TypeNumber},
			Category: TypeNumber,
			Value:    TypeNumber,
		},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Layout, cfg.X, cfg.Y = tt.Layout, tt.X, tt.Y
		cat, val := cfg.roles()
		if cat.Type != tt.Category || val.Type != tt.Value {
			t.Errorf("%s: want %s/%s, got %s/%s", tt.Name, tt.Category, tt.Value, cat.Type, val.Type)
		}
		if val.Ticks != 5 {
			t.Errorf("%s: value axis should keep its ticks, got %d", tt.Name, val.Ticks)
		}
	}
}

func TestPlotVerticalBars(t *testing.T) {
	var (
		data = salesRecords()
		cfg  = salesConfig(KindBar, "sales")
	)
	cfg.Layout = LayoutVertical

	p := cfg.plot(data)
	if p.category.Type != charts.AxisCategory {
		t.Fatalf("category axis should hold categories, got type %d", p.category.Type)
	}
	if p.bandSize != 180 {
		t.Fatalf("band size: want 180, got %f", p.bandSize)
	}
	var (
		rects = charts.ComposeBar(p.barConfig(0), data)
		want  = []charts.Box{
			{X: 0, Y: 0, Width: 360, Height: 180},
			{X: 0, Y: 180, Width: 720, Height: 180},
			{X: 0, Y: 360, Width: 540, Height: 180},
		}
	)
	if len(rects) != len(want) {
		t.Fatalf("bars: want %d, got %d", len(want), len(rects))
	}
	for i, r := range rects {
		w := want[i]
		if !closeTo(r.X, w.X) || !closeTo(r.Y, w.Y) || !closeTo(r.Width, w.Width) || !closeTo(r.Height, w.Height) {
			t.Errorf("bar %d: want %+v, got %+v", i, w, r.Box)
		}
	}
}

func TestDashboardVerticalBars(t *testing.T) {
	cfg := salesConfig(KindBar, "sales")
	cfg.Layout = LayoutVertical
	cfg.Animation.Active = false

	d, err := cfg.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	d.Update(salesRecords())
	bars, ok := d.Series[0].(*charts.BarSeries)
	if !ok {
		t.Fatalf("unexpected series %T", d.Series[0])
	}
	seen := make(map[float64]struct{})
	for i, r := range bars.Displayed() {
		if r.Width <= 0 || r.Height <= 0 {
			t.Errorf("bar %d: should be visible, got %+v", i, r.Box)
		}
		seen[r.Y] = struct{}{}
	}
	if len(seen) != 3 {
		t.Errorf("each bar should have its own category coordinate, got %v", seen)
	}
}

func TestPlotTimeAxis(t *testing.T) {
	var (
		data = []charts.Record{
			{"day": "2024-01-01", "sales": "10"},
			{"day": "2024-01-03", "sales": "20"},
			{"day": "2024-01-05", "sales": "15"},
		}
		cfg = salesConfig(KindLine, "sales")
	)
	cfg.Data.Category = "day"
	cfg.X.Type = TypeTime

	p := cfg.plot(data)
	if p.category.Type != charts.AxisNumber {
		t.Fatalf("time axis should place records by value")
	}
	var (
		points = charts.ComposeLine(p.lineConfig(0), data)
		want   = [][2]float64{{0, 270}, {360, 0}, {720, 135}}
	)
	for i, pt := range points {
		if !pt.Defined() {
			t.Errorf("point %d: should be defined", i)
			continue
		}
		if math.Abs(pt.X.V-want[i][0]) > 1e-6 || !closeTo(pt.Y.V, want[i][1]) {
			t.Errorf("point %d: want %v, got (%f, %f)", i, want[i], pt.X.V, pt.Y.V)
		}
	}
	ticks := p.category.Ticks
	if len(ticks) != 2 || ticks[0].Value != "2024-01-01" || ticks[1].Value != "2024-01-05" {
		t.Errorf("ticks: got %v", ticks)
	}
}

func TestPlotTimeAxisFormat(t *testing.T) {
	var (
		data = []charts.Record{
			{"day": "01/02/2024", "sales": "10"},
			{"day": "not a date", "sales": "20"},
		}
		cfg = salesConfig(KindLine, "sales")
	)
	cfg.Data.Category = "day"
	cfg.X = Input{Type: TypeTime, Format: "02/01/2006"}

	var (
		p      = cfg.plot(data)
		points = charts.ComposeLine(p.lineConfig(0), data)
	)
	if !points[0].X.Valid || points[0].X.V != 0 {
		t.Errorf("first date should start the axis, got %+v", points[0].X)
	}
	if points[1].X.Valid {
		t.Errorf("unparsable date should have no coordinate")
	}
	if lo, hi := p.category.Scale.Domain(); hi-lo != 24*60*60 {
		t.Errorf("a single date should span one day, got %f", hi-lo)
	}
}

func TestValidateAxes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name string
		Edit func(*Config)
		Want string
	}{
		{
			Name: "unknown type",
			Edit: func(c *Config) { c.X.Type = "log" },
			Want: "number, category or time",
		},
		{
			Name: "no number axis",
			Edit: func(c *Config) { c.Y.Type = TypeTime },
			Want: "number axis",
		},
		{
			Name: "text position",
			Edit: func(c *Config) { c.Style.TextPosition = "middle" },
			Want: "text position",
		},
	}
	for _, tt := range tests {
		cfg := salesConfig(KindLine, "sales")
		tt.Edit(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) || !strings.Contains(err.Error(), tt.Want) {
			t.Errorf("%s: expected error about %q, got %v", tt.Name, tt.Want, err)
		}
	}
	cfg := salesConfig(KindLine, "sales")
	cfg.X.Type = TypeTime
	if err := cfg.Validate(); err != nil {
		t.Errorf("time axis should be valid: %v", err)
	}
}

func TestLineStyleText(t *testing.T) {
	t.Parallel()

	for str, want := range map[string]charts.TextPosition{
		"text-before": charts.TextBefore,
		"text-after":  charts.TextAfter,
		"":            0,
	} {
		s := GlobalStyle()
		s.TextPosition = str
		if got := s.lineStyle(0).Text; got != want {
			t.Errorf("%q: want %d, got %d", str, want, got)
		}
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
