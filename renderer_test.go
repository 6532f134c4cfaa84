package charts

import (
	"bytes"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo"
)

func TestRectPath(t *testing.T) {
	t.Parallel()

	if got := RectPath(Box{X: 1, Y: 2, Width: 3, Height: 4}); got != "M1,2h3v4h-3Z" {
		t.Errorf("got %s", got)
	}
	if got := RectPath(Box{X: 1, Y: 2, Width: 3, Height: -4}); got != "M1,2h3v-4h-3Z" {
		t.Errorf("negative height: got %s", got)
	}
}

func TestSectorPath(t *testing.T) {
	t.Parallel()

	pie := Sector{Cx: 50, Cy: 50, OuterRadius: 10, StartAngle: 0, EndAngle: 90}
	if got := SectorPath(pie); got != "M60,50A10,10,0,0,0,50,40L50,50Z" {
		t.Errorf("pie sector: got %s", got)
	}

	donut := pie
	donut.InnerRadius = 5
	got := SectorPath(donut)
	if !strings.Contains(got, "A5,5,0,0,1,55,50") || strings.Contains(got, "L50,50") {
		t.Errorf("donut sector: got %s", got)
	}

	full := Sector{Cx: 50, Cy: 50, OuterRadius: 10, EndAngle: 360}
	if got := SectorPath(full); !strings.Contains(got, "A10,10,0,1,0,") {
		t.Errorf("full circle should use the large arc: %s", got)
	}
}

func TestExtent(t *testing.T) {
	t.Parallel()

	points := []Point{
		{X: At(0)},
		{X: At(1), Y: At(1)},
		{X: At(2), Y: At(4)},
		{Y: At(3)},
	}
	fst, lst, ok := Extent(points)
	if !ok || fst.X.V != 1 || lst.X.V != 2 {
		t.Errorf("got %v, %v, %t", fst, lst, ok)
	}
	if _, _, ok := Extent(points[:1]); ok {
		t.Errorf("no defined point should give no extent")
	}
}

func TestRenderLine(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		canvas = svg.New(&buf)
		frame  = Frame[Point]{
			Geometry:  linePoints(1, 2),
			Dasharray: "2px 8px",
		}
		style = LineStyle{
			Stroke:      "red",
			DashPattern: "4 2",
			Dot:         ParseDot("square"),
			Labels:      true,
		}
	)
	RenderLine(canvas, frame, style)
	out := buf.String()
	if !strings.Contains(out, `stroke-dasharray="2px 8px"`) {
		t.Errorf("reveal dasharray missing: %s", out)
	}
	if strings.Count(out, "<path") != 3 {
		t.Errorf("expected line and two markers: %s", out)
	}
	if strings.Contains(out, "<text") {
		t.Errorf("labels should wait for the end of the animation")
	}

	buf.Reset()
	frame.Dasharray = ""
	frame.Finished = true
	RenderLine(canvas, frame, style)
	out = buf.String()
	if !strings.Contains(out, `stroke-dasharray="4 2"`) {
		t.Errorf("line dash pattern missing: %s", out)
	}
	if strings.Count(out, "<text") != 2 {
		t.Errorf("labels missing: %s", out)
	}
}

func TestRenderLineTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Text     TextPosition
		Finished bool
		Want     string
	}{
		{Text: TextAfter, Finished: true, Want: `<text x="25" y="3"`},
		{Text: TextBefore, Finished: true, Want: `<text x="-5" y="1"`},
		{Text: TextAfter, Finished: false},
		{Text: 0, Finished: true},
	}
	for _, tt := range tests {
		var (
			buf    bytes.Buffer
			canvas = svg.New(&buf)
			frame  = Frame[Point]{
				Geometry: append(linePoints(1, 2, 3), Point{X: At(30)}),
				Finished: tt.Finished,
			}
			style = LineStyle{Title: "rain", Text: tt.Text}
		)
		RenderLine(canvas, frame, style)
		out := buf.String()
		if tt.Want == "" {
			if strings.Contains(out, "rain") {
				t.Errorf("title should not be written: %s", out)
			}
			continue
		}
		if !strings.Contains(out, tt.Want) || !strings.Contains(out, ">rain</text>") {
			t.Errorf("title misplaced, want %s: %s", tt.Want, out)
		}
	}
}

func TestRenderBars(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		canvas = svg.New(&buf)
		frame  = Frame[Rect]{
			Geometry: []Rect{
				{Box: Box{Width: 10, Height: 10}},
				{Box: Box{X: 20, Width: 10, Height: 10}},
			},
			Focus: 1,
		}
	)
	RenderBars(canvas, frame, BarStyle{Fill: Palette{"#111", "#222"}, Background: "#eee"})
	out := buf.String()
	for _, want := range []string{`fill="#111"`, `fill="#222"`, `fill="#eee"`, `stroke="#000"`} {
		if !strings.Contains(out, want) {
			t.Errorf("%s missing: %s", want, out)
		}
	}
}

func TestChartRender(t *testing.T) {
	t.Parallel()

	series, err := NewLineSeries("sales", LineConfig{
		XAxis: categoryAxis(0, 10, 20),
		YAxis: valueAxis(),
		Key:   FieldKey("v"),
	}, LineStyle{Stroke: "blue"}, Animation{Active: true})
	if err != nil {
		t.Fatal(err)
	}
	series.Update([]Record{{"v": 1}, {"v": 3}, {"v": 2}})
	series.Tick(0.5)

	x := categoryAxis(0, 10, 20)
	x.Orientation = OrientBottom
	ch := Chart{
		Title:   "sales",
		Width:   200,
		Height:  150,
		Padding: Padding{Top: 10, Right: 10, Bottom: 30, Left: 40},
		Bottom:  &x,
	}
	ch.Legend.Orient = OrientRight

	var buf bytes.Buffer
	if err := ch.Render(&buf, series); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg width="200" height="150"`,
		"<title>sales</title>",
		`<g transform="translate(40,10)">`,
		`<g id="sales">`,
		"stroke-dasharray",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%s missing in output", want)
		}
	}
}
