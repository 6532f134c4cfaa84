package charts

import (
	"math"
	"testing"
)

func barValueAxis(lo, hi float64) Axis {
	return Axis{
		Type:   AxisNumber,
		Scale:  FuncScale(func(v float64) float64 { return 100 - v*10 }, lo, hi),
		Height: 100,
	}
}

func TestBarPositions(t *testing.T) {
	t.Parallel()

	list := BarPositions(100, 10, 4, 3)
	if len(list) != 3 {
		t.Fatalf("positions: got %d, want 3", len(list))
	}
	for i, p := range list {
		if p.Size != 24 {
			t.Errorf("bar %d: size %f, want 24", i, p.Size)
		}
		if want := 10 + float64(i)*28; p.Offset != want {
			t.Errorf("bar %d: offset %f, want %f", i, p.Offset, want)
		}
	}
	if list := BarPositions(100, 0.1, 0, 1); list[0].Offset != 10 || list[0].Size != 80 {
		t.Errorf("fractional gap: got %+v", list[0])
	}
	if list := BarPositions(10, 0, 0, 0); list != nil {
		t.Errorf("no series: got %+v", list)
	}
}

func TestComposeBar(t *testing.T) {
	t.Parallel()

	var (
		data = []Record{{"v": 2}, {"v": 5}}
		cfg  = BarConfig{
			Layout:   Horizontal,
			XAxis:    categoryAxis(0, 50),
			YAxis:    barValueAxis(0, 10),
			Key:      FieldKey("v"),
			BandSize: 50,
			Position: BarPosition{Offset: 5, Size: 40},
		}
	)
	rects := ComposeBar(cfg, data)
	want := []Box{
		{X: 5, Y: 80, Width: 40, Height: 20},
		{X: 55, Y: 50, Width: 40, Height: 50},
	}
	for i, r := range rects {
		if r.Box != want[i] {
			t.Errorf("bar %d: got %+v, want %+v", i, r.Box, want[i])
		}
		if r.Background.Height != 100 || r.Background.X != r.X {
			t.Errorf("bar %d: background %+v", i, r.Background)
		}
	}
}

func TestComposeBarVertical(t *testing.T) {
	t.Parallel()

	var (
		data = []Record{{"v": 2}, {"v": -1}}
		cfg  = BarConfig{
			Layout: Vertical,
			XAxis: Axis{
				Type:  AxisNumber,
				Scale: LinearScaler(NumberDomain(-5, 5), NewRange(0, 100)),
				Width: 100,
			},
			YAxis:    categoryAxis(0, 20),
			Key:      FieldKey("v"),
			BandSize: 20,
			Position: BarPosition{Size: 20},
		}
	)
	rects := ComposeBar(cfg, data)
	if r := rects[0]; r.X != 50 || r.Width != 20 || r.Y != 0 || r.Height != 20 {
		t.Errorf("positive bar: got %+v", r.Box)
	}
	if r := rects[1]; r.X != 50 || r.Width != -10 || r.Y != 20 {
		t.Errorf("negative bar: got %+v", r.Box)
	}
}

func TestComposeBarMinPointSize(t *testing.T) {
	t.Parallel()

	var (
		data = []Record{{"v": 0.1}, {"v": -0.1}, {"v": 0}, {"v": 4}}
		cfg  = BarConfig{
			Layout:   Horizontal,
			XAxis:    categoryAxis(0, 10, 20, 30),
			YAxis:    barValueAxis(-10, 10),
			Key:      FieldKey("v"),
			Position: BarPosition{Size: 8},
			MinSize:  FixedMinPointSize(5),
		}
	)
	rects := ComposeBar(cfg, data)
	for i, r := range rects[:3] {
		if got := math.Abs(r.Height); math.Abs(got-5) > 1e-9 {
			t.Errorf("bar %d: extent %f, want 5", i, got)
		}
		if base := r.Y + r.Height; math.Abs(base-100) > 1e-9 {
			t.Errorf("bar %d: baseline moved to %f", i, base)
		}
	}
	if r := rects[3]; r.Height != 40 || r.Y != 60 {
		t.Errorf("large bar should not change: %+v", r.Box)
	}
}

func TestComposeBarStacked(t *testing.T) {
	t.Parallel()

	var (
		data = []Record{{"v": 1}, {"v": 2}}
		cfg  = BarConfig{
			Layout:   Horizontal,
			XAxis:    categoryAxis(0, 10),
			YAxis:    barValueAxis(0, 8),
			Key:      FieldKey("v"),
			Position: BarPosition{Size: 10},
			Stacked:  [][2]float64{{2, 3}, {6, 12}},
		}
	)
	rects := ComposeBar(cfg, data)
	if r := rects[0]; r.Y != 70 || r.Height != 10 {
		t.Errorf("first stacked bar: got %+v", r.Box)
	}
	if lo, hi, ok := rects[1].Value.Bounds(); !ok || lo != 6 || hi != 8 {
		t.Errorf("stacked pair should be truncated to the domain: %v", rects[1].Value)
	}
}

func TestBarBaseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lo, hi float64
		want   float64
	}{
		{lo: -5, hi: 5, want: 0},
		{lo: 2, hi: 10, want: 2},
		{lo: -10, hi: -2, want: -2},
		{lo: 10, hi: 2, want: 2},
	}
	for _, tt := range tests {
		if got := BarBaseValue(barValueAxis(tt.lo, tt.hi)); got != tt.want {
			t.Errorf("[%f, %f]: got %f, want %f", tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := BarBaseValue(Axis{}); got != 0 {
		t.Errorf("axis without scale: got %f", got)
	}
}

func TestTruncateByDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pair [2]float64
		want [2]float64
	}{
		{pair: [2]float64{1, 4}, want: [2]float64{1, 4}},
		{pair: [2]float64{-3, 4}, want: [2]float64{0, 4}},
		{pair: [2]float64{8, 14}, want: [2]float64{8, 10}},
		{pair: [2]float64{12, 14}, want: [2]float64{10, 10}},
		{pair: [2]float64{math.NaN(), 3}, want: [2]float64{0, 3}},
	}
	for _, tt := range tests {
		if got := TruncateByDomain(tt.pair, 10, 0); got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.pair, got, tt.want)
		}
	}
}
