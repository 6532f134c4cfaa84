package charts

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func sumPixels(t *testing.T, str string) float64 {
	t.Helper()
	var total float64
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSuffix(strings.TrimSpace(part), "px")
		for _, tok := range strings.Fields(strings.ReplaceAll(part, "px", " ")) {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				t.Fatalf("%s: invalid length %q", str, tok)
			}
			total += f
		}
	}
	return total
}

func TestParseDashPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []float64
	}{
		{input: "", want: nil},
		{input: "5", want: []float64{5}},
		{input: "5 3", want: []float64{5, 3}},
		{input: " 4, 2,1 ", want: []float64{4, 2, 1}},
	}
	for _, tt := range tests {
		got := ParseDashPattern(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
				break
			}
		}
	}
	got := ParseDashPattern("4 x")
	if len(got) != 2 || !math.IsNaN(got[1]) {
		t.Errorf("invalid token should be kept as NaN: %v", got)
	}
}

func TestDasharray(t *testing.T) {
	t.Parallel()

	got := Dasharray(27, 100, []float64{4, 2})
	want := "4px, 2px, 4px, 2px, 4px, 2px, 4px, 2px, 3px, 73px"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if total := sumPixels(t, got); total != 100 {
		t.Errorf("lengths sum to %f, want 100", total)
	}
}

func TestDasharrayParity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		revealed float64
		pattern  []float64
		want     string
	}{
		{
			revealed: 5,
			pattern:  []float64{4, 2},
			want:     "4px, 1px, 0px, 95px",
		},
		{
			revealed: 6,
			pattern:  []float64{4, 2},
			want:     "4px, 2px, 0px, 94px",
		},
		{
			revealed: 10,
			pattern:  []float64{3, 2, 1},
			want:     "3px, 2px, 1px, 0px, 3px, 1px, 0px, 90px",
		},
	}
	for _, tt := range tests {
		got := Dasharray(tt.revealed, 100, tt.pattern)
		if got != tt.want {
			t.Errorf("%f of %v: got %s, want %s", tt.revealed, tt.pattern, got, tt.want)
		}
		if total := sumPixels(t, got); total != 100 {
			t.Errorf("%f of %v: lengths sum to %f", tt.revealed, tt.pattern, total)
		}
	}
}

func TestDasharrayZeroUnit(t *testing.T) {
	t.Parallel()

	if got := Dasharray(30, 100, []float64{0, 0}); got != "30px 70px" {
		t.Errorf("got %s", got)
	}
}

func TestRevealDasharray(t *testing.T) {
	t.Parallel()

	if got := RevealDasharray(100, 0, nil); got != "0px 100px" {
		t.Errorf("t=0: got %s", got)
	}
	if got := RevealDasharray(100, 1, nil); got != "100px 0px" {
		t.Errorf("t=1: got %s", got)
	}
	if got := RevealDasharray(100, 0.25, nil); got != "25px 75px" {
		t.Errorf("t=0.25: got %s", got)
	}
	full := RevealDasharray(100, 1, []float64{4, 2})
	if total := sumPixels(t, full); total != 100 {
		t.Errorf("t=1 with pattern: lengths sum to %f", total)
	}
	if !strings.HasSuffix(full, "0px, 0px") {
		t.Errorf("t=1 with pattern should end without gap: %s", full)
	}
	if got := RevealDasharray(100, 0, []float64{4, 2}); !strings.HasPrefix(got, "0px") {
		t.Errorf("t=0 with pattern should show nothing: %s", got)
	}
}

func TestMeasureLength(t *testing.T) {
	t.Parallel()

	points := []Point{
		{X: At(0), Y: At(0)},
		{X: At(3), Y: At(4)},
		{X: At(3)},
		{X: At(10), Y: At(10)},
		{X: At(10), Y: At(20)},
	}
	if got := MeasureLength[Point](PolylineLength{}, points); got != 15 {
		t.Errorf("polyline: got %f, want 15", got)
	}
	unavailable := MeasureFunc[Point](func([]Point) (float64, bool) {
		return 42, false
	})
	if got := MeasureLength[Point](unavailable, points); got != 0 {
		t.Errorf("unavailable length: got %f", got)
	}
	if got := MeasureLength[Point](nil, points); got != 0 {
		t.Errorf("no measurer: got %f", got)
	}
}
