package charts

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var dashSeparator = regexp.MustCompile(`[,\s]+`)

// ParseDashPattern reads a dash pattern such as "5 3" or "4,2,1". Tokens that
// are not numbers are kept as NaN.
func ParseDashPattern(str string) []float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	var list []float64
	for _, tok := range dashSeparator.Split(str, -1) {
		if tok == "" {
			continue
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			f = math.NaN()
		}
		list = append(list, f)
	}
	return list
}

// SimpleDasharray shows the first revealed pixels of a path of total length
// and hides the rest.
func SimpleDasharray(total, revealed float64) string {
	return formatFloat(revealed) + "px " + formatFloat(total-revealed) + "px"
}

// Dasharray shows the first revealed pixels of a path of total length while
// keeping the dashes of pattern on the visible part.
func Dasharray(revealed, total float64, pattern []float64) string {
	var unit float64
	for _, f := range pattern {
		unit += f
	}
	if unit == 0 || len(pattern) == 0 {
		return SimpleDasharray(total, revealed)
	}
	var (
		count  = int(math.Floor(revealed / unit))
		remain = math.Mod(revealed, unit)
		rest   = total - revealed
		last   []float64
	)
	var sum float64
	for i, f := range pattern {
		if sum+f > remain {
			last = append(last, pattern[:i]...)
			last = append(last, remain-sum)
			break
		}
		sum += f
	}
	var (
		tail = []float64{rest}
		list = repeatPattern(pattern, count)
	)
	if len(last)%2 == 0 {
		tail = []float64{0, rest}
	}
	list = append(list, last...)
	list = append(list, tail...)
	return joinPixels(list)
}

// repeatPattern repeats pattern count times. An odd pattern gets an empty gap
// so that every period starts with a dash.
func repeatPattern(pattern []float64, count int) []float64 {
	unit := pattern
	if len(unit)%2 != 0 {
		unit = append(append([]float64{}, pattern...), 0)
	}
	if count <= 0 {
		return nil
	}
	list := make([]float64, 0, len(unit)*count)
	for i := 0; i < count; i++ {
		list = append(list, unit...)
	}
	return list
}

func joinPixels(list []float64) string {
	var str strings.Builder
	for i, f := range list {
		if i > 0 {
			str.WriteString(", ")
		}
		str.WriteString(formatFloat(f))
		str.WriteString("px")
	}
	return str.String()
}

// RevealDasharray is the dash array of a path of total length at progress t.
// pattern is the dash pattern of the line, empty for a solid line.
func RevealDasharray(total, t float64, pattern []float64) string {
	revealed := Lerp(0, total, t)
	if len(pattern) == 0 {
		return SimpleDasharray(total, revealed)
	}
	return Dasharray(revealed, total, pattern)
}

// PathMeasurer measures the rendered length of a geometry. It returns false
// when the length can not be known.
type PathMeasurer[G any] interface {
	MeasurePathLength([]G) (float64, bool)
}

type MeasureFunc[G any] func([]G) (float64, bool)

func (f MeasureFunc[G]) MeasurePathLength(list []G) (float64, bool) {
	return f(list)
}

// MeasureLength returns the length measured by m, or 0 when it is not
// available.
func MeasureLength[G any](m PathMeasurer[G], list []G) float64 {
	if m == nil {
		return 0
	}
	n, ok := m.MeasurePathLength(list)
	if !ok || math.IsNaN(n) || n < 0 {
		return 0
	}
	return n
}

// PolylineLength measures a line drawn with straight segments. Absent points
// split the line; the gaps are not counted.
type PolylineLength struct{}

func (PolylineLength) MeasurePathLength(points []Point) (float64, bool) {
	var (
		total float64
		prev  Point
		ok    bool
	)
	for _, pt := range points {
		if !pt.Defined() {
			ok = false
			continue
		}
		if ok {
			total += math.Hypot(pt.X.V-prev.X.V, pt.Y.V-prev.Y.V)
		}
		prev, ok = pt, true
	}
	return total, true
}
