package charts

import (
	"math"
)

// Box is an axis aligned rectangle. Width and height can be negative, the
// sign giving the direction of the bar.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect is the geometry of one record of a bar series.
type Rect struct {
	Box
	Value      Value
	Payload    Record
	Background Box
}

// BarPosition is the slot of one bar series inside a category band.
type BarPosition struct {
	Offset float64
	Size   float64
}

// BarPositions splits a band between n bar series. categoryGap is the space
// left on both sides of the band; a value lower than 1 is read as a fraction
// of the band. barGap is the space between two bars of the same band.
func BarPositions(bandSize, categoryGap, barGap float64, n int) []BarPosition {
	if n <= 0 {
		return nil
	}
	if categoryGap > 0 && categoryGap < 1 {
		categoryGap *= bandSize
	}
	var (
		count = float64(n)
		size  = (bandSize - 2*categoryGap - (count-1)*barGap) / count
		gap   = barGap
	)
	if size < 1 {
		size = 1
		if n > 1 {
			gap = (bandSize - 2*categoryGap - count) / (count - 1)
		}
	}
	list := make([]BarPosition, n)
	for i := range list {
		list[i] = BarPosition{
			Offset: categoryGap + float64(i)*(size+gap),
			Size:   size,
		}
	}
	return list
}

// MinPointSize is the minimal visible extent of a bar along the value axis.
// Func, when set, is called with the end value of the bar and its index.
type MinPointSize struct {
	Size float64
	Func func(float64, int) float64
}

func FixedMinPointSize(size float64) MinPointSize {
	return MinPointSize{Size: size}
}

func (m MinPointSize) At(value float64, index int) float64 {
	if m.Func != nil {
		return m.Func(value, index)
	}
	return m.Size
}

type BarConfig struct {
	Layout   Layout
	XAxis    Axis
	YAxis    Axis
	Key      Key
	BandSize float64
	Position BarPosition
	MinSize  MinPointSize

	// Stacked holds the [start, end] pairs of a previous stacking pass, indexed
	// by record. Nil when the series is not stacked.
	Stacked [][2]float64
	// StartIndex is the index in Stacked of the first displayed record.
	StartIndex int
}

func (c BarConfig) numericAxis() Axis {
	if c.Layout == Horizontal {
		return c.YAxis
	}
	return c.XAxis
}

// ComposeBar computes the rectangles of a bar series, one per record and in
// the order of data.
func ComposeBar(cfg BarConfig, data []Record) []Rect {
	var (
		numeric = cfg.numericAxis()
		base    = BarBaseValue(numeric)
		rects   = make([]Rect, 0, len(data))
	)
	for i, rec := range data {
		var (
			value    Value
			lo, hi   float64
			hasValue = true
		)
		if j := cfg.StartIndex + i; cfg.Stacked != nil && j >= 0 && j < len(cfg.Stacked) {
			pair := cfg.Stacked[j]
			if dlo, dhi, ok := numeric.domain(); ok {
				pair = TruncateByDomain(pair, dlo, dhi)
			}
			lo, hi = pair[0], pair[1]
			value = Pair(lo, hi)
		} else {
			value = cfg.Key.Extract(rec)
			if l, h, ok := value.Bounds(); ok {
				lo, hi = l, h
			} else {
				lo = base
				hi, hasValue = value.Float()
			}
		}
		var (
			minSize = cfg.MinSize.At(hi, i)
			r       = Rect{
				Value:   value,
				Payload: rec,
			}
		)
		if cfg.Layout == Horizontal {
			var (
				start   = cfg.YAxis.scale(lo)
				current = start
			)
			if hasValue {
				current = cfg.YAxis.scale(hi)
			}
			r.X = cfg.XAxis.barCoordinate(rec, i, cfg.BandSize, cfg.Position.Offset).Or(0)
			r.Y = current
			r.Width = cfg.Position.Size
			r.Height = finite(start - current)
			r.Background = Box{
				X:      r.X,
				Y:      cfg.YAxis.Y,
				Width:  r.Width,
				Height: cfg.YAxis.Height,
			}
			if delta := minDelta(r.Height, minSize); delta != 0 {
				r.Y -= delta
				r.Height += delta
			}
		} else {
			var (
				start   = cfg.XAxis.scale(lo)
				current = start
			)
			if hasValue {
				current = cfg.XAxis.scale(hi)
			}
			r.X = start
			r.Y = cfg.YAxis.barCoordinate(rec, i, cfg.BandSize, cfg.Position.Offset).Or(0)
			r.Width = finite(current - start)
			r.Height = cfg.Position.Size
			r.Background = Box{
				X:      cfg.XAxis.X,
				Y:      r.Y,
				Width:  cfg.XAxis.Width,
				Height: r.Height,
			}
			if delta := minDelta(r.Width, minSize); delta != 0 {
				r.Width += delta
			}
		}
		rects = append(rects, r)
	}
	return rects
}

// minDelta is the signed amount to add to extent so that its magnitude
// reaches minSize.
func minDelta(extent, minSize float64) float64 {
	if math.Abs(minSize) == 0 || math.Abs(extent) >= math.Abs(minSize) {
		return 0
	}
	dir := extent
	if dir == 0 {
		dir = minSize
	}
	return Sign(dir) * (math.Abs(minSize) - math.Abs(extent))
}

// BarBaseValue is the value bars start from when they are not stacked.
func BarBaseValue(numeric Axis) float64 {
	lo, hi, ok := numeric.domain()
	if !ok {
		return 0
	}
	if numeric.Type != AxisNumber {
		return lo
	}
	minValue, maxValue := math.Min(lo, hi), math.Max(lo, hi)
	switch {
	case minValue <= 0 && maxValue >= 0:
		return 0
	case maxValue < 0:
		return maxValue
	default:
		return minValue
	}
}

// TruncateByDomain clips both ends of pair into the domain [lo, hi].
func TruncateByDomain(pair [2]float64, lo, hi float64) [2]float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return pair
	}
	var (
		minValue = math.Min(lo, hi)
		maxValue = math.Max(lo, hi)
		res      = pair
	)
	if math.IsNaN(res[0]) || res[0] < minValue {
		res[0] = minValue
	}
	if math.IsNaN(res[1]) || res[1] > maxValue {
		res[1] = maxValue
	}
	if res[0] > maxValue {
		res[0] = maxValue
	}
	if res[1] < minValue {
		res[1] = minValue
	}
	return res
}

// Sign returns -1, 0 or 1 following the sign of f.
func Sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
