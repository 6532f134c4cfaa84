package charts

import (
	"time"
)

const FontSize = 12.0

// Layout tells which axis carries the categories. With Horizontal, categories
// run along X and values along Y; Vertical swaps both roles.
type Layout int

const (
	Horizontal Layout = iota
	Vertical
)

func (l Layout) String() string {
	if l == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type AxisType int

const (
	AxisCategory AxisType = iota
	AxisNumber
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Tick is a labelled position on an axis.
type Tick struct {
	Value      any
	Coordinate float64
}

// Axis is what a composer knows about one axis of the plot area.
type Axis struct {
	Type  AxisType
	Key   Key
	Scale Scale
	Ticks []Tick

	AllowDuplicatedCategory bool
	AllowOverflow           bool

	Orientation
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CategoryTicks returns one tick per category of s positioned at the start of
// its band.
func CategoryTicks(s Scaler[string]) []Tick {
	var list []Tick
	for _, v := range s.Values(0) {
		list = append(list, Tick{
			Value:      v,
			Coordinate: s.Scale(v),
		})
	}
	return list
}

// PointTicks returns one tick per category of s positioned at the middle of
// its band.
func PointTicks(s Scaler[string]) []Tick {
	list := CategoryTicks(s)
	for i := range list {
		list[i].Coordinate += s.Space() / 2
	}
	return list
}

func NumberTicks(s Scaler[float64], count int) []Tick {
	var list []Tick
	for _, v := range s.Values(count) {
		list = append(list, Tick{
			Value:      v,
			Coordinate: s.Scale(v),
		})
	}
	return list
}

func TimeTicks(s Scaler[time.Time], count int) []Tick {
	var list []Tick
	for _, v := range s.Values(count) {
		list = append(list, Tick{
			Value:      v,
			Coordinate: s.Scale(v),
		})
	}
	return list
}

func (a Axis) scale(v float64) float64 {
	if a.Scale == nil {
		return v
	}
	return a.Scale.Scale(v)
}

func (a Axis) domain() (float64, float64, bool) {
	if a.Scale == nil {
		return 0, 0, false
	}
	lo, hi := a.Scale.Domain()
	return lo, hi, true
}

func (a Axis) findTick(v any) (Tick, bool) {
	for _, t := range a.Ticks {
		if t.Value == v {
			return t, true
		}
	}
	return Tick{}, false
}

// lineCoordinate positions a record of a line along the category axis.
func (a Axis) lineCoordinate(rec Record, index int, key Key, bandSize float64) Coord {
	if a.Type == AxisCategory {
		if !a.AllowDuplicatedCategory && !a.Key.IsZero() {
			if v := a.Key.Raw(rec); v != nil {
				if t, ok := a.findTick(v); ok {
					return At(t.Coordinate + bandSize/2)
				}
			}
		}
		if index < len(a.Ticks) {
			return At(a.Ticks[index].Coordinate + bandSize/2)
		}
		return Coord{}
	}
	if key.IsZero() {
		key = a.Key
	}
	f, ok := key.Extract(rec).Float()
	if !ok {
		return Coord{}
	}
	return At(a.scale(f))
}

// barCoordinate positions a record of a bar series along the category axis.
func (a Axis) barCoordinate(rec Record, index int, bandSize, offset float64) Coord {
	if a.Type == AxisCategory {
		if index < len(a.Ticks) {
			return At(a.Ticks[index].Coordinate + offset)
		}
		return Coord{}
	}
	f, ok := a.Key.Extract(rec).Float()
	if !ok {
		return Coord{}
	}
	return At(a.scale(f) - bandSize/2 + offset)
}
