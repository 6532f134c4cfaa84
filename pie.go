package charts

import (
	"math"
	"strconv"
	"strings"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// Length is either an absolute number of pixels or a percentage of a
// reference length. The zero value is unset.
type Length struct {
	Value   float64
	Percent bool
	set     bool
}

func Px(v float64) Length {
	return Length{Value: v, set: true}
}

func Pct(v float64) Length {
	return Length{Value: v, Percent: true, set: true}
}

// ParseLength reads "120" or "80%".
func ParseLength(str string) (Length, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Length{}, nil
	}
	if p, ok := strings.CutSuffix(str, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Length{}, err
		}
		return Pct(f), nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return Length{}, err
	}
	return Px(f), nil
}

func (l Length) IsSet() bool {
	return l.set
}

// Resolve returns the length in pixels, ref being the 100% reference. def is
// used when l is unset.
func (l Length) Resolve(ref, def float64) float64 {
	if !l.set {
		return def
	}
	if l.Percent {
		return ref * l.Value / 100
	}
	return l.Value
}

func (l Length) String() string {
	if !l.set {
		return ""
	}
	if l.Percent {
		return formatFloat(l.Value) + "%"
	}
	return formatFloat(l.Value)
}

// Sector is the geometry of one record of a pie series. Angles are in degrees,
// counter clockwise, 0 pointing to the right.
type Sector struct {
	Cx           float64
	Cy           float64
	InnerRadius  float64
	OuterRadius  float64
	StartAngle   float64
	EndAngle     float64
	PaddingAngle float64
	Percent      float64
	Name         string
	Value        Value
	Payload      Record

	MidAngle     float64
	MiddleRadius float64
	Tooltip      Position
}

func (s Sector) Sweep() float64 {
	return s.EndAngle - s.StartAngle
}

type Position struct {
	X float64
	Y float64
}

// PolarToCartesian converts an angle in degrees and a radius around (cx, cy)
// into a position in a y-down coordinate system.
func PolarToCartesian(cx, cy, radius, angle float64) Position {
	return Position{
		X: cx + math.Cos(-deg2rad*angle)*radius,
		Y: cy + math.Sin(-deg2rad*angle)*radius,
	}
}

type PieConfig struct {
	Area        Box
	Cx          Length
	Cy          Length
	InnerRadius Length
	OuterRadius Length

	StartAngle   float64
	EndAngle     float64
	MinAngle     float64
	PaddingAngle float64

	Key     Key
	NameKey Key
}

// DeltaAngle is the signed sweep between start and end, capped to a full
// circle.
func DeltaAngle(start, end float64) float64 {
	delta := end - start
	return Sign(delta) * math.Min(math.Abs(delta), fullcircle)
}

func (c PieConfig) coordinates() (cx, cy, inner, outer float64) {
	var (
		width  = c.Area.Width
		height = c.Area.Height
		maxRad = math.Min(math.Abs(width), math.Abs(height)) / 2
	)
	cx = c.Area.X + c.Cx.Resolve(width, width/2)
	cy = c.Area.Y + c.Cy.Resolve(height, height/2)
	inner = c.InnerRadius.Resolve(maxRad, 0)
	outer = c.OuterRadius.Resolve(maxRad, maxRad*0.8)
	return
}

// ComposePie computes the sectors of a pie series. It returns nil when the sum
// of the values is not positive: there is nothing to draw.
func ComposePie(cfg PieConfig, data []Record) []Sector {
	var (
		delta   = DeltaAngle(cfg.StartAngle, cfg.EndAngle)
		sign    = Sign(delta)
		values  = make([]float64, len(data))
		nonZero int
		sum     float64
	)
	for i, rec := range data {
		values[i] = cfg.Key.Extract(rec).Or(0)
		if values[i] != 0 {
			nonZero++
		}
		sum += values[i]
	}
	if sum <= 0 {
		return nil
	}
	var (
		padCount = nonZero - 1
		absDelta = math.Abs(delta)
	)
	if absDelta >= fullcircle {
		padCount = nonZero
	}
	var (
		totalPadding = float64(padCount) * cfg.PaddingAngle
		budget       = absDelta - float64(nonZero)*cfg.MinAngle - totalPadding

		cx, cy, inner, outer = cfg.coordinates()
		middle               = (inner + outer) / 2
		sectors              = make([]Sector, 0, len(data))
	)
	for i, rec := range data {
		var (
			val     = values[i]
			percent = val / sum
			start   = cfg.StartAngle
			minimum float64
		)
		if val != 0 {
			minimum = cfg.MinAngle
		}
		if i > 0 {
			start = sectors[i-1].EndAngle
			if val != 0 {
				start += sign * cfg.PaddingAngle
			}
		}
		end := start + sign*(minimum+percent*budget)
		s := Sector{
			Cx:           cx,
			Cy:           cy,
			InnerRadius:  inner,
			OuterRadius:  outer,
			StartAngle:   start,
			EndAngle:     end,
			PaddingAngle: sign * cfg.PaddingAngle,
			Percent:      percent,
			Name:         sectorName(cfg.NameKey, rec, i),
			Value:        cfg.Key.Extract(rec),
			Payload:      rec,
			MidAngle:     (start + end) / 2,
			MiddleRadius: middle,
		}
		s.Tooltip = PolarToCartesian(cx, cy, middle, s.MidAngle)
		sectors = append(sectors, s)
	}
	return sectors
}

func sectorName(key Key, rec Record, index int) string {
	if key.IsZero() {
		return strconv.Itoa(index)
	}
	switch v := key.Raw(rec).(type) {
	case nil:
		return strconv.Itoa(index)
	case string:
		return v
	default:
		return ToValue(v).String()
	}
}
