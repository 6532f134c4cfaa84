package dash

import (
	"math"
	"strings"
	"time"

	charts "github.com/midbel/animcharts"
)

// plot holds the axes computed for one set of records.
type plot struct {
	layout   charts.Layout
	area     charts.Box
	category charts.Axis
	value    charts.Axis
	bandSize float64
	stacked  [][][2]float64

	cfg Config
}

func (c Config) plot(data []charts.Record) plot {
	p := plot{
		layout: c.layout(),
		area:   c.area(),
		cfg:    c,
	}
	var (
		catIn, valIn = c.roles()
		catRange     = charts.NewRange(0, p.area.Width)
		valRange     = charts.NewRange(p.area.Height, 0)
	)
	if p.layout == charts.Vertical {
		catRange = charts.NewRange(0, p.area.Height)
		valRange = charts.NewRange(0, p.area.Width)
	}
	if c.Bar.Stacked && c.Kind == KindBar {
		p.stacked = stackValues(c.Data.Values, data)
	}
	p.category = p.makeCategoryAxis(catIn, catRange, data)
	p.value = p.makeValueAxis(valIn, valRange, data)
	return p
}

// roles returns the inputs of the category axis and of the value axis. The
// category axis is x unless the layout is vertical. When the value side is
// typed for categories, as the defaults of a horizontal chart are in a
// vertical layout, both sides exchange their settings except their position.
func (c Config) roles() (Input, Input) {
	cat, val := c.X, c.Y
	if c.layout() == charts.Vertical {
		cat, val = c.Y, c.X
	}
	if val.Type == TypeCategory || val.Type == TypeTime {
		cat.Position, val.Position = val.Position, cat.Position
		cat, val = val, cat
	}
	return cat, val
}

func (p *plot) makeCategoryAxis(in Input, rg charts.Range, data []charts.Record) charts.Axis {
	if in.isTime() {
		return p.makeTimeAxis(in, rg, data)
	}
	axis := p.frame(charts.Axis{
		Key:                     charts.FieldKey(p.cfg.Data.Category),
		AllowDuplicatedCategory: in.AllowDuplicatedCategory,
	})
	if in.isNumber() {
		var (
			lo, hi = domainOf(in, data, func(rec charts.Record) []float64 {
				f, ok := axis.Key.Extract(rec).Float()
				if !ok {
					return nil
				}
				return []float64{f}
			})
			scale = charts.LinearScaler(charts.NumberDomain(lo, hi), rg)
		)
		axis.Type = charts.AxisNumber
		axis.Scale = scale
		axis.Ticks = charts.NumberTicks(scale, in.Ticks)
		if n := len(data); n > 0 {
			p.bandSize = math.Abs(rg.Len()) / float64(n)
		}
		return axis
	}
	var (
		cats  = categories(axis.Key, data, in.AllowDuplicatedCategory)
		scale = charts.StringScaler(cats, rg)
	)
	axis.Type = charts.AxisCategory
	p.bandSize = scale.Space()
	if in.AllowDuplicatedCategory {
		for i, c := range cats {
			axis.Ticks = append(axis.Ticks, charts.Tick{
				Value:      c,
				Coordinate: rg.F + float64(i)*p.bandSize,
			})
		}
	} else {
		axis.Ticks = charts.CategoryTicks(scale)
	}
	return axis
}

// makeTimeAxis places the records along the dates of the category column.
// The positions are computed from seconds since the Unix epoch.
func (p *plot) makeTimeAxis(in Input, rg charts.Range, data []charts.Record) charts.Axis {
	var (
		field  = charts.FieldKey(p.cfg.Data.Category)
		format = in.timeFormat()
		dom    charts.Domain[time.Time]
	)
	for _, rec := range data {
		when, ok := parseTime(field.Raw(rec), format)
		if !ok {
			continue
		}
		if dom == nil {
			dom = charts.TimeDomain(when, when)
			continue
		}
		if d, err := dom.Merge(charts.TimeDomain(when, when)); err == nil {
			dom = d
		}
	}
	if dom == nil {
		dom = charts.TimeDomain(time.Unix(0, 0).UTC(), time.Unix(0, 0).UTC())
	}
	if vs := dom.Values(0); !vs[0].Before(vs[1]) {
		dom = charts.TimeDomain(vs[0], vs[0].Add(24*time.Hour))
	}
	scaler := charts.TimeScaler(dom, rg)
	axis := p.frame(charts.Axis{
		Type: charts.AxisNumber,
		Key: charts.FuncKey(func(rec charts.Record) any {
			when, ok := parseTime(field.Raw(rec), format)
			if !ok {
				return nil
			}
			return charts.UnixTime(when)
		}),
		Scale: charts.TimeScale(scaler),
	})
	for _, t := range charts.TimeTicks(scaler, in.Ticks) {
		if when, ok := t.Value.(time.Time); ok {
			t.Value = when.Format(format)
		}
		axis.Ticks = append(axis.Ticks, t)
	}
	if n := len(data); n > 0 {
		p.bandSize = math.Abs(rg.Len()) / float64(n)
	}
	return axis
}

func parseTime(v any, format string) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case string:
		when, err := time.Parse(format, strings.TrimSpace(v))
		return when, err == nil
	default:
		return time.Time{}, false
	}
}

func (p *plot) makeValueAxis(in Input, rg charts.Range, data []charts.Record) charts.Axis {
	lo, hi := domainOf(in, data, func(rec charts.Record) []float64 {
		var list []float64
		for _, col := range p.cfg.Data.Values {
			if f, ok := Column(col).Extract(rec).Float(); ok {
				list = append(list, f)
			}
		}
		return list
	})
	dom := charts.NumberDomain(lo, hi)
	if p.stacked != nil && len(in.Domain) != 2 {
		for _, pairs := range p.stacked {
			for _, pair := range pairs {
				top := charts.NumberDomain(math.Min(pair[0], pair[1]), math.Max(pair[0], pair[1]))
				if d, err := dom.Merge(top); err == nil {
					dom = d
				}
			}
		}
	}
	scale := charts.LinearScaler(dom, rg)
	return p.frame(charts.Axis{
		Type:  charts.AxisNumber,
		Scale: scale,
		Ticks: charts.NumberTicks(scale, in.Ticks),
	})
}

func (p *plot) frame(axis charts.Axis) charts.Axis {
	axis.Width = p.area.Width
	axis.Height = p.area.Height
	return axis
}

func (p plot) axes() (charts.Axis, charts.Axis) {
	if p.layout == charts.Vertical {
		return p.value, p.category
	}
	return p.category, p.value
}

func (p plot) lineConfig(i int) charts.LineConfig {
	x, y := p.axes()
	return charts.LineConfig{
		Layout:   p.layout,
		XAxis:    x,
		YAxis:    y,
		Key:      p.column(i),
		BandSize: p.bandSize,
	}
}

func (p plot) barConfig(i int) charts.BarConfig {
	var (
		x, y  = p.axes()
		count = len(p.cfg.Data.Values)
		slot  = i
	)
	if p.stacked != nil {
		count, slot = 1, 0
	}
	cfg := charts.BarConfig{
		Layout:   p.layout,
		XAxis:    x,
		YAxis:    y,
		Key:      p.column(i),
		BandSize: p.bandSize,
		MinSize:  charts.FixedMinPointSize(p.cfg.Bar.MinPointSize),
	}
	if list := charts.BarPositions(p.bandSize, p.cfg.Bar.CategoryGap, p.cfg.Bar.Gap, count); slot < len(list) {
		cfg.Position = list[slot]
	}
	if p.stacked != nil && i < len(p.stacked) {
		cfg.Stacked = p.stacked[i]
	}
	return cfg
}

func (p plot) pieConfig(i int) charts.PieConfig {
	var (
		opt      = p.cfg.Pie
		cx, _    = charts.ParseLength(opt.Cx)
		cy, _    = charts.ParseLength(opt.Cy)
		inner, _ = charts.ParseLength(opt.InnerRadius)
		outer, _ = charts.ParseLength(opt.OuterRadius)
		nameKey  charts.Key
	)
	if p.cfg.Data.Category != "" {
		nameKey = charts.FieldKey(p.cfg.Data.Category)
	}
	return charts.PieConfig{
		Area:         p.area,
		Cx:           cx,
		Cy:           cy,
		InnerRadius:  inner,
		OuterRadius:  outer,
		StartAngle:   opt.StartAngle,
		EndAngle:     opt.EndAngle,
		MinAngle:     opt.MinAngle,
		PaddingAngle: opt.PaddingAngle,
		Key:          p.column(i),
		NameKey:      nameKey,
	}
}

func (p plot) column(i int) charts.Key {
	if i < 0 || i >= len(p.cfg.Data.Values) {
		return charts.Key{}
	}
	return Column(p.cfg.Data.Values[i])
}

// place attaches the axes to the sides of the chart given in the config.
// Category labels are moved to the middle of their band.
func (p plot) place(ch *charts.Chart, cfg Config) {
	category := p.category
	if category.Type == charts.AxisCategory {
		ticks := make([]charts.Tick, len(category.Ticks))
		for i, t := range category.Ticks {
			t.Coordinate += p.bandSize / 2
			ticks[i] = t
		}
		category.Ticks = ticks
	}
	x, y := category, p.value
	if p.layout == charts.Vertical {
		x, y = p.value, category
	}
	attach(ch, x, cfg.X.Position, PosBottom)
	attach(ch, y, cfg.Y.Position, PosLeft)
}

func attach(ch *charts.Chart, axis charts.Axis, pos, def string) {
	if pos == "" {
		pos = def
	}
	axis.Orientation = orientation(pos)
	switch pos {
	case PosTop:
		ch.Top = &axis
	case PosBottom:
		ch.Bottom = &axis
	case PosLeft:
		ch.Left = &axis
	case PosRight:
		ch.Right = &axis
	}
}

// domainOf returns the domain of an axis: the one configured or the extent of
// the values found in data, always including 0.
func domainOf(in Input, data []charts.Record, values func(charts.Record) []float64) (float64, float64) {
	if len(in.Domain) == 2 {
		return in.Domain[0], in.Domain[1]
	}
	var lo, hi float64
	for _, rec := range data {
		for _, f := range values(rec) {
			lo = math.Min(lo, f)
			hi = math.Max(hi, f)
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

func categories(key charts.Key, data []charts.Record, duplicated bool) []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for i, rec := range data {
		name := categoryName(key, rec, i)
		if _, ok := seen[name]; ok && !duplicated {
			continue
		}
		seen[name] = struct{}{}
		list = append(list, name)
	}
	return list
}

func categoryName(key charts.Key, rec charts.Record, index int) string {
	switch v := key.Raw(rec).(type) {
	case string:
		return v
	case nil:
		return charts.ToValue(index).String()
	default:
		return charts.ToValue(v).String()
	}
}

// stackValues stacks the value columns on top of each other, row by row, in
// the order of columns. Missing values add nothing.
func stackValues(columns []string, data []charts.Record) [][][2]float64 {
	var (
		stacked = make([][][2]float64, len(columns))
		tops    = make([]float64, len(data))
	)
	for i, col := range columns {
		key := Column(col)
		stacked[i] = make([][2]float64, len(data))
		for j, rec := range data {
			f := key.Extract(rec).Or(0)
			stacked[i][j] = [2]float64{tops[j], tops[j] + f}
			tops[j] += f
		}
	}
	return stacked
}
