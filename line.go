package charts

// Coord is a pixel position that may be absent, as the value coordinate of a
// record without value.
type Coord struct {
	V     float64
	Valid bool
}

func At(v float64) Coord {
	return Coord{
		V:     v,
		Valid: true,
	}
}

func (c Coord) Or(def float64) float64 {
	if !c.Valid {
		return def
	}
	return c.V
}

// Point is the geometry of one record of a line series.
type Point struct {
	X       Coord
	Y       Coord
	Value   Value
	Payload Record
}

func (p Point) Defined() bool {
	return p.X.Valid && p.Y.Valid
}

type LineConfig struct {
	Layout   Layout
	XAxis    Axis
	YAxis    Axis
	Key      Key
	BandSize float64
}

// ComposeLine computes the points of a line series, one per record and in the
// order of data.
func ComposeLine(cfg LineConfig, data []Record) []Point {
	points := make([]Point, 0, len(data))
	for i, rec := range data {
		var (
			val = cfg.Key.Extract(rec)
			pt  = Point{
				Value:   val,
				Payload: rec,
			}
		)
		if cfg.Layout == Horizontal {
			pt.X = cfg.XAxis.lineCoordinate(rec, i, Key{}, cfg.BandSize)
			if f, ok := val.Float(); ok {
				pt.Y = At(cfg.YAxis.scale(f))
			}
		} else {
			pt.Y = cfg.YAxis.lineCoordinate(rec, i, Key{}, cfg.BandSize)
			if f, ok := val.Float(); ok {
				pt.X = At(cfg.XAxis.scale(f))
			}
		}
		points = append(points, pt)
	}
	return points
}
