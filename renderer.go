package charts

import (
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/midbel/slices"
)

// LinePath is the path data of a line joining the defined points with
// straight segments. Absent points break the line.
func LinePath(points []Point) string {
	var (
		str strings.Builder
		pen bool
	)
	for _, pt := range points {
		if !pt.Defined() {
			pen = false
			continue
		}
		if pen {
			str.WriteString("L")
		} else {
			str.WriteString("M")
		}
		str.WriteString(coords(pt.X.V, pt.Y.V))
		pen = true
	}
	return str.String()
}

// RectPath is the path data of a box. Negative extents are drawn in the
// opposite direction.
func RectPath(b Box) string {
	return "M" + coords(b.X, b.Y) +
		"h" + formatFloat(b.Width) +
		"v" + formatFloat(b.Height) +
		"h" + formatFloat(-b.Width) + "Z"
}

const maxSweep = 359.999

// SectorPath is the path data of an annular sector. A full circle is drawn
// as an almost closed arc since an arc can not end on its start.
func SectorPath(s Sector) string {
	var (
		delta = s.EndAngle - s.StartAngle
		angle = Sign(delta) * math.Min(math.Abs(delta), maxSweep)
		end   = s.StartAngle + angle
		large = "0"
		sweep = "0"

		outerStart = PolarToCartesian(s.Cx, s.Cy, s.OuterRadius, s.StartAngle)
		outerEnd   = PolarToCartesian(s.Cx, s.Cy, s.OuterRadius, end)
		str        strings.Builder
	)
	if math.Abs(angle) > halfcircle {
		large = "1"
	}
	if s.StartAngle > end {
		sweep = "1"
	}
	str.WriteString("M" + coords(outerStart.X, outerStart.Y))
	str.WriteString("A" + coords(s.OuterRadius, s.OuterRadius) + ",0," + large + "," + sweep + "," + coords(outerEnd.X, outerEnd.Y))
	if s.InnerRadius > 0 {
		var (
			innerStart = PolarToCartesian(s.Cx, s.Cy, s.InnerRadius, s.StartAngle)
			innerEnd   = PolarToCartesian(s.Cx, s.Cy, s.InnerRadius, end)
		)
		sweep = "1"
		if s.StartAngle > end {
			sweep = "0"
		}
		str.WriteString("L" + coords(innerEnd.X, innerEnd.Y))
		str.WriteString("A" + coords(s.InnerRadius, s.InnerRadius) + ",0," + large + "," + sweep + "," + coords(innerStart.X, innerStart.Y))
	} else {
		str.WriteString("L" + coords(s.Cx, s.Cy))
	}
	str.WriteString("Z")
	return str.String()
}

// RenderLine draws a frame of a line series.
func RenderLine(canvas *svg.SVG, frame Frame[Point], style LineStyle) {
	if len(frame.Geometry) == 0 {
		return
	}
	canvas.Gstyle("fill:none")

	attrs := []string{
		attr("stroke", style.stroke()),
		attr("stroke-width", formatFloat(style.width())),
	}
	switch {
	case frame.Dasharray != "":
		attrs = append(attrs, attr("stroke-dasharray", frame.Dasharray))
	case style.DashPattern != "":
		attrs = append(attrs, attr("stroke-dasharray", style.DashPattern))
	}
	canvas.Path(LinePath(frame.Geometry), attrs...)

	if dot := style.Dot.Resolve(style.stroke()); dot != nil {
		for i, pt := range frame.Geometry {
			dot(canvas, pt, i)
		}
	}
	if style.Labels && frame.Finished {
		for _, pt := range frame.Geometry {
			if !pt.Defined() {
				continue
			}
			canvas.Text(round(pt.X.V), round(pt.Y.V-FontSize*0.5), pt.Value.String(), "text-anchor:middle;font-size:10px;fill:"+style.stroke())
		}
	}
	if style.Title != "" && style.Text != 0 && frame.Finished {
		renderLineTitle(canvas, frame.Geometry, style)
	}
	canvas.Gend()
}

func renderLineTitle(canvas *svg.SVG, points []Point, style LineStyle) {
	fst, lst, ok := Extent(points)
	if !ok {
		return
	}
	var (
		pt     = lst
		offset = FontSize * 0.4
		anchor = "start"
	)
	if style.Text == TextBefore {
		pt, offset, anchor = fst, -offset, "end"
	}
	canvas.Text(round(pt.X.V+offset), round(pt.Y.V), style.Title, "text-anchor:"+anchor+";dominant-baseline:middle;font-size:12px;fill:"+style.stroke())
}

// RenderBars draws a frame of a bar series.
func RenderBars(canvas *svg.SVG, frame Frame[Rect], style BarStyle) {
	if len(frame.Geometry) == 0 {
		return
	}
	canvas.Gstyle("stroke:none")
	if style.Background != "" {
		for _, r := range frame.Geometry {
			canvas.Path(RectPath(r.Background), attr("fill", style.Background))
		}
	}
	for i, r := range frame.Geometry {
		attrs := []string{attr("fill", style.Fill.At(i))}
		if i == frame.Focus {
			attrs = append(attrs, attr("stroke", "#000"), attr("stroke-width", "2"))
		}
		canvas.Path(RectPath(r.Box), attrs...)
	}
	if style.Labels && frame.Finished {
		for _, r := range frame.Geometry {
			canvas.Text(round(r.X+r.Width/2), round(math.Min(r.Y, r.Y+r.Height)-2), r.Value.String(), "text-anchor:middle;font-size:10px")
		}
	}
	canvas.Gend()
}

// RenderPie draws a frame of a pie series.
func RenderPie(canvas *svg.SVG, frame Frame[Sector], style PieStyle) {
	if len(frame.Geometry) == 0 {
		return
	}
	stroke := style.Stroke
	if stroke == "" {
		stroke = "#fff"
	}
	canvas.Gstyle("stroke:" + stroke)
	for i, s := range frame.Geometry {
		attrs := []string{attr("fill", style.Fill.At(i))}
		if i == frame.Focus {
			attrs = append(attrs, attr("stroke", "#000"), attr("stroke-width", "2"))
		}
		canvas.Path(SectorPath(s), attrs...)
	}
	if style.Labels && frame.Finished {
		for _, s := range frame.Geometry {
			pos := PolarToCartesian(s.Cx, s.Cy, s.OuterRadius+FontSize, s.MidAngle)
			canvas.Text(round(pos.X), round(pos.Y), s.Name, "text-anchor:middle;font-size:10px;stroke:none")
		}
	}
	canvas.Gend()
}

// RenderAxis draws the domain line and the ticks of an axis placed at
// (left, top).
func RenderAxis(canvas *svg.SVG, axis Axis, length, left, top float64) {
	if len(axis.Ticks) == 0 && length == 0 {
		return
	}
	canvas.Gtransform("translate(" + coords(left, top) + ")")
	x, y := length, 0.0
	if axis.Vertical() {
		x, y = y, x
	}
	canvas.Path("M0,0L"+coords(x, y), attr("stroke", "black"))
	for _, t := range axis.Ticks {
		var (
			pos   = t.Coordinate
			label = ToValue(t.Value).String()
		)
		if s, ok := t.Value.(string); ok {
			label = s
		}
		tx, ty := pos, 0.0
		if axis.Vertical() {
			tx, ty = 0, pos
		}
		tick, text := tickPath(axis.Orientation, tx, ty)
		canvas.Path(tick, attr("stroke", "black"))
		canvas.Text(round(text.X), round(text.Y), label, tickAnchor(axis.Orientation))
	}
	canvas.Gend()
}

func tickPath(orient Orientation, x, y float64) (string, Position) {
	size := FontSize * 0.5
	switch {
	case orient.Vertical() && !orient.Reverse():
		return "M" + coords(x, y) + "h" + formatFloat(-size), Position{X: x - size*2, Y: y + FontSize/3}
	case orient.Vertical() && orient.Reverse():
		return "M" + coords(x, y) + "h" + formatFloat(size), Position{X: x + size*2, Y: y + FontSize/3}
	case orient.Reverse():
		return "M" + coords(x, y) + "v" + formatFloat(-size), Position{X: x, Y: y - size*2}
	default:
		return "M" + coords(x, y) + "v" + formatFloat(size), Position{X: x, Y: y + size + FontSize}
	}
}

func tickAnchor(orient Orientation) string {
	switch {
	case orient.Vertical() && !orient.Reverse():
		return "text-anchor:end;font-size:10px"
	case orient.Vertical() && orient.Reverse():
		return "text-anchor:start;font-size:10px"
	default:
		return "text-anchor:middle;font-size:10px"
	}
}

// Extent returns the first and last defined points of a line.
func Extent(points []Point) (Point, Point, bool) {
	var list []Point
	for _, pt := range points {
		if pt.Defined() {
			list = append(list, pt)
		}
	}
	if len(list) == 0 {
		return Point{}, Point{}, false
	}
	return slices.Fst(list), slices.Lst(list), true
}

func round(f float64) int {
	return int(math.Round(f))
}
