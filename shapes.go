package charts

import (
	"strings"

	svg "github.com/ajstarks/svgo"
)

var DefaultSize float64 = 4

// DotFunc draws the marker of one point of a line.
type DotFunc func(*svg.SVG, Point, int)

type dotKind int

const (
	dotNone dotKind = iota
	dotDefault
	dotConfig
	dotCustom
)

// DotStyle describes a marker drawn by the package.
type DotStyle struct {
	Shape  string
	Size   float64
	Fill   string
	Stroke string
}

// DotOption tells how the points of a line are marked: not at all, with the
// default marker, with a configured marker or with a custom function.
type DotOption struct {
	kind   dotKind
	style  DotStyle
	custom DotFunc
}

func NoDot() DotOption {
	return DotOption{kind: dotNone}
}

func DefaultDot() DotOption {
	return DotOption{kind: dotDefault}
}

func ConfigDot(style DotStyle) DotOption {
	return DotOption{
		kind:  dotConfig,
		style: style,
	}
}

func CustomDot(fn DotFunc) DotOption {
	if fn == nil {
		return NoDot()
	}
	return DotOption{
		kind:   dotCustom,
		custom: fn,
	}
}

// ParseDot reads the name of a marker shape. "none" and the empty string
// disable markers.
func ParseDot(str string) DotOption {
	switch str = strings.ToLower(strings.TrimSpace(str)); str {
	case "", "none", "false":
		return NoDot()
	case "true", "default":
		return DefaultDot()
	default:
		return ConfigDot(DotStyle{Shape: str})
	}
}

// Resolve turns the option into the function drawing the markers. It returns
// nil when no marker is drawn.
func (o DotOption) Resolve(stroke string) DotFunc {
	switch o.kind {
	case dotDefault:
		return shapeDot(DotStyle{
			Shape:  "circle",
			Size:   DefaultSize * 1.5,
			Fill:   "#fff",
			Stroke: stroke,
		})
	case dotConfig:
		style := o.style
		if style.Size <= 0 {
			style.Size = DefaultSize
		}
		if style.Fill == "" {
			style.Fill = stroke
		}
		if style.Stroke == "" {
			style.Stroke = stroke
		}
		return shapeDot(style)
	case dotCustom:
		return o.custom
	default:
		return nil
	}
}

func shapeDot(style DotStyle) DotFunc {
	get := GetCircle
	switch style.Shape {
	case "square":
		get = GetSquare
	case "diamond":
		get = GetDiamond
	}
	return func(canvas *svg.SVG, pt Point, _ int) {
		if !pt.Defined() {
			return
		}
		pos := Position{X: pt.X.V, Y: pt.Y.V}
		canvas.Path(get(pos, style.Size), attr("fill", style.Fill), attr("stroke", style.Stroke))
	}
}

func GetCircle(pos Position, size float64) string {
	var (
		r   = size / 2
		str strings.Builder
	)
	str.WriteString("M" + coords(pos.X-r, pos.Y))
	str.WriteString("a" + coords(r, r) + " 0 1,0 " + coords(2*r, 0))
	str.WriteString("a" + coords(r, r) + " 0 1,0 " + coords(-2*r, 0))
	str.WriteString("Z")
	return str.String()
}

func GetSquare(pos Position, size float64) string {
	half := size / 2
	return "M" + coords(pos.X-half, pos.Y-half) +
		"h" + formatFloat(size) +
		"v" + formatFloat(size) +
		"h" + formatFloat(-size) + "Z"
}

func GetDiamond(pos Position, size float64) string {
	half := size / 2
	return "M" + coords(pos.X, pos.Y-half) +
		"L" + coords(pos.X+half, pos.Y) +
		"L" + coords(pos.X, pos.Y+half) +
		"L" + coords(pos.X-half, pos.Y) + "Z"
}

func coords(x, y float64) string {
	return formatFloat(x) + "," + formatFloat(y)
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}
