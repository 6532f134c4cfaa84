package charts

import (
	"bufio"
	"io"

	svg "github.com/ajstarks/svgo"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart places series and axes inside a drawing. Series geometry is expressed
// in the coordinates of the plot area, its origin being the top left corner
// inside the padding.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Left   *Axis
	Right  *Axis
	Top    *Axis
	Bottom *Axis

	Legend struct {
		Title  string
		Orient Orientation
	}
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Area is the plot area in its own coordinates.
func (c Chart) Area() Box {
	return Box{
		Width:  c.DrawingWidth(),
		Height: c.DrawingHeight(),
	}
}

// Render writes one frame of the chart: the current displayed geometry of
// every series.
func (c Chart) Render(w io.Writer, set ...Series) error {
	bw := bufio.NewWriter(w)

	canvas := svg.New(bw)
	canvas.Start(round(c.Width), round(c.Height))
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	c.drawAxis(canvas)

	canvas.Gtransform("translate(" + coords(c.Padding.Left, c.Padding.Top) + ")")
	for _, s := range set {
		canvas.Gid(s.Title())
		s.Render(canvas)
		canvas.Gend()
	}
	canvas.Gend()
	c.drawLegend(canvas, set)
	canvas.End()

	return bw.Flush()
}

func (c Chart) drawLegend(canvas *svg.SVG, set []Series) {
	if c.Legend.Orient == 0 || len(set) == 0 {
		return
	}
	var (
		offset = FontSize * 1.4
		height = float64(len(set)) * offset
		width  float64
		left   float64
		top    float64
	)
	if c.Legend.Title != "" {
		height += offset
	}
	for i, s := range set {
		if n := float64(len(s.Title())); i == 0 || n > width {
			width = n
		}
	}
	width *= FontSize * 0.4

	switch c.Legend.Orient {
	case OrientRight:
		left = c.Width - c.Padding.Left - width
		top = (c.Height - c.Padding.Top - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Left - width
		top = c.Height - c.Padding.Top - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Top - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Top - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - c.Padding.Vertical() - height) / 2
	case OrientLeft | OrientTop:
		left = c.Padding.Left
		top = c.Padding.Top
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		left = c.Width - c.Padding.Left - width
		top = c.Padding.Top
	default:
		return
	}
	canvas.Gtransform("translate(" + coords(left, top) + ")")
	if c.Legend.Title != "" {
		canvas.Text(0, 0, c.Legend.Title, "font-size:12px;font-weight:bold")
	}
	for i, s := range set {
		y := float64(i) * offset
		if c.Legend.Title != "" {
			y += offset
		}
		colour := Category10.At(i)
		canvas.Path("M"+coords(0, y)+"h20", attr("stroke", colour))
		canvas.Text(30, round(y), s.Title(), "font-size:12px;dominant-baseline:middle")
	}
	canvas.Gend()
}

func (c Chart) drawAxis(canvas *svg.SVG) {
	canvas.Gid("axis")
	if c.Left != nil {
		RenderAxis(canvas, *c.Left, c.DrawingHeight(), c.Padding.Left, c.Padding.Top)
	}
	if c.Right != nil {
		RenderAxis(canvas, *c.Right, c.DrawingHeight(), c.Width-c.Padding.Right, c.Padding.Top)
	}
	if c.Top != nil {
		RenderAxis(canvas, *c.Top, c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
	}
	if c.Bottom != nil {
		RenderAxis(canvas, *c.Bottom, c.DrawingWidth(), c.Padding.Left, c.Height-c.Padding.Bottom)
	}
	canvas.Gend()
}
