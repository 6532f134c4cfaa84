package dash

import (
	"strings"

	charts "github.com/midbel/animcharts"
)

type Style struct {
	Stroke  string   `yaml:"stroke" json:"stroke"`
	Width   float64  `yaml:"width" json:"width"`
	Palette string   `yaml:"palette" json:"palette"`
	Fill    []string `yaml:"fill" json:"fill"`
	Dash    string   `yaml:"dash" json:"dash"`
	Point   string   `yaml:"point" json:"point"`
	Labels  bool     `yaml:"labels" json:"labels"`

	TextPosition string `yaml:"text_position" json:"text_position"`
}

func GlobalStyle() Style {
	return Style{
		Width:   1,
		Palette: "category10",
		Point:   "none",
	}
}

func (s Style) textPosition() charts.TextPosition {
	switch s.TextPosition {
	case "text-before":
		return charts.TextBefore
	case "text-after":
		return charts.TextAfter
	default:
		return 0
	}
}

func (s Style) palette() charts.Palette {
	if len(s.Fill) > 0 {
		return charts.Palette(s.Fill)
	}
	switch strings.ToLower(s.Palette) {
	case "tableau10":
		return charts.Tableau10
	default:
		return charts.Category10
	}
}

func (s Style) lineStyle(i int) charts.LineStyle {
	stroke := s.Stroke
	if stroke == "" {
		stroke = s.palette().At(i)
	}
	return charts.LineStyle{
		Stroke:      stroke,
		Width:       s.Width,
		DashPattern: s.Dash,
		Dot:         charts.ParseDot(s.Point),
		Labels:      s.Labels,
		Text:        s.textPosition(),
	}
}

func (s Style) barStyle(i int, opt BarOptions) charts.BarStyle {
	fill := charts.Palette{s.palette().At(i)}
	return charts.BarStyle{
		Fill:       fill,
		Background: opt.Background,
		Labels:     s.Labels,
	}
}

func (s Style) pieStyle() charts.PieStyle {
	return charts.PieStyle{
		Fill:   s.palette(),
		Stroke: s.Stroke,
		Labels: s.Labels,
	}
}
