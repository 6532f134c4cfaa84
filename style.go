package charts

const currentColour = "currentColor"

// TextPosition tells where the title of a line is written.
type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

type LineStyle struct {
	Stroke      string
	Width       float64
	DashPattern string
	Dot         DotOption
	Labels      bool

	Title string
	Text  TextPosition
}

type BarStyle struct {
	Fill       Palette
	Background string
	Labels     bool
}

type PieStyle struct {
	Fill   Palette
	Stroke string
	Labels bool
}

func (s LineStyle) stroke() string {
	if s.Stroke == "" {
		return currentColour
	}
	return s.Stroke
}

func (s LineStyle) width() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}
