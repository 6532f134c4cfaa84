package charts

import (
	"math"
	"reflect"
)

// Lerp interpolates linearly between a and b. It returns exactly a at 0 and
// exactly b at 1.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Remap returns the index, in a sequence of oldLen elements, that matches
// index newIndex of a sequence of newLen elements.
func Remap(oldLen, newLen, newIndex int) (int, bool) {
	if oldLen <= 0 || newLen <= 0 || newIndex < 0 {
		return 0, false
	}
	ix := int(math.Floor(float64(newIndex) * float64(oldLen) / float64(newLen)))
	if ix >= oldLen {
		return 0, false
	}
	return ix, true
}

// Equal reports whether two geometry sequences are the same, element by
// element.
func Equal[G any](a, b []G) bool {
	if len(a) != len(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Blender computes the geometry displayed at progress t of a transition from
// prev to curr.
type Blender[G any] interface {
	Blend(prev, curr []G, t float64) []G
}

// BlendFunc adapts a function to Blender.
type BlendFunc[G any] func(prev, curr []G, t float64) []G

func (f BlendFunc[G]) Blend(prev, curr []G, t float64) []G {
	return f(prev, curr, t)
}

// LineBlender interpolates points. Width and Height are the size of the plot
// area; points without counterpart come from (2*Width, Height/2) when
// AnimateNewValues is set.
type LineBlender struct {
	Width            float64
	Height           float64
	AnimateNewValues bool
}

func (b LineBlender) Blend(prev, curr []Point, t float64) []Point {
	list := make([]Point, len(curr))
	for i, pt := range curr {
		list[i] = pt
		if j, ok := Remap(len(prev), len(curr), i); ok {
			old := prev[j]
			list[i].X = lerpCoord(old.X, pt.X, t)
			list[i].Y = lerpCoord(old.Y, pt.Y, t)
			continue
		}
		if b.AnimateNewValues {
			list[i].X = lerpCoord(At(b.Width*2), pt.X, t)
			list[i].Y = lerpCoord(At(b.Height/2), pt.Y, t)
		}
	}
	return list
}

// lerpCoord interpolates two coordinates. An absent target stays absent and
// an absent origin makes the target appear at once.
func lerpCoord(from, to Coord, t float64) Coord {
	if !to.Valid {
		return to
	}
	if !from.Valid {
		return to
	}
	return At(Lerp(from.V, to.V, t))
}

// BarBlender interpolates rectangles of the same index. New rectangles grow
// from the value axis baseline.
type BarBlender struct {
	Layout Layout
}

func (b BarBlender) Blend(prev, curr []Rect, t float64) []Rect {
	list := make([]Rect, len(curr))
	for i, r := range curr {
		list[i] = r
		if i < len(prev) {
			old := prev[i]
			list[i].X = Lerp(old.X, r.X, t)
			list[i].Y = Lerp(old.Y, r.Y, t)
			list[i].Width = Lerp(old.Width, r.Width, t)
			list[i].Height = Lerp(old.Height, r.Height, t)
			continue
		}
		if b.Layout == Horizontal {
			h := Lerp(0, r.Height, t)
			list[i].Y = r.Y + r.Height - h
			list[i].Height = h
		} else {
			list[i].Width = Lerp(0, r.Width, t)
		}
	}
	return list
}

// BlendSectors lays out the sectors again, one after the other, moving from
// the sweeps of prev to the sweeps of curr. Sectors without counterpart grow
// from an empty sweep.
func BlendSectors(prev, curr []Sector, t float64) []Sector {
	if len(curr) == 0 {
		return nil
	}
	var (
		list  = make([]Sector, len(curr))
		angle = curr[0].StartAngle
	)
	for i, s := range curr {
		var (
			padding float64
			sweep   = Lerp(0, s.Sweep(), t)
		)
		if i > 0 {
			padding = s.PaddingAngle
		}
		if i < len(prev) {
			sweep = Lerp(prev[i].Sweep(), s.Sweep(), t)
		}
		list[i] = s
		list[i].StartAngle = angle + padding
		list[i].EndAngle = angle + sweep + padding
		angle = list[i].EndAngle
	}
	return list
}
