package charts

import (
	"fmt"
	"math"
	"time"
)

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
	Merge(Domain[T]) (Domain[T], error)
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Merge(other Domain[float64]) (Domain[float64], error) {
	d, ok := other.(numberDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	x := n
	if d.fst < x.fst {
		x.fst = d.fst
	}
	if d.lst > x.lst {
		x.lst = d.lst
	}
	return x, nil
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst, n.lst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Merge(other Domain[time.Time]) (Domain[time.Time], error) {
	d, ok := other.(timeDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	n := t
	if t.fst.After(d.fst) {
		n.fst = d.fst
	}
	if t.lst.Before(d.lst) {
		n.lst = d.lst
	}
	return n, nil
}

func (t timeDomain) Diff(v time.Time) float64 {
	return float64(v.Sub(t.fst))
}

func (t timeDomain) Extend() float64 {
	return float64(t.lst.Sub(t.fst))
}

func (t timeDomain) Values(c int) []time.Time {
	if c <= 0 {
		return []time.Time{t.fst, t.lst}
	}
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

// Scale is the part of an axis scale used by the geometry composers: a value
// to pixel mapping and the domain bounds, in their declared order.
type Scale interface {
	Scale(float64) float64
	Domain() (float64, float64)
}

// ScaleFunc adapts a plain function to Scale. Its domain is the one given to
// FuncScale.
type ScaleFunc struct {
	Func func(float64) float64
	Lo   float64
	Hi   float64
}

func FuncScale(fn func(float64) float64, lo, hi float64) ScaleFunc {
	return ScaleFunc{
		Func: fn,
		Lo:   lo,
		Hi:   hi,
	}
}

func (s ScaleFunc) Scale(v float64) float64 {
	return s.Func(v)
}

func (s ScaleFunc) Domain() (float64, float64) {
	return s.Lo, s.Hi
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type NumberScaler struct {
	Range
	dom numberDomain
}

func LinearScaler(dom Domain[float64], rg Range) NumberScaler {
	s := NumberScaler{Range: rg}
	if d, ok := dom.(numberDomain); ok {
		s.dom = d
	}
	return s
}

func (n NumberScaler) Scale(v float64) float64 {
	return n.F + n.dom.Diff(v)*n.Space()
}

func (n NumberScaler) Space() float64 {
	ext := n.dom.Extend()
	if ext == 0 {
		return 0
	}
	return n.Len() / ext
}

func (n NumberScaler) Values(c int) []float64 {
	return n.dom.Values(c)
}

func (n NumberScaler) Domain() (float64, float64) {
	return n.dom.fst, n.dom.lst
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	return s.F + s.Diff(v)*s.Space()
}

func (s timeScaler) Space() float64 {
	ext := s.Extend()
	if ext == 0 {
		return 0
	}
	return s.Len() / ext
}

type stringScaler struct {
	Range
	Strings []string
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return s.F + float64(x)*s.Space()
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s stringScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

// TimeScale adapts a time scaler to Scale. Values are seconds since the Unix
// epoch, as given by UnixTime.
func TimeScale(s Scaler[time.Time]) Scale {
	return timeScale{scaler: s}
}

type timeScale struct {
	scaler Scaler[time.Time]
}

func (s timeScale) Scale(v float64) float64 {
	return s.scaler.Scale(FromUnix(v))
}

func (s timeScale) Domain() (float64, float64) {
	vs := s.scaler.Values(0)
	if len(vs) == 0 {
		return 0, 0
	}
	return UnixTime(vs[0]), UnixTime(vs[len(vs)-1])
}

func UnixTime(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func FromUnix(f float64) time.Time {
	return time.Unix(0, int64(math.Round(f*float64(time.Second)))).UTC()
}
