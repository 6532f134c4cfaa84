package charts

import (
	"math"
	"strconv"
	"strings"
)

// Record is one row of displayed data. Composers never look inside a record
// except through a Key.
type Record map[string]any

type valueKind int

const (
	kindMissing valueKind = iota
	kindScalar
	kindPair
)

// Value is what a Key extracts from a Record: nothing, a single number or a
// [start, end] pair (range bars, stacked bars).
type Value struct {
	kind valueKind
	lo   float64
	hi   float64
}

func Missing() Value {
	return Value{}
}

func Scalar(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}
	return Value{
		kind: kindScalar,
		hi:   f,
	}
}

func Pair(lo, hi float64) Value {
	return Value{
		kind: kindPair,
		lo:   lo,
		hi:   hi,
	}
}

func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

func (v Value) IsPair() bool {
	return v.kind == kindPair
}

// Float returns the scalar held by v. For a pair, it is the end of the range.
func (v Value) Float() (float64, bool) {
	if v.kind == kindMissing {
		return 0, false
	}
	return v.hi, true
}

// Bounds returns the pair held by v.
func (v Value) Bounds() (float64, float64, bool) {
	if v.kind != kindPair {
		return 0, 0, false
	}
	return v.lo, v.hi, true
}

// Or returns the scalar held by v or def when v is missing.
func (v Value) Or(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

func (v Value) String() string {
	switch v.kind {
	case kindScalar:
		return formatFloat(v.hi)
	case kindPair:
		return "[" + formatFloat(v.lo) + "," + formatFloat(v.hi) + "]"
	default:
		return "null"
	}
}

// Key selects a value from a record, either by field name or with a
// function.
type Key struct {
	Name string
	Func func(Record) any
}

func FieldKey(name string) Key {
	return Key{Name: name}
}

func FuncKey(fn func(Record) any) Key {
	return Key{Func: fn}
}

func (k Key) IsZero() bool {
	return k.Name == "" && k.Func == nil
}

// Raw returns the untyped content selected by k.
func (k Key) Raw(r Record) any {
	if k.Func != nil {
		return k.Func(r)
	}
	if r == nil || k.Name == "" {
		return nil
	}
	return r[k.Name]
}

// Extract selects and converts the content of r selected by k.
func (k Key) Extract(r Record) Value {
	return ToValue(k.Raw(r))
}

// ToValue converts loosely typed content, as found in decoded records, into a
// Value. Unknown types and unparsable strings are missing values.
func ToValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case Value:
		return x
	case float64:
		return Scalar(x)
	case float32:
		return Scalar(float64(x))
	case int:
		return Scalar(float64(x))
	case int64:
		return Scalar(float64(x))
	case int32:
		return Scalar(float64(x))
	case uint:
		return Scalar(float64(x))
	case uint64:
		return Scalar(float64(x))
	case [2]float64:
		return Pair(x[0], x[1])
	case []float64:
		if len(x) == 2 {
			return Pair(x[0], x[1])
		}
	case []any:
		if len(x) == 2 {
			lo, ok1 := ToValue(x[0]).Float()
			hi, ok2 := ToValue(x[1]).Float()
			if ok1 && ok2 {
				return Pair(lo, hi)
			}
		}
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return Missing()
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return Missing()
		}
		return Scalar(f)
	}
	return Missing()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
