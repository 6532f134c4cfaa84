package dash

import (
	"errors"
	"fmt"
	"strings"

	charts "github.com/midbel/animcharts"
)

var ErrIndex = errors.New("invalid index")

// Column returns the key selecting a value column. A column written "a+b"
// sums the columns a and b; the sum is missing when one of them is.
func Column(expr string) charts.Key {
	parts := columnParts(expr)
	if len(parts) == 1 {
		return charts.FieldKey(parts[0])
	}
	return charts.FuncKey(func(rec charts.Record) any {
		var sum float64
		for _, p := range parts {
			f, ok := charts.FieldKey(p).Extract(rec).Float()
			if !ok {
				return nil
			}
			sum += f
		}
		return sum
	})
}

func columnName(expr string) string {
	return strings.Join(columnParts(expr), "+")
}

func columnParts(expr string) []string {
	var list []string
	for _, p := range strings.Split(expr, "+") {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		list = append(list, strings.TrimSpace(expr))
	}
	return list
}

// checkColumns verifies that every column used by exprs is in header.
func checkColumns(header []string, exprs ...string) error {
	known := make(map[string]struct{})
	for _, h := range header {
		known[h] = struct{}{}
	}
	for _, s := range exprs {
		if s == "" {
			continue
		}
		for _, p := range columnParts(s) {
			if _, ok := known[p]; !ok {
				return fmt.Errorf("%s: %w", p, ErrIndex)
			}
		}
	}
	return nil
}
