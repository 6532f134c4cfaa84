package dash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/slices"
	"github.com/xuri/excelize/v2"

	charts "github.com/midbel/animcharts"
)

// Source gives the rows of a table, the first one being the header.
type Source interface {
	Rows() ([][]string, error)
}

type CSVSource struct {
	Path      string
	Delimiter string
}

func (s CSVSource) Rows() ([][]string, error) {
	r, err := readFrom(s.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if d := []rune(s.Delimiter); len(d) == 1 {
		rs.Comma = d[0]
	}
	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// XLSXSource reads a sheet of a workbook, the first one when Sheet is empty.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s XLSXSource) Rows() ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheet", s.Path)
		}
		sheet = slices.Fst(list)
	}
	return f.GetRows(sheet)
}

// Open returns the source of d from the extension of its path.
func Open(d Data) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(d.Path)); ext {
	case ".csv", ".txt", "":
		return CSVSource{Path: d.Path, Delimiter: d.Delimiter}, nil
	case ".tsv":
		return CSVSource{Path: d.Path, Delimiter: "\t"}, nil
	case ".xlsx", ".xlsm":
		return XLSXSource{Path: d.Path, Sheet: d.Sheet}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Load reads the records described by d.
func Load(d Data) ([]charts.Record, error) {
	src, err := Open(d)
	if err != nil {
		return nil, err
	}
	rows, err := src.Rows()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := slices.Fst(rows)
	if err := checkColumns(header, append([]string{d.Category}, d.Values...)...); err != nil {
		return nil, err
	}
	return toRecords(header, limitRows(slices.Rest(rows), d.Limit)), nil
}

func toRecords(header []string, rows [][]string) []charts.Record {
	list := make([]charts.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(charts.Record, len(header))
		for i, h := range header {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		list = append(list, rec)
	}
	return list
}

func limitRows(rows [][]string, limit Limit) [][]string {
	beg, end := limit.Beg, limit.End
	if beg < 0 || beg > len(rows) {
		beg = len(rows)
	}
	if end <= 0 || end > len(rows) {
		end = len(rows)
	}
	if beg > end {
		return nil
	}
	return rows[beg:end]
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		res, err := http.Get(u.String())
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: unexpected status %s", location, res.Status)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
