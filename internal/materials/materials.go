// Package materials reads material lists exported by Litematica.
package materials

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/akasprzok/litedye/internal/dye"
	"github.com/pkg/errors"
)

// ErrNotMaterialList is returned when the input is not a Litematica CSV export.
var ErrNotMaterialList = errors.New("not a material list in CSV format: " +
	"shift+click the export button in litematica to generate a CSV file")

// Row is one line of the export, before the color prefix is split off.
type Row struct {
	Item    string
	Total   int
	Missing int
}

// Count picks the column the calculation runs on.
func (r Row) Count(useTotal bool) int {
	if useTotal {
		return r.Total
	}
	return r.Missing
}

// Split splits the color prefix off the row's item name.
func (r Row) Split(useTotal bool) dye.Item {
	color, name := dye.SplitColorPrefix(r.Item)
	return dye.Item{Name: name, Color: color, Count: r.Count(useTotal)}
}

type columns struct {
	item, total, missing int
}

func readHeader(header []string) (columns, error) {
	if len(header) == 0 || header[0] != "Item" {
		return columns{}, ErrNotMaterialList
	}

	cols := columns{item: 0, total: -1, missing: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Total":
			cols.total = i
		case "Missing":
			cols.missing = i
		}
	}
	if cols.total < 0 {
		return columns{}, errors.Wrap(ErrNotMaterialList, "no Total column")
	}
	if cols.missing < 0 {
		return columns{}, errors.Wrap(ErrNotMaterialList, "no Missing column")
	}
	return cols, nil
}

var byteOrderMark = []byte("\ufeff")

func skipByteOrderMark(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = br.Discard(len(byteOrderMark))
	}
	return br
}

// ReadRows parses every row of a material list export.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(skipByteOrderMark(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNotMaterialList
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	cols, err := readHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading material list")
		}
		line, _ := reader.FieldPos(0)

		row, err := parseRecord(record, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(record []string, cols columns) (Row, error) {
	field := func(i int) (string, error) {
		if i >= len(record) {
			return "", errors.Errorf("expected at least %d fields, got %d", i+1, len(record))
		}
		return strings.TrimSpace(record[i]), nil
	}
	number := func(i int, name string) (int, error) {
		s, err := field(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, errors.Errorf("%s column: %q is not a count", name, s)
		}
		return n, nil
	}

	item, err := field(cols.item)
	if err != nil {
		return Row{}, err
	}
	total, err := number(cols.total, "Total")
	if err != nil {
		return Row{}, err
	}
	missing, err := number(cols.missing, "Missing")
	if err != nil {
		return Row{}, err
	}
	return Row{Item: item, Total: total, Missing: missing}, nil
}

// ReadItems parses a material list into items, dropping the ones with
// nothing left to gather.
func ReadItems(r io.Reader, useTotal bool) ([]dye.Item, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}

	items := make([]dye.Item, 0, len(rows))
	for _, row := range rows {
		item := row.Split(useTotal)
		if item.Count == 0 {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Open reads the material list at path.
func Open(path string, useTotal bool) ([]dye.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening material list")
	}
	defer f.Close()

	items, err := ReadItems(f, useTotal)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return items, nil
}
