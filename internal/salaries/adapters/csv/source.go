package csv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"salary-viz-service/internal/salaries/core/ports"
)

// Source reads salary rows from a delimited file with a header row.
type Source struct {
	path  string
	comma rune
	open  func(path string) (io.ReadCloser, error)
}

var _ ports.RecordSourcePort = (*Source)(nil)

func NewSource(path string, comma rune) *Source {
	if comma == 0 {
		comma = ','
	}
	return &Source{
		path:  path,
		comma: comma,
		open:  func(p string) (io.ReadCloser, error) { return os.Open(p) },
	}
}

func (s *Source) Name() string {
	return "csv:" + filepath.Base(s.path)
}

func (s *Source) ReadRows(ctx context.Context) ([]ports.RawRow, error) {
	f, err := s.open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", s.path)
	}
	defer f.Close()

	rows, err := ReadRows(ctx, f, s.comma)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.path)
	}
	return rows, nil
}

// ReadRows parses r as CSV. Short rows are padded with empty values so missing fields
// are seen as absent rather than shifting columns.
func ReadRows(ctx context.Context, r io.Reader, comma rune) ([]ports.RawRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []ports.RawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed row")
		}

		row := make(ports.RawRow, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
