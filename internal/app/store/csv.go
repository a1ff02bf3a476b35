package store

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/campusware/roster/internal/app/models"
)

// csvCodec reads and writes collections as delimited rows. The first row
// names the fields; every data row must have exactly as many cells as the
// header.
type csvCodec struct{}

func (csvCodec) ext() string { return ".csv" }

func (csvCodec) encode(w io.Writer, fields []string, rows []models.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}

	cells := make([]string, len(fields))
	for _, row := range rows {
		for i, f := range fields {
			cells[i] = row[f]
		}
		if err := cw.Write(cells); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (csvCodec) decode(r io.Reader) ([]models.Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// no header at all: treat as an empty collection
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []models.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// a row with the wrong cell count surfaces as csv.ErrFieldCount
		if err != nil {
			return nil, err
		}

		row := make(models.Row, len(header))
		for i, f := range header {
			row[f] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
