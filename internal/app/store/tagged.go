package store

import (
	"bufio"
	"io"

	"github.com/kjk/common/siser"

	"github.com/campusware/roster/internal/app/models"
)

// recordName tags every serialized record; the collection kind is implied
// by the file, not the record.
const recordName = "record"

// taggedCodec reads and writes collections as a sequence of tagged
// key/value records. Timestamps are disabled so rewriting an unchanged
// collection is byte-stable.
type taggedCodec struct{}

func (taggedCodec) ext() string { return ".dat" }

func (taggedCodec) encode(w io.Writer, fields []string, rows []models.Row) error {
	sw := siser.NewWriter(w)
	sw.NoTimestamp = true

	var rec siser.Record
	rec.Name = recordName
	for _, row := range rows {
		rec.Reset()
		for _, f := range fields {
			if err := rec.Write(f, row[f]); err != nil {
				return err
			}
		}
		if _, err := sw.WriteRecord(&rec); err != nil {
			return err
		}
	}
	return nil
}

func (taggedCodec) decode(r io.Reader) ([]models.Row, error) {
	sr := siser.NewReader(bufio.NewReader(r))
	sr.NoTimestamp = true

	var rows []models.Row
	for sr.ReadNextRecord() {
		row := make(models.Row, len(sr.Record.Entries))
		for _, e := range sr.Record.Entries {
			row[e.Key] = e.Value
		}
		rows = append(rows, row)
	}
	if err := sr.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
