// Package store implements the record store: whole-collection load and
// save against one backing file per collection, in one of two
// interchangeable serializations (delimited rows with a header, or a
// tagged key/value document).
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/kjk/common/atomicfile"
	"github.com/rs/zerolog"

	"github.com/campusware/roster/internal/app/models"
	"github.com/campusware/roster/internal/pkg/apperrors"
)

// Format selects the on-disk serialization.
type Format string

const (
	// FormatCSV stores collections as delimited rows with a header row.
	FormatCSV Format = "csv"
	// FormatTagged stores collections as a sequence of tagged key/value
	// records.
	FormatTagged Format = "tagged"
)

// codec serializes a full collection to and from its backing file.
type codec interface {
	ext() string
	encode(w io.Writer, fields []string, rows []models.Row) error
	decode(r io.Reader) ([]models.Row, error)
}

// Store persists collections under a single directory, one file per
// collection. Access is assumed exclusive to this process; there is no
// locking.
type Store struct {
	dir    string
	codec  codec
	logger zerolog.Logger
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, format Format, lgr zerolog.Logger) (*Store, error) {
	var c codec
	switch format {
	case FormatCSV:
		c = csvCodec{}
	case FormatTagged:
		c = taggedCodec{}
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", apperrors.ErrStorage, dir, err)
	}

	return &Store{dir: dir, codec: c, logger: lgr}, nil
}

// Path returns the backing file path for a collection.
func (s *Store) Path(schema models.Schema) string {
	return filepath.Join(s.dir, schema.Name+s.codec.ext())
}

// Ensure guarantees each backing file exists with at least a valid empty
// structure. Idempotent; existing files are left untouched.
func (s *Store) Ensure(schemas ...models.Schema) error {
	for _, schema := range schemas {
		path := s.Path(schema)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: stat %s: %v", apperrors.ErrStorage, path, err)
		}

		if err := s.Save(schema, nil); err != nil {
			return err
		}
		s.logger.Info().Str("collection", schema.Name).Str("path", path).Msg("Initialized empty collection")
	}
	return nil
}

// Load reads the full collection into memory. A missing file is reported
// as ErrCollectionMissing; undecodable content as ErrCollectionMalformed.
// A file holding only the empty structure yields an empty collection.
func (s *Store) Load(schema models.Schema) ([]models.Row, error) {
	path := s.Path(schema)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCollectionMissing, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", apperrors.ErrStorage, path, err)
	}
	defer f.Close()

	rows, err := s.codec.decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCollectionMalformed, path, err)
	}
	return rows, nil
}

// Save overwrites the backing file with the full collection. The write
// goes to a temporary file that is renamed over the destination, so a
// crash mid-write cannot leave a half-written collection behind.
func (s *Store) Save(schema models.Schema, rows []models.Row) error {
	path := s.Path(schema)
	f, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrStorage, path, err)
	}
	defer f.RemoveIfNotClosed()

	if err := s.codec.encode(f, fieldOrder(schema, rows), rows); err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperrors.ErrStorage, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStorage, path, err)
	}

	s.logger.Debug().Str("collection", schema.Name).Int("records", len(rows)).Msg("Collection saved")
	return nil
}

// fieldOrder is the canonical schema order followed by any extra fields
// the rows carry, alphabetically. Extra fields survive a rewrite even
// though no operation produces them today.
func fieldOrder(schema models.Schema, rows []models.Row) []string {
	fields := slices.Clone(schema.Fields)
	var extras []string
	for _, row := range rows {
		for k := range row {
			if !slices.Contains(fields, k) && !slices.Contains(extras, k) {
				extras = append(extras, k)
			}
		}
	}
	slices.Sort(extras)
	return append(fields, extras...)
}
