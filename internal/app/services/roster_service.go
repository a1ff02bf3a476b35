// Package services implements the record operations. Every operation is a
// single load, transform, store transaction against one collection; errors
// abort the transaction before anything is written back.
package services

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusware/roster/internal/app/models"
	"github.com/campusware/roster/internal/app/store"
	"github.com/campusware/roster/internal/pkg/apperrors"
)

// Entry pairs a record with its display position: the 1-based index of the
// record within the collection as of the load that produced it. Positions
// are never persisted and go stale the moment the collection is mutated.
type Entry struct {
	Position int        `json:"position"`
	Record   models.Row `json:"record"`
}

// RosterService runs the record operations for one collection kind.
// A separate instance serves each schema; all instances share the store.
type RosterService struct {
	store  *store.Store
	schema models.Schema
	logger zerolog.Logger
}

// NewRosterService creates a service bound to one collection schema.
func NewRosterService(st *store.Store, schema models.Schema, lgr zerolog.Logger) *RosterService {
	return &RosterService{
		store:  st,
		schema: schema,
		logger: lgr.With().Str("collection", schema.Name).Logger(),
	}
}

// Schema returns the collection schema this service operates on.
func (s *RosterService) Schema() models.Schema {
	return s.schema
}

// Add validates the supplied fields, assigns the next identifier
// (collection size + 1) and appends the record. Identifiers are not
// guaranteed unique after deletions; that is the documented assignment
// rule, not a defect to fix here.
func (s *RosterService) Add(ctx context.Context, fields map[string]string) (models.Row, error) {
	if err := s.validateFields(fields); err != nil {
		return nil, err
	}

	rows, err := s.store.Load(s.schema)
	if err != nil {
		return nil, err
	}

	row := make(models.Row, len(s.schema.Fields))
	for _, f := range s.schema.Required() {
		row[f] = fields[f]
	}
	row[models.FieldID] = strconv.Itoa(len(rows) + 1)

	rows = append(rows, row)
	if err := s.store.Save(s.schema, rows); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", row[models.FieldID]).Msg("Record added")
	return row, nil
}

// validateFields rejects empty required fields and any field the schema
// does not know. The identifier is assigned, never supplied.
func (s *RosterService) validateFields(fields map[string]string) error {
	for k := range fields {
		if k == models.FieldID {
			return fmt.Errorf("%w: %s", apperrors.ErrIdentifierImmutable, k)
		}
		if !s.schema.Has(k) {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownField, k)
		}
	}
	for _, f := range s.schema.Required() {
		if strings.TrimSpace(fields[f]) == "" {
			return fmt.Errorf("%w: %s", apperrors.ErrFieldRequired, f)
		}
	}
	return nil
}

// List loads the collection and returns it as a finite, restartable
// sequence of (display position, record) pairs in load order. The
// sequence iterates over the snapshot taken by this call; reiterating
// does not reload.
func (s *RosterService) List(ctx context.Context) (iter.Seq2[int, models.Row], error) {
	rows, err := s.store.Load(s.schema)
	if err != nil {
		return nil, err
	}

	return func(yield func(int, models.Row) bool) {
		for i, row := range rows {
			if !yield(i+1, row) {
				return
			}
		}
	}, nil
}

// Search returns the records whose name field contains query as a
// case-insensitive substring, with their positions in the full
// collection. An empty query matches every record.
func (s *RosterService) Search(ctx context.Context, query string) ([]Entry, error) {
	rows, err := s.store.Load(s.schema)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]Entry, 0)
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row["name"]), needle) {
			matches = append(matches, Entry{Position: i + 1, Record: row})
		}
	}
	return matches, nil
}

// Sort reorders the collection by the given field and persists the new
// order immediately, so that follow-up position-based addressing stays
// consistent with what the user was shown. Sorting by the identifier is
// numeric ascending and fails if any stored identifier is not an integer;
// any other field sorts case-insensitively, with a missing value treated
// as the empty string. The sort is stable.
func (s *RosterService) Sort(ctx context.Context, field string) error {
	if !s.schema.Has(field) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownField, field)
	}

	rows, err := s.store.Load(s.schema)
	if err != nil {
		return err
	}

	if field == models.FieldID {
		ids := make(map[string]int, len(rows))
		for _, row := range rows {
			n, err := strconv.Atoi(row[models.FieldID])
			if err != nil {
				return fmt.Errorf("%w: %q", apperrors.ErrBadIdentifier, row[models.FieldID])
			}
			ids[row[models.FieldID]] = n
		}
		slices.SortStableFunc(rows, func(a, b models.Row) int {
			return ids[a[models.FieldID]] - ids[b[models.FieldID]]
		})
	} else {
		slices.SortStableFunc(rows, func(a, b models.Row) int {
			return strings.Compare(strings.ToLower(a[field]), strings.ToLower(b[field]))
		})
	}

	if err := s.store.Save(s.schema, rows); err != nil {
		return err
	}

	s.logger.Info().Str("field", field).Msg("Collection sorted")
	return nil
}

// Edit mutates one record addressed by its display position from the load
// this call performs. A non-empty value replaces the stored one; an empty
// value keeps it. The identifier cannot be updated.
func (s *RosterService) Edit(ctx context.Context, position int, updates map[string]string) (models.Row, error) {
	for k := range updates {
		if k == models.FieldID {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrIdentifierImmutable, k)
		}
		if !s.schema.Has(k) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownField, k)
		}
	}

	rows, err := s.store.Load(s.schema)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(rows) {
		return nil, fmt.Errorf("%w: %d (collection has %d records)", apperrors.ErrPositionOutOfRange, position, len(rows))
	}

	row := rows[position-1]
	for k, v := range updates {
		if v == "" {
			continue
		}
		row[k] = v
	}

	if err := s.store.Save(s.schema, rows); err != nil {
		return nil, err
	}

	s.logger.Info().Int("position", position).Msg("Record updated")
	return row, nil
}

// Delete removes the record at the given display position. Identifiers of
// the remaining records are not renumbered; only display positions shift
// on the next load.
func (s *RosterService) Delete(ctx context.Context, position int) error {
	rows, err := s.store.Load(s.schema)
	if err != nil {
		return err
	}
	if position < 1 || position > len(rows) {
		return fmt.Errorf("%w: %d (collection has %d records)", apperrors.ErrPositionOutOfRange, position, len(rows))
	}

	rows = slices.Delete(rows, position-1, position)
	if err := s.store.Save(s.schema, rows); err != nil {
		return err
	}

	s.logger.Info().Int("position", position).Msg("Record deleted")
	return nil
}

// Compact reloads the collection and rewrites it unchanged. Positions are
// never persisted and identifiers are never renumbered, so beyond
// serialization normalization this is an identity operation; it exists
// because the interface promises it, not because the data model needs it.
func (s *RosterService) Compact(ctx context.Context) error {
	rows, err := s.store.Load(s.schema)
	if err != nil {
		return err
	}
	if err := s.store.Save(s.schema, rows); err != nil {
		return err
	}

	s.logger.Info().Int("records", len(rows)).Msg("Collection compacted")
	return nil
}
