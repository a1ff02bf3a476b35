package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/campusware/roster/internal/pkg/apperrors"
)

// Export renders the collection as a spreadsheet: one sheet named after
// the collection, a header row in canonical field order, one row per
// record. Read-only; the backing file is not touched.
func (s *RosterService) Export(ctx context.Context) (*excelize.File, error) {
	rows, err := s.store.Load(s.schema)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := s.schema.Name
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: creating sheet: %v", apperrors.ErrStorage, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: removing default sheet: %v", apperrors.ErrStorage, err)
	}

	header := make([]interface{}, len(s.schema.Fields))
	for i, field := range s.schema.Fields {
		header[i] = field
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: writing header: %v", apperrors.ErrStorage, err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(s.schema.Fields))
		for j, field := range s.schema.Fields {
			cells[j] = row[field]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: addressing row: %v", apperrors.ErrStorage, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("%w: writing row: %v", apperrors.ErrStorage, err)
		}
	}

	s.logger.Info().Int("records", len(rows)).Msg("Collection exported")
	return f, nil
}
