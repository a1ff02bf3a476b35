package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportProducesHeaderAndDataRows(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, annFields())
	require.NoError(t, err)
	_, err = svc.Add(ctx, bobFields())
	require.NoError(t, err)

	f, err := svc.Export(ctx)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"students"}, f.GetSheetList())

	rows, err := f.GetRows("students")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "sex", "age", "institution", "major"}, rows[0])
	assert.Equal(t, []string{"1", "Ann", "Female", "20", "X", "CS"}, rows[1])
	assert.Equal(t, []string{"2", "Bob", "Male", "21", "Y", "EE"}, rows[2])
}

func TestExportEmptyCollection(t *testing.T) {
	svc, _ := newTestService(t)

	f, err := svc.Export(context.Background())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("students")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"id", "name", "sex", "age", "institution", "major"}, rows[0])
}
