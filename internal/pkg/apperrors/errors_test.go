package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsCarryTheirKind(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrCollectionMissing, ErrStorage},
		{ErrCollectionMalformed, ErrStorage},
		{ErrFieldRequired, ErrValidation},
		{ErrUnknownField, ErrValidation},
		{ErrIdentifierImmutable, ErrValidation},
		{ErrBadIdentifier, ErrValidation},
		{ErrPositionOutOfRange, ErrValidation},
		{ErrUnknownCollection, ErrValidation},
		{ErrUnsupportedFormat, ErrValidation},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, tt.err, tt.kind)
	}
}

func TestWrappedSentinelStillMatches(t *testing.T) {
	err := fmt.Errorf("%w: position 7", ErrPositionOutOfRange)

	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, errors.Is(err, ErrStorage))
}

func TestCustomError(t *testing.T) {
	err := NewCustomError(ErrUnknownCollection, "teachers")

	assert.ErrorIs(t, err, ErrUnknownCollection)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: unknown collection: teachers", err.Error())
}
