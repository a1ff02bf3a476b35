package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusware/roster/internal/app/models/dto"
	"github.com/campusware/roster/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Every operation
// error funnels through here so the status/code mapping lives in one
// place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPositionOutOfRange):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No record at that position"))
	case errors.Is(err, apperrors.ErrValidation):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrCollectionMissing):
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeStorageMissing, "Collection file missing"))
	case errors.Is(err, apperrors.ErrCollectionMalformed):
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeStorageMalformed, "Collection file malformed"))
	case errors.Is(err, apperrors.ErrStorage):
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeStorageFailure, "Storage failure"))
	default:
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
