package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusware/roster/internal/app/models/dto"
	"github.com/campusware/roster/internal/app/services"
	"github.com/campusware/roster/internal/middleware"
)

// createBinder reads and validates the collection-specific create request
// from the HTTP body and flattens it to a field map.
type createBinder func(*gin.Context) (map[string]string, error)

// RecordController handles the HTTP surface for one collection kind. The
// two collection kinds differ only in their create request shape, so a
// single controller serves both, parameterized by the binder.
type RecordController struct {
	service    *services.RosterService
	bindCreate createBinder
}

// NewStudentController creates the controller for the students collection.
func NewStudentController(service *services.RosterService) *RecordController {
	return &RecordController{
		service: service,
		bindCreate: func(ctx *gin.Context) (map[string]string, error) {
			var req dto.CreateStudentRequest
			if err := ctx.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.Fields(), nil
		},
	}
}

// NewCourseController creates the controller for the courses collection.
func NewCourseController(service *services.RosterService) *RecordController {
	return &RecordController{
		service: service,
		bindCreate: func(ctx *gin.Context) (map[string]string, error) {
			var req dto.CreateCourseRequest
			if err := ctx.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.Fields(), nil
		},
	}
}

// List returns every record with its current display position.
func (c *RecordController) List(ctx *gin.Context) {
	seq, err := c.service.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries := make([]services.Entry, 0)
	for pos, row := range seq {
		entries = append(entries, services.Entry{Position: pos, Record: row})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// Create adds a record. All fields are required; the identifier is
// assigned by the service.
func (c *RecordController) Create(ctx *gin.Context) {
	fields, err := c.bindCreate(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.service.Add(ctx, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// Search returns the records whose name contains the q query parameter as
// a case-insensitive substring. An empty or absent q matches everything.
func (c *RecordController) Search(ctx *gin.Context) {
	matches, err := c.service.Search(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matches,
		Timestamp: time.Now(),
	})
}

// Sort reorders the stored collection by the requested field.
func (c *RecordController) Sort(ctx *gin.Context) {
	var req dto.SortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sort request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.service.Sort(ctx, req.Field); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"sortedBy": req.Field},
		Timestamp: time.Now(),
	})
}

// Update edits the record at a display position. Empty values keep the
// stored value.
func (c *RecordController) Update(ctx *gin.Context) {
	position, ok := c.positionParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.service.Edit(ctx, position, req.Fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// Delete removes the record at a display position.
func (c *RecordController) Delete(ctx *gin.Context) {
	position, ok := c.positionParam(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, position); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"deleted": position},
		Timestamp: time.Now(),
	})
}

// Compact rewrites the collection unchanged.
func (c *RecordController) Compact(ctx *gin.Context) {
	if err := c.service.Compact(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"compacted": c.service.Schema().Name},
		Timestamp: time.Now(),
	})
}

// Export streams the collection as a spreadsheet download.
func (c *RecordController) Export(ctx *gin.Context) {
	f, err := c.service.Export(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer f.Close()

	name := c.service.Schema().Name
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", name))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}

// positionParam parses the 1-based position path parameter.
func (c *RecordController) positionParam(ctx *gin.Context) (int, bool) {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid position")
		errorDetail = errorDetail.WithDetails("Position must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return position, true
}
