package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jeleniasty/budget-aggregator/internal/adapter/http/dto"
	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
	"github.com/jeleniasty/budget-aggregator/pkg/response"
)

// ImportHandler handles transaction import endpoints.
type ImportHandler struct {
	importSvc ports.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importSvc ports.ImportService) *ImportHandler {
	return &ImportHandler{importSvc: importSvc}
}

// Upload handles POST /api/v1/imports. The CSV file travels as the
// multipart form field "file". Processing is asynchronous: the response
// carries the job id to poll, not the import outcome.
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("multipart form field 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.ErrUnreadablePayload(err))
		return
	}
	defer file.Close()

	receipt, err := h.importSvc.ImportFile(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, dto.ImportResponse{
		ID:       receipt.ID.String(),
		FileName: receipt.FileName,
		Status:   string(receipt.Status),
	})
}

// GetDetails handles GET /api/v1/imports/:id.
func (h *ImportHandler) GetDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid import id"))
		return
	}

	job, err := h.importSvc.GetImportDetails(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toImportDetailsResponse(job))
}

func toImportDetailsResponse(job *domain.ImportJob) dto.ImportDetailsResponse {
	errs := job.Errors
	if errs == nil {
		errs = []string{}
	}
	return dto.ImportDetailsResponse{
		ID:             job.ID.String(),
		FileName:       job.FileName,
		Status:         string(job.Status),
		TotalRows:      job.TotalRows,
		SuccessfulRows: job.SuccessfulRows,
		Errors:         errs,
		CreatedAt:      job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      job.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
