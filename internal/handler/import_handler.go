package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentsync/internal/domain"
	"talentsync/internal/service"
)

// ImportHandler handles employee spreadsheet import endpoints.
type ImportHandler struct {
	importService service.EmployeeImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.EmployeeImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Preview handles POST /api/v1/imports/employees/preview
// Expects a multipart form with a "file" field holding an .xlsx workbook.
func (h *ImportHandler) Preview(c *gin.Context) {
	input, cleanup, ok := bindUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.importService.Preview(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Confirm handles POST /api/v1/imports/employees/confirm
// The body is a PreviewResult exactly as returned by Preview.
func (h *ImportHandler) Confirm(c *gin.Context) {
	var preview domain.PreviewResult
	if err := c.ShouldBindJSON(&preview); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PREVIEW_DATA", err.Error())
		return
	}

	result, err := h.importService.Confirm(c.Request.Context(), &preview)
	if err != nil {
		respondImportError(c, err, result)
		return
	}

	RespondOK(c, result)
}

// Import handles POST /api/v1/imports/employees
// Previews and confirms the uploaded workbook in one request.
func (h *ImportHandler) Import(c *gin.Context) {
	input, cleanup, ok := bindUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.importService.Import(c.Request.Context(), input)
	if err != nil {
		respondImportError(c, err, result)
		return
	}

	RespondOK(c, result)
}

// respondImportError keeps the counts of a batch that stopped part way, so
// the caller can see which rows were already applied.
func respondImportError(c *gin.Context, err error, partial *domain.ConfirmResult) {
	if partial != nil {
		RespondPartial(c, err, partial)
		return
	}
	HandleError(c, err)
}

// bindUpload extracts the "file" form field. It writes the error response
// itself and reports ok=false when the field is missing.
func bindUpload(c *gin.Context) (input service.PreviewInput, cleanup func(), ok bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return service.PreviewInput{}, nil, false
	}

	input = service.PreviewInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
		Size:        header.Size,
	}
	return input, func() { _ = file.Close() }, true
}
