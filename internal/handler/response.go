package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"talentsync/internal/domain"
)

// statusClientClosedRequest is the non-standard code for a request the
// client abandoned before the server finished.
const statusClientClosedRequest = 499

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondPartial sends an error response that still carries the work done
// before the error, such as the counts of an interrupted import.
func RespondPartial(c *gin.Context, err error, data interface{}) {
	status, code, msg := MapDomainError(err)
	logInternal(c, status, err)
	c.JSON(status, APIResponse{
		Success: false,
		Data:    data,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Batch-fatal import errors carry their own message so the user can see
// which headers are missing or why the file was rejected.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		empty   *domain.EmptyInputError
		headers *domain.MissingHeadersError
		invalid *domain.ValidationError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "REQUEST_CANCELLED", "request was cancelled before it finished"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "TIMEOUT", "request timed out before it finished"
	case errors.As(err, &empty):
		return http.StatusBadRequest, "EMPTY_SPREADSHEET", empty.Error()
	case errors.As(err, &headers):
		return http.StatusBadRequest, "MISSING_HEADERS", headers.Error()
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED", invalid.Error()
	case errors.Is(err, domain.ErrUnreadableSpreadsheet):
		return http.StatusBadRequest, "UNREADABLE_SPREADSHEET", "file is not a readable .xlsx workbook"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidPreviewData):
		return http.StatusBadRequest, "INVALID_PREVIEW_DATA", "preview data is invalid"
	case errors.Is(err, domain.ErrInvalidPaginationRange):
		return http.StatusBadRequest, "INVALID_PAGINATION", "offset must be >= 0 and limit between 1 and 100"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "employee not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicateDocument):
		return http.StatusConflict, "DUPLICATE_DOCUMENT", "an employee with this document already exists"
	case errors.Is(err, domain.ErrDocumentImmutable):
		return http.StatusConflict, "DOCUMENT_IMMUTABLE", "employee document cannot change"
	case errors.Is(err, domain.ErrIndexLoadFailed):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "existing employees could not be loaded"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	logInternal(c, status, err)
	RespondError(c, status, code, msg)
}

func logInternal(c *gin.Context, status int, err error) {
	if status < 500 {
		return
	}
	requestID, _ := c.Get("request_id")
	logrus.WithField("request_id", requestID).WithError(err).Error("internal error")
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
