package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talentsync/internal/service"
)

// EmployeeHandler handles employee read and maintenance endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	employees, total, err := h.employeeService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, employees, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByDocument handles GET /api/v1/employees/:document
func (h *EmployeeHandler) GetByDocument(c *gin.Context) {
	employee, err := h.employeeService.GetByDocument(c.Request.Context(), c.Param("document"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Create handles POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input service.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, employee)
}

// Update handles PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	var input service.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Delete handles DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "employee deleted"})
}

// Catalog handles GET /api/v1/catalogs
// Lists the accepted values of every categorical column.
func (h *EmployeeHandler) Catalog(c *gin.Context) {
	RespondOK(c, h.employeeService.Catalog())
}
