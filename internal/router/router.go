package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"talentsync/internal/handler"
	"talentsync/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log logrus.FieldLogger,
	corsOrigins []string,
	importH *handler.ImportHandler,
	employeeH *handler.EmployeeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Spreadsheet import
	imports := v1.Group("/imports/employees")
	imports.POST("", importH.Import)
	imports.POST("/preview", importH.Preview)
	imports.POST("/confirm", importH.Confirm)

	// Employees
	employees := v1.Group("/employees")
	employees.GET("", employeeH.List)
	employees.GET("/:document", employeeH.GetByDocument)
	employees.POST("", employeeH.Create)
	employees.PUT("/:id", employeeH.Update)
	employees.DELETE("/:id", employeeH.Delete)

	v1.GET("/catalogs", employeeH.Catalog)

	return r
}
