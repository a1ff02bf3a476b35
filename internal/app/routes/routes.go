package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusware/roster/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.RecordController,
	courseController *controllers.RecordController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	mountCollection(v1, "/students", studentController)
	mountCollection(v1, "/courses", courseController)
}

// mountCollection registers the operation set for one collection kind.
// Both kinds expose the same surface.
func mountCollection(v1 *gin.RouterGroup, path string, ctrl *controllers.RecordController) {
	group := v1.Group(path)
	{
		group.GET("", ctrl.List)
		group.POST("", ctrl.Create)
		group.GET("/search", ctrl.Search)
		group.POST("/sort", ctrl.Sort)
		group.POST("/compact", ctrl.Compact)
		group.GET("/export", ctrl.Export)
		group.PUT("/:position", ctrl.Update)
		group.DELETE("/:position", ctrl.Delete)
	}
}
