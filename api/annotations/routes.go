package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/trajlab/annotator-api/api/types"
)

// RegisterRoutes registers annotation submission and read-back routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/save", SaveAnnotation(deps))
	router.GET("/videos/:video/annotations", GetAnnotations(deps))
}
