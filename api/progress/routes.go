package progress

import (
	"github.com/gin-gonic/gin"

	"github.com/trajlab/annotator-api/api/types"
)

// RegisterRoutes registers the progress overview route
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/video-progress", Get(deps))
}
