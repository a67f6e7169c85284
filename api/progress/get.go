package progress

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trajlab/annotator-api/api/types"
	annotationsvc "github.com/trajlab/annotator-api/internal/services/annotations"
)

// Get reports per-video annotation progress
// @Summary      Get per-video annotation progress
// @Description  Return the annotation count for every catalog video, capped at the configured maximum for display
// @Tags         progress
// @Produce      json
// @Success      200 {array} models.VideoProgress "Progress for every catalog video"
// @Failure      500 {object} types.ErrorResponse "Catalog or store failure"
// @Router       /video-progress [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		progress, err := deps.AnnotationService.GetVideoProgress(c.Request.Context())
		if err != nil {
			log.Printf("[%s] Error fetching video progress: %v",
				annotationsvc.Code(err), err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:   "Server error",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, progress)
	}
}
