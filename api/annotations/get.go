package annotations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trajlab/annotator-api/api/types"
	annotationsvc "github.com/trajlab/annotator-api/internal/services/annotations"
)

// GetAnnotations retrieves the stored annotations for one video
// @Summary      Get annotations for a video
// @Description  Retrieve all persisted annotations for a video with their subtasks in insertion order
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        video path string true "Video filename"
// @Success      200 {object} object{annotations=[]models.Annotation} "List of annotations"
// @Failure      500 {object} types.ErrorResponse "Store failure"
// @Router       /videos/{video}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video := c.Param("video")

		annotations, err := deps.AnnotationService.GetAnnotationsByVideo(c.Request.Context(), video)
		if err != nil {
			log.Printf("[%s] Error fetching annotations for video %q: %v",
				annotationsvc.Code(err), video, err)
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		c.JSON(http.StatusOK, gin.H{"annotations": annotations})
	}
}
