package annotations

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/trajlab/annotator-api/api/types"
	annotationsvc "github.com/trajlab/annotator-api/internal/services/annotations"
)

// SaveAnnotation persists one user's full annotation for a video
// @Summary      Save annotation for a video
// @Description  Validate and atomically persist one annotation with its subtasks, enforcing the per-video cap
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        submission body types.SaveAnnotationRequest true "Annotation submission"
// @Success      200 {object} types.MessageResponse "Annotation saved"
// @Failure      500 {object} types.ErrorResponse "Validation, duplicate or store failure"
// @Router       /save [post]
func SaveAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SaveAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		err := deps.AnnotationService.Submit(c.Request.Context(), req.Username, req.Video, req.Annotations)
		if err != nil {
			// The client shows a generic failure message regardless of the
			// cause, so every rejection has to land in the server log.
			log.Printf("[%s] Error saving annotation for video %q: %v",
				annotationsvc.Code(err), req.Video, err)

			switch {
			case errors.Is(err, annotationsvc.ErrValidation):
				types.SendInternalError(c, err.Error())
			case errors.Is(err, annotationsvc.ErrDuplicateSubmission),
				errors.Is(err, annotationsvc.ErrCapReached):
				types.SendInternalError(c, err.Error())
			default:
				types.SendInternalError(c, "Database error: "+err.Error())
			}
			return
		}

		types.SendSuccess(c, types.MessageResponse{
			Message: "Annotation and subtasks saved successfully!",
		})
	}
}
