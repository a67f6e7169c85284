package annotations

import (
	"context"

	"github.com/trajlab/annotator-api/internal/models"
)

// SubtaskInput is one labeled temporal segment as received from the client
type SubtaskInput struct {
	StartStep int    `json:"startStep"`
	EndStep   int    `json:"endStep"`
	Subtask   string `json:"subtask"`
	TimeSpent int    `json:"timeSpent"`
}

// Repository defines the interface for annotation data access
type Repository interface {
	// SubmitAnnotation persists one annotation and its subtasks atomically,
	// enforcing the per-video limit inside the same transaction. On any
	// failure nothing is written.
	SubmitAnnotation(ctx context.Context, annotation *models.Annotation, limit int64) error

	// CountsByVideo returns the true annotation count per video for every
	// video that has at least one annotation
	CountsByVideo(ctx context.Context) (map[string]int64, error)

	// GetAnnotationsByVideo returns the stored annotations for one video
	// with their subtasks in insertion order
	GetAnnotationsByVideo(ctx context.Context, video string) ([]models.Annotation, error)
}

// Service defines the interface for annotation business logic
type Service interface {
	// Submit validates and persists one user's full annotation for a video
	Submit(ctx context.Context, username, video string, subtasks []SubtaskInput) error

	// GetVideoProgress reports the annotation count for every catalog video,
	// truncated to the configured display cap
	GetVideoProgress(ctx context.Context) ([]models.VideoProgress, error)

	// GetAnnotationsByVideo returns the stored annotations for one video
	GetAnnotationsByVideo(ctx context.Context, video string) ([]models.Annotation, error)
}
