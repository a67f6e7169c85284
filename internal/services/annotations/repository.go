package annotations

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trajlab/annotator-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// SubmitAnnotation runs the check-then-insert protocol as a single
// transaction: count existing annotations for the video, abort with
// ErrLimitReached when the limit is met, otherwise insert the annotation
// row and its subtask rows in input order. Any failure rolls back the
// whole transaction, so a partial annotation is never left behind.
func (r *RepositoryImpl) SubmitAnnotation(ctx context.Context, annotation *models.Annotation, limit int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := limitCountQuery(tx, annotation.VideoFilename).
			Count(&count).Error; err != nil {
			return fmt.Errorf("counting annotations for video: %w", err)
		}

		if count >= limit {
			return ErrLimitReached
		}

		// Creates the subtask rows together with the parent, preserving
		// slice order.
		if err := tx.Create(annotation).Error; err != nil {
			if isUniqueViolation(err) {
				// A concurrent submission committed first; the unique
				// video index rejected ours.
				return ErrLimitReached
			}
			return fmt.Errorf("creating annotation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// CountsByVideo returns the uncapped annotation count per video
func (r *RepositoryImpl) CountsByVideo(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		VideoFilename string
		Count         int64
	}

	if err := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Select("video_filename, COUNT(id) AS count").
		Group("video_filename").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting annotations by video: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VideoFilename] = row.Count
	}
	return counts, nil
}

// GetAnnotationsByVideo retrieves all annotations for a video, subtasks
// in insertion order
func (r *RepositoryImpl) GetAnnotationsByVideo(ctx context.Context, video string) ([]models.Annotation, error) {
	var annotations []models.Annotation
	if err := r.db.WithContext(ctx).
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("video_filename = ?", video).
		Order("created_at ASC").
		Find(&annotations).Error; err != nil {
		return nil, fmt.Errorf("getting annotations for video: %w", err)
	}
	return annotations, nil
}

// limitCountQuery builds the per-video count used for the limit check.
// On mysql the read takes index locks (SELECT ... FOR UPDATE), so a
// concurrent transaction counting the same video blocks and re-reads the
// committed count rather than both observing room under the limit. sqlite
// rejects the FOR UPDATE syntax and needs no clause: its transactions hold
// the database write lock from BEGIN onward.
func limitCountQuery(tx *gorm.DB, video string) *gorm.DB {
	query := tx.Model(&models.Annotation{}).Where("video_filename = ?", video)
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return query
}

// isUniqueViolation detects a unique-index rejection from either driver
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") // mysql
}
