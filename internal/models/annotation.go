package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Annotation represents one annotator's full labeling pass over one video.
// Annotations are created atomically with their subtasks and are never
// updated or deleted afterwards.
//
// Table names are intentionally left to the gorm naming strategy so the
// per-environment table prefix (dev_, prod_, test1_) is applied.
type Annotation struct {
	gorm.Model
	UUID          string    `json:"uuid" gorm:"uniqueIndex"`
	Username      string    `json:"username" gorm:"not null"`
	VideoFilename string    `json:"video_filename" gorm:"not null;index"`
	Subtasks      []Subtask `json:"subtasks,omitempty" gorm:"foreignKey:AnnotationID"`
}

// BeforeCreate generates a UUID before creating a new annotation
func (a *Annotation) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// Subtask represents one labeled temporal segment within an annotation.
// Step indices are frame steps of the trajectory video; TimeSpent is the
// client-measured labeling time in seconds.
type Subtask struct {
	gorm.Model
	StartStep    int    `json:"start_step" gorm:"not null"`
	EndStep      int    `json:"end_step" gorm:"not null"`
	Subtask      string `json:"subtask" gorm:"type:text;not null"`
	TimeSpent    int    `json:"time_spent" gorm:"not null"`
	AnnotationID uint   `json:"annotation_id" gorm:"not null;index"`
}

// VideoProgress reports how many annotations a catalog video has received.
// AnnotationCount is truncated to MaxAnnotations for display; the true
// count in the store is never capped.
type VideoProgress struct {
	Video           string `json:"video"`
	AnnotationCount int    `json:"annotationCount"`
	MaxAnnotations  int    `json:"maxAnnotations"`
}
