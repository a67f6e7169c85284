package annotations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trajlab/annotator-api/internal/models"
	"github.com/trajlab/annotator-api/internal/services/videos"
	"github.com/trajlab/annotator-api/pkg/config"
	apperrors "github.com/trajlab/annotator-api/pkg/errors"
)

// Sentinel errors surfaced by the service. Store failures are returned
// wrapped; callers distinguish the policy and validation cases with
// errors.Is.
var (
	// ErrValidation wraps all input validation failures, raised before
	// any store access
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateSubmission is returned under the unique policy when the
	// video already has an annotation
	ErrDuplicateSubmission = errors.New("video already has an annotation")

	// ErrCapReached is returned under the capped policy when the video has
	// reached the configured annotation count
	ErrCapReached = errors.New("annotation cap reached for video")

	// ErrLimitReached is the repository-level rejection that the service
	// maps to one of the two policy errors above
	ErrLimitReached = errors.New("per-video annotation limit reached")
)

// Code classifies a submission or progress error for structured logging.
// Anything that is not a recognized rejection is treated as a store failure.
func Code(err error) apperrors.ErrorCode {
	switch {
	case errors.Is(err, ErrValidation):
		return apperrors.ErrCodeValidation
	case errors.Is(err, ErrDuplicateSubmission):
		return apperrors.ErrCodeAlreadyExists
	case errors.Is(err, ErrCapReached):
		return apperrors.ErrCodeCapReached
	case errors.Is(err, videos.ErrCatalogUnavailable):
		return apperrors.ErrCodeCatalogUnavailable
	default:
		return apperrors.ErrCodeDatabaseQuery
	}
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository  Repository
	catalog     videos.Catalog
	policy      string
	maxPerVideo int
}

// NewService creates a new annotation service
func NewService(repository Repository, catalog videos.Catalog, cfg config.AnnotationsConfig) Service {
	return &ServiceImpl{
		repository:  repository,
		catalog:     catalog,
		policy:      cfg.Policy,
		maxPerVideo: cfg.MaxPerVideo,
	}
}

// Submit validates the submission and persists it atomically
func (s *ServiceImpl) Submit(ctx context.Context, username, video string, subtasks []SubtaskInput) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if strings.TrimSpace(video) == "" {
		return fmt.Errorf("%w: video is required", ErrValidation)
	}
	if len(subtasks) == 0 {
		return fmt.Errorf("%w: at least one subtask is required", ErrValidation)
	}
	for i, st := range subtasks {
		if st.StartStep < 0 {
			return fmt.Errorf("%w: subtask %d has negative start step", ErrValidation, i)
		}
		if st.EndStep < st.StartStep {
			return fmt.Errorf("%w: subtask %d ends before it starts", ErrValidation, i)
		}
		if strings.TrimSpace(st.Subtask) == "" {
			return fmt.Errorf("%w: subtask %d has no label", ErrValidation, i)
		}
		if st.TimeSpent < 0 {
			return fmt.Errorf("%w: subtask %d has negative time spent", ErrValidation, i)
		}
	}

	annotation := &models.Annotation{
		Username:      username,
		VideoFilename: video,
	}
	annotation.Subtasks = make([]models.Subtask, 0, len(subtasks))
	for _, st := range subtasks {
		annotation.Subtasks = append(annotation.Subtasks, models.Subtask{
			StartStep: st.StartStep,
			EndStep:   st.EndStep,
			Subtask:   st.Subtask,
			TimeSpent: st.TimeSpent,
		})
	}

	if err := s.repository.SubmitAnnotation(ctx, annotation, s.submissionLimit()); err != nil {
		if errors.Is(err, ErrLimitReached) {
			if s.policy == config.PolicyCapped {
				return fmt.Errorf("%w: %q has %d annotations", ErrCapReached, video, s.maxPerVideo)
			}
			return fmt.Errorf("%w: %q", ErrDuplicateSubmission, video)
		}
		return err
	}

	return nil
}

// submissionLimit is 1 under the unique policy and the configured cap
// under the capped policy
func (s *ServiceImpl) submissionLimit() int64 {
	if s.policy == config.PolicyCapped {
		return int64(s.maxPerVideo)
	}
	return 1
}

// GetVideoProgress reports annotation counts for every catalog video.
// Videos with no annotations appear with count 0; the displayed count is
// truncated to the configured maximum, the stored count never is.
func (s *ServiceImpl) GetVideoProgress(ctx context.Context) ([]models.VideoProgress, error) {
	videoList, err := s.catalog.Videos()
	if err != nil {
		return nil, err
	}

	counts, err := s.repository.CountsByVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching annotation counts: %w", err)
	}

	progress := make([]models.VideoProgress, 0, len(videoList))
	for _, video := range videoList {
		count := int(counts[video])
		if count > s.maxPerVideo {
			count = s.maxPerVideo
		}
		progress = append(progress, models.VideoProgress{
			Video:           video,
			AnnotationCount: count,
			MaxAnnotations:  s.maxPerVideo,
		})
	}
	return progress, nil
}

// GetAnnotationsByVideo returns the stored annotations for one video
func (s *ServiceImpl) GetAnnotationsByVideo(ctx context.Context, video string) ([]models.Annotation, error) {
	return s.repository.GetAnnotationsByVideo(ctx, video)
}
