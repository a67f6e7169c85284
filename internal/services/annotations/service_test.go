package annotations

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trajlab/annotator-api/internal/models"
	"github.com/trajlab/annotator-api/internal/services/videos"
	"github.com/trajlab/annotator-api/pkg/config"
	apperrors "github.com/trajlab/annotator-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SubmitAnnotation(ctx context.Context, annotation *models.Annotation, limit int64) error {
	args := m.Called(ctx, annotation, limit)
	return args.Error(0)
}

func (m *MockRepository) CountsByVideo(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if counts := args.Get(0); counts != nil {
		return counts.(map[string]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetAnnotationsByVideo(ctx context.Context, video string) ([]models.Annotation, error) {
	args := m.Called(ctx, video)
	if annotations := args.Get(0); annotations != nil {
		return annotations.([]models.Annotation), args.Error(1)
	}
	return nil, args.Error(1)
}

// stubCatalog is a fixed in-memory video catalog
type stubCatalog struct {
	videos []string
	err    error
}

func (c *stubCatalog) Videos() ([]string, error) {
	return c.videos, c.err
}

func uniqueConfig() config.AnnotationsConfig {
	return config.AnnotationsConfig{Policy: config.PolicyUnique, MaxPerVideo: 3}
}

func validSubtasks() []SubtaskInput {
	return []SubtaskInput{
		{StartStep: 0, EndStep: 10, Subtask: "pick", TimeSpent: 5},
		{StartStep: 10, EndStep: 20, Subtask: "place", TimeSpent: 8},
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		video    string
		subtasks []SubtaskInput
	}{
		{
			name:     "empty username",
			username: "",
			video:    "v1.mp4",
			subtasks: validSubtasks(),
		},
		{
			name:     "whitespace username",
			username: "   ",
			video:    "v1.mp4",
			subtasks: validSubtasks(),
		},
		{
			name:     "empty video",
			username: "alice",
			video:    "",
			subtasks: validSubtasks(),
		},
		{
			name:     "empty subtask list",
			username: "alice",
			video:    "v1.mp4",
			subtasks: nil,
		},
		{
			name:     "negative start step",
			username: "alice",
			video:    "v1.mp4",
			subtasks: []SubtaskInput{{StartStep: -1, EndStep: 10, Subtask: "pick", TimeSpent: 5}},
		},
		{
			name:     "end step before start step",
			username: "alice",
			video:    "v1.mp4",
			subtasks: []SubtaskInput{{StartStep: 10, EndStep: 5, Subtask: "pick", TimeSpent: 5}},
		},
		{
			name:     "empty subtask label",
			username: "alice",
			video:    "v1.mp4",
			subtasks: []SubtaskInput{{StartStep: 0, EndStep: 10, Subtask: "  ", TimeSpent: 5}},
		},
		{
			name:     "negative time spent",
			username: "alice",
			video:    "v1.mp4",
			subtasks: []SubtaskInput{{StartStep: 0, EndStep: 10, Subtask: "pick", TimeSpent: -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			service := NewService(repo, &stubCatalog{}, uniqueConfig())

			err := service.Submit(context.Background(), tt.username, tt.video, tt.subtasks)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "expected validation error, got %v", err)
			// Validation failures must never touch the store
			repo.AssertNotCalled(t, "SubmitAnnotation", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, &stubCatalog{}, uniqueConfig())

	repo.On("SubmitAnnotation", mock.Anything, mock.AnythingOfType("*models.Annotation"), int64(1)).
		Run(func(args mock.Arguments) {
			annotation := args.Get(1).(*models.Annotation)
			assert.Equal(t, "alice", annotation.Username)
			assert.Equal(t, "v1.mp4", annotation.VideoFilename)
			require.Len(t, annotation.Subtasks, 2)
			assert.Equal(t, "pick", annotation.Subtasks[0].Subtask)
			assert.Equal(t, "place", annotation.Subtasks[1].Subtask)
		}).
		Return(nil)

	err := service.Submit(context.Background(), "alice", "v1.mp4", validSubtasks())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSubmitTrimsUsername(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, &stubCatalog{}, uniqueConfig())

	repo.On("SubmitAnnotation", mock.Anything, mock.AnythingOfType("*models.Annotation"), int64(1)).
		Run(func(args mock.Arguments) {
			annotation := args.Get(1).(*models.Annotation)
			assert.Equal(t, "alice", annotation.Username)
		}).
		Return(nil)

	require.NoError(t, service.Submit(context.Background(), "  alice  ", "v1.mp4", validSubtasks()))
	repo.AssertExpectations(t)
}

func TestSubmitDuplicateUnderUniquePolicy(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, &stubCatalog{}, uniqueConfig())

	repo.On("SubmitAnnotation", mock.Anything, mock.Anything, int64(1)).Return(ErrLimitReached)

	err := service.Submit(context.Background(), "alice", "v1.mp4", validSubtasks())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSubmission), "expected duplicate error, got %v", err)
}

func TestSubmitCapReachedUnderCappedPolicy(t *testing.T) {
	repo := new(MockRepository)
	cfg := config.AnnotationsConfig{Policy: config.PolicyCapped, MaxPerVideo: 3}
	service := NewService(repo, &stubCatalog{}, cfg)

	repo.On("SubmitAnnotation", mock.Anything, mock.Anything, int64(3)).Return(ErrLimitReached)

	err := service.Submit(context.Background(), "alice", "v1.mp4", validSubtasks())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapReached), "expected cap error, got %v", err)
}

func TestSubmitStoreErrorPropagates(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, &stubCatalog{}, uniqueConfig())

	storeErr := errors.New("connection lost")
	repo.On("SubmitAnnotation", mock.Anything, mock.Anything, int64(1)).Return(storeErr)

	err := service.Submit(context.Background(), "alice", "v1.mp4", validSubtasks())

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateSubmission))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestGetVideoProgress(t *testing.T) {
	repo := new(MockRepository)
	catalog := &stubCatalog{videos: []string{"v1.mp4", "v2.mp4", "v3.mp4"}}
	service := NewService(repo, catalog, uniqueConfig())

	// v3 has more annotations than the display cap allows
	repo.On("CountsByVideo", mock.Anything).Return(map[string]int64{
		"v1.mp4": 1,
		"v3.mp4": 5,
	}, nil)

	progress, err := service.GetVideoProgress(context.Background())

	require.NoError(t, err)
	require.Len(t, progress, 3)
	assert.Equal(t, models.VideoProgress{Video: "v1.mp4", AnnotationCount: 1, MaxAnnotations: 3}, progress[0])
	assert.Equal(t, models.VideoProgress{Video: "v2.mp4", AnnotationCount: 0, MaxAnnotations: 3}, progress[1])
	assert.Equal(t, models.VideoProgress{Video: "v3.mp4", AnnotationCount: 3, MaxAnnotations: 3}, progress[2])
}

func TestGetVideoProgressCatalogUnavailable(t *testing.T) {
	repo := new(MockRepository)
	catalog := &stubCatalog{err: videos.ErrCatalogUnavailable}
	service := NewService(repo, catalog, uniqueConfig())

	_, err := service.GetVideoProgress(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, videos.ErrCatalogUnavailable))
	repo.AssertNotCalled(t, "CountsByVideo", mock.Anything)
}

func TestGetVideoProgressStoreError(t *testing.T) {
	repo := new(MockRepository)
	catalog := &stubCatalog{videos: []string{"v1.mp4"}}
	service := NewService(repo, catalog, uniqueConfig())

	repo.On("CountsByVideo", mock.Anything).Return(nil, errors.New("query failed"))

	_, err := service.GetVideoProgress(context.Background())
	require.Error(t, err)
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code apperrors.ErrorCode
	}{
		{"validation", fmt.Errorf("%w: username is required", ErrValidation), apperrors.ErrCodeValidation},
		{"duplicate", fmt.Errorf("%w: %q", ErrDuplicateSubmission, "v1.mp4"), apperrors.ErrCodeAlreadyExists},
		{"cap reached", fmt.Errorf("%w: %q has 3 annotations", ErrCapReached, "v1.mp4"), apperrors.ErrCodeCapReached},
		{"catalog", fmt.Errorf("loading catalog: %w", videos.ErrCatalogUnavailable), apperrors.ErrCodeCatalogUnavailable},
		{"store failure", errors.New("connection lost"), apperrors.ErrCodeDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}
