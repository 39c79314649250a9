package main

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sandipmavi/Backend-yt/internal/config"
	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// MockRepo is a mock implementation of the repository interface
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepo) CreateVideo(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockRepo) GetVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockRepo) UpdateVideo(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockRepo) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepo) ListVideos(ctx context.Context) ([]models.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockRepo) ListVideosByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockRepo) ListVideosByCategory(ctx context.Context, category string) ([]models.Video, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockRepo) ListVideosByTag(ctx context.Context, tag string) ([]models.Video, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockRepo) RecordView(ctx context.Context, videoID, userID primitive.ObjectID) (*models.Video, bool, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Video), args.Bool(1), args.Error(2)
}

func (m *MockRepo) LikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockRepo) DislikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockRepo) PushComment(ctx context.Context, videoID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, videoID, commentID)
	return args.Error(0)
}

func (m *MockRepo) PullComment(ctx context.Context, videoID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, videoID, commentID)
	return args.Error(0)
}

func (m *MockRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockRepo) GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockRepo) UpdateCommentText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockRepo) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepo) ListComments(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockRepo) ListCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.CommentWithAuthor, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithAuthor), args.Error(1)
}

// newMockRouter wires a MockRepo behind the real router
func newMockRouter(t *testing.T) (*API, *MockRepo, *gin.Engine) {
	t.Helper()

	api := newTestAPI(t)
	mockRepo := new(MockRepo)
	api.repo = mockRepo

	cfg, err := config.Load("/nonexistent/config.yaml")
	require.NoError(t, err)

	return api, mockRepo, setupRouter(api, cfg)
}
