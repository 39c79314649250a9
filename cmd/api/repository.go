package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// repository is the persistence surface the handlers consume. Satisfied by
// *database.Repository; mocked in tests.
type repository interface {
	Health(ctx context.Context) error

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	UpdateVideo(ctx context.Context, video *models.Video) error
	DeleteVideo(ctx context.Context, id primitive.ObjectID) error
	ListVideos(ctx context.Context) ([]models.Video, error)
	ListVideosByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error)
	ListVideosByCategory(ctx context.Context, category string) ([]models.Video, error)
	ListVideosByTag(ctx context.Context, tag string) ([]models.Video, error)
	RecordView(ctx context.Context, videoID, userID primitive.ObjectID) (*models.Video, bool, error)
	LikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error
	DislikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error
	PushComment(ctx context.Context, videoID, commentID primitive.ObjectID) error
	PullComment(ctx context.Context, videoID, commentID primitive.ObjectID) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateCommentText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.CommentWithAuthor, error)
}
