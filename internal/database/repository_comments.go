package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// CreateComment inserts a new comment record
func (r *Repository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	comment.CreatedAt = time.Now().UTC()

	if _, err := r.db.Collection(commentsCollection).InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetComment retrieves a comment by ID
func (r *Repository) GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.Collection(commentsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// UpdateCommentText replaces a comment's text and returns the updated document
func (r *Repository) UpdateCommentText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "comment_text", Value: text}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err := r.db.Collection(commentsCollection).
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).
		Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &comment, nil
}

// DeleteComment removes a comment document
func (r *Repository) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.db.Collection(commentsCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ListComments returns all comments, newest first
func (r *Repository) ListComments(ctx context.Context) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(commentsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	return comments, nil
}

// ListCommentsByVideo returns a video's comments joined with the author's
// display fields, newest first.
func (r *Repository) ListCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.CommentWithAuthor, error) {
	cursor, err := r.db.Collection(commentsCollection).Aggregate(ctx, commentAuthorPipeline(videoID))
	if err != nil {
		return nil, fmt.Errorf("failed to list video comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []models.CommentWithAuthor{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode video comments: %w", err)
	}

	return comments, nil
}

// commentAuthorPipeline joins each of a video's comments with the minimal
// author display fields from the users collection, newest first. Comments
// whose author no longer resolves keep empty author fields.
func commentAuthorPipeline(videoID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "video_id", Value: videoID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "video_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "comment_text", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "author", Value: bson.D{
				{Key: "channel_name", Value: "$author.channel_name"},
				{Key: "logo_url", Value: "$author.logo_url"},
			}},
		}}},
	}
}
