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

// CreateVideo inserts a new video record
func (r *Repository) CreateVideo(ctx context.Context, video *models.Video) error {
	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	video.CreatedAt = time.Now().UTC()

	// Membership sets start empty, not null, so set operators behave uniformly.
	if video.Tags == nil {
		video.Tags = []string{}
	}
	if video.Comments == nil {
		video.Comments = []primitive.ObjectID{}
	}
	if video.LikedBy == nil {
		video.LikedBy = []primitive.ObjectID{}
	}
	if video.DislikedBy == nil {
		video.DislikedBy = []primitive.ObjectID{}
	}
	if video.ViewedBy == nil {
		video.ViewedBy = []primitive.ObjectID{}
	}

	if _, err := r.db.Collection(videosCollection).InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// GetVideo retrieves a video by ID
func (r *Repository) GetVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var video models.Video

	err := r.db.Collection(videosCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &video, nil
}

// UpdateVideo persists the mutable metadata fields of a video
func (r *Repository) UpdateVideo(ctx context.Context, video *models.Video) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: video.Title},
		{Key: "description", Value: video.Description},
		{Key: "category", Value: video.Category},
		{Key: "tags", Value: video.Tags},
		{Key: "thumbnail_url", Value: video.ThumbnailURL},
		{Key: "thumbnail_id", Value: video.ThumbnailID},
	}}}

	result, err := r.db.Collection(videosCollection).UpdateByID(ctx, video.ID, update)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteVideo removes a video document
func (r *Repository) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.db.Collection(videosCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ListVideos returns all videos, newest first
func (r *Repository) ListVideos(ctx context.Context) ([]models.Video, error) {
	return r.findVideos(ctx, bson.D{})
}

// ListVideosByUser returns a user's videos, newest first
func (r *Repository) ListVideosByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error) {
	return r.findVideos(ctx, bson.D{{Key: "user_id", Value: userID}})
}

// ListVideosByCategory returns all videos in a category, newest first
func (r *Repository) ListVideosByCategory(ctx context.Context, category string) ([]models.Video, error) {
	return r.findVideos(ctx, bson.D{{Key: "category", Value: category}})
}

// ListVideosByTag returns all videos carrying a tag, newest first
func (r *Repository) ListVideosByTag(ctx context.Context, tag string) ([]models.Video, error) {
	return r.findVideos(ctx, bson.D{{Key: "tags", Value: tag}})
}

func (r *Repository) findVideos(ctx context.Context, filter bson.D) ([]models.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(videosCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	videos := []models.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}

	return videos, nil
}

// RecordView atomically adds userID to the video's viewed-by set and returns
// the updated document, reporting whether the viewer was new. Re-viewing is
// idempotent. The update returns the pre-image so newness can be read off
// the old membership set; applyView replays the update on it.
func (r *Repository) RecordView(ctx context.Context, videoID, userID primitive.ObjectID) (*models.Video, bool, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var video models.Video
	err := r.db.Collection(videosCollection).
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: videoID}}, viewPipeline(userID), opts).
		Decode(&video)
	if err == mongo.ErrNoDocuments {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to record view: %w", err)
	}

	newView := applyView(&video, userID)
	return &video, newView, nil
}

// applyView mirrors viewPipeline on an in-memory document and reports
// whether userID was a new viewer.
func applyView(video *models.Video, userID primitive.ObjectID) bool {
	for _, id := range video.ViewedBy {
		if id == userID {
			return false
		}
	}

	video.ViewedBy = append(video.ViewedBy, userID)
	video.Views = len(video.ViewedBy)
	return true
}

// LikeVideo adds userID to the liked-by set and removes it from the
// disliked-by set in one atomic update.
func (r *Repository) LikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error {
	return r.react(ctx, videoID, reactionPipeline(userID, "liked_by", "disliked_by"))
}

// DislikeVideo adds userID to the disliked-by set and removes it from the
// liked-by set in one atomic update.
func (r *Repository) DislikeVideo(ctx context.Context, videoID, userID primitive.ObjectID) error {
	return r.react(ctx, videoID, reactionPipeline(userID, "disliked_by", "liked_by"))
}

func (r *Repository) react(ctx context.Context, videoID primitive.ObjectID, pipeline mongo.Pipeline) error {
	result, err := r.db.Collection(videosCollection).UpdateByID(ctx, videoID, pipeline)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// PushComment appends a comment id to the video's comment list
func (r *Repository) PushComment(ctx context.Context, videoID, commentID primitive.ObjectID) error {
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "comments", Value: commentID}}}}

	result, err := r.db.Collection(videosCollection).UpdateByID(ctx, videoID, update)
	if err != nil {
		return fmt.Errorf("failed to attach comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// PullComment removes a comment id from the video's comment list
func (r *Repository) PullComment(ctx context.Context, videoID, commentID primitive.ObjectID) error {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "comments", Value: commentID}}}}

	result, err := r.db.Collection(videosCollection).UpdateByID(ctx, videoID, update)
	if err != nil {
		return fmt.Errorf("failed to detach comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// reactionPipeline builds an aggregation-pipeline update that moves userID
// into the target membership set, out of the opposite one, and refreshes the
// numeric counters from the set sizes. Running it twice is a no-op.
func reactionPipeline(userID primitive.ObjectID, target, opposite string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: target, Value: bson.D{{Key: "$setUnion", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$" + target, bson.A{}}}},
				bson.A{userID},
			}}}},
			{Key: opposite, Value: bson.D{{Key: "$setDifference", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$" + opposite, bson.A{}}}},
				bson.A{userID},
			}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$size", Value: "$liked_by"}}},
			{Key: "dislikes", Value: bson.D{{Key: "$size", Value: "$disliked_by"}}},
		}}},
	}
}

// viewPipeline builds an aggregation-pipeline update that adds userID to the
// viewed-by set and refreshes the view counter.
func viewPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "viewed_by", Value: bson.D{{Key: "$setUnion", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$viewed_by", bson.A{}}}},
				bson.A{userID},
			}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "views", Value: bson.D{{Key: "$size", Value: "$viewed_by"}}},
		}}},
	}
}
