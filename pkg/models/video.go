package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video represents an uploaded video document. The likes/dislikes/views
// counters are derived from the membership sets and refreshed in the same
// atomic update that mutates them.
type Video struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title        string               `json:"title" bson:"title"`
	Description  string               `json:"description" bson:"description"`
	UserID       primitive.ObjectID   `json:"userId" bson:"user_id"`
	VideoURL     string               `json:"videoUrl" bson:"video_url"`
	VideoID      string               `json:"videoId" bson:"video_id"`
	ThumbnailURL string               `json:"thumbnailUrl" bson:"thumbnail_url"`
	ThumbnailID  string               `json:"thumbnailId" bson:"thumbnail_id"`
	Category     string               `json:"category" bson:"category"`
	Tags         []string             `json:"tags" bson:"tags"`
	Likes        int                  `json:"likes" bson:"likes"`
	Dislikes     int                  `json:"dislikes" bson:"dislikes"`
	Views        int                  `json:"views" bson:"views"`
	Comments     []primitive.ObjectID `json:"comments" bson:"comments"`
	LikedBy      []primitive.ObjectID `json:"likedBy" bson:"liked_by"`
	DislikedBy   []primitive.ObjectID `json:"dislikedBy" bson:"disliked_by"`
	ViewedBy     []primitive.ObjectID `json:"viewedBy" bson:"viewed_by"`
	CreatedAt    time.Time            `json:"createdAt" bson:"created_at"`
}

// ParseTags splits a comma-separated tag string into a list, dropping
// surrounding whitespace and empty entries.
func ParseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
