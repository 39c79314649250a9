package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a single comment on a video.
type Comment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VideoID     primitive.ObjectID `json:"videoId" bson:"video_id"`
	UserID      primitive.ObjectID `json:"userId" bson:"user_id"`
	CommentText string             `json:"commentText" bson:"comment_text"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
}

// CommentAuthor holds the minimal display fields joined onto a comment.
type CommentAuthor struct {
	ChannelName string `json:"channelName" bson:"channel_name"`
	LogoURL     string `json:"logoUrl" bson:"logo_url"`
}

// CommentWithAuthor is a comment enriched with its author's display fields,
// as returned by the per-video comment listing.
type CommentWithAuthor struct {
	Comment `bson:",inline"`
	Author  CommentAuthor `json:"author" bson:"author"`
}
