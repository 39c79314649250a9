package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a channel owner stored in the users collection.
// The password hash is never serialized into API responses.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChannelName string             `json:"channelName" bson:"channel_name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	Password    string             `json:"-" bson:"password"`
	LogoURL     string             `json:"logoUrl" bson:"logo_url"`
	LogoID      string             `json:"logoId" bson:"logo_id"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
}
