package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Friend là cạnh bạn bè một chiều: user_id coi friend_username là bạn.
// Quan hệ hai chiều được lưu bằng hai cạnh riêng biệt.
type Friend struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	FriendUsername string             `json:"friend_username" bson:"friend_username"`
	AddedAt        time.Time          `json:"added_at" bson:"added_at"`
}
