package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message là tin nhắn giữa hai người dùng, không sửa không xóa.
// ReadBy chỉ tăng chứ không giảm.
type Message struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	FromUserID primitive.ObjectID   `json:"from_user_id" bson:"from_user_id"`
	ToUserID   primitive.ObjectID   `json:"to_user_id" bson:"to_user_id"`
	Content    string               `json:"content" bson:"content"`
	ReadBy     []primitive.ObjectID `json:"read_by" bson:"read_by"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
}

// UnreadCount là số tin chưa đọc từ một người gửi
type UnreadCount struct {
	FriendUserID   primitive.ObjectID `json:"friend_user_id" bson:"_id"`
	FriendUsername string             `json:"friend_username" bson:"friend_username"`
	Count          int64              `json:"count" bson:"count"`
}
