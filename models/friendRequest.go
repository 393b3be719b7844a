package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest là lời mời kết bạn, chỉ người nhận mới được chấp nhận hoặc từ chối.
// Không bao giờ xóa, giữ lại làm lịch sử.
type FriendRequest struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	FromUserID   primitive.ObjectID  `json:"from_user_id" bson:"from_user_id"`
	FromUsername string              `json:"from_username" bson:"from_username"`
	ToUserID     primitive.ObjectID  `json:"to_user_id" bson:"to_user_id"`
	ToUsername   string              `json:"to_username" bson:"to_username"`
	Message      string              `json:"message,omitempty" bson:"message,omitempty"`
	Status       FriendRequestStatus `json:"status" bson:"status"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at"`
}
