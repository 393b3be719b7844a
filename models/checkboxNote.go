package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChecklistItem struct {
	Text    string `json:"text" bson:"text"`
	Checked bool   `json:"checked" bson:"checked"`
}

// CheckboxNote là ghi chú dạng danh sách có ô đánh dấu
type CheckboxNote struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Title     string             `json:"title" bson:"title"`
	Items     []ChecklistItem    `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
