package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

type ReminderService struct {
	DB *mongo.Database
}

func NewReminderService(db *mongo.Database) *ReminderService {
	return &ReminderService{DB: db}
}

// Tạo lời nhắc mới
func (rs *ReminderService) CreateReminder(userID primitive.ObjectID, title, date, note string) (*models.Reminder, error) {
	reminder := models.Reminder{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Date:      date,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := rs.DB.Collection("reminders").InsertOne(context.Background(), reminder); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &reminder, nil
}

// Danh sách lời nhắc xếp theo ngày tăng dần
func (rs *ReminderService) GetReminders(userID primitive.ObjectID) ([]models.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := rs.DB.Collection("reminders").Find(context.Background(), bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	reminders := make([]models.Reminder, 0)
	if err := cursor.All(context.Background(), &reminders); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return reminders, nil
}
