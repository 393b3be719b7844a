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

type CheckboxNoteService struct {
	DB *mongo.Database
}

func NewCheckboxNoteService(db *mongo.Database) *CheckboxNoteService {
	return &CheckboxNoteService{DB: db}
}

// Tạo ghi chú checklist mới
func (cs *CheckboxNoteService) CreateCheckboxNote(userID primitive.ObjectID, title string, items []models.ChecklistItem) (*models.CheckboxNote, error) {
	if items == nil {
		items = []models.ChecklistItem{}
	}
	note := models.CheckboxNote{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := cs.DB.Collection("checkbox_notes").InsertOne(context.Background(), note); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &note, nil
}

// Danh sách ghi chú checklist, mới nhất trước
func (cs *CheckboxNoteService) GetCheckboxNotes(userID primitive.ObjectID) ([]models.CheckboxNote, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := cs.DB.Collection("checkbox_notes").Find(context.Background(), bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	notes := make([]models.CheckboxNote, 0)
	if err := cursor.All(context.Background(), &notes); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return notes, nil
}

// UpdateCheckboxNote thay toàn bộ tiêu đề và danh sách mục
func (cs *CheckboxNoteService) UpdateCheckboxNote(userID, noteID primitive.ObjectID, title string, items []models.ChecklistItem) (*models.CheckboxNote, error) {
	collection := cs.DB.Collection("checkbox_notes")

	if items == nil {
		items = []models.ChecklistItem{}
	}

	res, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": noteID, "user_id": userID},
		bson.M{"$set": bson.M{"title": title, "items": items}},
	)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.ErrNoteNotFound
	}

	var note models.CheckboxNote
	if err := collection.FindOne(context.Background(), bson.M{"_id": noteID}).Decode(&note); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &note, nil
}
