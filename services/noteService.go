package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

type NoteService struct {
	DB *mongo.Database
}

func NewNoteService(db *mongo.Database) *NoteService {
	return &NoteService{DB: db}
}

// Tạo ghi chú mới
func (ns *NoteService) CreateNote(userID primitive.ObjectID, title, content string) (*models.Note, error) {
	note := models.Note{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := ns.DB.Collection("notes").InsertOne(context.Background(), note); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &note, nil
}

// Danh sách ghi chú rút gọn, mới nhất trước
func (ns *NoteService) GetNotes(userID primitive.ObjectID) ([]models.NoteListItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"title": 1, "created_at": 1})

	cursor, err := ns.DB.Collection("notes").Find(context.Background(), bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	notes := make([]models.NoteListItem, 0)
	if err := cursor.All(context.Background(), &notes); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return notes, nil
}

// Lấy một ghi chú của chính chủ
func (ns *NoteService) GetNote(userID, noteID primitive.ObjectID) (*models.Note, error) {
	var note models.Note
	err := ns.DB.Collection("notes").FindOne(context.Background(), bson.M{
		"_id":     noteID,
		"user_id": userID,
	}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &note, nil
}

// GetOnThisDayNotes trả về ghi chú cùng ngày cùng tháng của những năm trước
func (ns *NoteService) GetOnThisDayNotes(userID primitive.ObjectID, now time.Time) ([]models.NoteListItem, error) {
	cursor, err := ns.DB.Collection("notes").Find(context.Background(), bson.M{"user_id": userID})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	var all []models.Note
	if err := cursor.All(context.Background(), &all); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	matching := make([]models.NoteListItem, 0)
	for _, note := range all {
		created := note.CreatedAt
		if created.Month() == now.Month() && created.Day() == now.Day() && created.Year() != now.Year() {
			matching = append(matching, models.NoteListItem{
				ID:        note.ID,
				Title:     note.Title,
				CreatedAt: created,
			})
		}
	}

	// Mới nhất trước
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})
	return matching, nil
}
