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

type MessageService struct {
	DB            *mongo.Database
	UserService   *UserService
	FriendService *FriendService
	Realtime      *RealtimeService
}

// NewMessageService khởi tạo MessageService, realtime có thể nil (không đẩy thông báo)
func NewMessageService(db *mongo.Database, realtime *RealtimeService) *MessageService {
	return &MessageService{
		DB:            db,
		UserService:   NewUserService(db),
		FriendService: NewFriendService(db),
		Realtime:      realtime,
	}
}

// requireFriend tra người nhận và kiểm tra cạnh bạn bè theo chiều người gọi.
// Chỉ cần chiều người gọi, người kia chưa thêm lại vẫn được.
func (ms *MessageService) requireFriend(userID primitive.ObjectID, friendUsername string) (*models.User, error) {
	friend, err := ms.UserService.GetUserByUsername(friendUsername)
	if err != nil {
		return nil, err
	}

	ok, err := ms.FriendService.HasEdge(userID, friendUsername)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFriends
	}
	return friend, nil
}

// Gửi tin nhắn cho một người bạn
func (ms *MessageService) SendMessage(fromID primitive.ObjectID, toUsername, content string) (*models.Message, error) {
	toUser, err := ms.requireFriend(fromID, toUsername)
	if err != nil {
		return nil, err
	}

	message := models.Message{
		ID:         primitive.NewObjectID(),
		FromUserID: fromID,
		ToUserID:   toUser.ID,
		Content:    content,
		ReadBy:     []primitive.ObjectID{},
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := ms.DB.Collection("messages").InsertOne(context.Background(), message); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	// Báo cho người nhận, best-effort
	ms.Realtime.SendNotification(toUser.ID.Hex(), EventNewMessage, message)

	return &message, nil
}

// Lấy hội thoại với một người bạn, xếp theo thời gian tăng dần
func (ms *MessageService) GetConversation(userID primitive.ObjectID, friendUsername string) ([]models.Message, error) {
	friend, err := ms.requireFriend(userID, friendUsername)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"$or": []bson.M{
			{"from_user_id": userID, "to_user_id": friend.ID},
			{"from_user_id": friend.ID, "to_user_id": userID},
		},
	}
	// _id tăng theo thứ tự chèn nên dùng làm khóa phụ khi trùng thời gian
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := ms.DB.Collection("messages").Find(context.Background(), filter, opts)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	messages := make([]models.Message, 0)
	if err := cursor.All(context.Background(), &messages); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return messages, nil
}

// MarkRead đánh dấu đã đọc mọi tin từ friendUsername gửi cho reader.
// Idempotent: gọi lại khi không còn gì mới trả về 0.
func (ms *MessageService) MarkRead(readerID primitive.ObjectID, friendUsername string) (int64, error) {
	friend, err := ms.requireFriend(readerID, friendUsername)
	if err != nil {
		return 0, err
	}

	res, err := ms.DB.Collection("messages").UpdateMany(
		context.Background(),
		bson.M{
			"from_user_id": friend.ID,
			"to_user_id":   readerID,
			"read_by":      bson.M{"$ne": readerID},
		},
		bson.M{"$addToSet": bson.M{"read_by": readerID}},
	)
	if err != nil {
		return 0, apperrors.ErrStoreUnavailable(err)
	}

	// Báo cho người gửi biết tin đã được đọc
	if res.ModifiedCount > 0 {
		ms.Realtime.SendNotification(friend.ID.Hex(), EventMessagesRead, map[string]interface{}{
			"by_user_id":     readerID.Hex(),
			"friend_user_id": friend.ID.Hex(),
		})
	}

	return res.ModifiedCount, nil
}

// UnreadCounts đếm tin chưa đọc gửi tới user, gom theo người gửi
func (ms *MessageService) UnreadCounts(userID primitive.ObjectID) ([]models.UnreadCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"to_user_id": userID,
			"read_by":    bson.M{"$ne": userID},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$from_user_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := ms.DB.Collection("messages").Aggregate(context.Background(), pipeline)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	counts := make([]models.UnreadCount, 0)
	if err := cursor.All(context.Background(), &counts); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	// Bổ sung username của từng người gửi
	for i := range counts {
		sender, err := ms.UserService.GetUserByID(counts[i].FriendUserID)
		if err != nil {
			continue
		}
		counts[i].FriendUsername = sender.Username
	}
	return counts, nil
}
