package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

type FriendService struct {
	DB          *mongo.Database
	UserService *UserService
}

func NewFriendService(db *mongo.Database) *FriendService {
	return &FriendService{
		DB:          db,
		UserService: NewUserService(db),
	}
}

// Gửi lời mời kết bạn
func (fs *FriendService) SendFriendRequest(fromID primitive.ObjectID, fromUsername, toUsername, message string) (*models.FriendRequest, error) {
	if toUsername == fromUsername {
		return nil, apperrors.ErrSelfFriend
	}

	toUser, err := fs.UserService.GetUserByUsername(toUsername)
	if err != nil {
		return nil, err
	}

	// Đã là bạn bè (theo chiều người gửi) thì không gửi lời mời nữa
	err = fs.DB.Collection("friends").FindOne(context.Background(), bson.M{
		"user_id":         fromID,
		"friend_username": toUsername,
	}).Err()
	if err == nil {
		return nil, apperrors.ErrAlreadyFriends
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	// Mỗi cặp (from, to) chỉ được có một lời mời đang chờ
	collection := fs.DB.Collection("friend_requests")
	err = collection.FindOne(context.Background(), bson.M{
		"from_user_id": fromID,
		"to_user_id":   toUser.ID,
		"status":       models.FriendRequestPending,
	}).Err()
	if err == nil {
		return nil, apperrors.ErrDuplicatePending
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	request := models.FriendRequest{
		ID:           primitive.NewObjectID(),
		FromUserID:   fromID,
		FromUsername: fromUsername,
		ToUserID:     toUser.ID,
		ToUsername:   toUser.Username,
		Message:      message,
		Status:       models.FriendRequestPending,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := collection.InsertOne(context.Background(), request); err != nil {
		// Index duy nhất chặn hai lời mời pending tạo đồng thời
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicatePending
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	return &request, nil
}

// Lấy danh sách lời mời kết bạn theo chiều incoming hoặc outgoing
func (fs *FriendService) GetFriendRequests(userID primitive.ObjectID, direction string) ([]models.FriendRequest, error) {
	var filter bson.M
	switch direction {
	case "incoming":
		filter = bson.M{"to_user_id": userID}
	case "outgoing":
		filter = bson.M{"from_user_id": userID}
	default:
		return nil, apperrors.InvalidArg("direction phải là incoming hoặc outgoing")
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := fs.DB.Collection("friend_requests").Find(context.Background(), filter, opts)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	requests := make([]models.FriendRequest, 0)
	if err := cursor.All(context.Background(), &requests); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return requests, nil
}

// Chấp nhận lời mời kết bạn: tạo hai cạnh bạn bè trước rồi mới đổi trạng thái.
// Nếu đổ vỡ giữa chừng thì lời mời vẫn là pending và gọi lại được.
func (fs *FriendService) AcceptFriendRequest(requestID, actorID primitive.ObjectID) (*models.FriendRequest, error) {
	collection := fs.DB.Collection("friend_requests")

	var request models.FriendRequest
	err := collection.FindOne(context.Background(), bson.M{"_id": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	if request.ToUserID != actorID {
		return nil, apperrors.ErrNotRequestTarget
	}
	if request.Status != models.FriendRequestPending {
		return nil, apperrors.ErrRequestNotPending
	}

	// Hai cạnh được tạo idempotent: cạnh đã tồn tại là no-op
	if err := fs.addDirectedEdge(request.ToUserID, request.FromUsername); err != nil {
		return nil, err
	}
	if err := fs.addDirectedEdge(request.FromUserID, request.ToUsername); err != nil {
		return nil, err
	}

	// Đổi trạng thái có điều kiện: chỉ một lần chuyển pending -> accepted thành công
	res, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": requestID, "status": models.FriendRequestPending},
		bson.M{"$set": bson.M{"status": models.FriendRequestAccepted}},
	)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if res.ModifiedCount == 0 {
		return nil, apperrors.ErrRequestNotPending
	}

	request.Status = models.FriendRequestAccepted
	return &request, nil
}

// Từ chối lời mời kết bạn, không tạo cạnh nào
func (fs *FriendService) RejectFriendRequest(requestID, actorID primitive.ObjectID) (*models.FriendRequest, error) {
	collection := fs.DB.Collection("friend_requests")

	var request models.FriendRequest
	err := collection.FindOne(context.Background(), bson.M{"_id": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	if request.ToUserID != actorID {
		return nil, apperrors.ErrNotRequestTarget
	}
	if request.Status != models.FriendRequestPending {
		return nil, apperrors.ErrRequestNotPending
	}

	res, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": requestID, "status": models.FriendRequestPending},
		bson.M{"$set": bson.M{"status": models.FriendRequestRejected}},
	)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if res.ModifiedCount == 0 {
		return nil, apperrors.ErrRequestNotPending
	}

	request.Status = models.FriendRequestRejected
	return &request, nil
}

// addDirectedEdge chèn cạnh một chiều, cạnh đã tồn tại là no-op
func (fs *FriendService) addDirectedEdge(ownerID primitive.ObjectID, friendUsername string) error {
	_, err := fs.DB.Collection("friends").UpdateOne(
		context.Background(),
		bson.M{"user_id": ownerID, "friend_username": friendUsername},
		bson.M{"$setOnInsert": bson.M{
			"_id":      primitive.NewObjectID(),
			"added_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Hai upsert đồng thời, cạnh đã có rồi
			return nil
		}
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

// AddFriendDirect là đường thêm bạn một chiều cũ, không qua lời mời.
// Giữ lại cho client cũ.
func (fs *FriendService) AddFriendDirect(userID primitive.ObjectID, username, friendUsername string) (*models.Friend, error) {
	if friendUsername == username {
		return nil, apperrors.ErrSelfFriend
	}

	if _, err := fs.UserService.GetUserByUsername(friendUsername); err != nil {
		return nil, err
	}

	collection := fs.DB.Collection("friends")
	err := collection.FindOne(context.Background(), bson.M{
		"user_id":         userID,
		"friend_username": friendUsername,
	}).Err()
	if err == nil {
		return nil, apperrors.ErrFriendExists
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	friend := models.Friend{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		FriendUsername: friendUsername,
		AddedAt:        time.Now().UTC(),
	}
	if _, err := collection.InsertOne(context.Background(), friend); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrFriendExists
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &friend, nil
}

// Lấy danh sách bạn bè
func (fs *FriendService) GetFriends(userID primitive.ObjectID) ([]models.Friend, error) {
	cursor, err := fs.DB.Collection("friends").Find(context.Background(), bson.M{"user_id": userID})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(context.Background())

	friends := make([]models.Friend, 0)
	if err := cursor.All(context.Background(), &friends); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return friends, nil
}

// HasEdge kiểm tra cạnh một chiều user -> friendUsername
func (fs *FriendService) HasEdge(userID primitive.ObjectID, friendUsername string) (bool, error) {
	err := fs.DB.Collection("friends").FindOne(context.Background(), bson.M{
		"user_id":         userID,
		"friend_username": friendUsername,
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, apperrors.ErrStoreUnavailable(err)
}

// RemoveFriend xóa quan hệ bạn bè cả hai chiều.
// Chiều ngược lại là best-effort: cạnh ngược không tồn tại thì vẫn coi là thành công,
// đây là cơ chế tự sửa cho dữ liệu đã lệch một chiều.
func (fs *FriendService) RemoveFriend(userID primitive.ObjectID, username, friendUsername string) error {
	collection := fs.DB.Collection("friends")

	res, err := collection.DeleteOne(context.Background(), bson.M{
		"user_id":         userID,
		"friend_username": friendUsername,
	})
	if err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrFriendNotFound
	}

	// Xóa cạnh ngược nếu còn tra được người kia
	friendUser, err := fs.UserService.GetUserByUsername(friendUsername)
	if err != nil {
		log.Printf("Không tra được người dùng %s khi xóa cạnh ngược: %v", friendUsername, err)
		return nil
	}
	if _, err := collection.DeleteOne(context.Background(), bson.M{
		"user_id":         friendUser.ID,
		"friend_username": username,
	}); err != nil {
		log.Printf("Không xóa được cạnh ngược %s -> %s: %v", friendUsername, username, err)
	}
	return nil
}
