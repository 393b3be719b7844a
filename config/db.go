package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

func InitDB() {
	DB = ConnectDB()
}

// ConnectDB kết nối tới MongoDB và trả về một đối tượng *mongo.Database
func ConnectDB() *mongo.Database {
	LoadEnv() // Nạp biến môi trường từ file .env

	dbURI := os.Getenv("MONGODB_URI")
	dbName := os.Getenv("DB_NAME")
	if dbURI == "" || dbName == "" {
		log.Fatal("Lỗi cấu hình: MONGODB_URI hoặc DB_NAME không được để trống")
	}

	// Cấu hình client MongoDB
	clientOptions := options.Client().ApplyURI(dbURI).SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatalf("Không thể kết nối tới MongoDB: %v", err)
	}

	// Kiểm tra kết nối với MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Ping đến MongoDB thất bại: %v", err)
	}

	log.Printf("Kết nối thành công đến MongoDB, database %s", dbName)
	db := client.Database(dbName)

	if err := EnsureIndexes(db); err != nil {
		log.Printf("Không thể tạo index: %v", err)
	}

	return db
}

// EnsureIndexes tạo các index phục vụ ràng buộc duy nhất và truy vấn chính
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	// username duy nhất
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return err
	}

	// mỗi cạnh bạn bè một chiều chỉ tồn tại một lần
	_, err = db.Collection("friends").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "friend_username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("edge_unique"),
	})
	if err != nil {
		return err
	}

	// tối đa một lời mời pending cho mỗi cặp (from, to)
	_, err = db.Collection("friend_requests").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "from_user_id", Value: 1}, {Key: "to_user_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("pending_pair_unique").
			SetPartialFilterExpression(bson.M{"status": "pending"}),
	})
	if err != nil {
		return err
	}

	// hội thoại theo cặp và thời gian
	_, err = db.Collection("messages").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "from_user_id", Value: 1}, {Key: "to_user_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("pair_time"),
		},
		{
			Keys:    bson.D{{Key: "to_user_id", Value: 1}, {Key: "read_by", Value: 1}},
			Options: options.Index().SetName("unread_by_recipient"),
		},
	})
	if err != nil {
		return err
	}

	// ghi chú, lời nhắc theo chủ sở hữu
	_, err = db.Collection("notes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("notes_by_owner"),
	})
	if err != nil {
		return err
	}

	// OTP tự hết hạn
	_, err = db.Collection("otps").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}
