package services

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
	"github.com/Harshath291/Memora/utils"
)

// UserService chứa các phương thức để xử lý nghiệp vụ liên quan đến người dùng
type UserService struct {
	DB *mongo.Database
}

// NewUserService khởi tạo một UserService mới
func NewUserService(db *mongo.Database) *UserService {
	return &UserService{DB: db}
}

// Register thực hiện đăng ký cho người dùng mới
func (us *UserService) Register(username, email, password string) (*models.User, error) {
	collection := us.DB.Collection("users")

	// Kiểm tra nếu username đã tồn tại
	err := collection.FindOne(context.Background(), bson.M{"username": username}).Err()
	if err == nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	// Mã hóa mật khẩu (sử dụng bcrypt)
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "không thể mã hóa mật khẩu", err)
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := collection.InsertOne(context.Background(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	return &user, nil
}

// Login kiểm tra thông tin đăng nhập và trả về người dùng
func (us *UserService) Login(username, password string) (*models.User, error) {
	collection := us.DB.Collection("users")

	var user models.User
	err := collection.FindOne(context.Background(), bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Không tiết lộ username có tồn tại hay không
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GenerateJWT tạo JWT cho người dùng
func (us *UserService) GenerateJWT(user *models.User) (string, error) {
	expirationHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if err != nil || expirationHours <= 0 {
		expirationHours = 24 // Mặc định 24 giờ
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * time.Duration(expirationHours)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(secret))
}

// GetUserByUsername tra cứu người dùng theo username
func (us *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := us.DB.Collection("users").FindOne(context.Background(), bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &user, nil
}

// GetUserByID tra cứu người dùng theo id
func (us *UserService) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := us.DB.Collection("users").FindOne(context.Background(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &user, nil
}

// GetUserByEmail tra cứu người dùng theo email, dùng cho đặt lại mật khẩu
func (us *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := us.DB.Collection("users").FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &user, nil
}

// SetPassword thay hash mật khẩu của người dùng
func (us *UserService) SetPassword(userID primitive.ObjectID, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "không thể mã hóa mật khẩu", err)
	}

	res, err := us.DB.Collection("users").UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password_hash": hashed}},
	)
	if err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
