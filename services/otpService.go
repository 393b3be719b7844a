package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

const (
	otpTTL         = 10 * time.Minute
	otpResendAfter = 30 * time.Second
	otpMaxAttempts = 5
)

type OTPService struct {
	DB *mongo.Database
}

func NewOTPService(db *mongo.Database) *OTPService {
	return &OTPService{DB: db}
}

func (osv *OTPService) generate6Digits() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint32(b[:])
	return fmt.Sprintf("%06d", n%1000000), nil
}

// CreateAndSendResetOTP tạo OTP đặt lại mật khẩu và gửi qua email.
// Gửi email trước, thành công mới lưu vào DB.
func (osv *OTPService) CreateAndSendResetOTP(email string) error {
	collection := osv.DB.Collection("otps")

	var lastOTP models.OTP
	err := collection.FindOne(context.Background(), bson.M{
		"email":   email,
		"purpose": models.OTPPurposeResetPassword,
	}).Decode(&lastOTP)
	if err == nil {
		if time.Since(lastOTP.CreatedAt) < otpResendAfter {
			return apperrors.ErrOTPThrottled
		}
	} else if err != mongo.ErrNoDocuments {
		return apperrors.ErrStoreUnavailable(err)
	}

	code, err := osv.generate6Digits()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "không tạo được mã OTP", err)
	}

	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "Memora"
	}
	subject := fmt.Sprintf("[%s] Mã đặt lại mật khẩu", appName)
	body := fmt.Sprintf(`
       <div style="font-family: Arial, sans-serif">
          <h2>Xin chào,</h2>
          <p>Mã đặt lại mật khẩu của bạn là:</p>
          <h1 style="letter-spacing: 4px">%s</h1>
          <p>Mã có hiệu lực trong 10 phút.</p>
          <p>— %s</p>
       </div>
    `, code, appName)

	if err := SendEmail(email, subject, body); err != nil {
		return apperrors.Wrap(apperrors.CodeUnavailable, "không gửi được email", err)
	}

	now := time.Now().UTC()
	otp := models.OTP{
		Email:     email,
		Code:      code,
		Purpose:   models.OTPPurposeResetPassword,
		ExpiresAt: now.Add(otpTTL),
		Attempts:  0,
		CreatedAt: now,
	}

	// Thay OTP cũ nếu có, mỗi email chỉ giữ một mã đang hiệu lực
	if _, err := collection.DeleteMany(context.Background(), bson.M{
		"email":   email,
		"purpose": models.OTPPurposeResetPassword,
	}); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	if _, err := collection.InsertOne(context.Background(), otp); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

// VerifyResetOTP kiểm tra mã OTP, đúng thì xóa để không dùng lại được
func (osv *OTPService) VerifyResetOTP(email, code string) error {
	collection := osv.DB.Collection("otps")

	var otp models.OTP
	err := collection.FindOne(context.Background(), bson.M{
		"email":   email,
		"purpose": models.OTPPurposeResetPassword,
	}).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.ErrOTPInvalid
		}
		return apperrors.ErrStoreUnavailable(err)
	}

	if time.Now().UTC().After(otp.ExpiresAt) {
		return apperrors.ErrOTPInvalid
	}

	if otp.Code != code {
		// Đếm số lần nhập sai, quá giới hạn thì hủy mã
		res, uerr := collection.UpdateOne(
			context.Background(),
			bson.M{"_id": otp.ID, "attempts": bson.M{"$lt": otpMaxAttempts - 1}},
			bson.M{"$inc": bson.M{"attempts": 1}},
		)
		if uerr == nil && res.ModifiedCount == 0 {
			collection.DeleteOne(context.Background(), bson.M{"_id": otp.ID})
		}
		return apperrors.ErrOTPInvalid
	}

	if _, err := collection.DeleteOne(context.Background(), bson.M{"_id": otp.ID}); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}
