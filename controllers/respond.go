package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

// handleError trả lỗi về client theo mã của AppError
func handleError(ctx *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Code.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	log.Printf("Lỗi không xác định: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi máy chủ"})
}

// currentUser lấy danh tính đã được middleware xác thực ra khỏi context
func currentUser(ctx *gin.Context) (primitive.ObjectID, string, bool) {
	userIDHex := ctx.GetString("user_id")
	username := ctx.GetString("username")

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token không chứa thông tin người dùng hợp lệ"})
		ctx.Abort()
		return primitive.NilObjectID, "", false
	}
	return userID, username, true
}
