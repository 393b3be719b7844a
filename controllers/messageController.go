package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/services"
)

type MessageController struct {
	MessageService *services.MessageService
}

func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{MessageService: messageService}
}

type sendMessageBody struct {
	ToUsername string `json:"to_username" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Gửi tin nhắn
func (mc *MessageController) SendMessage(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body sendMessageBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	message, err := mc.MessageService.SendMessage(userID, body.ToUsername, body.Content)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// Lấy hội thoại với một người bạn
func (mc *MessageController) GetConversation(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	messages, err := mc.MessageService.GetConversation(userID, ctx.Param("friend_username"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// Đánh dấu đã đọc tin nhắn từ một người bạn
func (mc *MessageController) MarkRead(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	updated, err := mc.MessageService.MarkRead(userID, ctx.Param("friend_username"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Số tin chưa đọc gom theo người gửi
func (mc *MessageController) UnreadCounts(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	counts, err := mc.MessageService.UnreadCounts(userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, counts)
}
