package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshath291/Memora/services"
)

type FriendController struct {
	FriendService *services.FriendService
}

func NewFriendController(friendService *services.FriendService) *FriendController {
	return &FriendController{FriendService: friendService}
}

type sendFriendRequestBody struct {
	ToUsername string `json:"to_username" binding:"required"`
	Message    string `json:"message"`
}

type addFriendBody struct {
	FriendUsername string `json:"friend_username" binding:"required"`
}

// Gửi lời mời kết bạn
func (fc *FriendController) SendFriendRequest(ctx *gin.Context) {
	userID, username, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body sendFriendRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	request, err := fc.FriendService.SendFriendRequest(userID, username, body.ToUsername, body.Message)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// Lấy danh sách lời mời kết bạn theo chiều incoming hoặc outgoing
func (fc *FriendController) GetFriendRequests(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	direction := ctx.DefaultQuery("direction", "incoming")
	requests, err := fc.FriendService.GetFriendRequests(userID, direction)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// Chấp nhận lời mời kết bạn
func (fc *FriendController) AcceptFriendRequest(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	requestID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID lời mời không hợp lệ"})
		return
	}

	request, err := fc.FriendService.AcceptFriendRequest(requestID, userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": request.Status})
}

// Từ chối lời mời kết bạn
func (fc *FriendController) RejectFriendRequest(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	requestID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID lời mời không hợp lệ"})
		return
	}

	request, err := fc.FriendService.RejectFriendRequest(requestID, userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": request.Status})
}

// Lấy danh sách bạn bè
func (fc *FriendController) GetFriends(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	friends, err := fc.FriendService.GetFriends(userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, friends)
}

// Thêm bạn một chiều, đường cũ cho client cũ
func (fc *FriendController) AddFriend(ctx *gin.Context) {
	userID, username, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body addFriendBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	friend, err := fc.FriendService.AddFriendDirect(userID, username, body.FriendUsername)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, friend)
}

// Xóa bạn bè cả hai chiều
func (fc *FriendController) RemoveFriend(ctx *gin.Context) {
	userID, username, ok := currentUser(ctx)
	if !ok {
		return
	}

	friendUsername := ctx.Param("username")
	if err := fc.FriendService.RemoveFriend(userID, username, friendUsername); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "removed"})
}
