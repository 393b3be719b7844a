package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupFriendRoutes đăng ký các route bạn bè và lời mời kết bạn
func SetupFriendRoutes(api *gin.RouterGroup, friendController *controllers.FriendController) {
	requests := api.Group("/friend-requests")
	{
		requests.POST("", friendController.SendFriendRequest)
		requests.GET("", friendController.GetFriendRequests)
		requests.POST("/:id/accept", friendController.AcceptFriendRequest)
		requests.POST("/:id/reject", friendController.RejectFriendRequest)
	}

	friends := api.Group("/friends")
	{
		friends.GET("", friendController.GetFriends)
		friends.POST("", friendController.AddFriend) // đường thêm bạn một chiều cũ
		friends.DELETE("/:username", friendController.RemoveFriend)
	}
}
