package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupMessageRoutes đăng ký các route tin nhắn.
// unread_counts phải đứng trước :friend_username để không bị nuốt bởi wildcard.
func SetupMessageRoutes(api *gin.RouterGroup, messageController *controllers.MessageController) {
	messages := api.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("/unread_counts", messageController.UnreadCounts)
		messages.GET("/:friend_username", messageController.GetConversation)
		messages.POST("/:friend_username/read", messageController.MarkRead)
	}
}
