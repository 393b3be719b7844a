package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
	"github.com/Harshath291/Memora/middleware"
)

// SetupRouter gom toàn bộ routes dưới prefix /api
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	noteController *controllers.NoteController,
	reminderController *controllers.ReminderController,
	checkboxNoteController *controllers.CheckboxNoteController,
	friendController *controllers.FriendController,
	messageController *controllers.MessageController,
	wsController *controllers.WSController,
) {
	api := router.Group("/api")

	// Các route không cần token
	SetupAuthRoutes(api, authController)

	// Kênh websocket tự xác thực bằng token trong query
	api.GET("/ws", wsController.HandleWebSocket)

	// Các route còn lại yêu cầu token hợp lệ
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authController.Me)
	SetupNoteRoutes(protected, noteController)
	SetupReminderRoutes(protected, reminderController)
	SetupCheckboxNoteRoutes(protected, checkboxNoteController)
	SetupFriendRoutes(protected, friendController)
	SetupMessageRoutes(protected, messageController)
}
