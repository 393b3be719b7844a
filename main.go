package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/config"
	"github.com/Harshath291/Memora/controllers"
	"github.com/Harshath291/Memora/routes"
	"github.com/Harshath291/Memora/services"
)

func main() {
	// Kết nối DB
	config.InitDB()
	cfg := config.LoadConfig()

	// --- Services ---
	userService := services.NewUserService(config.DB)
	otpService := services.NewOTPService(config.DB)
	noteService := services.NewNoteService(config.DB)
	reminderService := services.NewReminderService(config.DB)
	checkboxNoteService := services.NewCheckboxNoteService(config.DB)
	friendService := services.NewFriendService(config.DB)

	// --- WSController giữ bảng kết nối, đồng thời là Notifier ---
	wsController := controllers.NewWSController(userService)

	realtimeService := services.NewRealtimeService(wsController)
	messageService := services.NewMessageService(config.DB, realtimeService)

	// Khung mark_read trên kênh websocket cần tới message service
	wsController.MessageService = messageService

	// --- Controllers ---
	authController := controllers.NewAuthController(userService, otpService)
	noteController := controllers.NewNoteController(noteService)
	reminderController := controllers.NewReminderController(reminderService)
	checkboxNoteController := controllers.NewCheckboxNoteController(checkboxNoteService)
	friendController := controllers.NewFriendController(friendService)
	messageController := controllers.NewMessageController(messageService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- Router (gom routes trong index.go) ---
	routes.SetupRouter(
		router,
		authController,
		noteController,
		reminderController,
		checkboxNoteController,
		friendController,
		messageController,
		wsController,
	)

	// Run server
	log.Printf("Server is running on port %s...", cfg.AppPort)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("Không thể khởi động server: %v", err)
	}
}
