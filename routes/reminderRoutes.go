package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupReminderRoutes đăng ký các route lời nhắc
func SetupReminderRoutes(api *gin.RouterGroup, reminderController *controllers.ReminderController) {
	reminders := api.Group("/reminders")
	{
		reminders.POST("", reminderController.CreateReminder)
		reminders.GET("", reminderController.GetReminders)
	}
}
