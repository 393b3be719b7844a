package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/services"
)

type ReminderController struct {
	ReminderService *services.ReminderService
}

func NewReminderController(reminderService *services.ReminderService) *ReminderController {
	return &ReminderController{ReminderService: reminderService}
}

type reminderBody struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Note  string `json:"note"`
}

// Tạo lời nhắc
func (rc *ReminderController) CreateReminder(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body reminderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	reminder, err := rc.ReminderService.CreateReminder(userID, body.Title, body.Date, body.Note)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reminder)
}

// Danh sách lời nhắc
func (rc *ReminderController) GetReminders(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	reminders, err := rc.ReminderService.GetReminders(userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reminders)
}
