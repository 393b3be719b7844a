package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshath291/Memora/models"
	"github.com/Harshath291/Memora/services"
)

type CheckboxNoteController struct {
	CheckboxNoteService *services.CheckboxNoteService
}

func NewCheckboxNoteController(checkboxNoteService *services.CheckboxNoteService) *CheckboxNoteController {
	return &CheckboxNoteController{CheckboxNoteService: checkboxNoteService}
}

type checkboxNoteBody struct {
	Title string                 `json:"title" binding:"required"`
	Items []models.ChecklistItem `json:"items"`
}

// Tạo ghi chú checklist
func (cc *CheckboxNoteController) CreateCheckboxNote(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body checkboxNoteBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	note, err := cc.CheckboxNoteService.CreateCheckboxNote(userID, body.Title, body.Items)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// Danh sách ghi chú checklist
func (cc *CheckboxNoteController) GetCheckboxNotes(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	notes, err := cc.CheckboxNoteService.GetCheckboxNotes(userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

// Cập nhật ghi chú checklist
func (cc *CheckboxNoteController) UpdateCheckboxNote(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	noteID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID ghi chú không hợp lệ"})
		return
	}

	var body checkboxNoteBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	note, err := cc.CheckboxNoteService.UpdateCheckboxNote(userID, noteID, body.Title, body.Items)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}
