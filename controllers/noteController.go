package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshath291/Memora/services"
)

type NoteController struct {
	NoteService *services.NoteService
}

func NewNoteController(noteService *services.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

type noteBody struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Tạo ghi chú
func (nc *NoteController) CreateNote(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	var body noteBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	note, err := nc.NoteService.CreateNote(userID, body.Title, body.Content)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// Danh sách ghi chú
func (nc *NoteController) GetNotes(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	notes, err := nc.NoteService.GetNotes(userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

// Lấy một ghi chú
func (nc *NoteController) GetNote(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	noteID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID ghi chú không hợp lệ"})
		return
	}

	note, err := nc.NoteService.GetNote(userID, noteID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// Ghi chú "ngày này năm xưa"
func (nc *NoteController) GetOnThisDayNotes(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	notes, err := nc.NoteService.GetOnThisDayNotes(userID, time.Now().UTC())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notes)
}
