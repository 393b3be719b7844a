package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupNoteRoutes đăng ký các route ghi chú
func SetupNoteRoutes(api *gin.RouterGroup, noteController *controllers.NoteController) {
	notes := api.Group("/notes")
	{
		notes.POST("", noteController.CreateNote)
		notes.GET("", noteController.GetNotes)
		notes.GET("/on-this-day/list", noteController.GetOnThisDayNotes)
		notes.GET("/:id", noteController.GetNote)
	}
}
