package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupCheckboxNoteRoutes đăng ký các route ghi chú checklist
func SetupCheckboxNoteRoutes(api *gin.RouterGroup, checkboxNoteController *controllers.CheckboxNoteController) {
	notes := api.Group("/checkbox-notes")
	{
		notes.POST("", checkboxNoteController.CreateCheckboxNote)
		notes.GET("", checkboxNoteController.GetCheckboxNotes)
		notes.PUT("/:id", checkboxNoteController.UpdateCheckboxNote)
	}
}
