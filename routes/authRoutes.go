package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/controllers"
)

// SetupAuthRoutes đăng ký các route xác thực, không yêu cầu token
func SetupAuthRoutes(api *gin.RouterGroup, authController *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}
}
