package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshath291/Memora/services"
)

type AuthController struct {
	UserService *services.UserService
	OTPService  *services.OTPService
}

func NewAuthController(userService *services.UserService, otpService *services.OTPService) *AuthController {
	return &AuthController{UserService: userService, OTPService: otpService}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Đăng ký tài khoản mới, trả về token luôn
func (ac *AuthController) Signup(ctx *gin.Context) {
	var req signupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	user, err := ac.UserService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		handleError(ctx, err)
		return
	}

	token, err := ac.UserService.GenerateJWT(user)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"user_id":  user.ID.Hex(),
	})
}

// Đăng nhập
func (ac *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	user, err := ac.UserService.Login(req.Username, req.Password)
	if err != nil {
		handleError(ctx, err)
		return
	}

	token, err := ac.UserService.GenerateJWT(user)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"user_id":  user.ID.Hex(),
	})
}

// Thông tin người dùng hiện tại
func (ac *AuthController) Me(ctx *gin.Context) {
	userID, username, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"username": username, "user_id": userID.Hex()})
}

// Yêu cầu mã OTP đặt lại mật khẩu
func (ac *AuthController) ForgotPassword(ctx *gin.Context) {
	var req forgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	// Email không tồn tại vẫn trả về như gửi thành công, tránh dò tài khoản
	if _, err := ac.UserService.GetUserByEmail(req.Email); err == nil {
		if err := ac.OTPService.CreateAndSendResetOTP(req.Email); err != nil {
			handleError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Nếu email tồn tại, mã OTP đã được gửi"})
}

// Đặt lại mật khẩu bằng mã OTP
func (ac *AuthController) ResetPassword(ctx *gin.Context) {
	var req resetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	if err := ac.OTPService.VerifyResetOTP(req.Email, req.Code); err != nil {
		handleError(ctx, err)
		return
	}

	user, err := ac.UserService.GetUserByEmail(req.Email)
	if err != nil {
		handleError(ctx, err)
		return
	}

	if err := ac.UserService.SetPassword(user.ID, req.NewPassword); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Đặt lại mật khẩu thành công"})
}
