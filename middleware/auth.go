package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims là thông tin danh tính rút ra từ token
type TokenClaims struct {
	UserID   string
	Username string
}

// ParseToken kiểm tra và phân tích token, dùng chung cho middleware và websocket
func ParseToken(tokenString string) (*TokenClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET không được cấu hình")
		return nil, errors.New("JWT_SECRET không được cấu hình")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Kiểm tra nếu phương thức ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("phương pháp ký không hợp lệ")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token không hợp lệ")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("token không chứa thông tin người dùng hợp lệ")
	}
	username, _ := claims["username"].(string)

	return &TokenClaims{UserID: userID, Username: username}, nil
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không được cung cấp"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseToken(tokenString)
		if err != nil {
			var errorMsg string
			// Kiểm tra lỗi token bằng cách kiểm tra chuỗi lỗi
			if strings.Contains(err.Error(), "token is expired") {
				errorMsg = "Token đã hết hạn"
			} else if strings.Contains(err.Error(), "signature is invalid") {
				errorMsg = "Chữ ký token không hợp lệ"
			} else {
				errorMsg = "Token không hợp lệ"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": errorMsg})
			c.Abort()
			return
		}

		// Lưu thông tin người dùng vào context để sử dụng trong các handler tiếp theo
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
