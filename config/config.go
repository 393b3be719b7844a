package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config chứa các biến môi trường cần thiết
type Config struct {
	AppPort     string
	DBName      string
	JWTSecret   string
	MongoURI    string
	CORSOrigins []string
}

// LoadEnv nạp biến môi trường từ tệp .env dựa trên APP_ENV
func LoadEnv() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development" // Mặc định là "development"
	}
	envFile := fmt.Sprintf(".env.%s", env)

	// Nạp biến môi trường từ tệp, bỏ qua nếu không có (chạy bằng env thật)
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Không nạp được tệp %s, dùng biến môi trường hiện có", envFile)
	}
}

// LoadConfig nạp và trả về cấu hình từ các biến môi trường
func LoadConfig() Config {
	LoadEnv() // Nạp biến môi trường từ file .env trước khi đọc

	config := Config{
		AppPort:   os.Getenv("APP_PORT"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		MongoURI:  os.Getenv("MONGODB_URI"),
	}

	// CORS_ORIGINS phân tách bởi dấu phẩy, mặc định cho môi trường dev
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	config.CORSOrigins = strings.Split(origins, ",")

	// Kiểm tra và báo lỗi nếu thiếu bất kỳ biến môi trường bắt buộc nào
	if config.AppPort == "" {
		config.AppPort = "8080"
	}
	if config.JWTSecret == "" {
		log.Fatal("Lỗi cấu hình: Biến môi trường JWT_SECRET không được để trống")
	}
	if config.MongoURI == "" {
		log.Fatal("Lỗi cấu hình: Biến môi trường MONGODB_URI không được để trống")
	}
	if config.DBName == "" {
		log.Fatal("Lỗi cấu hình: Biến môi trường DB_NAME không được để trống")
	}

	return config
}
