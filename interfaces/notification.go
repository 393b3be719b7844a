package interfaces

// Notifier định nghĩa giao diện đẩy thông báo thời gian thực tới một người dùng.
// Gửi theo kiểu best-effort: không chặn, không trả lỗi cho bên gọi.
type Notifier interface {
	NotifyUser(userID string, payload interface{})
}
