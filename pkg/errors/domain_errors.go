package errors

var (
	// Người dùng / xác thực
	ErrUsernameTaken      = AlreadyExists("tên đăng nhập đã tồn tại")
	ErrUserNotFound       = NotFound("không tìm thấy người dùng")
	ErrInvalidCredentials = Unauthorized("tên đăng nhập hoặc mật khẩu không đúng")
	ErrInvalidToken       = Unauthorized("token không hợp lệ")
	ErrTokenExpired       = Unauthorized("token đã hết hạn")

	// Kết bạn
	ErrSelfFriend        = InvalidArg("không thể kết bạn với chính mình")
	ErrAlreadyFriends    = AlreadyExists("hai người đã là bạn bè")
	ErrFriendExists      = AlreadyExists("bạn bè đã được thêm")
	ErrDuplicatePending  = AlreadyExists("đã có lời mời kết bạn đang chờ")
	ErrRequestNotFound   = NotFound("không tìm thấy lời mời kết bạn")
	ErrNotRequestTarget  = Forbidden("chỉ người nhận mới được xử lý lời mời này")
	ErrRequestNotPending = FailedPrecondition("lời mời kết bạn đã được xử lý")
	ErrFriendNotFound    = NotFound("không tìm thấy bạn bè")

	// Tin nhắn
	ErrNotFriends = Forbidden("bạn chưa thêm người này vào danh sách bạn bè")

	// Ghi chú
	ErrNoteNotFound = NotFound("không tìm thấy ghi chú")

	// OTP đặt lại mật khẩu
	ErrOTPThrottled = FailedPrecondition("bạn chỉ được yêu cầu mã OTP sau 30 giây")
	ErrOTPInvalid   = InvalidArg("mã OTP không đúng hoặc đã hết hạn")
	ErrNoEmail      = FailedPrecondition("tài khoản chưa đăng ký email")
)

func ErrStoreUnavailable(cause error) error {
	return Unavailable("kho dữ liệu tạm thời không khả dụng", cause)
}
