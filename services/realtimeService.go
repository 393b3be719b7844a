package services

import "github.com/Harshath291/Memora/interfaces"

const (
	EventNewMessage   = "new_message"
	EventMessagesRead = "messages_read"
)

// Event là khung thông báo đẩy qua kênh thời gian thực
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type RealtimeService struct {
	Notifier interfaces.Notifier
}

// Khởi tạo RealtimeService
func NewRealtimeService(notifier interfaces.Notifier) *RealtimeService {
	return &RealtimeService{Notifier: notifier}
}

// Gửi thông báo thời gian thực, best-effort
func (rs *RealtimeService) SendNotification(userID string, event string, payload interface{}) {
	if rs == nil || rs.Notifier == nil {
		return
	}
	rs.Notifier.NotifyUser(userID, Event{Event: event, Payload: payload})
}
