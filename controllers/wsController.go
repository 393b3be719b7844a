package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshath291/Memora/middleware"
	"github.com/Harshath291/Memora/services"
)

const (
	// Thời gian tối đa để ghi một khung ra kết nối
	writeWait = 10 * time.Second

	// Quá thời gian này không nhận được pong thì coi như kết nối chết
	pongWait = 60 * time.Second

	// Chu kỳ ping, phải nhỏ hơn pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	// Kích thước buffer gửi của mỗi kết nối, đầy thì kết nối bị loại
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient là một phiên kết nối của người dùng, mỗi người có thể mở nhiều phiên
type wsClient struct {
	id     string
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// inboundFrame là khung client gửi lên qua kênh websocket
type inboundFrame struct {
	Event        string `json:"event"`
	FriendUserID string `json:"friend_user_id"`
}

// WSController giữ bảng kết nối đang mở theo user id và đẩy thông báo tới chúng.
// Mọi thao tác trên bảng đều qua mutex; đẩy thông báo không bao giờ chặn bên gọi.
type WSController struct {
	MessageService *services.MessageService
	UserService    *services.UserService

	mu          sync.RWMutex
	connections map[string]map[*wsClient]bool
}

// Khởi tạo controller, MessageService được gán sau khi wiring ở main
func NewWSController(userService *services.UserService) *WSController {
	return &WSController{
		UserService: userService,
		connections: make(map[string]map[*wsClient]bool),
	}
}

// HandleWebSocket xác thực token rồi mới nâng cấp và đăng ký kết nối
func (wc *WSController) HandleWebSocket(ctx *gin.Context) {
	tokenString := ctx.Query("token")
	if tokenString == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token không được cung cấp"})
		return
	}

	claims, err := middleware.ParseToken(tokenString)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Println("Lỗi nâng cấp WebSocket:", err)
		return
	}

	client := &wsClient{
		id:     uuid.NewString(),
		userID: claims.UserID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}

	wc.register(client)
	log.Printf("Người dùng %s mở kênh %s", client.userID, client.id)

	go client.writePump()
	wc.readPump(client)
}

// register thêm kết nối vào bảng, nhiều phiên cùng user là cộng dồn
func (wc *WSController) register(client *wsClient) {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	if wc.connections[client.userID] == nil {
		wc.connections[client.userID] = make(map[*wsClient]bool)
	}
	wc.connections[client.userID][client] = true
}

// unregister gỡ kết nối, entry rỗng thì xóa luôn
func (wc *WSController) unregister(client *wsClient) {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.removeLocked(client)
}

func (wc *WSController) removeLocked(client *wsClient) {
	clients, ok := wc.connections[client.userID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(wc.connections, client.userID)
	}
	close(client.send)
}

// readPump đọc các khung client gửi lên cho tới khi kết nối đóng
func (wc *WSController) readPump(client *wsClient) {
	defer func() {
		wc.unregister(client)
		client.conn.Close()
		log.Printf("Người dùng %s đóng kênh %s", client.userID, client.id)
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Lỗi đọc từ người dùng %s: %v", client.userID, err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("Khung không hợp lệ từ người dùng %s: %v", client.userID, err)
			continue
		}

		wc.handleInbound(client, frame)
	}
}

// handleInbound xử lý khung từ client, hiện chỉ có mark_read
func (wc *WSController) handleInbound(client *wsClient, frame inboundFrame) {
	switch frame.Event {
	case "mark_read":
		if wc.MessageService == nil || wc.UserService == nil {
			return
		}

		readerID, err := primitive.ObjectIDFromHex(client.userID)
		if err != nil {
			return
		}
		friendID, err := primitive.ObjectIDFromHex(frame.FriendUserID)
		if err != nil {
			return
		}

		friend, err := wc.UserService.GetUserByID(friendID)
		if err != nil {
			log.Printf("mark_read: không tra được người dùng %s: %v", frame.FriendUserID, err)
			return
		}

		if _, err := wc.MessageService.MarkRead(readerID, friend.Username); err != nil {
			log.Printf("mark_read từ %s thất bại: %v", client.userID, err)
		}
	default:
		log.Printf("Bỏ qua khung %q từ người dùng %s", frame.Event, client.userID)
	}
}

// writePump đẩy dữ liệu từ buffer ra kết nối, kèm ping giữ kết nối
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Đã bị gỡ khỏi bảng kết nối
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NotifyUser đẩy thông báo tới mọi kênh đang mở của một người dùng.
// Best-effort: kênh nào buffer đầy thì bị loại ngay, không chặn bên gọi,
// không ảnh hưởng các kênh còn lại.
func (wc *WSController) NotifyUser(userID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Không mã hóa được thông báo cho người dùng %s: %v", userID, err)
		return
	}

	var stalled []*wsClient

	wc.mu.RLock()
	for client := range wc.connections[userID] {
		select {
		case client.send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	wc.mu.RUnlock()

	for _, client := range stalled {
		log.Printf("Kênh %s của người dùng %s bị nghẽn, loại khỏi bảng kết nối", client.id, userID)
		wc.unregister(client)
		client.conn.Close()
	}
}

// ConnectionCount trả về số kênh đang mở của một người dùng
func (wc *WSController) ConnectionCount(userID string) int {
	wc.mu.RLock()
	defer wc.mu.RUnlock()
	return len(wc.connections[userID])
}
