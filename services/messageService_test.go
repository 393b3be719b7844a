package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

// fakeNotifier ghi lại các thông báo thay vì đẩy qua websocket
type fakeNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	UserID string
	Event  Event
}

func (f *fakeNotifier) NotifyUser(userID string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, _ := payload.(Event)
	f.events = append(f.events, recordedEvent{UserID: userID, Event: event})
}

func (f *fakeNotifier) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedEvent, len(f.events))
	copy(out, f.events)
	return out
}

func newTestMessageService() (*MessageService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewMessageService(testDB, NewRealtimeService(notifier)), notifier
}

// befriend tạo quan hệ bạn bè hai chiều qua lời mời và chấp nhận
func befriend(t *testing.T, a, b *models.User) {
	t.Helper()
	fs := NewFriendService(testDB)
	request, err := fs.SendFriendRequest(a.ID, a.Username, b.Username, "")
	require.NoError(t, err)
	_, err = fs.AcceptFriendRequest(request.ID, b.ID)
	require.NoError(t, err)
}

func TestSendMessageRequiresDirectionalFriendship(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()
	fs := NewFriendService(testDB)

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	// bob đã thêm alice nhưng alice chưa thêm bob: alice vẫn không được gửi
	_, err := fs.AddFriendDirect(bob.ID, bob.Username, "alice")
	require.NoError(t, err)

	_, err = ms.SendMessage(alice.ID, "bob", "hi")
	assert.ErrorIs(t, err, apperrors.ErrNotFriends)

	// Chiều của bob thì gửi được
	_, err = ms.SendMessage(bob.ID, "alice", "hi")
	assert.NoError(t, err)
}

func TestSendMessageToUnknownUser(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()
	alice := createTestUser(t, "alice")

	_, err := ms.SendMessage(alice.ID, "nobody", "hi")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSendMessageNotifiesRecipient(t *testing.T) {
	cleanCollections(t)
	ms, notifier := newTestMessageService()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	befriend(t, alice, bob)

	message, err := ms.SendMessage(alice.ID, "bob", "hi")
	require.NoError(t, err)
	assert.Empty(t, message.ReadBy)

	events := notifier.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, bob.ID.Hex(), events[0].UserID)
	assert.Equal(t, EventNewMessage, events[0].Event.Event)
}

func TestGetConversationChronological(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	befriend(t, alice, bob)

	_, err := ms.SendMessage(alice.ID, "bob", "một")
	require.NoError(t, err)
	_, err = ms.SendMessage(bob.ID, "alice", "hai")
	require.NoError(t, err)
	_, err = ms.SendMessage(alice.ID, "bob", "ba")
	require.NoError(t, err)

	conversation, err := ms.GetConversation(alice.ID, "bob")
	require.NoError(t, err)
	require.Len(t, conversation, 3)
	assert.Equal(t, "một", conversation[0].Content)
	assert.Equal(t, "hai", conversation[1].Content)
	assert.Equal(t, "ba", conversation[2].Content)

	// Hai phía thấy cùng một hội thoại
	conversation, err = ms.GetConversation(bob.ID, "alice")
	require.NoError(t, err)
	assert.Len(t, conversation, 3)
}

func TestGetConversationExcludesThirdParties(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")
	befriend(t, alice, bob)
	befriend(t, alice, carol)

	_, err := ms.SendMessage(alice.ID, "bob", "cho bob")
	require.NoError(t, err)
	_, err = ms.SendMessage(alice.ID, "carol", "cho carol")
	require.NoError(t, err)

	conversation, err := ms.GetConversation(alice.ID, "bob")
	require.NoError(t, err)
	require.Len(t, conversation, 1)
	assert.Equal(t, "cho bob", conversation[0].Content)
}

func TestMarkReadIdempotent(t *testing.T) {
	cleanCollections(t)
	ms, notifier := newTestMessageService()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	befriend(t, alice, bob)

	_, err := ms.SendMessage(alice.ID, "bob", "một")
	require.NoError(t, err)
	_, err = ms.SendMessage(alice.ID, "bob", "hai")
	require.NoError(t, err)

	updated, err := ms.MarkRead(bob.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	// Gọi lại khi không còn gì mới: 0, vẫn thành công
	updated, err = ms.MarkRead(bob.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	// messages_read chỉ đẩy một lần, cho lần có thay đổi
	var readEvents []recordedEvent
	for _, event := range notifier.recorded() {
		if event.Event.Event == EventMessagesRead {
			readEvents = append(readEvents, event)
		}
	}
	require.Len(t, readEvents, 1)
	assert.Equal(t, alice.ID.Hex(), readEvents[0].UserID)
}

func TestUnreadCounts(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")
	befriend(t, alice, bob)
	befriend(t, carol, bob)

	for _, content := range []string{"một", "hai", "ba"} {
		_, err := ms.SendMessage(alice.ID, "bob", content)
		require.NoError(t, err)
	}
	_, err := ms.SendMessage(carol.ID, "bob", "bốn")
	require.NoError(t, err)

	counts, err := ms.UnreadCounts(bob.ID)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byUsername := map[string]int64{}
	for _, count := range counts {
		byUsername[count.FriendUsername] = count.Count
	}
	assert.Equal(t, int64(3), byUsername["alice"])
	assert.Equal(t, int64(1), byUsername["carol"])

	// Đọc hết tin của alice thì chỉ còn carol
	_, err = ms.MarkRead(bob.ID, "alice")
	require.NoError(t, err)

	counts, err = ms.UnreadCounts(bob.ID)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "carol", counts[0].FriendUsername)

	// Người gửi không thấy tin mình gửi là chưa đọc
	counts, err = ms.UnreadCounts(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

// Kịch bản đầy đủ: đăng ký, mời, chấp nhận, nhắn tin, đọc, xóa bạn
func TestFullFriendMessagingScenario(t *testing.T) {
	cleanCollections(t)
	ms, _ := newTestMessageService()
	fs := NewFriendService(testDB)

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, request.Status)

	incoming, err := fs.GetFriendRequests(bob.ID, "incoming")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].FromUsername)

	_, err = fs.AcceptFriendRequest(incoming[0].ID, bob.ID)
	require.NoError(t, err)

	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	bobFriends, err := fs.GetFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)

	_, err = ms.SendMessage(alice.ID, "bob", "hi")
	require.NoError(t, err)

	counts, err := ms.UnreadCounts(bob.ID)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "alice", counts[0].FriendUsername)
	assert.Equal(t, int64(1), counts[0].Count)

	updated, err := ms.MarkRead(bob.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	counts, err = ms.UnreadCounts(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, counts)

	err = fs.RemoveFriend(alice.ID, alice.Username, "bob")
	require.NoError(t, err)

	aliceFriends, err = fs.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)
	bobFriends, err = fs.GetFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}
