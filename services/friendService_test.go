package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshath291/Memora/models"
	apperrors "github.com/Harshath291/Memora/pkg/errors"
)

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	us := NewUserService(testDB)
	user, err := us.Register(username, username+"@example.com", "pass123")
	require.NoError(t, err)
	return user
}

func TestSendFriendRequest(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "chào bạn")
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, request.Status)
	assert.Equal(t, alice.ID, request.FromUserID)
	assert.Equal(t, bob.ID, request.ToUserID)
	assert.Equal(t, "bob", request.ToUsername)
	assert.Equal(t, "chào bạn", request.Message)
}

func TestSendFriendRequestToUnknownUser(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")

	_, err := fs.SendFriendRequest(alice.ID, alice.Username, "nobody", "")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSendFriendRequestToSelf(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")

	_, err := fs.SendFriendRequest(alice.ID, alice.Username, "alice", "")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriend)
}

func TestSendFriendRequestDuplicatePending(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	createTestUser(t, "bob")

	_, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	_, err = fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	assert.ErrorIs(t, err, apperrors.ErrDuplicatePending)
}

func TestSendFriendRequestAlreadyFriends(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	createTestUser(t, "bob")

	_, err := fs.AddFriendDirect(alice.ID, alice.Username, "bob")
	require.NoError(t, err)

	_, err = fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFriends)
}

func TestAcceptFriendRequestSymmetry(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	accepted, err := fs.AcceptFriendRequest(request.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestAccepted, accepted.Status)

	// Cả hai chiều đều phải có cạnh
	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].FriendUsername)

	bobFriends, err := fs.GetFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].FriendUsername)
}

func TestAcceptFriendRequestTwice(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	_, err = fs.AcceptFriendRequest(request.ID, bob.ID)
	require.NoError(t, err)

	// Lần thứ hai thất bại, cạnh bạn bè không bị nhân đôi
	_, err = fs.AcceptFriendRequest(request.ID, bob.ID)
	assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)

	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceFriends, 1)

	bobFriends, err := fs.GetFriends(bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobFriends, 1)
}

func TestAcceptFriendRequestWrongActor(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	// Người gửi hay người ngoài đều không được chấp nhận thay người nhận
	_, err = fs.AcceptFriendRequest(request.ID, alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestTarget)
	_, err = fs.AcceptFriendRequest(request.ID, carol.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestTarget)

	// Lời mời vẫn đang chờ, người nhận vẫn xử lý được
	_, err = fs.AcceptFriendRequest(request.ID, bob.ID)
	assert.NoError(t, err)
}

func TestRejectFriendRequest(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	rejected, err := fs.RejectFriendRequest(request.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestRejected, rejected.Status)

	// Không cạnh nào được tạo
	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	// Từ chối xong thì không chấp nhận lại được
	_, err = fs.AcceptFriendRequest(request.ID, bob.ID)
	assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)
}

func TestGetFriendRequestsDirections(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	_, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)

	incoming, err := fs.GetFriendRequests(bob.ID, "incoming")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].FromUsername)

	outgoing, err := fs.GetFriendRequests(alice.ID, "outgoing")
	require.NoError(t, err)
	require.Len(t, outgoing, 1)

	incomingForAlice, err := fs.GetFriendRequests(alice.ID, "incoming")
	require.NoError(t, err)
	assert.Empty(t, incomingForAlice)

	_, err = fs.GetFriendRequests(alice.ID, "sideways")
	assert.Error(t, err)
}

func TestAddFriendDirect(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	createTestUser(t, "bob")

	friend, err := fs.AddFriendDirect(alice.ID, alice.Username, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", friend.FriendUsername)

	// Chỉ một chiều: bob chưa có cạnh nào
	_, err = fs.AddFriendDirect(alice.ID, alice.Username, "bob")
	assert.ErrorIs(t, err, apperrors.ErrFriendExists)

	_, err = fs.AddFriendDirect(alice.ID, alice.Username, "alice")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriend)

	_, err = fs.AddFriendDirect(alice.ID, alice.Username, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRemoveFriendBothDirections(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	request, err := fs.SendFriendRequest(alice.ID, alice.Username, "bob", "")
	require.NoError(t, err)
	_, err = fs.AcceptFriendRequest(request.ID, bob.ID)
	require.NoError(t, err)

	err = fs.RemoveFriend(alice.ID, alice.Username, "bob")
	require.NoError(t, err)

	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := fs.GetFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestRemoveFriendAsymmetricTolerance(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	// Chỉ có cạnh một chiều alice -> bob
	_, err := fs.AddFriendDirect(alice.ID, alice.Username, "bob")
	require.NoError(t, err)

	// Cạnh ngược không tồn tại nhưng xóa vẫn thành công
	err = fs.RemoveFriend(alice.ID, alice.Username, "bob")
	require.NoError(t, err)

	aliceFriends, err := fs.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := fs.GetFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestRemoveFriendNoEdge(t *testing.T) {
	cleanCollections(t)
	fs := NewFriendService(testDB)
	alice := createTestUser(t, "alice")
	createTestUser(t, "bob")

	err := fs.RemoveFriend(alice.ID, alice.Username, "bob")
	assert.ErrorIs(t, err, apperrors.ErrFriendNotFound)
}
