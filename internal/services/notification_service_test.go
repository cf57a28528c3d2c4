package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
)

func newNotificationFixture(t *testing.T) (NotificationService, *recorderBroadcaster) {
	t.Helper()

	db := openTestDB(t)
	broadcaster := &recorderBroadcaster{}
	return NewNotificationService(repositories.NewNotificationRepository(db), broadcaster), broadcaster
}

func TestCreatePersistsAndPushes(t *testing.T) {
	service, broadcaster := newNotificationFixture(t)

	created, err := service.Create("user-1", "booking_confirmed", "your slot is booked", map[string]interface{}{
		"availabilityId": 42,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.IsRead)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(created.Data, &data))
	assert.Equal(t, float64(42), data["availabilityId"])

	sends := broadcaster.sentTo("user-1")
	require.Len(t, sends, 1)
	assert.Equal(t, "booking_confirmed", sends[0].Type)
	assert.Same(t, created, sends[0].Payload.(*models.Notification))
}

func TestMarkAsReadEnforcesOwnership(t *testing.T) {
	service, _ := newNotificationFixture(t)

	created, err := service.Create("user-1", "account_created", "welcome", nil)
	require.NoError(t, err)

	_, err = service.MarkAsRead("intruder", created.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	read, err := service.MarkAsRead("user-1", created.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
}

func TestMarkAsReadUnknownID(t *testing.T) {
	service, _ := newNotificationFixture(t)

	_, err := service.MarkAsRead("user-1", "missing")
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestNotifyBookingConfirmedWritesBothSides(t *testing.T) {
	service, broadcaster := newNotificationFixture(t)

	booker := "client-7"
	slot := &models.AgentAvailability{
		ID:        5,
		AgentID:   "agent-3",
		BookedBy:  &booker,
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.SlotStatusBooked,
	}

	require.NoError(t, service.NotifyBookingConfirmed(slot, booker, "Carol Client", "Alice Agent"))

	agentSends := broadcaster.sentTo("agent-3")
	require.Len(t, agentSends, 1)
	clientSends := broadcaster.sentTo(booker)
	require.Len(t, clientSends, 1)

	agentNotification := agentSends[0].Payload.(*models.Notification)
	assert.Contains(t, agentNotification.Message, "Carol Client")
	clientNotification := clientSends[0].Payload.(*models.Notification)
	assert.Contains(t, clientNotification.Message, "Alice Agent")

	unread, err := service.GetUnreadCount("agent-3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}
