package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/services/dto"
)

type availabilityFixture struct {
	db          *gorm.DB
	service     AvailabilityService
	broadcaster *recorderBroadcaster
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	db := openTestDB(t)
	broadcaster := &recorderBroadcaster{}
	notificationService := NewNotificationService(repositories.NewNotificationRepository(db), broadcaster)
	service := NewAvailabilityService(
		repositories.NewAvailabilityRepository(db),
		repositories.NewUserRepository(db),
		notificationService,
	)

	return &availabilityFixture{db: db, service: service, broadcaster: broadcaster}
}

func (f *availabilityFixture) createUser(t *testing.T, firstName, lastName, email string, category models.UserCategory) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: "irrelevant",
		Category:     category,
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func validCreateRequest() *dto.CreateAvailabilityRequest {
	return &dto.CreateAvailabilityRequest{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
		Breaks: []dto.BreakRequest{
			{BreakStart: "12:00", BreakEnd: "13:00"},
		},
	}
}

func TestCreateAvailabilityForcesAvailableStatus(t *testing.T) {
	f := newAvailabilityFixture(t)

	req := validCreateRequest()
	req.Status = "Booked"

	slot, err := f.service.CreateAvailability("agent-1", req)
	require.NoError(t, err)
	assert.Equal(t, models.SlotStatusAvailable, slot.Status)
	assert.Nil(t, slot.BookedBy)
	require.Len(t, slot.Breaks, 1)
}

func TestCreateAvailabilityRejectsInvertedInterval(t *testing.T) {
	f := newAvailabilityFixture(t)

	req := validCreateRequest()
	req.StartTime = "17:00"
	req.EndTime = "09:00"

	_, err := f.service.CreateAvailability("agent-1", req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestCreateAvailabilityRejectsBreakOutsideSlot(t *testing.T) {
	f := newAvailabilityFixture(t)

	req := validCreateRequest()
	req.Breaks = []dto.BreakRequest{{BreakStart: "08:00", BreakEnd: "08:30"}}

	_, err := f.service.CreateAvailability("agent-1", req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// The agent-creates, client-books scenario: the winner gets the slot, a rerun
// conflicts, and both parties end up with a booking_confirmed notification.
func TestBookSlotEndToEnd(t *testing.T) {
	f := newAvailabilityFixture(t)

	agent := f.createUser(t, "Alice", "Agent", "alice@insurai.local", models.UserCategoryAgent)
	client := f.createUser(t, "Carol", "Client", "carol@insurai.local", models.UserCategoryUser)

	slot, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)

	booked, err := f.service.BookSlot(slot.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SlotStatusBooked, booked.Status)
	require.NotNil(t, booked.BookedBy)
	assert.Equal(t, client.ID, *booked.BookedBy)

	// Second attempt loses with a conflict, not a not-found.
	_, err = f.service.BookSlot(slot.ID, client.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode)

	// Both sides got a persisted notification and a push.
	var agentNotifications []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", agent.ID).Find(&agentNotifications).Error)
	require.Len(t, agentNotifications, 1)
	assert.Equal(t, "booking_confirmed", agentNotifications[0].Type)
	assert.Contains(t, agentNotifications[0].Message, "Carol Client")

	var clientNotifications []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", client.ID).Find(&clientNotifications).Error)
	require.Len(t, clientNotifications, 1)
	assert.Contains(t, clientNotifications[0].Message, "Alice Agent")

	assert.Len(t, f.broadcaster.sentTo(agent.ID), 1)
	assert.Len(t, f.broadcaster.sentTo(client.ID), 1)
}

func TestBookSlotUnknownID(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, err := f.service.BookSlot(9999, "client-1")
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateAvailabilityOwnershipAndReopen(t *testing.T) {
	f := newAvailabilityFixture(t)

	agent := f.createUser(t, "Alice", "Agent", "alice@insurai.local", models.UserCategoryAgent)
	client := f.createUser(t, "Carol", "Client", "carol@insurai.local", models.UserCategoryUser)

	slot, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)
	_, err = f.service.BookSlot(slot.ID, client.ID)
	require.NoError(t, err)

	// Someone else's slot is off limits.
	_, err = f.service.UpdateAvailability("other-agent", slot.ID, &dto.UpdateAvailabilityRequest{Status: "Available"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	// Reopening clears the booker with the status change.
	updated, err := f.service.UpdateAvailability(agent.ID, slot.ID, &dto.UpdateAvailabilityRequest{Status: "Available"})
	require.NoError(t, err)
	assert.Equal(t, models.SlotStatusAvailable, updated.Status)
	assert.Nil(t, updated.BookedBy)
}

func TestUpdateAvailabilityRejectsManualBooking(t *testing.T) {
	f := newAvailabilityFixture(t)

	agent := f.createUser(t, "Alice", "Agent", "alice@insurai.local", models.UserCategoryAgent)
	slot, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)

	_, err = f.service.UpdateAvailability(agent.ID, slot.ID, &dto.UpdateAvailabilityRequest{Status: "Booked"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetOnlineAgentsFallsBackToRawID(t *testing.T) {
	f := newAvailabilityFixture(t)

	agent := f.createUser(t, "Alice", "Agent", "alice@insurai.local", models.UserCategoryAgent)
	_, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)
	_, err = f.service.CreateAvailability("ghost-agent", validCreateRequest())
	require.NoError(t, err)

	agents, err := f.service.GetOnlineAgents()
	require.NoError(t, err)
	require.Len(t, agents, 2)

	byID := map[string]dto.OnlineAgent{}
	for _, a := range agents {
		byID[a.AgentID] = a
	}

	assert.Equal(t, "Alice Agent", byID[agent.ID].AgentName)
	assert.Equal(t, "alice@insurai.local", byID[agent.ID].Email)
	assert.Len(t, byID[agent.ID].Slots, 1)

	// No user row: the raw agent id stands in for the name.
	assert.Equal(t, "ghost-agent", byID["ghost-agent"].AgentName)
	assert.Empty(t, byID["ghost-agent"].Email)
}

func TestGetBookedRequestsFallsBackOnUnknownClient(t *testing.T) {
	f := newAvailabilityFixture(t)

	agent := f.createUser(t, "Alice", "Agent", "alice@insurai.local", models.UserCategoryAgent)
	client := f.createUser(t, "Carol", "Client", "carol@insurai.local", models.UserCategoryUser)

	known, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)
	_, err = f.service.BookSlot(known.ID, client.ID)
	require.NoError(t, err)

	unknown, err := f.service.CreateAvailability(agent.ID, validCreateRequest())
	require.NoError(t, err)
	_, err = f.service.BookSlot(unknown.ID, "vanished-client")
	require.NoError(t, err)

	requests, err := f.service.GetBookedRequestsByAgent(agent.ID)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	bySlot := map[uint]dto.BookedRequest{}
	for _, r := range requests {
		bySlot[r.SlotID] = r
	}

	assert.Equal(t, "Carol Client", bySlot[known.ID].ClientName)
	assert.Equal(t, "carol@insurai.local", bySlot[known.ID].ClientEmail)

	assert.Equal(t, "Unknown", bySlot[unknown.ID].ClientName)
	assert.Equal(t, "N/A", bySlot[unknown.ID].ClientEmail)
}
