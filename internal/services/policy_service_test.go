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

func newPolicyFixture(t *testing.T) (PolicyService, *gorm.DB, *recorderBroadcaster) {
	t.Helper()

	db := openTestDB(t)
	broadcaster := &recorderBroadcaster{}
	notificationService := NewNotificationService(repositories.NewNotificationRepository(db), broadcaster)
	return NewPolicyService(repositories.NewPolicyRepository(db), notificationService), db, broadcaster
}

func createPolicyRequest() *dto.CreatePolicyRequest {
	return &dto.CreatePolicyRequest{
		Type:      "Health",
		Premium:   120.50,
		Coverage:  50000,
		StartDate: "2026-10-01",
		EndDate:   "2027-10-01",
	}
}

func TestCreatePolicyOpensAsAvailable(t *testing.T) {
	service, _, _ := newPolicyFixture(t)

	policy, err := service.CreatePolicy("agent-1", createPolicyRequest())
	require.NoError(t, err)
	assert.Equal(t, models.PolicyStatusAvailable, policy.Status)
	assert.Equal(t, "agent-1", policy.AgentID)
	assert.Empty(t, policy.UserID)
}

func TestBuyPolicyAssignsAndNotifies(t *testing.T) {
	service, db, broadcaster := newPolicyFixture(t)

	policy, err := service.CreatePolicy("agent-1", createPolicyRequest())
	require.NoError(t, err)

	bought, err := service.BuyPolicy(policy.ID, "user-9")
	require.NoError(t, err)
	assert.Equal(t, models.PolicyStatusActive, bought.Status)
	assert.Equal(t, "user-9", bought.UserID)

	// A second purchase hits the conflict.
	_, err = service.BuyPolicy(policy.ID, "user-10")
	assert.ErrorIs(t, err, appErrors.ErrPolicyNotAvailable)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", "user-9").Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "policy_purchased", notifications[0].Type)
	assert.Len(t, broadcaster.sentTo("user-9"), 1)
}

func TestBuyPolicyUnknownID(t *testing.T) {
	service, _, _ := newPolicyFixture(t)

	_, err := service.BuyPolicy("missing", "user-1")
	assert.ErrorIs(t, err, appErrors.ErrPolicyNotFound)
}

func TestGetAvailablePoliciesExcludesActive(t *testing.T) {
	service, _, _ := newPolicyFixture(t)

	open, err := service.CreatePolicy("agent-1", createPolicyRequest())
	require.NoError(t, err)
	sold, err := service.CreatePolicy("agent-1", createPolicyRequest())
	require.NoError(t, err)
	_, err = service.BuyPolicy(sold.ID, "user-1")
	require.NoError(t, err)

	available, err := service.GetAvailablePolicies()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, open.ID, available[0].ID)
}
