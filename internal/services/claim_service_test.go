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

func newClaimFixture(t *testing.T) (ClaimService, *gorm.DB, *recorderBroadcaster) {
	t.Helper()

	db := openTestDB(t)
	broadcaster := &recorderBroadcaster{}
	notificationService := NewNotificationService(repositories.NewNotificationRepository(db), broadcaster)
	service := NewClaimService(
		repositories.NewClaimRepository(db),
		repositories.NewPolicyRepository(db),
		notificationService,
	)
	return service, db, broadcaster
}

func seedPolicy(t *testing.T, db *gorm.DB) *models.Policy {
	t.Helper()

	policy := &models.Policy{
		AgentID:   "agent-1",
		UserID:    "user-1",
		Type:      "Auto",
		Status:    models.PolicyStatusActive,
		Premium:   80,
		Coverage:  20000,
		StartDate: "2026-01-01",
		EndDate:   "2027-01-01",
	}
	require.NoError(t, db.Create(policy).Error)
	return policy
}

func TestCreateClaimStartsPending(t *testing.T) {
	service, db, _ := newClaimFixture(t)
	policy := seedPolicy(t, db)

	claim, err := service.CreateClaim("user-1", &dto.CreateClaimRequest{
		PolicyID:    policy.ID,
		Description: "rear bumper damage",
		Amount:      1200,
		DateFiled:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusPending, claim.Status)
}

func TestCreateClaimRequiresExistingPolicy(t *testing.T) {
	service, _, _ := newClaimFixture(t)

	_, err := service.CreateClaim("user-1", &dto.CreateClaimRequest{
		PolicyID:    "no-such-policy",
		Description: "anything",
		Amount:      100,
		DateFiled:   "2026-09-01",
	})
	assert.ErrorIs(t, err, appErrors.ErrPolicyNotFound)
}

func TestUpdateClaimStatusNotifiesOwner(t *testing.T) {
	service, db, broadcaster := newClaimFixture(t)
	policy := seedPolicy(t, db)

	claim, err := service.CreateClaim("user-1", &dto.CreateClaimRequest{
		PolicyID:    policy.ID,
		Description: "rear bumper damage",
		Amount:      1200,
		DateFiled:   "2026-09-01",
	})
	require.NoError(t, err)

	approved := "Approved"
	updated, err := service.UpdateClaim(claim.ID, &dto.UpdateClaimRequest{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusApproved, updated.Status)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "claim_updated", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Approved")
	assert.Len(t, broadcaster.sentTo("user-1"), 1)

	// Re-submitting the same status is not a state change, no second notification.
	_, err = service.UpdateClaim(claim.ID, &dto.UpdateClaimRequest{Status: &approved})
	require.NoError(t, err)
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}
