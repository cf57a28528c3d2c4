package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
)

type NotificationService interface {
	Create(userID, notificationType, message string, data map[string]interface{}) (*models.Notification, error)
	GetUserNotifications(userID string) ([]models.Notification, error)
	GetUnreadNotifications(userID string) ([]models.Notification, error)
	MarkAsRead(userID, notificationID string) (*models.Notification, error)
	GetUnreadCount(userID string) (int64, error)

	// Factory methods for the event types the verticals emit.
	NotifyBookingConfirmed(slot *models.AgentAvailability, clientID, clientName, agentName string) error
	NotifyAccountCreated(userID, firstName string) error
	NotifyClaimUpdated(claim *models.Claim) error
	NotifyPolicyPurchased(userID string, policy *models.Policy) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	broadcaster      Broadcaster
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, broadcaster Broadcaster) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
	}
}

// Create persists the notification, then pushes it to the user's live
// connection if there is one. The push is fire-and-forget: the row is the
// source of truth, delivery is best effort.
func (s *notificationService) Create(userID, notificationType, message string, data map[string]interface{}) (*models.Notification, error) {
	var dataJSON datatypes.JSON
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, appErrors.InternalError(fmt.Errorf("marshal notification data: %w", err))
		}
		dataJSON = datatypes.JSON(raw)
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
		Data:    dataJSON,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, appErrors.StorageError(err)
	}

	s.broadcaster.SendToUser(userID, notificationType, notification)

	return notification, nil
}

func (s *notificationService) GetUserNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return notifications, nil
}

func (s *notificationService) GetUnreadNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindUnreadByUser(userID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) (*models.Notification, error) {
	existing, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, appErrors.ErrNotificationNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	if existing.UserID != userID {
		return nil, appErrors.ErrForbidden
	}

	notification, err := s.notificationRepo.MarkAsRead(notificationID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return notification, nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, appErrors.StorageError(err)
	}
	return count, nil
}

// NotifyBookingConfirmed records the booking for both sides: the agent
// learns who booked, the client gets the confirmation.
func (s *notificationService) NotifyBookingConfirmed(slot *models.AgentAvailability, clientID, clientName, agentName string) error {
	data := map[string]interface{}{
		"availabilityId": slot.ID,
		"date":           slot.Date,
		"startTime":      slot.StartTime,
		"endTime":        slot.EndTime,
	}

	agentMsg := fmt.Sprintf("%s booked your slot on %s (%s-%s)",
		clientName, slot.Date, slot.StartTime, slot.EndTime)
	if _, err := s.Create(slot.AgentID, repositories.NotificationTypeBookingConfirmed, agentMsg, data); err != nil {
		return err
	}

	clientMsg := fmt.Sprintf("Your booking with %s on %s (%s-%s) is confirmed",
		agentName, slot.Date, slot.StartTime, slot.EndTime)
	if _, err := s.Create(clientID, repositories.NotificationTypeBookingConfirmed, clientMsg, data); err != nil {
		return err
	}

	return nil
}

func (s *notificationService) NotifyAccountCreated(userID, firstName string) error {
	message := fmt.Sprintf("Welcome to InsurAI, %s! Your account has been created.", firstName)
	_, err := s.Create(userID, repositories.NotificationTypeAccountCreated, message, nil)
	return err
}

func (s *notificationService) NotifyClaimUpdated(claim *models.Claim) error {
	message := fmt.Sprintf("Your claim has been %s", claim.Status)
	data := map[string]interface{}{
		"claimId":  claim.ID,
		"policyId": claim.PolicyID,
		"status":   claim.Status,
	}
	_, err := s.Create(claim.UserID, repositories.NotificationTypeClaimUpdated, message, data)
	return err
}

func (s *notificationService) NotifyPolicyPurchased(userID string, policy *models.Policy) error {
	message := fmt.Sprintf("You have purchased the %s policy", policy.Type)
	data := map[string]interface{}{
		"policyId": policy.ID,
		"type":     policy.Type,
		"premium":  policy.Premium,
	}
	_, err := s.Create(userID, repositories.NotificationTypePolicyPurchased, message, data)
	return err
}
