package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"insurai_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification type constants.
const (
	NotificationTypeBookingConfirmed = "booking_confirmed"
	NotificationTypeAccountCreated   = "account_created"
	NotificationTypeClaimUpdated     = "claim_updated"
	NotificationTypePolicyPurchased  = "policy_purchased"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindByUser(userID string) ([]models.Notification, error)
	FindUnreadByUser(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID string) (*models.Notification, error)
	CountUnread(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) FindUnreadByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead sets read=true. Calling it on an already-read notification is a
// no-op, not an error.
func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) (*models.Notification, error) {
	notification, err := r.FindByID(notificationID)
	if err != nil {
		return nil, err
	}

	if notification.IsRead {
		return notification, nil
	}

	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	notification.IsRead = true
	notification.ReadAt = &now
	return notification, nil
}

func (r *NotificationRepositoryImpl) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
