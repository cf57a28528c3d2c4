package repositories

import (
	"errors"

	"gorm.io/gorm"

	"insurai_backend/internal/models"
)

var ErrPolicyNotFound = errors.New("policy not found")

type PolicyRepository interface {
	Create(policy *models.Policy) error
	FindByID(id string) (*models.Policy, error)
	FindByUser(userID string) ([]models.Policy, error)
	FindByAgent(agentID string) ([]models.Policy, error)
	FindByStatus(status models.PolicyStatus) ([]models.Policy, error)
	Update(policy *models.Policy) error
	Delete(id string) error
}

type PolicyRepositoryImpl struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &PolicyRepositoryImpl{db: db}
}

func (r *PolicyRepositoryImpl) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

func (r *PolicyRepositoryImpl) FindByID(id string) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.First(&policy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}
	return &policy, nil
}

func (r *PolicyRepositoryImpl) FindByUser(userID string) ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) FindByAgent(agentID string) ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Where("agent_id = ?", agentID).Order("created_at DESC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) FindByStatus(status models.PolicyStatus) ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) Update(policy *models.Policy) error {
	result := r.db.Model(&models.Policy{}).
		Where("id = ?", policy.ID).
		Updates(map[string]interface{}{
			"user_id":    policy.UserID,
			"status":     policy.Status,
			"premium":    policy.Premium,
			"coverage":   policy.Coverage,
			"start_date": policy.StartDate,
			"end_date":   policy.EndDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPolicyNotFound
	}
	return nil
}

func (r *PolicyRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Policy{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPolicyNotFound
	}
	return nil
}
