package repositories

import (
	"errors"

	"gorm.io/gorm"

	"insurai_backend/internal/models"
)

var ErrClaimNotFound = errors.New("claim not found")

type ClaimRepository interface {
	Create(claim *models.Claim) error
	FindByID(id string) (*models.Claim, error)
	FindAll() ([]models.Claim, error)
	FindByUser(userID string) ([]models.Claim, error)
	Update(claim *models.Claim) error
	Delete(id string) error
}

type ClaimRepositoryImpl struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &ClaimRepositoryImpl{db: db}
}

func (r *ClaimRepositoryImpl) Create(claim *models.Claim) error {
	return r.db.Create(claim).Error
}

func (r *ClaimRepositoryImpl) FindByID(id string) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepositoryImpl) FindAll() ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Order("created_at DESC").Find(&claims).Error
	return claims, err
}

func (r *ClaimRepositoryImpl) FindByUser(userID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&claims).Error
	return claims, err
}

func (r *ClaimRepositoryImpl) Update(claim *models.Claim) error {
	result := r.db.Model(&models.Claim{}).
		Where("id = ?", claim.ID).
		Updates(map[string]interface{}{
			"description": claim.Description,
			"status":      claim.Status,
			"amount":      claim.Amount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClaimNotFound
	}
	return nil
}

func (r *ClaimRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Claim{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClaimNotFound
	}
	return nil
}
