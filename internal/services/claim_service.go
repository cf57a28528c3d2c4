package services

import (
	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/services/dto"
)

type ClaimService interface {
	CreateClaim(userID string, req *dto.CreateClaimRequest) (*models.Claim, error)
	GetClaim(claimID string) (*models.Claim, error)
	GetAllClaims() ([]models.Claim, error)
	GetUserClaims(userID string) ([]models.Claim, error)
	UpdateClaim(claimID string, req *dto.UpdateClaimRequest) (*models.Claim, error)
	DeleteClaim(claimID string) error
}

type claimService struct {
	claimRepo           repositories.ClaimRepository
	policyRepo          repositories.PolicyRepository
	notificationService NotificationService
}

func NewClaimService(
	claimRepo repositories.ClaimRepository,
	policyRepo repositories.PolicyRepository,
	notificationService NotificationService,
) ClaimService {
	return &claimService{
		claimRepo:           claimRepo,
		policyRepo:          policyRepo,
		notificationService: notificationService,
	}
}

func (s *claimService) CreateClaim(userID string, req *dto.CreateClaimRequest) (*models.Claim, error) {
	if _, err := s.policyRepo.FindByID(req.PolicyID); err != nil {
		if appErrors.Is(err, repositories.ErrPolicyNotFound) {
			return nil, appErrors.ErrPolicyNotFound
		}
		return nil, appErrors.StorageError(err)
	}

	claim := &models.Claim{
		PolicyID:    req.PolicyID,
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		DateFiled:   req.DateFiled,
		Status:      models.ClaimStatusPending,
	}
	if err := s.claimRepo.Create(claim); err != nil {
		return nil, appErrors.StorageError(err)
	}
	return claim, nil
}

func (s *claimService) GetClaim(claimID string) (*models.Claim, error) {
	claim, err := s.claimRepo.FindByID(claimID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrClaimNotFound) {
			return nil, appErrors.ErrClaimNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	return claim, nil
}

func (s *claimService) GetAllClaims() ([]models.Claim, error) {
	claims, err := s.claimRepo.FindAll()
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return claims, nil
}

func (s *claimService) GetUserClaims(userID string) ([]models.Claim, error) {
	claims, err := s.claimRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return claims, nil
}

// UpdateClaim applies edits; a status change additionally notifies the claim
// owner. The notification is best effort.
func (s *claimService) UpdateClaim(claimID string, req *dto.UpdateClaimRequest) (*models.Claim, error) {
	claim, err := s.GetClaim(claimID)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if req.Description != nil {
		claim.Description = *req.Description
	}
	if req.Amount != nil {
		claim.Amount = *req.Amount
	}
	if req.Status != nil && models.ClaimStatus(*req.Status) != claim.Status {
		claim.Status = models.ClaimStatus(*req.Status)
		statusChanged = true
	}

	if err := s.claimRepo.Update(claim); err != nil {
		if appErrors.Is(err, repositories.ErrClaimNotFound) {
			return nil, appErrors.ErrClaimNotFound
		}
		return nil, appErrors.StorageError(err)
	}

	if statusChanged {
		if err := s.notificationService.NotifyClaimUpdated(claim); err != nil {
			logger.Warn("claim updated but notification failed",
				"claim_id", claim.ID, "user_id", claim.UserID, "error", err)
		}
	}

	return claim, nil
}

func (s *claimService) DeleteClaim(claimID string) error {
	if err := s.claimRepo.Delete(claimID); err != nil {
		if appErrors.Is(err, repositories.ErrClaimNotFound) {
			return appErrors.ErrClaimNotFound
		}
		return appErrors.StorageError(err)
	}
	return nil
}
