package services

import (
	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/services/dto"
)

type PolicyService interface {
	CreatePolicy(agentID string, req *dto.CreatePolicyRequest) (*models.Policy, error)
	GetPolicy(policyID string) (*models.Policy, error)
	GetUserPolicies(userID string) ([]models.Policy, error)
	GetAgentPolicies(agentID string) ([]models.Policy, error)
	GetAvailablePolicies() ([]models.Policy, error)
	UpdatePolicy(policyID string, req *dto.UpdatePolicyRequest) (*models.Policy, error)
	DeletePolicy(policyID string) error
	BuyPolicy(policyID, userID string) (*models.Policy, error)
}

type policyService struct {
	policyRepo          repositories.PolicyRepository
	notificationService NotificationService
}

func NewPolicyService(policyRepo repositories.PolicyRepository, notificationService NotificationService) PolicyService {
	return &policyService{
		policyRepo:          policyRepo,
		notificationService: notificationService,
	}
}

func (s *policyService) CreatePolicy(agentID string, req *dto.CreatePolicyRequest) (*models.Policy, error) {
	policy := &models.Policy{
		AgentID:   agentID,
		UserID:    req.UserID,
		Type:      req.Type,
		Premium:   req.Premium,
		Coverage:  req.Coverage,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.PolicyStatusAvailable,
	}
	if req.UserID != "" {
		policy.Status = models.PolicyStatusActive
	}

	if err := s.policyRepo.Create(policy); err != nil {
		return nil, appErrors.StorageError(err)
	}
	return policy, nil
}

func (s *policyService) GetPolicy(policyID string) (*models.Policy, error) {
	policy, err := s.policyRepo.FindByID(policyID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPolicyNotFound) {
			return nil, appErrors.ErrPolicyNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	return policy, nil
}

func (s *policyService) GetUserPolicies(userID string) ([]models.Policy, error) {
	policies, err := s.policyRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return policies, nil
}

func (s *policyService) GetAgentPolicies(agentID string) ([]models.Policy, error) {
	policies, err := s.policyRepo.FindByAgent(agentID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return policies, nil
}

func (s *policyService) GetAvailablePolicies() ([]models.Policy, error) {
	policies, err := s.policyRepo.FindByStatus(models.PolicyStatusAvailable)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return policies, nil
}

func (s *policyService) UpdatePolicy(policyID string, req *dto.UpdatePolicyRequest) (*models.Policy, error) {
	policy, err := s.GetPolicy(policyID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		policy.Type = *req.Type
	}
	if req.Premium != nil {
		policy.Premium = *req.Premium
	}
	if req.Coverage != nil {
		policy.Coverage = *req.Coverage
	}
	if req.StartDate != nil {
		policy.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		policy.EndDate = *req.EndDate
	}
	if req.Status != nil {
		policy.Status = models.PolicyStatus(*req.Status)
	}

	if err := s.policyRepo.Update(policy); err != nil {
		if appErrors.Is(err, repositories.ErrPolicyNotFound) {
			return nil, appErrors.ErrPolicyNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	return policy, nil
}

func (s *policyService) DeletePolicy(policyID string) error {
	if err := s.policyRepo.Delete(policyID); err != nil {
		if appErrors.Is(err, repositories.ErrPolicyNotFound) {
			return appErrors.ErrPolicyNotFound
		}
		return appErrors.StorageError(err)
	}
	return nil
}

// BuyPolicy assigns an Available policy to the buyer and activates it. The
// purchase notification is best effort, a committed purchase stands even if
// recording it fails.
func (s *policyService) BuyPolicy(policyID, userID string) (*models.Policy, error) {
	policy, err := s.GetPolicy(policyID)
	if err != nil {
		return nil, err
	}
	if policy.Status != models.PolicyStatusAvailable {
		return nil, appErrors.ErrPolicyNotAvailable
	}

	policy.UserID = userID
	policy.Status = models.PolicyStatusActive
	if err := s.policyRepo.Update(policy); err != nil {
		return nil, appErrors.StorageError(err)
	}

	if err := s.notificationService.NotifyPolicyPurchased(userID, policy); err != nil {
		logger.Warn("policy purchased but notification failed",
			"policy_id", policy.ID, "user_id", userID, "error", err)
	}

	return policy, nil
}
