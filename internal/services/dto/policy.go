package dto

type CreatePolicyRequest struct {
	Type      string  `json:"type" validate:"required,max=100"`
	Premium   float64 `json:"premium" validate:"required,gt=0"`
	Coverage  float64 `json:"coverage" validate:"required,gt=0"`
	StartDate string  `json:"startDate" validate:"required,is-date"`
	EndDate   string  `json:"endDate" validate:"required,is-date"`
	UserID    string  `json:"userId"`
}

type UpdatePolicyRequest struct {
	Type      *string  `json:"type,omitempty" validate:"omitempty,max=100"`
	Premium   *float64 `json:"premium,omitempty" validate:"omitempty,gt=0"`
	Coverage  *float64 `json:"coverage,omitempty" validate:"omitempty,gt=0"`
	StartDate *string  `json:"startDate,omitempty" validate:"omitempty,is-date"`
	EndDate   *string  `json:"endDate,omitempty" validate:"omitempty,is-date"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Active Expired"`
}
