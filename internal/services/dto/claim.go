package dto

type CreateClaimRequest struct {
	PolicyID    string  `json:"policyId" validate:"required"`
	Description string  `json:"description" validate:"required,max=2000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DateFiled   string  `json:"dateFiled" validate:"required,is-date"`
}

type UpdateClaimRequest struct {
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=Pending Approved Denied"`
}
