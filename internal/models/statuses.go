package models

type UserCategory string
type SlotStatus string
type PolicyStatus string
type ClaimStatus string

const (
	UserCategoryUser  UserCategory = "USER"
	UserCategoryAgent UserCategory = "AGENT"
	UserCategoryAdmin UserCategory = "ADMIN"

	SlotStatusAvailable SlotStatus = "Available"
	SlotStatusBooked    SlotStatus = "Booked"

	PolicyStatusAvailable PolicyStatus = "Available"
	PolicyStatusActive    PolicyStatus = "Active"
	PolicyStatusExpired   PolicyStatus = "Expired"

	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusDenied   ClaimStatus = "Denied"
)

func (c UserCategory) Valid() bool {
	switch c {
	case UserCategoryUser, UserCategoryAgent, UserCategoryAdmin:
		return true
	}
	return false
}

func (s SlotStatus) Valid() bool {
	return s == SlotStatusAvailable || s == SlotStatusBooked
}
