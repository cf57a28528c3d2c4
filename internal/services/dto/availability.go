package dto

import "insurai_backend/internal/models"

type BreakRequest struct {
	BreakStart string `json:"breakStart" validate:"required,is-hhmm"`
	BreakEnd   string `json:"breakEnd" validate:"required,is-hhmm"`
}

// CreateAvailabilityRequest carries a new slot. A Status field sent by the
// client is ignored: new slots always open as Available.
type CreateAvailabilityRequest struct {
	Date      string         `json:"availabilityDate" validate:"required,is-date"`
	StartTime string         `json:"startTime" validate:"required,is-hhmm"`
	EndTime   string         `json:"endTime" validate:"required,is-hhmm"`
	Recurring string         `json:"recurring" validate:"max=20"`
	Notes     string         `json:"notes" validate:"max=2000"`
	Status    string         `json:"status"`
	Breaks    []BreakRequest `json:"breaks" validate:"dive"`
}

type UpdateAvailabilityRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=Available Booked"`
	Notes  string `json:"notes" validate:"max=2000"`
}

// OnlineAgent is an agent with at least one open slot, projected for the
// client-facing agent list.
type OnlineAgent struct {
	AgentID   string                     `json:"agentId"`
	AgentName string                     `json:"agentName"`
	Email     string                     `json:"email,omitempty"`
	Slots     []models.AgentAvailability `json:"slots"`
}

// BookedRequest is a booked slot joined with the booking client's identity,
// as seen by the owning agent.
type BookedRequest struct {
	SlotID      uint   `json:"slotId"`
	Date        string `json:"availabilityDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	ClientID    string `json:"clientId,omitempty"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Notes       string `json:"notes,omitempty"`
}
