package models

import "time"

// AgentAvailability is a single offered time slot. The row is the only
// contended resource in the system: the Available -> Booked transition is
// applied as a conditional update on (id, status), so a slot can be won by
// exactly one client.
//
// Invariant: Status == Booked iff BookedBy is non-nil.
type AgentAvailability struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	AgentID   string     `gorm:"not null;index" json:"agentId"`
	BookedBy  *string    `gorm:"index" json:"bookedBy,omitempty"`
	Date      string     `gorm:"type:varchar(10);not null" json:"availabilityDate"`
	StartTime string     `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string     `gorm:"type:varchar(5);not null" json:"endTime"`
	Recurring string     `gorm:"type:varchar(20)" json:"recurring,omitempty"`
	Status    SlotStatus `gorm:"type:varchar(20);not null;default:'Available';index" json:"status"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Breaks are owned by the slot and written together with it. They are
	// keyed by AvailabilityID only; there is no back-reference to the parent.
	Breaks []AvailabilityBreak `gorm:"foreignKey:AvailabilityID;constraint:OnDelete:CASCADE" json:"breaks"`
}

// AvailabilityBreak is a sub-interval of its parent slot during which the
// agent is not reachable. Breaks are never modified independently.
type AvailabilityBreak struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AvailabilityID uint      `gorm:"not null;index" json:"-"`
	BreakStart     string    `gorm:"type:varchar(5);not null" json:"breakStart"`
	BreakEnd       string    `gorm:"type:varchar(5);not null" json:"breakEnd"`
	CreatedAt      time.Time `gorm:"not null" json:"-"`
}
