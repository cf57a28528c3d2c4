package models

type Policy struct {
	BaseModel
	UserID   string       `gorm:"index" json:"userId"`
	AgentID  string       `gorm:"index" json:"agentId"`
	Type     string       `gorm:"not null" json:"type"`
	Status   PolicyStatus `gorm:"type:varchar(20);not null;default:'Available';index" json:"status"`
	Premium  float64      `gorm:"not null" json:"premium"`
	Coverage float64      `gorm:"not null" json:"coverage"`
	// Dates are plain calendar days, stored as "2006-01-02".
	StartDate string `gorm:"type:varchar(10);not null" json:"startDate"`
	EndDate   string `gorm:"type:varchar(10);not null" json:"endDate"`
}
