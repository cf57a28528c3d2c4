package models

type Claim struct {
	BaseModel
	PolicyID    string      `gorm:"not null;index" json:"policyId"`
	UserID      string      `gorm:"not null;index" json:"userId"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Status      ClaimStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Amount      float64     `gorm:"not null" json:"amount"`
	DateFiled   string      `gorm:"type:varchar(10);not null" json:"dateFiled"`
}
