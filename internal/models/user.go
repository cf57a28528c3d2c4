package models

import "time"

type User struct {
	BaseModel
	FirstName    string       `gorm:"not null" json:"firstName"`
	LastName     string       `gorm:"not null" json:"lastName"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string       `json:"phone"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Category     UserCategory `gorm:"type:varchar(20);not null;default:'USER'" json:"category"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
