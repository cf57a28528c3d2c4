package dto

import (
	"time"

	"insurai_backend/internal/models"
)

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=20"`
	Password  string `json:"password" validate:"required,min=8"`
	Category  string `json:"category" validate:"omitempty,is-user-category"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Category string `json:"category" validate:"required,is-user-category"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	Token        string  `json:"token"`
	RefreshToken string  `json:"refreshToken"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string              `json:"id"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone,omitempty"`
	Category  models.UserCategory `json:"category"`
	CreatedAt time.Time           `json:"createdAt"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Category:  user.Category,
		CreatedAt: user.CreatedAt,
	}
}
