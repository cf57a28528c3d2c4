package services

import (
	"time"

	"github.com/google/uuid"

	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/auth"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/services/dto"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Validate(token string) (*dto.UserDTO, error)
}

type authService struct {
	userRepo            repositories.UserRepository
	refreshTokenRepo    repositories.RefreshTokenRepository
	notificationService NotificationService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	notificationService NotificationService,
) AuthService {
	return &authService{
		userRepo:            userRepo,
		refreshTokenRepo:    refreshTokenRepo,
		notificationService: notificationService,
	}
}

func (s *authService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, appErrors.ErrEmailAlreadyExists
	} else if !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.StorageError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	category := models.UserCategoryUser
	if req.Category != "" {
		category = models.UserCategory(req.Category)
		if !category.Valid() {
			return nil, appErrors.ErrInvalidCategory
		}
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Category:     category,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, appErrors.StorageError(err)
	}

	if err := s.notificationService.NotifyAccountCreated(user.ID, user.FirstName); err != nil {
		logger.Warn("account created but notification failed", "user_id", user.ID, "error", err)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmailAndCategory(req.Email, models.UserCategory(req.Category))
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *authService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		if appErrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, appErrors.StorageError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, appErrors.StorageError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Validate(token string) (*dto.UserDTO, error) {
	claims, err := auth.ParseToken(token)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Category))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return nil, appErrors.StorageError(err)
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewUserDTO(user),
	}, nil
}
