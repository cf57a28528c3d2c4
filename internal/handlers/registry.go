package handlers

import (
	"insurai_backend/internal/services"
	"insurai_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Notification *NotificationHandler
	Policy       *PolicyHandler
	Claim        *ClaimHandler
	Query        *QueryHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.AuthService),
		Availability: NewAvailabilityHandler(base, svc.AvailabilityService),
		Notification: NewNotificationHandler(base, svc.NotificationService),
		Policy:       NewPolicyHandler(base, svc.PolicyService),
		Claim:        NewClaimHandler(base, svc.ClaimService),
		Query:        NewQueryHandler(base, svc.QueryService),
	}
}
