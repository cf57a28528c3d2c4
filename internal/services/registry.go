package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	AvailabilityService AvailabilityService
	NotificationService NotificationService
	PolicyService       PolicyService
	ClaimService        ClaimService
	QueryService        QueryService
}
