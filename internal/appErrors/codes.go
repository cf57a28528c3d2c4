package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeInvalidCategory    ErrorCode = "INVALID_CATEGORY"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeSlotNotFound         ErrorCode = "SLOT_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	CodePolicyNotFound       ErrorCode = "POLICY_NOT_FOUND"
	CodeClaimNotFound        ErrorCode = "CLAIM_NOT_FOUND"

	// Business logic
	CodeConflict           ErrorCode = "CONFLICT"
	CodeSlotNotAvailable   ErrorCode = "SLOT_NOT_AVAILABLE"
	CodePolicyNotAvailable ErrorCode = "POLICY_NOT_AVAILABLE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
