package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCoordinates ErrorCode = "INVALID_COORDINATES"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeReportNotFound       ErrorCode = "REPORT_NOT_FOUND"
	CodeAnimalNotFound       ErrorCode = "ANIMAL_NOT_FOUND"
	CodeShelterNotFound      ErrorCode = "SHELTER_NOT_FOUND"
	CodeAdoptionNotFound     ErrorCode = "ADOPTION_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeNoShelterAvailable   ErrorCode = "NO_SHELTER_AVAILABLE"
	CodeInvalidStatus        ErrorCode = "INVALID_STATUS"
	CodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	CodeShelterNotApproved   ErrorCode = "SHELTER_NOT_APPROVED"
	CodeShelterAlreadyExists ErrorCode = "SHELTER_ALREADY_EXISTS"
	CodeAnimalNotActive      ErrorCode = "ANIMAL_NOT_ACTIVE"

	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	// CodePartialWrite classifies legacy rows whose status and history were
	// written outside one transaction; the current transition path cannot
	// produce it.
	CodePartialWrite       ErrorCode = "PARTIAL_WRITE"
	CodeEmailDeliveryError ErrorCode = "EMAIL_DELIVERY_ERROR"
)
