package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition carries a stable business error code with a default message.
type Definition struct {
	Code    string
	Message string
}

// Auth errors.
var (
	InvalidCredentials     = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	Unauthorized           = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID          = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	RefreshTokenInvalid    = Definition{Code: "REFRESH_TOKEN_INVALID", Message: "Refresh token invalid or expired"}
)

// Work log errors.
var (
	ValidationFailed = Definition{Code: "VALIDATION_FAILED", Message: "Required fields missing or malformed"}
	InvalidDate      = Definition{Code: "INVALID_DATE", Message: "Date must be YYYY-MM-DD"}
	InvalidClock     = Definition{Code: "INVALID_CLOCK", Message: "Time must be HH:MM"}
	InvalidMonth     = Definition{Code: "INVALID_MONTH", Message: "Month must be YYYY-MM"}
	WorkLogNotFound  = Definition{Code: "WORKLOG_NOT_FOUND", Message: "Work log not found"}
)

// Export errors.
var (
	ExportEmpty = Definition{Code: "EXPORT_EMPTY", Message: "No data to export"}
)

// Shared errors.
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
	UserNotFound    = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// Lookup maps codes back to their definitions.
var Lookup = map[string]Definition{
	InvalidCredentials.Code:     InvalidCredentials,
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	Unauthorized.Code:           Unauthorized,
	InvalidUserID.Code:          InvalidUserID,
	RefreshTokenInvalid.Code:    RefreshTokenInvalid,
	ValidationFailed.Code:       ValidationFailed,
	InvalidDate.Code:            InvalidDate,
	InvalidClock.Code:           InvalidClock,
	InvalidMonth.Code:           InvalidMonth,
	WorkLogNotFound.Code:        WorkLogNotFound,
	ExportEmpty.Code:            ExportEmpty,
	TooManyRequests.Code:        TooManyRequests,
	UserNotFound.Code:           UserNotFound,
}

// Get returns the Definition for a code, or a generic one when unknown.
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// Sentinel errors used below the handler layer.
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in claims")
	ErrDatabaseConnectionNil        = errors.New("database connection is nil")
)

// SkipMessageError tells a queue consumer to ack without processing.
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}

// IsSkip reports whether err is a SkipMessageError.
func IsSkip(err error) bool {
	var skip *SkipMessageError
	return errors.As(err, &skip)
}
