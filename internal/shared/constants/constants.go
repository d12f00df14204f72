package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserSID   = "user_sid"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// Default plan limits applied to new accounts. Overridable per user
	// and via config (quota.*).
	DefaultMaxSites           = 10
	DefaultMaxPagesPerSite    = 50
	DefaultMaxSectionsPerPage = 50

	// Credits granted to a fresh account at registration.
	DefaultSignupCredits = 20

	// Database table names
	TableUsers         = "users"
	TableSites         = "sites"
	TablePages         = "pages"
	TableSections      = "page_sections"
	TablePayments      = "payments"
	TableCreditLedgers = "ai_credit_ledgers"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
	ErrMsgRateLimited         = "Too many requests"
)
