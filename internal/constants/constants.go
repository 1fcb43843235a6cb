package constants

const (
	// SessionCookieName is the name of the session cookie issued on login.
	SessionCookieName = "rpg_session"

	// ContextKeyUserID keys the authenticated user's ID in both the session
	// and the gin request context.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length on signup.
	MinPasswordLength = 8

	// Pagination bounds for catalog listings.
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)
