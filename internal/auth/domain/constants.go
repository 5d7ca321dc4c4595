package domain

const (
	// Storage keys shared by both tiers. Tier selection, not key naming,
	// is what distinguishes a remembered session from a temporary one.
	KeyToken = "token"
	KeyUser  = "user"
	KeyEmail = "email"

	// Durable-only keys backing the remember-me preference. They outlive
	// the session record and survive logout.
	KeyRememberFlag    = "remember_me"
	KeyRememberedEmail = "remembered_email"
	KeyClientID        = "client_id"

	RememberFlagSet = "1"

	MaxResendAttempts         = 3
	MaxForgotPasswordAttempts = 3
)
