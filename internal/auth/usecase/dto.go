package usecase

import "pm_client/internal/auth/domain"

type RegisterInput struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,strongpassword"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Remember bool
}

type VerifyOTPInput struct {
	Email    string `validate:"required,email"`
	Code     string `validate:"required,otp"`
	Remember bool
}

type GoogleLoginInput struct {
	IDToken  string `validate:"required"`
	Remember bool
}

type emailInput struct {
	Email string `validate:"required,email"`
}

type MessageOutput struct {
	Message string
}

type LoginOutput struct {
	Message string
	User    domain.Identity
	// Authenticated reports whether the response carried a session token.
	// A login that still needs OTP verification comes back false.
	Authenticated bool
}
