package domain

import "errors"

var (
	ErrInvalidUserEmail              = errors.New("email is required")
	ErrInvalidUserEmailFormat        = errors.New("email format is invalid")
	ErrInvalidUserPassword           = errors.New("password is required")
	ErrInvalidUserPasswordFormat     = errors.New("password must be at least 8 characters, contain uppercase, lowercase, number, and special character")
	ErrPasswordMismatch              = errors.New("passwords do not match")
	ErrInvalidOTP                    = errors.New("verification code must be 6 digits")
	ErrEmptyToken                    = errors.New("session token is empty")
	ErrGoogleCredentialMissing       = errors.New("google credential not found")
	ErrTooManyResendAttempts         = errors.New("too many verification code requests, please try again later")
	ErrTooManyForgotPasswordAttempts = errors.New("too many password reset requests, please try again later")
)
