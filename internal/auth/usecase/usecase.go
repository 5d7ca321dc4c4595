package usecase

import (
	"context"

	"pm_client/internal/auth/client"
	"pm_client/internal/auth/domain"
)

// AuthAPI is the remote surface the usecase depends on, satisfied by
// *client.Client.
type AuthAPI interface {
	Register(ctx context.Context, email, password, confirmPassword string) (*client.MessageResponse, error)
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
	VerifyOTP(ctx context.Context, email, code string) (*client.LoginResponse, error)
	ResendOTP(ctx context.Context, email string) (*client.MessageResponse, error)
	ForgotPassword(ctx context.Context, email string) (*client.MessageResponse, error)
	GoogleLogin(ctx context.Context, idToken string) (*client.LoginResponse, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (MessageOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (LoginOutput, error)
	ResendOTP(ctx context.Context, email string) (MessageOutput, error)
	ForgotPassword(ctx context.Context, email string) (MessageOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (LoginOutput, error)
	Logout()
	Hydrate()
	Current() domain.Session
	RememberedEmail() (email string, remember bool)
}
