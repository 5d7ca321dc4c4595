package usecase

import (
	"context"
	"errors"
	"time"

	"pm_client/internal/auth/client"
	"pm_client/internal/auth/domain"
	"pm_client/internal/auth/repository"
	"pm_client/internal/session"
	"pm_client/pkg/logger"
	pkgvalidator "pm_client/pkg/validator"

	"github.com/bluele/gcache"
	"github.com/go-playground/validator/v10"
)

type AuthService struct {
	api      AuthAPI
	storage  *repository.AuthStorage
	store    *session.Store
	cache    gcache.Cache
	validate *validator.Validate
}

func NewAuthService(api AuthAPI, storage *repository.AuthStorage, store *session.Store) AuthUsecase {
	return &AuthService{
		api:      api,
		storage:  storage,
		store:    store,
		cache:    gcache.New(100).LRU().Expiration(time.Minute * 15).Build(),
		validate: pkgvalidator.New(),
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (MessageOutput, error) {
	if err := s.validateInput(input); err != nil {
		return MessageOutput{}, err
	}

	res, err := s.api.Register(ctx, input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		return MessageOutput{}, err
	}

	return MessageOutput{Message: messageOr(res.Message, "Registration successful")}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginOutput, error) {
	if err := s.validateInput(input); err != nil {
		return LoginOutput{}, err
	}

	res, err := s.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return LoginOutput{}, err
	}

	return s.acceptAuthResult(res, input.Remember, "Login successful"), nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (LoginOutput, error) {
	if err := s.validateInput(input); err != nil {
		return LoginOutput{}, err
	}

	res, err := s.api.VerifyOTP(ctx, input.Email, input.Code)
	if err != nil {
		return LoginOutput{}, err
	}

	return s.acceptAuthResult(res, input.Remember, "Email verified"), nil
}

func (s *AuthService) ResendOTP(ctx context.Context, email string) (MessageOutput, error) {
	if err := s.validateInput(emailInput{Email: email}); err != nil {
		return MessageOutput{}, err
	}
	if s.attemptsExceeded("resend:"+email, domain.MaxResendAttempts) {
		return MessageOutput{}, domain.ErrTooManyResendAttempts
	}

	res, err := s.api.ResendOTP(ctx, email)
	if err != nil {
		return MessageOutput{}, err
	}

	s.recordAttempt("resend:" + email)
	return MessageOutput{Message: messageOr(res.Message, "Verification code sent")}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (MessageOutput, error) {
	if err := s.validateInput(emailInput{Email: email}); err != nil {
		return MessageOutput{}, err
	}
	if s.attemptsExceeded("forgot:"+email, domain.MaxForgotPasswordAttempts) {
		return MessageOutput{}, domain.ErrTooManyForgotPasswordAttempts
	}

	res, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return MessageOutput{}, err
	}

	s.recordAttempt("forgot:" + email)
	return MessageOutput{Message: messageOr(res.Message, "Password reset instructions sent")}, nil
}

func (s *AuthService) GoogleLogin(ctx context.Context, input GoogleLoginInput) (LoginOutput, error) {
	if input.IDToken == "" {
		return LoginOutput{}, domain.ErrGoogleCredentialMissing
	}

	res, err := s.api.GoogleLogin(ctx, input.IDToken)
	if err != nil {
		return LoginOutput{}, err
	}

	return s.acceptAuthResult(res, input.Remember, "Login with Google successful"), nil
}

func (s *AuthService) Logout() {
	s.store.Logout()
	s.storage.ClearAuth()
}

func (s *AuthService) Hydrate() {
	s.storage.Hydrate(s.store)
}

func (s *AuthService) Current() domain.Session {
	return s.store.Current()
}

func (s *AuthService) RememberedEmail() (string, bool) {
	return s.storage.LoadRememberState()
}

// acceptAuthResult feeds a successful authentication response into the
// session store and the persistence policy. Responses without a token
// (e.g. login pending OTP verification) change nothing locally.
func (s *AuthService) acceptAuthResult(res *client.LoginResponse, remember bool, fallbackMessage string) LoginOutput {
	token := res.SessionToken()
	user := res.SessionUser()

	if token != "" {
		if err := s.store.Login(user, token); err != nil {
			logger.Error("Failed to update session store:", err)
		}
		s.storage.PersistAuth(user, token, remember)
	}

	return LoginOutput{
		Message:       messageOr(res.Message, fallbackMessage),
		User:          user,
		Authenticated: token != "",
	}
}

func (s *AuthService) attemptsExceeded(key string, limit int) bool {
	attempts, err := s.cache.Get(key)
	return err == nil && attempts.(int) >= limit
}

func (s *AuthService) recordAttempt(key string) {
	current := 1
	if attempts, err := s.cache.Get(key); err == nil {
		current = attempts.(int) + 1
	}
	if err := s.cache.Set(key, current); err != nil {
		logger.Error("Cache error recording attempt count")
	}
}

// validateInput maps the first field failure onto the matching domain
// error so callers surface the same wording for the same mistake.
func (s *AuthService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return domain.ErrInvalidUserEmail
		}
		return domain.ErrInvalidUserEmailFormat
	case "Password":
		if fe.Tag() == "strongpassword" {
			return domain.ErrInvalidUserPasswordFormat
		}
		return domain.ErrInvalidUserPassword
	case "ConfirmPassword":
		return domain.ErrPasswordMismatch
	case "Code":
		return domain.ErrInvalidOTP
	case "IDToken":
		return domain.ErrGoogleCredentialMissing
	}
	return err
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
