package client

import "pm_client/internal/auth/domain"

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// MessageResponse is the body of operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginData is the nested envelope some backend responses wrap the
// credentials in.
type LoginData struct {
	Token   string           `json:"token"`
	User    *domain.Identity `json:"user"`
	Message string           `json:"message"`
}

// LoginResponse is returned by login, verify-otp, and google-login. The
// backend has served credentials both at the top level and under data;
// neither shape is treated as canonical.
type LoginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *domain.Identity `json:"user"`
	Data    *LoginData       `json:"data"`
}

// SessionToken resolves the token with top-level taking priority over the
// nested data shape. Empty means the response carried no credentials.
func (r *LoginResponse) SessionToken() string {
	if r.Token != "" {
		return r.Token
	}
	if r.Data != nil {
		return r.Data.Token
	}
	return ""
}

// SessionUser resolves the identity with the same fallback order as
// SessionToken, degrading to a zero identity when neither shape has one.
func (r *LoginResponse) SessionUser() domain.Identity {
	if r.User != nil {
		return *r.User
	}
	if r.Data != nil && r.Data.User != nil {
		return *r.Data.User
	}
	return domain.Identity{}
}
