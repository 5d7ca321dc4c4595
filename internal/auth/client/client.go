package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Client issues authentication operations against the backend API. It is
// stateless: no retries, no caching, one request per call. All failures
// come back as *APIError.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	// ClientID identifies this installation to the backend via the
	// X-Client-Id header. Optional.
	ClientID string
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

func New(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		clientID:   config.ClientID,
		httpClient: httpClient,
	}
}

func (c *Client) Register(ctx context.Context, email, password, confirmPassword string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.post(ctx, "/auth/register", registerRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.post(ctx, "/auth/verify-otp", verifyOTPRequest{Email: email, OTP: code}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResendOTP(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.post(ctx, "/auth/resend-otp", emailRequest{Email: email}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.post(ctx, "/auth/forgot-password", emailRequest{Email: email}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.post(ctx, "/auth/google-login", googleLoginRequest{IDToken: idToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return transportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return serverError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Messages: []string{err.Error()}}
		}
	}
	return nil
}
