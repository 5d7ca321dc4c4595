package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"
)

// Flow obtains a Google ID token through the authorization-code flow with
// PKCE and a loopback redirect listener. The token is handed to the
// backend's /auth/google-login as-is; this package never verifies it.
type Flow struct {
	config     oauth2.Config
	listenAddr string

	// OnAuthURL receives the consent URL the user must open. Required:
	// the flow has no browser of its own.
	OnAuthURL func(url string)
}

func NewFlow(clientID, clientSecret, listenAddr string) *Flow {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:53682"
	}
	return &Flow{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  "http://" + listenAddr + "/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleendpoint.Endpoint,
		},
		listenAddr: listenAddr,
	}
}

type callbackResult struct {
	code string
	err  error
}

// SignIn runs the flow end to end: serves the loopback callback, waits for
// Google to redirect back with a code, and exchanges it. Blocks until the
// user completes consent or ctx is done.
func (f *Flow) SignIn(ctx context.Context) (string, error) {
	if f.config.ClientID == "" {
		return "", errors.New("google client id not configured")
	}

	state, err := randomState()
	if err != nil {
		return "", err
	}
	verifier := oauth2.GenerateVerifier()

	results := make(chan callbackResult, 1)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/callback", func(c echo.Context) error {
		if c.QueryParam("state") != state {
			results <- callbackResult{err: errors.New("oauth state mismatch")}
			return c.String(http.StatusBadRequest, "State mismatch. You can close this window.")
		}
		code := c.QueryParam("code")
		if code == "" {
			results <- callbackResult{err: errors.New("authorization code missing from callback")}
			return c.String(http.StatusBadRequest, "Authorization code missing. You can close this window.")
		}
		results <- callbackResult{code: code}
		return c.String(http.StatusOK, "Signed in with Google. You can close this window.")
	})

	go func() {
		if err := e.Start(f.listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			results <- callbackResult{err: err}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	authURL := f.config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	if f.OnAuthURL != nil {
		f.OnAuthURL(authURL)
	}

	select {
	case res := <-results:
		if res.err != nil {
			return "", res.err
		}
		return f.exchange(ctx, res.code, verifier)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *Flow) exchange(ctx context.Context, code, verifier string) (string, error) {
	token, err := f.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("google response did not include an id_token")
	}
	return idToken, nil
}

func randomState() (string, error) {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}
