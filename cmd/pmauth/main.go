package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"pm_client/internal/auth/client"
	"pm_client/internal/auth/google"
	"pm_client/internal/auth/repository"
	"pm_client/internal/auth/usecase"
	"pm_client/internal/session"
	"pm_client/pkg/logger"
)

// Default backend base URL; override with PM_API_URL or --server.
var serverBaseURL = "http://localhost:8080"

func main() {
	cmd := flag.String("cmd", "whoami", "Command: register|login|verify|resend|forgot|google|whoami|logout")
	email := flag.String("email", "", "Account email")
	password := flag.String("password", "", "Account password")
	confirm := flag.String("confirm", "", "Password confirmation (register)")
	code := flag.String("code", "", "6-digit verification code (verify)")
	remember := flag.Bool("remember", false, "Persist the session across restarts")
	serverFlag := flag.String("server", "", "Override backend base URL (e.g. https://api.example.com)")
	flag.Parse()

	logger.Init()

	if env := os.Getenv("PM_API_URL"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	svc := buildAuthService()
	svc.Hydrate()

	ctx := context.Background()

	switch *cmd {
	case "register":
		out, err := svc.Register(ctx, usecase.RegisterInput{
			Email:           *email,
			Password:        *password,
			ConfirmPassword: *confirm,
		})
		finish(out.Message, err)
	case "login":
		loginEmail := *email
		if loginEmail == "" {
			if remembered, ok := svc.RememberedEmail(); ok {
				loginEmail = remembered
			}
		}
		out, err := svc.Login(ctx, usecase.LoginInput{
			Email:    loginEmail,
			Password: *password,
			Remember: *remember,
		})
		if err != nil {
			fail(err)
		}
		fmt.Println(out.Message)
		if !out.Authenticated {
			fmt.Println("Check your email for a verification code, then run: pmauth -cmd verify")
		}
	case "verify":
		out, err := svc.VerifyOTP(ctx, usecase.VerifyOTPInput{
			Email:    *email,
			Code:     *code,
			Remember: *remember,
		})
		finish(out.Message, err)
	case "resend":
		out, err := svc.ResendOTP(ctx, *email)
		finish(out.Message, err)
	case "forgot":
		out, err := svc.ForgotPassword(ctx, *email)
		finish(out.Message, err)
	case "google":
		flow := google.NewFlow(
			os.Getenv("PM_GOOGLE_CLIENT_ID"),
			os.Getenv("PM_GOOGLE_CLIENT_SECRET"),
			os.Getenv("PM_GOOGLE_LISTEN_ADDR"),
		)
		flow.OnAuthURL = func(url string) {
			fmt.Println("Open this URL in your browser to sign in with Google:")
			fmt.Println(url)
		}
		idToken, err := flow.SignIn(ctx)
		if err != nil {
			fail(err)
		}
		out, err := svc.GoogleLogin(ctx, usecase.GoogleLoginInput{
			IDToken:  idToken,
			Remember: *remember,
		})
		finish(out.Message, err)
	case "whoami":
		current := svc.Current()
		if !current.Active() {
			fmt.Println("Not logged in")
			return
		}
		if current.Identity.Name != "" {
			fmt.Printf("Logged in as %s <%s>\n", current.Identity.Name, current.Identity.Email)
		} else {
			fmt.Printf("Logged in as %s\n", current.Identity.Email)
		}
	case "logout":
		svc.Logout()
		fmt.Println("Logged out")
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func buildAuthService() usecase.AuthUsecase {
	statePath := os.Getenv("PM_STATE_PATH")
	if statePath == "" {
		defaultPath, err := repository.DefaultStatePath()
		if err != nil {
			logger.Error("Failed to resolve state path:", err)
		}
		statePath = defaultPath
	}

	// Persistence is a convenience, never a hard dependency: if the local
	// database cannot be opened the durable tier degrades to process memory.
	var durable repository.Store
	if statePath != "" {
		if store, err := repository.NewDurableStore(statePath); err == nil {
			durable = store
		} else {
			logger.Error("Failed to open durable store:", err)
		}
	}
	if durable == nil {
		durable = repository.NewEphemeralStore()
	}

	storage := repository.NewAuthStorage(durable, repository.NewEphemeralStore())
	store := session.NewStore()
	api := client.New(client.Config{
		BaseURL:  serverBaseURL,
		ClientID: storage.ClientID(),
	})

	return usecase.NewAuthService(api, storage, store)
}

func finish(message string, err error) {
	if err != nil {
		fail(err)
	}
	fmt.Println(message)
}

func fail(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		for _, msg := range apiErr.Messages {
			fmt.Println("Error:", msg)
		}
	} else {
		fmt.Println("Error:", err)
	}
	os.Exit(1)
}
