package app

import (
	"context"
	"fmt"
	"log/slog"

	"talentia/internal/api"
	"talentia/internal/domain/user"
	"talentia/internal/routes"
	"talentia/internal/session"
)

// AuthFlow covers the sign-in/sign-up page: validate the form, exchange
// credentials for a token, persist the session and decide where the user
// lands next.
type AuthFlow struct {
	api      *api.Client
	sessions *session.Store
	logger   *slog.Logger
}

func NewAuthFlow(client *api.Client, sessions *session.Store, logger *slog.Logger) *AuthFlow {
	return &AuthFlow{api: client, sessions: sessions, logger: logger}
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	Account   string `validate:"required"`
}

type SignInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Result is what the auth page needs after a successful login or signup: the
// identity now in effect and the route to navigate to.
type Result struct {
	Session session.Session
	Home    string
}

func (f *AuthFlow) SignUp(ctx context.Context, input SignUpInput) (*Result, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	role, ok := user.SignupRoles[input.Account]
	if !ok {
		return nil, fmt.Errorf("unknown account type %q", input.Account)
	}
	resp, err := f.api.Register(ctx, api.RegisterRequest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}
	return f.establish(resp)
}

func (f *AuthFlow) SignIn(ctx context.Context, input SignInInput) (*Result, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	resp, err := f.api.Login(ctx, api.LoginRequest{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, err
	}
	return f.establish(resp)
}

func (f *AuthFlow) establish(resp *api.TokenResponse) (*Result, error) {
	if err := f.sessions.Save(resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	f.logger.Debug("session established", slog.String("role", string(resp.User.Role)))
	return &Result{
		Session: session.Session{Token: resp.AccessToken, User: resp.User},
		Home:    routes.Home(resp.User.Role),
	}, nil
}

// SignOut drops both storage keys and sends the user back to the landing
// page.
func (f *AuthFlow) SignOut() (string, error) {
	if err := f.sessions.Clear(); err != nil {
		return "", err
	}
	return routes.Landing, nil
}

// Current returns the stored session, nil when logged out.
func (f *AuthFlow) Current() *session.Session {
	return f.sessions.Load()
}

// Refresh re-fetches the profile for the stored token, mirroring the
// get-current-user call pages issue on load. An expired token surfaces as a
// failed request, never as a client-side expiry decision.
func (f *AuthFlow) Refresh(ctx context.Context) (*user.User, error) {
	current := f.sessions.Load()
	if current == nil {
		return nil, fmt.Errorf("not logged in")
	}
	return f.api.Me(ctx, current.Token)
}
