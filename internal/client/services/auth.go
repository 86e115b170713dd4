package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/client/models"
	"github.com/dmitrijs2005/gophtickets/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const (
	loginPath    = "/auth/login/"
	registerPath = "/auth/register/"

	loginFailed  = "Login failed. Please check your credentials."
	signupFailed = "Signup failed. Please try again."
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login: exchange username/password for a token pair and store it.
//   - Register: create an account; stores tokens when the backend issues them
//     and reports whether the user is now logged in.
//   - Logout: drop both stored tokens.
//   - Session: describe the stored session without contacting the backend.
type AuthService interface {
	Login(ctx context.Context, form forms.LoginForm) error
	Register(ctx context.Context, form forms.RegisterForm) (bool, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (Session, error)
}

// Session is the locally known state of the current login. Claims are read
// from the access token without verifying its signature, so they are only
// good for display.
type Session struct {
	LoggedIn  bool
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the access token is past its expiry at now. A token
// without an expiry claim never expires here.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type authService struct {
	client client.Client
	store  credentials.Repository
}

func NewAuthService(c client.Client, store credentials.Repository) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Login(ctx context.Context, form forms.LoginForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	r, err := client.NewJSONRequest(http.MethodPost, loginPath, form)
	if err != nil {
		return err
	}
	resp, err := a.client.DoPublic(ctx, r)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if !isSuccess(resp) {
		return apiError(resp, loginFailed, "message", "detail")
	}

	var pair models.TokenPair
	if err := decodeJSON(resp, &pair); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if pair.Access == "" {
		return &APIError{Status: resp.StatusCode, Message: loginFailed}
	}

	if err := credentials.SetTokens(ctx, a.store, pair.Access, pair.Refresh); err != nil {
		return fmt.Errorf("saving tokens: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, form forms.RegisterForm) (bool, error) {
	if err := form.Validate(); err != nil {
		return false, err
	}

	r, err := client.NewJSONRequest(http.MethodPost, registerPath, form.Payload())
	if err != nil {
		return false, err
	}
	resp, err := a.client.DoPublic(ctx, r)
	if err != nil {
		return false, fmt.Errorf("register error: %w", err)
	}

	if !isSuccess(resp) {
		return false, registerError(resp)
	}

	var pair models.TokenPair
	if err := decodeJSON(resp, &pair); err != nil {
		return false, fmt.Errorf("register error: %w", err)
	}
	if pair.Access == "" {
		return false, nil
	}
	if err := credentials.SetTokens(ctx, a.store, pair.Access, pair.Refresh); err != nil {
		return false, fmt.Errorf("saving tokens: %w", err)
	}
	return true, nil
}

// registerError prefers "detail", then every field error in order.
func registerError(resp *http.Response) *APIError {
	body := readBody(resp)

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return &APIError{Status: resp.StatusCode, Message: detail.Detail}
	}
	if msg := flattenValues(body); msg != "" {
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	return &APIError{Status: resp.StatusCode, Message: signupFailed}
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Session(ctx context.Context) (Session, error) {
	access, err := a.store.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return Session{}, fmt.Errorf("read access token: %w", err)
	}
	if access == "" {
		return Session{}, nil
	}

	s := Session{LoggedIn: true}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		// opaque token
		return s, nil
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	if v, found := claims["user_id"]; found {
		s.UserID = claimString(v)
	} else if sub, err := claims.GetSubject(); err == nil {
		s.UserID = sub
	}
	if v, found := claims["username"]; found {
		s.Username = claimString(v)
	}
	return s, nil
}

func claimString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return fmt.Sprint(t)
	}
}
