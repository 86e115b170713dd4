package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_StoresTokens(t *testing.T) {
	e := newEnv(t)
	e.backend.handle("/auth/login/", reply(http.StatusOK, `{"access":"A1","refresh":"R1"}`))

	svc := NewAuthService(e.client, e.store)
	require.NoError(t, svc.Login(context.Background(), forms.LoginForm{Username: " alice ", Password: "pw"}))

	assert.Equal(t, "A1", e.token(t, common.AccessTokenKey))
	assert.Equal(t, "R1", e.token(t, common.RefreshTokenKey))

	calls := e.backend.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Empty(t, calls[0].Auth)
	assert.Equal(t, map[string]any{"username": "alice", "password": "pw"}, calls[0].Body)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"backend message", http.StatusUnauthorized, `{"message":"Bad password"}`, "Bad password"},
		{"detail", http.StatusUnauthorized, `{"detail":"No active account found with the given credentials"}`, "No active account found with the given credentials"},
		{"fallback", http.StatusBadRequest, `not json`, loginFailed},
		{"ok without access", http.StatusOK, `{"refresh":"R"}`, loginFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			e.backend.handle("/auth/login/", reply(tt.status, tt.body))

			err := NewAuthService(e.client, e.store).Login(context.Background(), forms.LoginForm{Username: "alice", Password: "pw"})
			ae, ok := AsAPIError(err)
			require.True(t, ok, "expected APIError, got %v", err)
			assert.Equal(t, tt.want, ae.Message)
			assert.Equal(t, 0, e.store.Len())
			assert.Zero(t, e.logoutHits)
		})
	}
}

func TestAuthService_Login_InvalidFormSkipsNetwork(t *testing.T) {
	e := newEnv(t)

	err := NewAuthService(e.client, e.store).Login(context.Background(), forms.LoginForm{Username: "alice"})
	require.True(t, forms.IsValidationError(err))
	assert.Empty(t, e.backend.calls())
}

func TestAuthService_Register(t *testing.T) {
	valid := forms.RegisterForm{
		Email:     "a@example.com",
		Username:  "alice",
		Password:  "secret",
		Password2: "secret",
		Phone:     "123",
		Address:   "Main st",
	}

	t.Run("tokens issued", func(t *testing.T) {
		e := newEnv(t)
		e.backend.handle("/auth/register/", reply(http.StatusCreated, `{"access":"A","refresh":"R"}`))

		loggedIn, err := NewAuthService(e.client, e.store).Register(context.Background(), valid)
		require.NoError(t, err)
		assert.True(t, loggedIn)
		assert.Equal(t, "A", e.token(t, common.AccessTokenKey))

		calls := e.backend.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, map[string]any{
			"email":        "a@example.com",
			"username":     "alice",
			"password":     "secret",
			"phone_number": "123",
			"address":      "Main st",
		}, calls[0].Body)
	})

	t.Run("account only", func(t *testing.T) {
		e := newEnv(t)
		e.backend.handle("/auth/register/", reply(http.StatusCreated, `{"id":1,"username":"alice"}`))

		loggedIn, err := NewAuthService(e.client, e.store).Register(context.Background(), valid)
		require.NoError(t, err)
		assert.False(t, loggedIn)
		assert.Equal(t, 0, e.store.Len())
	})

	t.Run("passwords differ", func(t *testing.T) {
		e := newEnv(t)
		f := valid
		f.Password2 = "other"

		_, err := NewAuthService(e.client, e.store).Register(context.Background(), f)
		var ve *forms.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Passwords do not match.", ve.Message)
		assert.Empty(t, e.backend.calls())
	})

	errorCases := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"Registration closed"}`, "Registration closed"},
		{"field errors in order", `{"username":["A user with that username already exists."],"email":["Enter a valid email address.","Too long."]}`,
			"A user with that username already exists. Enter a valid email address. Too long."},
		{"fallback", `{}`, signupFailed},
		{"not json", `<html>`, signupFailed},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			e.backend.handle("/auth/register/", reply(http.StatusBadRequest, tt.body))

			_, err := NewAuthService(e.client, e.store).Register(context.Background(), valid)
			ae, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, ae.Status)
			assert.Equal(t, tt.want, ae.Message)
		})
	}
}

func TestAuthService_LogoutAndSession(t *testing.T) {
	e := newEnv(t)
	svc := NewAuthService(e.client, e.store)
	ctx := context.Background()

	s, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn)

	exp := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  42,
		"username": "alice",
		"exp":      exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	e.login(t, signed, "R")

	s, err = svc.Session(ctx)
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, "42", s.UserID)
	assert.Equal(t, "alice", s.Username)
	assert.True(t, s.ExpiresAt.Equal(exp))
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(exp.Add(time.Second)))

	e.login(t, "opaque-token", "R")
	s, err = svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, Session{LoggedIn: true}, s)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 0, e.store.Len())
}

func TestAuthService_TransportFailure(t *testing.T) {
	store := newEnv(t).store
	c, err := client.New("http://127.0.0.1:1", store)
	require.NoError(t, err)

	err = NewAuthService(c, store).Login(context.Background(), forms.LoginForm{Username: "a", Password: "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnavailable))
}
