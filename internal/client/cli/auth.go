package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/common"
)

var errNotLoggedIn = errors.New("not logged in")

// Register prompts for the signup form and creates an account. When the
// backend issues tokens right away the user is logged in as well.
func (a *App) Register(ctx context.Context) error {
	var f forms.RegisterForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}

	pw, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	pw2, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw2)
	f.Password, f.Password2 = string(pw), string(pw2)

	if f.Phone, err = getSimpleText(a.reader, "Phone number (optional)", a.out); err != nil {
		return err
	}
	if f.Address, err = getSimpleText(a.reader, "Address (optional)", a.out); err != nil {
		return err
	}

	loggedIn, err := a.authService.Register(ctx, f)
	if err != nil {
		return a.fail(ctx, err)
	}

	if loggedIn {
		a.println("Successfully Signed Up!")
	} else {
		a.println("Signup successful! Please log in.")
	}
	return nil
}

// Login prompts for credentials and stores the issued tokens.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	pw, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.authService.Login(ctx, forms.LoginForm{Username: username, Password: string(pw)}); err != nil {
		return a.fail(ctx, err)
	}

	a.expired.Store(false)
	a.log.Info(ctx, "logged in", "username", username)
	a.println("Successfully Logged In!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints what is known about the stored session.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.authService.Session(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	if !s.LoggedIn {
		a.println("Not logged in.")
		return nil
	}

	who := s.Username
	if who == "" && s.UserID != "" {
		who = "user #" + s.UserID
	}
	if who == "" {
		who = "an authenticated user"
	}
	a.printf("Logged in as %s.\n", who)

	if !s.ExpiresAt.IsZero() {
		if s.Expired(time.Now()) {
			a.println("Access token expired; it will be refreshed on the next request.")
		} else {
			a.printf("Access token valid until %s.\n", s.ExpiresAt.Local().Format(time.DateTime))
		}
	}
	return nil
}

// requireLogin prints the hint shown to anonymous visitors of protected pages.
func (a *App) requireLogin(ctx context.Context, action string) error {
	if a.isLoggedIn(ctx) {
		return nil
	}
	a.printf("You must be logged in to %s.\n", action)
	return errNotLoggedIn
}
