package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/client/services"
)

const (
	unexpectedError = "An unexpected error occurred. Please try again."
	notAuthorized   = "You are not authorized to do that."
)

// fail prints a user-facing message for err and returns err unchanged, so
// command handlers can end with `return a.fail(ctx, err)`.
func (a *App) fail(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		ve *forms.ValidationError
		ae *services.APIError
	)
	switch {
	case errors.As(err, &ve):
		a.println(ve.Message)
	case errors.As(err, &ae):
		a.println(ae.Message)
	case errors.Is(err, client.ErrUnauthorized):
		// after a forced logout the REPL prints the session-expired notice
		if a.expired.Load() {
			a.log.Debug(ctx, "request rejected after logout", "error", err)
			break
		}
		a.println(notAuthorized)
	case client.IsUnavailable(err):
		a.println("Server unavailable, please try again later.")
	case errors.Is(err, context.DeadlineExceeded):
		a.println("The server took too long to answer.")
	case errors.Is(err, context.Canceled):
	default:
		a.log.Error(ctx, "command failed", "error", err)
		a.println(unexpectedError)
	}
	return err
}
