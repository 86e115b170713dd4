package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	s, err := a.authService.Session(ctx)
	if err != nil || !s.LoggedIn {
		return ""
	}
	if s.Username != "" {
		return fmt.Sprintf(" (%s)", s.Username)
	}
	return " (logged in)"
}

// Root greets the user and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to GophTickets CLI (type 'help' for commands)")
	a.log.Debug(ctx, "starting repl", "server", a.config.ServerURL)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
