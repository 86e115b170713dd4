// Package cli provides the interactive GophTickets command-line client.
//
// It wires configuration, the local credential store, the authenticated API
// client and the services into a REPL. Commands mirror what a visitor of the
// ticketing site can do:
//
//   - register / login / logout / whoami
//   - events / event <id>
//   - buy <event-id> (checkout with card details)
//   - reservations / reserve / update / cancel
//
// When the API client gives up on a session (refresh token missing or
// rejected) it clears the stored tokens and notifies the App, which prints
// "Session expired, please log in again." and runs the login flow before the
// next prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
