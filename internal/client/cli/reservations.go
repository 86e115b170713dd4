package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
)

// Reservations lists the current user's tickets.
func (a *App) Reservations(ctx context.Context) error {
	if err := a.requireLogin(ctx, "see your tickets"); err != nil {
		return err
	}
	list, err := a.reservationService.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	if len(list) == 0 {
		a.println("You have no tickets reserved.")
		return nil
	}

	for _, r := range list {
		name := r.Event.Name
		if name == "" {
			name = "event #" + strconv.FormatInt(r.Event.ID, 10)
		}
		a.printf("#%d  %s\n", r.ID, name)
		if r.Event.Location != "" {
			a.printf("     Location: %s\n", r.Event.Location)
		}
		if !r.Event.StartTime.IsZero() {
			a.printf("     Date: %s\n", formatWhen(r.Event.StartTime))
		}
		a.printf("     Tickets Bought: %d\n", r.Quantity)
	}
	return nil
}

// Reserve books tickets without paying: reserve <event-id> <quantity>.
func (a *App) Reserve(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: reserve <event-id> <quantity>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "EventID", Message: "Event ID is required."})
	}
	q, err := strconv.Atoi(args[1])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "Quantity", Message: "Please select a valid quantity."})
	}
	if err := a.requireLogin(ctx, "reserve tickets"); err != nil {
		return err
	}

	r, err := a.reservationService.Create(ctx, forms.ReservationForm{EventID: id, Quantity: q})
	if err != nil {
		return a.fail(ctx, err)
	}
	a.printf("Reservation #%d created for %d ticket(s).\n", r.ID, r.Quantity)
	return nil
}

// Update changes the ticket count of a reservation: update <id> <quantity>.
func (a *App) Update(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: update <reservation-id> <quantity>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "id", Message: "Reservation ID is required."})
	}
	q, err := strconv.Atoi(args[1])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "Quantity", Message: "Please select a valid quantity."})
	}
	if err := a.requireLogin(ctx, "change reservations"); err != nil {
		return err
	}

	r, err := a.reservationService.UpdateQuantity(ctx, id, q)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.printf("Reservation #%d now holds %d ticket(s).\n", r.ID, r.Quantity)
	return nil
}

// Cancel deletes a reservation: cancel <id>.
func (a *App) Cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: cancel <reservation-id>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "id", Message: "Reservation ID is required."})
	}
	if err := a.requireLogin(ctx, "cancel reservations"); err != nil {
		return err
	}

	if err := a.reservationService.Cancel(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	a.printf("Reservation #%d cancelled.\n", id)
	return nil
}
