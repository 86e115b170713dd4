package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/client/models"
	"github.com/dmitrijs2005/gophtickets/internal/common"
)

const dateLayout = "Monday, January 2, 2006 15:04"

var errUsage = errors.New("usage")

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "TBA"
	}
	return t.Local().Format(dateLayout)
}

func availability(e *models.Event) string {
	switch {
	case e.AvailableTickets == nil:
		return "available"
	case e.SoldOut():
		return "sold out"
	case e.LowStock():
		return fmt.Sprintf("only %d left", *e.AvailableTickets)
	default:
		return fmt.Sprintf("%d available", *e.AvailableTickets)
	}
}

// Events lists the upcoming events.
func (a *App) Events(ctx context.Context) error {
	events, err := a.eventService.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	if len(events) == 0 {
		a.println("No events found.")
		return nil
	}

	for _, e := range events {
		a.printf("#%d  %s\n     %s, %s, $%s\n", e.ID, e.Name, e.Location, formatWhen(e.StartTime), e.Price.Total(1))
	}
	return nil
}

// Event prints the full description of one event.
func (a *App) Event(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: event <id>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "id", Message: "Event ID is required"})
	}

	e, err := a.eventService.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.printf("%s\n", e.Name)
	if e.Description != "" {
		a.printf("%s\n", e.Description)
	}
	a.printf("Where:   %s\n", e.Location)
	a.printf("Starts:  %s\n", formatWhen(e.StartTime))
	a.printf("Ends:    %s\n", formatWhen(e.EndTime))
	a.printf("Price:   $%s\n", e.Price.Total(1))
	a.printf("Tickets: %s\n", availability(e))
	return nil
}

// Buy runs the checkout flow for an event: quantity, holder name and card
// details are prompted for, then paid and reserved in one call.
func (a *App) Buy(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: buy <event-id>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "id", Message: "Event ID is required."})
	}
	if err := a.requireLogin(ctx, "buy tickets"); err != nil {
		return err
	}

	e, err := a.eventService.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	if e.SoldOut() {
		a.println("This event is sold out.")
		return nil
	}
	a.printf("%s, $%s per ticket (%s)\n", e.Name, e.Price.Total(1), availability(e))

	f := forms.CheckoutForm{EventID: e.ID}
	if f.Quantity, err = getInt(a.reader, "Quantity", a.out, 1); err != nil {
		return a.fail(ctx, &forms.ValidationError{Field: "Quantity", Message: "Please select a valid quantity."})
	}
	if err := forms.ValidateQuantity(f.Quantity, e.AvailableTickets); err != nil {
		return a.fail(ctx, err)
	}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Name", &f.Name},
		{"Surname", &f.Surname},
		{"Card number", &f.CardNumber},
		{"Expiry (MM/YY)", &f.Expiry},
	}
	for _, p := range prompts {
		if *p.dst, err = getSimpleText(a.reader, p.label, a.out); err != nil {
			return err
		}
	}
	cvc, err := getPassword(a.out, "CVC: ")
	if err != nil {
		return err
	}
	f.CVC = string(cvc)
	common.WipeByteArray(cvc)

	a.printf("Total: $%s\n", e.Price.Total(f.Quantity))

	conf, err := a.checkoutService.Checkout(ctx, f, e)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.println(conf.Message)
	if conf.Reservation != nil {
		a.printf("Reservation #%d: %d ticket(s).\n", conf.Reservation.ID, conf.Reservation.Quantity)
	}
	return nil
}
