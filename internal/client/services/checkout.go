package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/client/models"
)

const (
	checkoutPath = "/checkout/"

	checkoutFailed    = "Payment or reservation failed"
	checkoutSucceeded = "Payment successful! Your reservation has been made."
	soldOut           = "This event is sold out."
)

// CheckoutService pays for and reserves tickets in one call.
type CheckoutService interface {
	// Checkout validates form and submits it. When event is known it is used
	// to refuse sold-out events and quantities above the remaining tickets
	// without contacting the backend.
	Checkout(ctx context.Context, form forms.CheckoutForm, event *models.Event) (*models.CheckoutConfirmation, error)
}

type checkoutService struct {
	client client.Client
}

func NewCheckoutService(c client.Client) CheckoutService {
	return &checkoutService{client: c}
}

func (s *checkoutService) Checkout(ctx context.Context, form forms.CheckoutForm, event *models.Event) (*models.CheckoutConfirmation, error) {
	if event != nil && event.SoldOut() {
		return nil, &forms.ValidationError{Field: "EventID", Message: soldOut}
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if event != nil {
		if err := forms.ValidateQuantity(form.Quantity, event.AvailableTickets); err != nil {
			return nil, err
		}
	}

	r, err := client.NewJSONRequest(http.MethodPost, checkoutPath, form)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if err := authorized(resp); err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp, checkoutFailed, "error")
	}

	var c models.CheckoutConfirmation
	if err := decodeJSON(resp, &c); err != nil {
		// the payment went through; an unexpected body must not hide that
		c = models.CheckoutConfirmation{}
	}
	if c.Message == "" {
		c.Message = checkoutSucceeded
	}
	return &c, nil
}
