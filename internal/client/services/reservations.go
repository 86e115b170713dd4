package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/forms"
	"github.com/dmitrijs2005/gophtickets/internal/client/models"
)

const reservationsPath = "/reservations/"

// ReservationService manages the current user's reservations. Every call is
// authenticated and may trigger a token refresh.
type ReservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, form forms.ReservationForm) (*models.Reservation, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*models.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

type reservationService struct {
	client client.Client
}

func NewReservationService(c client.Client) ReservationService {
	return &reservationService{client: c}
}

func reservationPath(id int64) string {
	return fmt.Sprintf("%s%d/", reservationsPath, id)
}

// List returns an empty, non-nil slice when the user has no reservations.
func (s *reservationService) List(ctx context.Context) ([]models.Reservation, error) {
	resp, err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Target: reservationsPath})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if err := authorized(resp); err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp, "Failed to fetch reservations", "detail")
	}

	var out []models.Reservation
	if err := decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}

func (s *reservationService) Create(ctx context.Context, form forms.ReservationForm) (*models.Reservation, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	r, err := client.NewJSONRequest(http.MethodPost, reservationsPath, form)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, r, "Reservation failed")
}

func (s *reservationService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*models.Reservation, error) {
	if err := forms.ValidateQuantity(quantity, nil); err != nil {
		return nil, err
	}
	r, err := client.NewJSONRequest(http.MethodPatch, reservationPath(id), map[string]int{"quantity": quantity})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, r, "Failed to update reservation")
}

func (s *reservationService) Cancel(ctx context.Context, id int64) error {
	resp, err := s.client.Do(ctx, client.Request{Method: http.MethodDelete, Target: reservationPath(id)})
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if err := authorized(resp); err != nil {
		return err
	}
	if !isSuccess(resp) {
		return apiError(resp, "Failed to cancel reservation", "detail", "error")
	}
	_ = readBody(resp)
	return nil
}

func (s *reservationService) send(ctx context.Context, r client.Request, fallback string) (*models.Reservation, error) {
	resp, err := s.client.Do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Method, err)
	}
	if err := authorized(resp); err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp, fallback, "detail", "error")
	}

	var res models.Reservation
	if err := decodeJSON(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
