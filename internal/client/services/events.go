package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/models"
)

const eventsPath = "/events/"

// EventService reads the public event catalogue. No credential is sent.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
}

type eventService struct {
	client client.Client
}

func NewEventService(c client.Client) EventService {
	return &eventService{client: c}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	resp, err := s.client.DoPublic(ctx, client.Request{Method: http.MethodGet, Target: eventsPath})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if !isSuccess(resp) {
		return nil, apiError(resp, "Failed to fetch events", "detail")
	}

	events := []models.Event{}
	if err := decodeJSON(resp, &events); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, &APIError{Status: http.StatusBadRequest, Message: "Event ID is required"}
	}

	target := fmt.Sprintf("%s%d/", eventsPath, id)
	resp, err := s.client.DoPublic(ctx, client.Request{Method: http.MethodGet, Target: target})
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !isSuccess(resp) {
		return nil, apiError(resp, "Failed to fetch event details", "detail")
	}

	var e models.Event
	if err := decodeJSON(resp, &e); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}
