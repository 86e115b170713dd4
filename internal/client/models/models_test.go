package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEvent_UnmarshalDetail(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "Jazz Night",
		"description": "Live jazz",
		"location": "Riga",
		"start_time": "2026-11-01T19:00:00Z",
		"end_time": "2026-11-01T22:00:00Z",
		"organizer": 3,
		"price": "25.50",
		"total_tickets": 100,
		"available_tickets": 4,
		"created_at": "2026-10-01T10:00:00Z",
		"updated_at": "2026-10-02T10:00:00Z"
	}`

	var got Event
	require.NoError(t, json.Unmarshal([]byte(raw), &got))

	want := Event{
		ID:               7,
		Name:             "Jazz Night",
		Description:      "Live jazz",
		Location:         "Riga",
		StartTime:        time.Date(2026, 11, 1, 19, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2026, 11, 1, 22, 0, 0, 0, time.UTC),
		Price:            "25.50",
		TotalTickets:     intPtr(100),
		AvailableTickets: intPtr(4),
		Organizer:        3,
		CreatedAt:        time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("event mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.LowStock())
	assert.False(t, got.SoldOut())
}

func TestEvent_NullAvailability(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"price":"10.00","available_tickets":null}`), &e))
	assert.Nil(t, e.AvailableTickets)
	assert.False(t, e.SoldOut())
	assert.False(t, e.LowStock())

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"available_tickets":0}`), &e))
	assert.True(t, e.SoldOut())
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Price
		err  bool
	}{
		{"string", `"12.30"`, "12.30", false},
		{"number", `12.3`, "12.3", false},
		{"null", `null`, "", false},
		{"garbage", `"abc"`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.raw), &p)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	assert.Equal(t, "36.90", Price("12.30").Total(3))
	assert.Equal(t, "--", Price("").Total(3))
	assert.Equal(t, "--", Price("x").Total(1))
}

func TestReservation_EventShapes(t *testing.T) {
	var nested Reservation
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"quantity":2,"event":{"id":7,"name":"Jazz Night","location":"Riga"}}`), &nested))
	assert.Equal(t, EventSummary{ID: 7, Name: "Jazz Night", Location: "Riga"}, nested.Event)

	var bare Reservation
	require.NoError(t, json.Unmarshal([]byte(`{"id":6,"quantity":1,"event":9,"name":"Ann","surname":"Lee"}`), &bare))
	assert.Equal(t, int64(9), bare.Event.ID)
	assert.Empty(t, bare.Event.Name)
	assert.Equal(t, "Ann", bare.Name)

	var bad Reservation
	require.Error(t, json.Unmarshal([]byte(`{"event":"nine"}`), &bad))
}
