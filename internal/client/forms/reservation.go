package forms

type ReservationForm struct {
	EventID  int64  `json:"event" validate:"gt=0"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
}

var reservationMessages = messages{
	"ReservationForm.EventID":  "Event ID is required.",
	"ReservationForm.Quantity": "Quantity must be at least 1.",
}

func (f *ReservationForm) Validate() error {
	trim(&f.Name, &f.Surname)
	return check(f, reservationMessages)
}

// ValidateQuantity checks q against the remaining tickets of an event. A nil
// or zero available count means the limit is unknown.
func ValidateQuantity(q int, available *int) error {
	if q < 1 || (available != nil && *available > 0 && q > *available) {
		return &ValidationError{Field: "Quantity", Message: "Please select a valid quantity."}
	}
	return nil
}
