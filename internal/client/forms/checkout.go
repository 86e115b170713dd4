package forms

import (
	"strings"
	"unicode"
)

const maxCardDigits = 16

type CheckoutForm struct {
	EventID  int64 `json:"event_id" validate:"gt=0"`
	Quantity int   `json:"quantity" validate:"gte=1"`

	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`

	CardNumber string `json:"card_number" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVC        string `json:"cvc" validate:"required"`
}

// Field order matters: the first failing field decides the message, and the
// checks run quantity, then holder, then card.
var checkoutMessages = messages{
	"CheckoutForm.EventID":    "Event ID is required.",
	"CheckoutForm.Quantity":   "Quantity must be at least 1.",
	"CheckoutForm.Name":       "Please enter your name and surname.",
	"CheckoutForm.Surname":    "Please enter your name and surname.",
	"CheckoutForm.CardNumber": "Please enter all card details.",
	"CheckoutForm.Expiry":     "Please enter all card details.",
	"CheckoutForm.CVC":        "Please enter all card details.",
}

// Validate trims every text field, formats the card number and expiry, and
// checks the form.
func (f *CheckoutForm) Validate() error {
	trim(&f.Name, &f.Surname, &f.CardNumber, &f.Expiry, &f.CVC)
	f.CardNumber = FormatCardNumber(f.CardNumber)
	f.Expiry = FormatExpiry(f.Expiry)
	return check(f, checkoutMessages)
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}

// FormatCardNumber keeps at most sixteen digits and groups them by four.
// Fewer than four digits are returned ungrouped.
func FormatCardNumber(s string) string {
	d := digits(s)
	if len(d) < 4 {
		return d
	}
	if len(d) > maxCardDigits {
		d = d[:maxCardDigits]
	}

	var b strings.Builder
	for i := 0; i < len(d); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d[i:min(i+4, len(d))])
	}
	return b.String()
}

// FormatExpiry renders the digits of s as MM/YY once at least two are present.
func FormatExpiry(s string) string {
	d := digits(s)
	if len(d) < 2 {
		return d
	}
	return d[:2] + "/" + d[2:min(4, len(d))]
}
