// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"

	"sreepix-backend/models"
)

// FieldError tags a validation message to the offending form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)
)

// ValidateEmail checks the simple local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks for an optional + followed by at least 10
// digit-like characters (spaces, dashes and parentheses count).
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateBooking checks a booking form against the invoice total. It
// returns every failing field at once rather than stopping at the first, so
// the form can highlight all of them. An empty slice means the form is
// valid. No event date is required; a booking with all four dates blank
// still validates.
func ValidateBooking(client models.ClientInfo, total int) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(client.GroomName) == "" {
		errs = append(errs, FieldError{"groomName", "Groom name is required"})
	}
	if strings.TrimSpace(client.BrideName) == "" {
		errs = append(errs, FieldError{"brideName", "Bride name is required"})
	}

	if strings.TrimSpace(client.Phone) == "" {
		errs = append(errs, FieldError{"phone", "Phone number is required"})
	} else if !ValidatePhone(client.Phone) {
		errs = append(errs, FieldError{"phone", "Please enter a valid phone number"})
	}

	if strings.TrimSpace(client.Email) == "" {
		errs = append(errs, FieldError{"email", "Email is required"})
	} else if !ValidateEmail(client.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}

	if strings.TrimSpace(client.Address) == "" {
		errs = append(errs, FieldError{"address", "Address is required"})
	}

	for _, ceremony := range client.Ceremonies() {
		if _, err := ParseISODate(ceremony.Date); err != nil {
			errs = append(errs, FieldError{"dates", ceremony.Label + " date must be a valid YYYY-MM-DD date"})
		}
	}

	if client.PaymentType == models.PaymentAdvance {
		if client.AdvanceAmount <= 0 {
			errs = append(errs, FieldError{"advanceAmount", "Advance amount is required"})
		} else if client.AdvanceAmount >= total {
			errs = append(errs, FieldError{"advanceAmount", "Advance amount cannot be equal to or greater than total amount"})
		}
	}

	return errs
}

// ValidateEnquiry checks the public booking-enquiry form. Unlike the owner
// booking form it requires a date, and the date must be today or later.
func ValidateEnquiry(name, email, phone, date string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	}
	if strings.TrimSpace(email) == "" {
		errs = append(errs, FieldError{"email", "Email is required"})
	} else if !ValidateEmail(email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	if strings.TrimSpace(phone) == "" {
		errs = append(errs, FieldError{"phone", "Phone number is required"})
	} else if !ValidatePhone(phone) {
		errs = append(errs, FieldError{"phone", "Please enter a valid phone number"})
	}

	if date == "" {
		errs = append(errs, FieldError{"date", "Preferred date is required"})
	} else if parsed, err := ParseISODate(date); err != nil {
		errs = append(errs, FieldError{"date", "Please enter a valid date"})
	} else if parsed.Before(BeginningOfDay(time.Now())) {
		errs = append(errs, FieldError{"date", "Please select a future date"})
	}

	return errs
}
