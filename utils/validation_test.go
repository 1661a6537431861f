package utils

import (
	"testing"
	"time"

	"sreepix-backend/models"
)

func validClient() models.ClientInfo {
	return models.ClientInfo{
		GroomName:     "Arun",
		BrideName:     "Priya",
		WeddingDate:   "2026-01-15",
		Phone:         "+91 98765 43210",
		Email:         "arun.priya@example.com",
		Address:       "12 Temple Street, Namakkal",
		PaymentType:   models.PaymentFull,
		PaymentMethod: models.MethodCash,
	}
}

func fieldsOf(errs []FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidateBookingValidForm(t *testing.T) {
	if errs := ValidateBooking(validClient(), 5000); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateBookingAllDatesBlankIsValid(t *testing.T) {
	client := validClient()
	client.WeddingDate = ""
	if errs := ValidateBooking(client, 5000); len(errs) != 0 {
		t.Fatalf("expected no errors with all dates blank, got %v", errs)
	}
}

func TestValidateBookingRequiredFields(t *testing.T) {
	client := models.ClientInfo{PaymentType: models.PaymentFull}
	fields := fieldsOf(ValidateBooking(client, 5000))

	for _, want := range []string{"groomName", "brideName", "phone", "email", "address"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing error for %s; got %v", want, fields)
		}
	}
}

func TestValidateBookingWhitespaceOnlyFields(t *testing.T) {
	client := validClient()
	client.GroomName = "   "
	fields := fieldsOf(ValidateBooking(client, 5000))
	if _, ok := fields["groomName"]; !ok {
		t.Errorf("whitespace-only groom name accepted")
	}
}

func TestValidateBookingEmailShape(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@b", "a b@c.com", "@c.com"} {
		client := validClient()
		client.Email = bad
		fields := fieldsOf(ValidateBooking(client, 5000))
		if _, ok := fields["email"]; !ok {
			t.Errorf("email %q accepted", bad)
		}
	}
}

func TestValidateBookingPhoneShape(t *testing.T) {
	for _, bad := range []string{"12345", "abcdefghijk", "98-76"} {
		client := validClient()
		client.Phone = bad
		fields := fieldsOf(ValidateBooking(client, 5000))
		if _, ok := fields["phone"]; !ok {
			t.Errorf("phone %q accepted", bad)
		}
	}

	for _, good := range []string{"9876543210", "+91 98765 43210", "(044) 2765-4321"} {
		client := validClient()
		client.Phone = good
		fields := fieldsOf(ValidateBooking(client, 5000))
		if msg, ok := fields["phone"]; ok {
			t.Errorf("phone %q rejected: %s", good, msg)
		}
	}
}

func TestValidateBookingAdvanceBounds(t *testing.T) {
	tests := []struct {
		name    string
		advance int
		total   int
		wantErr bool
	}{
		{"zero advance", 0, 5000, true},
		{"negative advance", -100, 5000, true},
		{"equal to total", 5000, 5000, true},
		{"above total", 6000, 5000, true},
		{"just below total", 4999, 5000, false},
		{"typical advance", 2000, 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := validClient()
			client.PaymentType = models.PaymentAdvance
			client.AdvanceAmount = tt.advance

			fields := fieldsOf(ValidateBooking(client, tt.total))
			_, got := fields["advanceAmount"]
			if got != tt.wantErr {
				t.Errorf("advance %d of %d: error = %v, want %v", tt.advance, tt.total, got, tt.wantErr)
			}
		})
	}
}

func TestValidateBookingFullPaymentIgnoresAdvance(t *testing.T) {
	client := validClient()
	client.AdvanceAmount = 0
	if errs := ValidateBooking(client, 5000); len(errs) != 0 {
		t.Fatalf("full payment with zero advance should validate, got %v", errs)
	}
}

func TestValidateBookingReturnsAllErrorsAtOnce(t *testing.T) {
	client := models.ClientInfo{
		Email:         "bad",
		Phone:         "123",
		PaymentType:   models.PaymentAdvance,
		AdvanceAmount: 0,
	}
	errs := ValidateBooking(client, 5000)
	if len(errs) < 5 {
		t.Fatalf("expected every failing field reported, got %d: %v", len(errs), errs)
	}
}

func TestValidateBookingMalformedCeremonyDate(t *testing.T) {
	client := validClient()
	client.WeddingDate = "15/01/2026"
	fields := fieldsOf(ValidateBooking(client, 5000))
	if _, ok := fields["dates"]; !ok {
		t.Errorf("malformed wedding date accepted")
	}
}

func TestValidateEnquiryRequiresFutureDate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	fields := fieldsOf(ValidateEnquiry("Arun", "arun@example.com", "9876543210", yesterday))
	if _, ok := fields["date"]; !ok {
		t.Errorf("past date accepted")
	}

	today := time.Now().Format("2006-01-02")
	fields = fieldsOf(ValidateEnquiry("Arun", "arun@example.com", "9876543210", today))
	if msg, ok := fields["date"]; ok {
		t.Errorf("today rejected: %s", msg)
	}
}

func TestValidateEnquiryRequiresDate(t *testing.T) {
	fields := fieldsOf(ValidateEnquiry("Arun", "arun@example.com", "9876543210", ""))
	if _, ok := fields["date"]; !ok {
		t.Errorf("missing date accepted")
	}
}
