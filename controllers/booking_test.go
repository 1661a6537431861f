package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"sreepix-backend/models"
)

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	items := []models.ServiceItem{
		{ID: "s1", Description: "Traditional photography", Category: models.CategoryUrudhi, Unit: "1 Camera", Rate: 1000},
		{ID: "s2", Description: "Candid photography", Category: models.CategoryMainEvents, Unit: "1 Camera", Rate: 15000},
	}
	if err := env.store.Replace(items); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

const validBookingBody = `{
	"client": {
		"groomName": "Arun",
		"brideName": "Priya",
		"urudhiDate": "2026-01-14",
		"weddingDate": "2026-01-15",
		"phone": "+91 98765 43210",
		"email": "arun.priya@example.com",
		"address": "12 Temple Street, Namakkal",
		"paymentType": "advance",
		"paymentMethod": "upi",
		"advanceAmount": 2000
	},
	"items": [
		{"serviceId": "s1", "quantity": 3},
		{"serviceId": "s2", "quantity": 1}
	]
}`

func TestCreateBookingReturnsInvoicePDF(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	w := env.do(t, http.MethodPost, "/api/bookings", validBookingBody, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("body is not a PDF document")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "SREE_PIX_Invoice_Arun_Priya_") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	// Two dates booked, calendar unconfigured: every reminder attempted,
	// none created, booking still succeeds.
	if got := w.Header().Get("X-Reminders-Attempted"); got != "2" {
		t.Errorf("X-Reminders-Attempted = %q, want 2", got)
	}
	if got := w.Header().Get("X-Reminders-Created"); got != "0" {
		t.Errorf("X-Reminders-Created = %q, want 0", got)
	}
	if got := w.Header().Get("X-Confirmation-Sent"); got != "false" {
		t.Errorf("X-Confirmation-Sent = %q, want false", got)
	}
}

func TestCreateBookingValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	body := strings.Replace(validBookingBody, `"advanceAmount": 2000`, `"advanceAmount": 18000`, 1)
	w := env.do(t, http.MethodPost, "/api/bookings", body, true)
	if w.Code != 422 {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	found := false
	for _, e := range resp.Errors {
		if e.Field == "advanceAmount" {
			found = true
		}
	}
	if !found {
		t.Errorf("no advanceAmount error in %v", resp.Errors)
	}
}

func TestCreateBookingUnknownItemsOnly(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	body := strings.Replace(validBookingBody, `"s1"`, `"ghost-1"`, 1)
	body = strings.Replace(body, `"s2"`, `"ghost-2"`, 1)

	w := env.do(t, http.MethodPost, "/api/bookings", body, true)
	if w.Code != 422 {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	w := env.do(t, http.MethodPost, "/api/bookings", validBookingBody, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateEnquiryRejectsPastDate(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Arun","email":"arun@example.com","phone":"9876543210","date":"2020-01-01"}`
	w := env.do(t, http.MethodPost, "/api/enquiries", body, false)
	if w.Code != 422 {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}
}

func TestCreateEnquiryReportsSoftFailures(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Arun","email":"arun@example.com","phone":"9876543210","date":"2099-06-01","eventType":"Reception"}`
	w := env.do(t, http.MethodPost, "/api/enquiries", body, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool `json:"success"`
		Reminder struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		} `json:"reminder"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Error("enquiry itself should succeed")
	}
	if resp.Reminder.Success {
		t.Error("reminder should fail soft without calendar credentials")
	}
}

func TestCalendarTestEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/calendar/test", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.Success {
		t.Error("calendar should report unconfigured")
	}
	if !strings.Contains(result.Message, "not configured") {
		t.Errorf("message %q does not name the missing configuration", result.Message)
	}
}
