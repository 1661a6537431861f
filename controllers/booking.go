// controllers/booking.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sreepix-backend/models"
	"sreepix-backend/services"
	"sreepix-backend/storage"
	"sreepix-backend/utils"
)

// BookingController runs the owner booking flow: price the selection,
// validate the client form, render the invoice, and fire the best-effort
// reminders. The invoice is fatal on failure; reminders never are.
type BookingController struct {
	Store    storage.CatalogStore
	Invoices *services.InvoiceService
	Calendar *services.CalendarService
	SMS      *services.SMSService
}

// BookingItemInput is one chosen service with its quantity.
type BookingItemInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=1"`
}

// CreateBookingInput defines the expected JSON structure for a booking
type CreateBookingInput struct {
	Client models.ClientInfo  `json:"client" binding:"required"`
	Items  []BookingItemInput `json:"items" binding:"required,min=1"`
}

// EnquiryInput defines the public booking-enquiry form
type EnquiryInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	EventType string `json:"eventType"`
	Notes     string `json:"notes"`
}

// CreateBooking prices the selection against the current catalog, validates
// the form, and responds with the invoice PDF. Calendar reminders and the
// confirmation SMS run concurrently with rendering; their outcomes are
// reported in response headers, never in the status code.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	catalog, err := ctl.Store.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read services")
		return
	}

	var selection []models.SelectedService
	for _, item := range input.Items {
		selection = services.SetQuantity(catalog, selection, item.ServiceID, item.Quantity)
	}
	if len(selection) == 0 {
		utils.RespondWithFieldErrors(c, []utils.FieldError{
			{Field: "items", Message: "Please select at least one service"},
		})
		return
	}
	total := services.Total(selection)

	if errs := utils.ValidateBooking(input.Client, total); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	// Reminders run while the invoice renders. A reminder failure must never
	// block or roll back the invoice, and vice versa.
	summaryCh := make(chan services.Summary, 1)
	go func() {
		summaryCh <- ctl.Calendar.NotifyAll(c.Request.Context(), ctl.reminderEvents(input.Client, selection, total))
	}()

	confirmCh := make(chan services.Result, 1)
	go func() {
		confirmCh <- ctl.SMS.SendConfirmation(input.Client.Phone, input.Client.CoupleName(), total)
	}()

	pdf, filename, renderErr := ctl.Invoices.Render(input.Client, selection, total)

	summary := <-summaryCh
	confirmation := <-confirmCh

	c.Header("X-Reminders-Attempted", strconv.Itoa(summary.Attempted))
	c.Header("X-Reminders-Created", strconv.Itoa(summary.Created))
	c.Header("X-Confirmation-Sent", strconv.FormatBool(confirmation.Success))

	if renderErr != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice. Please try again.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// CreateEnquiry handles the public booking form: one date, one calendar
// reminder, one confirmation message, no invoice.
func (ctl *BookingController) CreateEnquiry(c *gin.Context) {
	var input EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if errs := utils.ValidateEnquiry(input.Name, input.Email, input.Phone, input.Date); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	eventType := input.EventType
	if eventType == "" {
		eventType = "Photography Session"
	}

	reminder := ctl.Calendar.Notify(c.Request.Context(), services.ReminderEvent{
		PersonName: input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Date:       input.Date,
		Label:      eventType,
		Notes:      input.Notes,
	})
	confirmation := ctl.SMS.SendConfirmation(input.Phone, input.Name, 0)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Booking enquiry received",
		"reminder":     reminder,
		"confirmation": confirmation,
	})
}

// TestCalendar reports whether the calendar integration is configured
// without creating an event.
func (ctl *BookingController) TestCalendar(c *gin.Context) {
	if !ctl.Calendar.Configured() {
		c.JSON(http.StatusOK, services.Result{
			Success: false,
			Message: "Google Calendar integration not configured. Please set up service account credentials.",
		})
		return
	}
	c.JSON(http.StatusOK, services.Result{Success: true, Message: "Google Calendar credentials configured"})
}

func (ctl *BookingController) reminderEvents(client models.ClientInfo, selection []models.SelectedService, total int) []services.ReminderEvent {
	lines := make([]string, len(selection))
	for i, s := range selection {
		lines[i] = fmt.Sprintf("%s (%dx)", s.Description, s.Quantity)
	}

	ceremonies := client.Ceremonies()
	events := make([]services.ReminderEvent, len(ceremonies))
	for i, ceremony := range ceremonies {
		events[i] = services.ReminderEvent{
			PersonName:  client.CoupleName(),
			Email:       client.Email,
			Phone:       client.Phone,
			Date:        ceremony.Date,
			Label:       ceremony.EventType(),
			Services:    lines,
			TotalAmount: total,
			Notes:       "Address: " + client.Address,
		}
	}
	return events
}
