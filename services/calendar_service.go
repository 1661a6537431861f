// services/calendar_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"sreepix-backend/config"
	"sreepix-backend/utils"
)

// ReminderEvent describes one booking date to put on the studio calendar.
type ReminderEvent struct {
	PersonName  string
	Email       string
	Phone       string
	Date        string // YYYY-MM-DD
	Label       string // e.g. "Wedding Ceremony"
	Services    []string
	TotalAmount int
	Notes       string
}

// Result is the notifier's only outcome shape. Notify never returns a Go
// error: every failure, from missing credentials to a rejected API call,
// lands here so a failed reminder can never abort the booking flow.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Summary aggregates a multi-date fan-out. Partial success (some dates
// created, some not) is a normal end state.
type Summary struct {
	Attempted int      `json:"attempted"`
	Created   int      `json:"created"`
	Results   []Result `json:"results"`
}

// CalendarService creates reminder events against the studio's Google
// Calendar using a service account.
type CalendarService struct {
	cfg *config.Config
}

func NewCalendarService(cfg *config.Config) *CalendarService {
	return &CalendarService{cfg: cfg}
}

// Configured reports whether all three required credential values are set.
func (s *CalendarService) Configured() bool {
	return s.cfg.GoogleServiceAccountEmail != "" &&
		s.cfg.GoogleServiceAccountKey != "" &&
		s.cfg.GoogleCalendarID != ""
}

// Notify creates one reminder event. All preconditions are checked before
// any network traffic: credentials must be configured and the date must be a
// strict YYYY-MM-DD calendar date.
func (s *CalendarService) Notify(ctx context.Context, event ReminderEvent) Result {
	if !s.Configured() {
		return Result{
			Success: false,
			Message: "Google Calendar integration not configured. Please set up service account credentials.",
		}
	}

	date, err := utils.ParseISODate(event.Date)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}

	loc, err := time.LoadLocation(s.cfg.ReminderTimezone)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("invalid reminder timezone %q", s.cfg.ReminderTimezone)}
	}

	// The env var often carries the PEM with literal \n sequences.
	key := strings.ReplaceAll(s.cfg.GoogleServiceAccountKey, `\n`, "\n")
	conf := &jwt.Config{
		Email:      s.cfg.GoogleServiceAccountEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("calendar client setup failed")
		return Result{Success: false, Message: "Failed to create calendar reminder"}
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), s.cfg.ReminderStartHour, 0, 0, 0, loc)
	end := time.Date(date.Year(), date.Month(), date.Day(), s.cfg.ReminderEndHour, 0, 0, 0, loc)

	_, err = svc.Events.Insert(s.cfg.GoogleCalendarID, &calendar.Event{
		Summary:     fmt.Sprintf("%s - %s", event.Label, event.PersonName),
		Description: s.describe(event),
		Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: s.cfg.ReminderTimezone},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: s.cfg.ReminderTimezone},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60}, // 1 day before
				{Method: "popup", Minutes: 60},      // 1 hour before
				{Method: "email", Minutes: 60},      // 1 hour before
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("date", event.Date).Msg("calendar event creation failed")
		return Result{Success: false, Message: "Failed to create calendar reminder"}
	}

	return Result{Success: true, Message: "Calendar reminder created successfully"}
}

// NotifyAll fans out one Notify per event and waits for all of them,
// successes and failures alike. Ordering between the per-date calls is not
// guaranteed; Results is indexed by the input order.
func (s *CalendarService) NotifyAll(ctx context.Context, events []ReminderEvent) Summary {
	results := make([]Result, len(events))

	var wg sync.WaitGroup
	for i, event := range events {
		wg.Add(1)
		go func(i int, event ReminderEvent) {
			defer wg.Done()
			results[i] = s.Notify(ctx, event)
		}(i, event)
	}
	wg.Wait()

	summary := Summary{Attempted: len(events), Results: results}
	for _, r := range results {
		if r.Success {
			summary.Created++
		}
	}
	return summary
}

func (s *CalendarService) describe(event ReminderEvent) string {
	var b strings.Builder
	b.WriteString("Photography Session Booking\n\n")
	fmt.Fprintf(&b, "Client: %s\n", event.PersonName)
	fmt.Fprintf(&b, "Phone: %s\n", event.Phone)
	fmt.Fprintf(&b, "Email: %s\n", event.Email)
	fmt.Fprintf(&b, "Event Type: %s\n", event.Label)
	if len(event.Services) > 0 {
		b.WriteString("Services:\n")
		for _, svc := range event.Services {
			fmt.Fprintf(&b, "- %s\n", svc)
		}
	}
	fmt.Fprintf(&b, "Total Amount: Rs. %s\n", formatAmount(event.TotalAmount))
	if event.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", event.Notes)
	}
	return b.String()
}
