// services/sms_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"sreepix-backend/config"
)

// SMSService sends booking confirmations over Twilio. Like the calendar
// notifier it is strictly best-effort: a failed or unconfigured send is
// reported in the Result and never blocks a booking.
type SMSService struct {
	cfg    *config.Config
	client *twilio.RestClient
}

func NewSMSService(cfg *config.Config) *SMSService {
	return &SMSService{
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
	}
}

func (s *SMSService) configured() bool {
	return s.cfg.TwilioAccountSID != "" && s.cfg.TwilioAuthToken != ""
}

// SendConfirmation messages the client that the booking was recorded.
// WhatsApp is preferred when the phone is in E.164 form and a WhatsApp
// sender is configured, mirroring how clients usually reach the studio.
func (s *SMSService) SendConfirmation(phone, personName string, total int) Result {
	if !s.configured() {
		return Result{Success: false, Message: "SMS integration not configured"}
	}

	message := fmt.Sprintf(
		"Hi %s, your booking with %s is confirmed. Total estimate: Rs. %s. We look forward to your event!",
		personName, s.cfg.StudioName, formatAmount(total),
	)

	to := phone
	from := s.cfg.TwilioPhoneNumber
	if strings.HasPrefix(phone, "+") && s.cfg.TwilioWhatsAppNumber != "" {
		to = "whatsapp:" + phone
		from = "whatsapp:" + s.cfg.TwilioWhatsAppNumber
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", phone).Msg("confirmation message failed")
		return Result{Success: false, Message: "Failed to send confirmation message"}
	}
	if resp.Sid != nil {
		log.Info().Str("to", phone).Str("sid", *resp.Sid).Msg("confirmation message sent")
	}
	return Result{Success: true, Message: "Confirmation message sent"}
}
