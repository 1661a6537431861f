package models

type PaymentType string

const (
	PaymentAdvance PaymentType = "advance"
	PaymentFull    PaymentType = "full"
)

type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodUPI  PaymentMethod = "upi"
)

// ClientInfo is the booking record submitted once per invoice. It is never
// persisted; the generated PDF is the only artifact that outlives the
// request. Ceremony dates are ISO calendar dates and each is independently
// optional.
type ClientInfo struct {
	GroomName     string        `json:"groomName"`
	BrideName     string        `json:"brideName"`
	UrudhiDate    string        `json:"urudhiDate"`
	EnnaiSeerDate string        `json:"ennaiSeerDate"`
	ReceptionDate string        `json:"receptionDate"`
	WeddingDate   string        `json:"weddingDate"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentType   PaymentType   `json:"paymentType"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	AdvanceAmount int           `json:"advanceAmount"`
}

// CoupleName is the "Groom & Bride" display form used on invoices and
// calendar events.
func (c ClientInfo) CoupleName() string {
	return c.GroomName + " & " + c.BrideName
}

// Ceremony pairs a booking date with its display label and the fixed
// time-of-day tag printed on the invoice.
type Ceremony struct {
	Label     string
	Date      string
	TimeOfDay string
}

// EventType is the calendar-event name for the ceremony.
func (e Ceremony) EventType() string {
	if e.Label == "Reception" {
		return e.Label
	}
	return e.Label + " Ceremony"
}

// Ceremonies returns the booked ceremonies in canonical order, skipping
// blank dates. The time-of-day tags label the invoice only; the calendar
// reminder window is configured separately.
func (c ClientInfo) Ceremonies() []Ceremony {
	all := []Ceremony{
		{Label: "Urudhi", Date: c.UrudhiDate, TimeOfDay: "Morning"},
		{Label: "Ennai Seer", Date: c.EnnaiSeerDate, TimeOfDay: "Afternoon"},
		{Label: "Reception", Date: c.ReceptionDate, TimeOfDay: "Evening"},
		{Label: "Wedding", Date: c.WeddingDate, TimeOfDay: "Morning"},
	}
	booked := make([]Ceremony, 0, len(all))
	for _, e := range all {
		if e.Date != "" {
			booked = append(booked, e)
		}
	}
	return booked
}

// BalanceDue is the amount outstanding after the recorded payment. Always 0
// for full payment.
func (c ClientInfo) BalanceDue(total int) int {
	if c.PaymentType == PaymentFull {
		return 0
	}
	return total - c.AdvanceAmount
}

// AmountPaid is advanceAmount for advance bookings and the full total
// otherwise.
func (c ClientInfo) AmountPaid(total int) int {
	if c.PaymentType == PaymentAdvance {
		return c.AdvanceAmount
	}
	return total
}
