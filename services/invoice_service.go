// services/invoice_service.go
package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"sreepix-backend/config"
	"sreepix-backend/models"
	"sreepix-backend/utils"
)

// InvoiceService renders booking invoices as PDF documents.
type InvoiceService struct {
	cfg *config.Config
	now func() time.Time
}

func NewInvoiceService(cfg *config.Config) *InvoiceService {
	return &InvoiceService{cfg: cfg, now: time.Now}
}

// Render produces the invoice PDF and its suggested filename. Rendering is
// all-or-nothing: on error no document bytes are returned and the caller
// must treat the operation as failed.
func (s *InvoiceService) Render(client models.ClientInfo, selection []models.SelectedService, total int) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header - studio identity
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(219, 39, 119)
	pdf.Text(20, 25, s.cfg.StudioName)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, 35, s.cfg.StudioTagline)
	pdf.Text(20, 42, s.cfg.StudioCities)

	pdf.SetFontSize(10)
	pdf.Text(20, 52, "MOBILE NO: "+s.cfg.StudioPhone)
	pdf.Text(20, 58, "EMAIL: "+s.cfg.StudioEmail)

	// Client details
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 75, "Client Details:")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, 85, "Groom and Bride name: "+client.CoupleName())

	y := 95.0
	for _, ceremony := range client.Ceremonies() {
		date, err := utils.ParseISODate(ceremony.Date)
		if err != nil {
			return nil, "", fmt.Errorf("render invoice: %w", err)
		}
		pdf.Text(20, y, fmt.Sprintf("%s - %s (%s)", ceremony.Label, utils.FormatDayFirst(date), ceremony.TimeOfDay))
		y += 7
	}

	pdf.Text(20, y, "Phone: "+client.Phone)
	y += 7
	pdf.Text(20, y, "Email: "+client.Email)
	y += 7
	pdf.Text(20, y, "Address: "+client.Address)
	y += 15

	// Line-item table header
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(20, y, 170, 10, "F")

	pdf.SetFontSize(10)
	pdf.Text(25, y+7, "S.No")
	pdf.Text(45, y+7, "Description")
	pdf.Text(130, y+7, "Qty")
	pdf.Text(145, y+7, "Rate")
	pdf.Text(165, y+7, "Amount")

	y += 15

	// One row per selected service, selection order preserved.
	for i, service := range selection {
		if y > 250 {
			pdf.AddPage()
			y = 20
		}

		pdf.SetFontSize(9)
		pdf.Text(25, y, fmt.Sprintf("%d", i+1))

		// Long descriptions wrap inside the column.
		if len(service.Description) > 60 {
			lines := pdf.SplitText(service.Description, 80)
			for j, line := range lines {
				pdf.Text(45, y+float64(j)*5, line)
			}
			y += float64(len(lines)-1) * 5
		} else {
			pdf.Text(45, y, service.Description)
		}

		pdf.Text(130, y, fmt.Sprintf("%d", service.Quantity))
		pdf.Text(145, y, formatAmount(service.Rate))
		pdf.Text(165, y, formatAmount(service.Amount))

		y += 12
	}

	// Total band
	y += 10
	if y > 250 {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(20, y, 170, 10, "F")

	pdf.SetFontSize(12)
	pdf.Text(45, y+7, "Total estimate amount")
	pdf.Text(165, y+7, "Rs. "+formatAmount(total))

	// Payment details
	y += 20
	if y > 240 {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, "Payment Details:")

	y += 10
	pdf.SetFont("Helvetica", "", 11)
	paymentType := "Full Payment"
	if client.PaymentType == models.PaymentAdvance {
		paymentType = "Advance Payment"
	}
	pdf.Text(20, y, "Payment Type: "+paymentType)
	y += 7
	pdf.Text(20, y, "Payment Method: "+strings.ToUpper(string(client.PaymentMethod)))
	y += 7
	pdf.Text(20, y, "Amount Paid: Rs. "+formatAmount(client.AmountPaid(total)))

	if client.PaymentType == models.PaymentAdvance {
		y += 7
		pdf.SetTextColor(220, 38, 127)
		pdf.Text(20, y, "Balance Due: Rs. "+formatAmount(client.BalanceDue(total)))
		pdf.SetTextColor(0, 0, 0)

		y += 15
		pdf.SetFontSize(10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(20, y, "Note: Balance amount to be paid before the event date.")
		pdf.SetTextColor(0, 0, 0)
	}

	// Footer
	y += 15
	if y > 270 {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFontSize(10)
	pdf.Text(20, y, "Thank you for choosing "+s.cfg.StudioName+"!")
	pdf.Text(20, y+10, "Invoice generated on: "+utils.FormatDayFirst(s.now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render invoice: %w", err)
	}

	return buf.Bytes(), s.filename(client), nil
}

// filename is deterministic for a given couple and generation date.
func (s *InvoiceService) filename(client models.ClientInfo) string {
	sanitize := func(name string) string {
		return strings.Join(strings.Fields(strings.TrimSpace(name)), "_")
	}
	return fmt.Sprintf("SREE_PIX_Invoice_%s_%s_%s.pdf",
		sanitize(client.GroomName), sanitize(client.BrideName), s.now().Format("2006-01-02"))
}

// formatAmount renders whole rupees with Indian digit grouping (1,50,000).
func formatAmount(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		digits = strings.Join(groups, ",") + "," + tail
	}
	if negative {
		return "-" + digits
	}
	return digits
}
