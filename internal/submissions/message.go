package submissions

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/techsummit/backend/internal/models"
)

var printer = message.NewPrinter(language.English)

func bookingBody(req models.BookingRequest) string {
	return printer.Sprintf("%s Ticket x %d = $%v", req.TicketTier, req.Quantity, formatAmount(req.Total))
}

// formatAmount renders an amount with thousands separators, e.g. 1497 -> "1,497".
func formatAmount(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
