package lookup

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/arjun-kp/PayTrail/models"
	"github.com/arjun-kp/PayTrail/tabular"
)

// Amounts are stored in minor units (paise) and displayed in rupees with
// Indian digit grouping, e.g. 1234500 -> "₹12,345.00".
var inr = message.NewPrinter(language.MustParse("en-IN"))

// ZeroAmount is the display string for zero, missing or invalid amounts.
const ZeroAmount = "₹0.00"

// FormatAmount renders a minor-unit amount as a rupee display string with
// exactly two fraction digits. Zero and negative amounts render as
// ZeroAmount.
func FormatAmount(minor int64) string {
	if minor <= 0 {
		return ZeroAmount
	}
	return inr.Sprintf("₹%v", number.Decimal(
		float64(minor)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// ProjectPayment maps a payments-table row into its output record. Absent
// columns and cells fall back to the documented defaults rather than
// failing; currency alone defaults to INR.
func ProjectPayment(row tabular.Row) models.PaymentRecord {
	amount := row.GetInt("amount")
	refunded := row.GetInt("amount_refunded")

	currency := row.Get("currency")
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return models.PaymentRecord{
		ID:                      row.Get("id"),
		Amount:                  amount,
		AmountFormatted:         FormatAmount(amount),
		Currency:                currency,
		Status:                  row.Get("status"),
		OrderID:                 row.Get("order_id"),
		Method:                  row.Get("method"),
		AmountRefunded:          refunded,
		AmountRefundedFormatted: FormatAmount(refunded),
		RefundStatus:            row.Get("refund_status"),
		Description:             row.Get("description"),
		Email:                   row.Get("email"),
		Contact:                 row.Get("contact"),
		ErrorDescription:        row.Get("error_description"),
		CreatedAt:               row.Get("created_at"),
		Receipt:                 row.Get("receipt"),
	}
}

// ProjectOrder maps an orders-table row into its output record.
func ProjectOrder(row tabular.Row) models.OrderRecord {
	amount := row.GetInt("amount")
	paid := row.GetInt("amount_paid")
	due := row.GetInt("amount_due")

	return models.OrderRecord{
		ID:                  row.Get("id"),
		Amount:              amount,
		AmountFormatted:     FormatAmount(amount),
		AmountPaid:          paid,
		AmountPaidFormatted: FormatAmount(paid),
		AmountDue:           due,
		AmountDueFormatted:  FormatAmount(due),
		Currency:            row.Get("currency"),
		Receipt:             row.Get("receipt"),
		Status:              row.Get("status"),
		Attempts:            row.GetInt("attempts"),
		CreatedAt:           row.Get("created_at"),
		PaymentID:           row.Get("payment_id"),
	}
}

// ProjectRefund maps a refunds-table row into its output record.
func ProjectRefund(row tabular.Row) models.RefundRecord {
	amount := row.GetInt("amount")

	return models.RefundRecord{
		ID:              row.Get("id"),
		Amount:          amount,
		AmountFormatted: FormatAmount(amount),
		Currency:        row.Get("currency"),
		PaymentID:       row.Get("payment_id"),
		Status:          row.Get("status"),
		CreatedAt:       row.Get("created_at"),
		SpeedRequested:  row.Get("speed_requested"),
		SpeedProcessed:  row.Get("speed_processed"),
		Receipt:         row.Get("receipt"),
	}
}
