package models

// OrderRecord is the projected view of one orders-table row. PaymentID links
// the order back to the payment it was settled by.
type OrderRecord struct {
	ID                  string `json:"id"`
	Amount              int64  `json:"amount"`
	AmountFormatted     string `json:"amount_formatted"`
	AmountPaid          int64  `json:"amount_paid"`
	AmountPaidFormatted string `json:"amount_paid_formatted"`
	AmountDue           int64  `json:"amount_due"`
	AmountDueFormatted  string `json:"amount_due_formatted"`
	Currency            string `json:"currency"`
	Receipt             string `json:"receipt"`
	Status              string `json:"status"`
	Attempts            int64  `json:"attempts"`
	CreatedAt           string `json:"created_at"`
	PaymentID           string `json:"payment_id"`
}
