package models

// RefundRecord is the projected view of one refunds-table row. PaymentID
// links the refund back to the refunded payment.
type RefundRecord struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Currency        string `json:"currency"`
	PaymentID       string `json:"payment_id"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	SpeedRequested  string `json:"speed_requested"`
	SpeedProcessed  string `json:"speed_processed"`
	Receipt         string `json:"receipt"`
}
