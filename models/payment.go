package models

// PaymentStatusFailed marks gateway payments that never went through; rows
// with this status are excluded from lookup results.
const PaymentStatusFailed = "failed"

// DefaultCurrency is assumed when a payment row carries no currency cell.
const DefaultCurrency = "INR"

// PaymentRecord is the projected view of one payments-table row. Every
// declared field is always present in the JSON body; absent source cells
// read as "" or 0, and each amount carries the raw minor-unit value next to
// its display string.
type PaymentRecord struct {
	ID                      string `json:"id"`
	Amount                  int64  `json:"amount"`
	AmountFormatted         string `json:"amount_formatted"`
	Currency                string `json:"currency"`
	Status                  string `json:"status"`
	OrderID                 string `json:"order_id"`
	Method                  string `json:"method"`
	AmountRefunded          int64  `json:"amount_refunded"`
	AmountRefundedFormatted string `json:"amount_refunded_formatted"`
	RefundStatus            string `json:"refund_status"`
	Description             string `json:"description"`
	Email                   string `json:"email"`
	Contact                 string `json:"contact"`
	ErrorDescription        string `json:"error_description"`
	CreatedAt               string `json:"created_at"`
	Receipt                 string `json:"receipt"`
}
