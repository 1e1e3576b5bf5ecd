package models

// CustomerDataResponse is the lookup endpoint's envelope. Errors travel
// in-body with success=false; the three arrays are always present and empty
// on failure, and the identity echoes appear only on success.
type CustomerDataResponse struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
	Payments      []PaymentRecord `json:"payments"`
	Orders        []OrderRecord   `json:"orders"`
	Refunds       []RefundRecord  `json:"refunds"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
}

// FailureResponse builds the failure envelope with empty result arrays.
func FailureResponse(message string) CustomerDataResponse {
	return CustomerDataResponse{
		Success:  false,
		Error:    message,
		Payments: []PaymentRecord{},
		Orders:   []OrderRecord{},
		Refunds:  []RefundRecord{},
	}
}
