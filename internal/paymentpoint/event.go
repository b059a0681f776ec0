package paymentpoint

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Status values PaymentPoint uses to signal a successful payment. Events can
// carry either field; one of them matching is sufficient.
const (
	NotificationStatusPaymentSuccessful = "payment_successful"
	TransactionStatusSuccess            = "success"
)

// Event is a payment notification delivered to the webhook endpoint.
//
// The payload is loosely structured on the provider side, so it is validated
// and normalized here at the boundary before any business logic sees it.
type Event struct {
	TransactionID      TransactionID   `json:"transaction_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	NotificationStatus string          `json:"notification_status"`
	TransactionStatus  string          `json:"transaction_status"`
	Customer           Customer        `json:"customer"`
}

// Customer identifies the payer of a payment event.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Successful reports whether the event notifies about a completed payment.
func (e Event) Successful() bool {
	return e.NotificationStatus == NotificationStatusPaymentSuccessful ||
		e.TransactionStatus == TransactionStatusSuccess
}

// TransactionID is the provider-issued reference for a payment. PaymentPoint
// sends it as a JSON string or number depending on the event type, so both
// are accepted and normalized to a string.
type TransactionID string

func (id *TransactionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TransactionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*id = TransactionID(n.String())
	return nil
}

func (id TransactionID) String() string {
	return string(id)
}
