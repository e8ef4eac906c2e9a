package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending            PaymentStatus = "pending"
	PaymentStatusPaid               PaymentStatus = "paid"
	PaymentStatusFailed             PaymentStatus = "failed"
	PaymentStatusRefunded           PaymentStatus = "refunded"
	PaymentStatusCancelledByGateway PaymentStatus = "cancelled_by_gateway"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusCancelledByGateway:
		return true
	}
	return false
}

// IsTerminal reports whether the gateway may no longer move the payment.
func (s PaymentStatus) IsTerminal() bool {
	return s != PaymentStatusPending
}

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodWallet || m == PaymentMethodBankTransfer
}

type Payment struct {
	ID              int32           `json:"id"`
	RentalID        int32           `json:"rental_id"`
	PayerID         int32           `json:"payer_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"payment_method"`
	TransactionID   string          `json:"transaction_id"`
	Status          PaymentStatus   `json:"status"`
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	AdminNotes      string          `json:"admin_notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type GatewayOutcome string

const (
	GatewayOutcomeSuccess   GatewayOutcome = "success"
	GatewayOutcomeFailed    GatewayOutcome = "failed"
	GatewayOutcomeCancelled GatewayOutcome = "cancelled"
)

func (o GatewayOutcome) IsValid() bool {
	return o == GatewayOutcomeSuccess || o == GatewayOutcomeFailed || o == GatewayOutcomeCancelled
}

// GatewayCallback is one inbound notification from the payment gateway.
// Payload is the raw request body, stored verbatim on the payment.
type GatewayCallback struct {
	TransactionID string
	Outcome       GatewayOutcome
	Payload       json.RawMessage
}

// PaymentFilter narrows payment listings. Zero values mean "no filter".
type PaymentFilter struct {
	PayerID  int32
	OwnerID  int32
	RentalID int32
	Status   PaymentStatus
}

// GatewayRequest is the outbound request asking the gateway to collect a payment.
type GatewayRequest struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"payment_method"`
}
