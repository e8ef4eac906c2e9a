package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPendingApproval RentalStatus = "pending_approval"
	RentalStatusPendingPayment  RentalStatus = "pending_payment"
	RentalStatusApproved        RentalStatus = "approved"
	RentalStatusPaymentFailed   RentalStatus = "payment_failed"
	RentalStatusActive          RentalStatus = "active"
	RentalStatusCompleted       RentalStatus = "completed"
	RentalStatusRejected        RentalStatus = "rejected"
	RentalStatusCancelled       RentalStatus = "cancelled"
)

// IsValid reports whether s is one of the known rental statuses.
func (s RentalStatus) IsValid() bool {
	switch s {
	case RentalStatusPendingApproval, RentalStatusPendingPayment, RentalStatusApproved,
		RentalStatusPaymentFailed, RentalStatusActive, RentalStatusCompleted,
		RentalStatusRejected, RentalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusRejected || s == RentalStatusCancelled
}

type RentalPaymentStatus string

const (
	RentalPaymentPending    RentalPaymentStatus = "pending"
	RentalPaymentProcessing RentalPaymentStatus = "processing"
	RentalPaymentPaid       RentalPaymentStatus = "paid"
	RentalPaymentFailed     RentalPaymentStatus = "failed"
)

type Rental struct {
	ID              int32               `json:"id"`
	RenterID        int32               `json:"renter_id"`
	EquipmentID     int32               `json:"equipment_id"`
	StartDatetime   time.Time           `json:"start_datetime"`
	EndDatetime     time.Time           `json:"end_datetime"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          RentalStatus        `json:"status"`
	PaymentStatus   RentalPaymentStatus `json:"payment_status"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	PickupAddress   *string             `json:"pickup_address,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// RentalFilter narrows rental listings. Zero values mean "no filter".
type RentalFilter struct {
	RenterID    int32
	OwnerID     int32
	EquipmentID int32
	Status      RentalStatus
}
