package domain

import "time"

type EventType string

const (
	EventRentalRequested  EventType = "rental.requested"
	EventPaymentInitiated EventType = "payment.initiated"
)

const (
	EventRentalStatusPrefix  = "rental."
	EventPaymentStatusPrefix = "payment."
)

// RentalEventType returns the event emitted when a rental enters status.
func RentalEventType(status RentalStatus) EventType {
	return EventType(EventRentalStatusPrefix + string(status))
}

// PaymentEventType returns the event emitted when a payment enters status.
func PaymentEventType(status PaymentStatus) EventType {
	return EventType(EventPaymentStatusPrefix + string(status))
}

// Event is a committed state change handed to the notification dispatcher.
type Event struct {
	Type          EventType           `json:"type"`
	RentalID      int32               `json:"rental_id"`
	EquipmentID   int32               `json:"equipment_id"`
	PaymentID     int32               `json:"payment_id,omitempty"`
	RenterID      int32               `json:"renter_id"`
	OwnerID       *int32              `json:"owner_id,omitempty"`
	ActorID       *int32              `json:"actor_id,omitempty"`
	RentalStatus  RentalStatus        `json:"rental_status"`
	PaymentStatus RentalPaymentStatus `json:"payment_status"`
	OccurredAt    time.Time           `json:"occurred_at"`
}

// Recipients returns the users who should hear about the event.
func (e Event) Recipients() []int32 {
	ids := []int32{e.RenterID}
	if e.OwnerID != nil && *e.OwnerID != e.RenterID {
		ids = append(ids, *e.OwnerID)
	}
	return ids
}
