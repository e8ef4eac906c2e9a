package service

import (
	"context"
	"time"

	"go4rent-backend/internal/domain"
)

// Authorizer is the authorization oracle. It only answers questions.
type Authorizer interface {
	Roles(ctx context.Context, actorID int32) (domain.RoleSet, error)
	Can(ctx context.Context, actorID int32, capability domain.Capability) (bool, error)
}

// Notifier receives committed events. Notify must not block the caller on
// delivery, and delivery failures never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

// PaymentGateway sends the outbound payment request. The gateway answers
// later through the callback endpoint.
type PaymentGateway interface {
	RequestPayment(ctx context.Context, req domain.GatewayRequest) error
}

// ListScope selects whose records a list call returns.
type ListScope string

const (
	ScopeMine  ListScope = "mine"  // records where the actor is renter or payer
	ScopeOwned ListScope = "owned" // records on equipment the actor owns
	ScopeAll   ListScope = "all"   // every record, for managers
)

type CreateRentalRequest struct {
	RenterID        int32
	EquipmentID     int32
	Start           time.Time
	End             time.Time
	DeliveryAddress *string
	PickupAddress   *string
}

type RentalService interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error)
	TransitionRentalStatus(ctx context.Context, actorID, rentalID int32, to domain.RentalStatus) (*domain.Rental, error)
	GetRental(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, actorID int32, scope ListScope, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)
}

type PaymentService interface {
	// InitiatePayment returns the pending payment and the checkout URL for it.
	InitiatePayment(ctx context.Context, renterID, rentalID int32, method domain.PaymentMethod) (*domain.Payment, string, error)
	HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) (*domain.Payment, error)
	AdminSetPaymentStatus(ctx context.Context, actorID, paymentID int32, status domain.PaymentStatus, notes string) (*domain.Payment, error)
	GetPayment(ctx context.Context, actorID, paymentID int32) (*domain.Payment, error)
	ListPayments(ctx context.Context, actorID int32, scope ListScope, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error)
}

// EmailSender delivers one email. Implementations exist for SMTP and SendGrid.
type EmailSender interface {
	SendEmail(ctx context.Context, to, toName, subject, body string) error
}

// PushSender delivers one push notification to a device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}

// EventPublisher forwards events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
