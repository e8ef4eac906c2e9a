package repository

import (
	"context"

	"go4rent-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

// PermissionRepository answers role and capability questions. Capabilities are
// granted through roles or directly to a user.
type PermissionRepository interface {
	ListRoles(ctx context.Context, userID int32) ([]domain.Role, error)
	HasPermission(ctx context.Context, userID int32, capability domain.Capability) (bool, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// LockByID reads the rental and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int32) (*domain.Rental, error)
	// UpdateStatus persists status and payment_status.
	UpdateStatus(ctx context.Context, rental *domain.Rental) error
	// CountActiveByEquipment counts rentals of the equipment in the active status,
	// excluding excludeRentalID.
	CountActiveByEquipment(ctx context.Context, equipmentID, excludeRentalID int32) (int32, error)
	List(ctx context.Context, filter domain.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error)
}

type EquipmentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	LockByID(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
	IncrementRentalCounter(ctx context.Context, id int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	LockByID(ctx context.Context, id int32) (*domain.Payment, error)
	LockByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	// Update persists status, gateway_response and admin_notes.
	Update(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error)
}

type StatusHistoryRepository interface {
	Record(ctx context.Context, change *domain.StatusChange) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusChange, error)
}

type PushNotificationRepository interface {
	Create(ctx context.Context, n *domain.SentPushNotification) error
	ListByUser(ctx context.Context, userID int32, limit, offset int32) ([]domain.SentPushNotification, error)
}

// Tx exposes the repositories bound to a single database transaction.
type Tx interface {
	Rentals() RentalRepository
	Equipment() EquipmentRepository
	Payments() PaymentRepository
	History() StatusHistoryRepository
}

// Transactor runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise. fn may be invoked more than once when
// the store retries a serialization failure, so it must not have side effects
// outside tx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
