package service

import (
	"context"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func newEvent(typ domain.EventType, rental *domain.Rental, eq *domain.Equipment, actorID *int32, at time.Time) domain.Event {
	ev := domain.Event{
		Type:          typ,
		RentalID:      rental.ID,
		EquipmentID:   rental.EquipmentID,
		RenterID:      rental.RenterID,
		ActorID:       actorID,
		RentalStatus:  rental.Status,
		PaymentStatus: rental.PaymentStatus,
		OccurredAt:    at,
	}
	if eq != nil {
		ev.OwnerID = eq.OwnerID
	}
	return ev
}

// recordChange appends an audit row when from and to differ.
func recordChange(ctx context.Context, tx repository.Tx, entity domain.EntityType, id int32, field, from, to string, actorID *int32, source domain.ChangeSource) error {
	if from == to {
		return nil
	}
	return tx.History().Record(ctx, &domain.StatusChange{
		EntityType: entity,
		EntityID:   id,
		Field:      field,
		OldValue:   from,
		NewValue:   to,
		ActorID:    actorID,
		Source:     source,
	})
}

func notify(ctx context.Context, n Notifier, events ...domain.Event) {
	if n == nil {
		return
	}
	// Delivery outlives the request that triggered it.
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		n.Notify(ctx, ev)
	}
}
