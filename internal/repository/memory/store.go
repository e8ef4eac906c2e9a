package memory

import (
	"context"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

// The store* types serve reads against committed state and run each write in
// its own transaction.

type storeRentals struct{ s *Store }

func (r *storeRentals) Create(ctx context.Context, rt *domain.Rental) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Rentals().Create(ctx, rt) })
}

func (r *storeRentals) GetByID(ctx context.Context, id int32) (rt *domain.Rental, err error) {
	err = r.s.view(func(t *tx) error {
		rt, err = t.Rentals().GetByID(ctx, id)
		return err
	})
	return rt, err
}

func (r *storeRentals) LockByID(ctx context.Context, id int32) (*domain.Rental, error) {
	return r.GetByID(ctx, id)
}

func (r *storeRentals) UpdateStatus(ctx context.Context, rt *domain.Rental) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Rentals().UpdateStatus(ctx, rt) })
}

func (r *storeRentals) CountActiveByEquipment(ctx context.Context, equipmentID, excludeRentalID int32) (n int32, err error) {
	err = r.s.view(func(t *tx) error {
		n, err = t.Rentals().CountActiveByEquipment(ctx, equipmentID, excludeRentalID)
		return err
	})
	return n, err
}

func (r *storeRentals) List(ctx context.Context, f domain.RentalFilter, page, pageSize int32) (out []domain.Rental, total int32, err error) {
	err = r.s.view(func(t *tx) error {
		out, total, err = t.Rentals().List(ctx, f, page, pageSize)
		return err
	})
	return out, total, err
}

type storeEquipment struct{ s *Store }

func (r *storeEquipment) GetByID(ctx context.Context, id int32) (eq *domain.Equipment, err error) {
	err = r.s.view(func(t *tx) error {
		eq, err = t.Equipment().GetByID(ctx, id)
		return err
	})
	return eq, err
}

func (r *storeEquipment) LockByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.GetByID(ctx, id)
}

func (r *storeEquipment) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Equipment().UpdateStatus(ctx, id, status) })
}

func (r *storeEquipment) IncrementRentalCounter(ctx context.Context, id int32) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Equipment().IncrementRentalCounter(ctx, id) })
}

type storePayments struct{ s *Store }

func (r *storePayments) Create(ctx context.Context, p *domain.Payment) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Payments().Create(ctx, p) })
}

func (r *storePayments) GetByID(ctx context.Context, id int32) (p *domain.Payment, err error) {
	err = r.s.view(func(t *tx) error {
		p, err = t.Payments().GetByID(ctx, id)
		return err
	})
	return p, err
}

func (r *storePayments) LockByID(ctx context.Context, id int32) (*domain.Payment, error) {
	return r.GetByID(ctx, id)
}

func (r *storePayments) LockByTransactionID(ctx context.Context, transactionID string) (p *domain.Payment, err error) {
	err = r.s.view(func(t *tx) error {
		p, err = t.Payments().LockByTransactionID(ctx, transactionID)
		return err
	})
	return p, err
}

func (r *storePayments) Update(ctx context.Context, p *domain.Payment) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.Payments().Update(ctx, p) })
}

func (r *storePayments) List(ctx context.Context, f domain.PaymentFilter, page, pageSize int32) (out []domain.Payment, total int32, err error) {
	err = r.s.view(func(t *tx) error {
		out, total, err = t.Payments().List(ctx, f, page, pageSize)
		return err
	})
	return out, total, err
}

type storeHistory struct{ s *Store }

func (r *storeHistory) Record(ctx context.Context, c *domain.StatusChange) error {
	return r.s.autoTx(ctx, func(t repository.Tx) error { return t.History().Record(ctx, c) })
}

func (r *storeHistory) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) (out []domain.StatusChange, err error) {
	err = r.s.view(func(t *tx) error {
		out, err = t.History().ListByEntity(ctx, entityType, entityID)
		return err
	})
	return out, err
}

type userRepo struct{ s *Store }

func (r *userRepo) GetByID(_ context.Context, id int32) (*domain.User, error) {
	var u domain.User
	err := r.s.view(func(t *tx) error {
		var ok bool
		if u, ok = t.st.users[id]; !ok {
			return domain.ErrUserNotFound.WithEntity(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type permissionRepo struct{ s *Store }

func (r *permissionRepo) ListRoles(_ context.Context, userID int32) (roles []domain.Role, err error) {
	err = r.s.view(func(t *tx) error {
		roles = append(roles, t.st.roles[userID]...)
		return nil
	})
	return roles, err
}

func (r *permissionRepo) HasPermission(_ context.Context, userID int32, capability domain.Capability) (ok bool, err error) {
	err = r.s.view(func(t *tx) error {
		if t.st.userPerms[userID][capability] {
			ok = true
			return nil
		}
		for _, role := range t.st.roles[userID] {
			if t.st.rolePerms[role][capability] {
				ok = true
				return nil
			}
		}
		return nil
	})
	return ok, err
}

type pushRepo struct{ s *Store }

func (r *pushRepo) Create(_ context.Context, n *domain.SentPushNotification) error {
	return r.s.view(func(t *tx) error {
		t.st.nextPush++
		n.ID = t.st.nextPush
		n.CreatedAt = t.now()
		t.st.pushes = append(t.st.pushes, *n)
		return nil
	})
}

func (r *pushRepo) ListByUser(_ context.Context, userID int32, limit, offset int32) ([]domain.SentPushNotification, error) {
	var out []domain.SentPushNotification
	err := r.s.view(func(t *tx) error {
		for i := len(t.st.pushes) - 1; i >= 0; i-- {
			if t.st.pushes[i].UserID == userID {
				out = append(out, t.st.pushes[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}
