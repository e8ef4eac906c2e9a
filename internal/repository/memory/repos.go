package memory

import (
	"context"
	"sort"

	"go4rent-backend/internal/domain"
)

type rentalRepo struct{ tx *tx }

func (r *rentalRepo) Create(_ context.Context, rt *domain.Rental) error {
	st := r.tx.st
	st.nextRental++
	rt.ID = st.nextRental
	rt.CreatedAt = r.tx.now()
	rt.UpdatedAt = rt.CreatedAt
	st.rentals[rt.ID] = *rt
	return nil
}

func (r *rentalRepo) GetByID(_ context.Context, id int32) (*domain.Rental, error) {
	rt, ok := r.tx.st.rentals[id]
	if !ok {
		return nil, domain.ErrRentalNotFound.WithEntity(id)
	}
	return &rt, nil
}

// LockByID is GetByID; transactions are already serialized.
func (r *rentalRepo) LockByID(ctx context.Context, id int32) (*domain.Rental, error) {
	return r.GetByID(ctx, id)
}

func (r *rentalRepo) UpdateStatus(_ context.Context, rt *domain.Rental) error {
	cur, ok := r.tx.st.rentals[rt.ID]
	if !ok {
		return domain.ErrRentalNotFound.WithEntity(rt.ID)
	}
	cur.Status = rt.Status
	cur.PaymentStatus = rt.PaymentStatus
	cur.UpdatedAt = r.tx.now()
	rt.UpdatedAt = cur.UpdatedAt
	r.tx.st.rentals[rt.ID] = cur
	return nil
}

func (r *rentalRepo) CountActiveByEquipment(_ context.Context, equipmentID, excludeRentalID int32) (int32, error) {
	var n int32
	for _, rt := range r.tx.st.rentals {
		if rt.EquipmentID == equipmentID && rt.ID != excludeRentalID && rt.Status == domain.RentalStatusActive {
			n++
		}
	}
	return n, nil
}

func (r *rentalRepo) List(_ context.Context, f domain.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	var out []domain.Rental
	for _, rt := range r.tx.st.rentals {
		if f.RenterID > 0 && rt.RenterID != f.RenterID {
			continue
		}
		if f.EquipmentID > 0 && rt.EquipmentID != f.EquipmentID {
			continue
		}
		if f.Status != "" && rt.Status != f.Status {
			continue
		}
		if f.OwnerID > 0 {
			eq, ok := r.tx.st.equipment[rt.EquipmentID]
			if !ok || !eq.IsOwnedBy(f.OwnerID) {
				continue
			}
		}
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, page, pageSize), int32(len(out)), nil
}

type equipmentRepo struct{ tx *tx }

func (r *equipmentRepo) GetByID(_ context.Context, id int32) (*domain.Equipment, error) {
	eq, ok := r.tx.st.equipment[id]
	if !ok {
		return nil, domain.ErrEquipmentNotFound.WithEntity(id)
	}
	return &eq, nil
}

func (r *equipmentRepo) LockByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.GetByID(ctx, id)
}

func (r *equipmentRepo) UpdateStatus(_ context.Context, id int32, status domain.EquipmentStatus) error {
	eq, ok := r.tx.st.equipment[id]
	if !ok {
		return domain.ErrEquipmentNotFound.WithEntity(id)
	}
	eq.Status = status
	eq.UpdatedAt = r.tx.now()
	r.tx.st.equipment[id] = eq
	return nil
}

func (r *equipmentRepo) IncrementRentalCounter(_ context.Context, id int32) error {
	eq, ok := r.tx.st.equipment[id]
	if !ok {
		return domain.ErrEquipmentNotFound.WithEntity(id)
	}
	eq.RentalCounter++
	r.tx.st.equipment[id] = eq
	return nil
}

type paymentRepo struct{ tx *tx }

func (r *paymentRepo) Create(_ context.Context, p *domain.Payment) error {
	st := r.tx.st
	for _, existing := range st.payments {
		if existing.TransactionID == p.TransactionID {
			return domain.ErrDuplicateTransaction.WithReason("transaction id %s already exists", p.TransactionID)
		}
	}
	st.nextPayment++
	p.ID = st.nextPayment
	p.CreatedAt = r.tx.now()
	p.UpdatedAt = p.CreatedAt
	st.payments[p.ID] = *p
	return nil
}

func (r *paymentRepo) GetByID(_ context.Context, id int32) (*domain.Payment, error) {
	p, ok := r.tx.st.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound.WithEntity(id)
	}
	return &p, nil
}

func (r *paymentRepo) LockByID(ctx context.Context, id int32) (*domain.Payment, error) {
	return r.GetByID(ctx, id)
}

func (r *paymentRepo) LockByTransactionID(_ context.Context, transactionID string) (*domain.Payment, error) {
	for _, p := range r.tx.st.payments {
		if p.TransactionID == transactionID {
			return &p, nil
		}
	}
	return nil, domain.ErrPaymentNotFound.WithReason("no payment for transaction %s", transactionID)
}

func (r *paymentRepo) Update(_ context.Context, p *domain.Payment) error {
	cur, ok := r.tx.st.payments[p.ID]
	if !ok {
		return domain.ErrPaymentNotFound.WithEntity(p.ID)
	}
	cur.Status = p.Status
	if len(p.GatewayResponse) > 0 {
		cur.GatewayResponse = append([]byte(nil), p.GatewayResponse...)
	}
	cur.AdminNotes = p.AdminNotes
	cur.UpdatedAt = r.tx.now()
	p.UpdatedAt = cur.UpdatedAt
	r.tx.st.payments[p.ID] = cur
	return nil
}

func (r *paymentRepo) List(_ context.Context, f domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	var out []domain.Payment
	for _, p := range r.tx.st.payments {
		if f.PayerID > 0 && p.PayerID != f.PayerID {
			continue
		}
		if f.RentalID > 0 && p.RentalID != f.RentalID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.OwnerID > 0 {
			rt, ok := r.tx.st.rentals[p.RentalID]
			if !ok {
				continue
			}
			eq, ok := r.tx.st.equipment[rt.EquipmentID]
			if !ok || !eq.IsOwnedBy(f.OwnerID) {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, page, pageSize), int32(len(out)), nil
}

type historyRepo struct{ tx *tx }

func (r *historyRepo) Record(_ context.Context, c *domain.StatusChange) error {
	st := r.tx.st
	st.nextHistory++
	c.ID = st.nextHistory
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.tx.now()
	}
	st.history = append(st.history, *c)
	return nil
}

func (r *historyRepo) ListByEntity(_ context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusChange, error) {
	var out []domain.StatusChange
	for _, c := range r.tx.st.history {
		if c.EntityType == entityType && c.EntityID == entityID {
			out = append(out, c)
		}
	}
	return out, nil
}

func paginate[T any](items []T, page, pageSize int32) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := int((page - 1) * pageSize)
	if start >= len(items) {
		return nil
	}
	end := start + int(pageSize)
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
