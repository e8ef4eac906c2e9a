// Package memory is an in-process implementation of the repository interfaces.
// Transactions are fully serialized and applied copy-on-write, so a failed
// transaction leaves no trace. It backs local runs and scenario tests.
package memory

import (
	"context"
	"sync"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

type state struct {
	rentals     map[int32]domain.Rental
	equipment   map[int32]domain.Equipment
	payments    map[int32]domain.Payment
	history     []domain.StatusChange
	users       map[int32]domain.User
	roles       map[int32][]domain.Role
	rolePerms   map[domain.Role]map[domain.Capability]bool
	userPerms   map[int32]map[domain.Capability]bool
	pushes      []domain.SentPushNotification
	nextRental  int32
	nextPayment int32
	nextHistory int64
	nextPush    int32
}

func newState() *state {
	return &state{
		rentals:   map[int32]domain.Rental{},
		equipment: map[int32]domain.Equipment{},
		payments:  map[int32]domain.Payment{},
		users:     map[int32]domain.User{},
		roles:     map[int32][]domain.Role{},
		rolePerms: map[domain.Role]map[domain.Capability]bool{},
		userPerms: map[int32]map[domain.Capability]bool{},
	}
}

// clone copies the mutable tables. Users and permissions are only written by
// the seeding helpers, which hold the store lock, so they are shared.
func (s *state) clone() *state {
	cp := *s
	cp.rentals = make(map[int32]domain.Rental, len(s.rentals))
	for k, v := range s.rentals {
		cp.rentals[k] = v
	}
	cp.equipment = make(map[int32]domain.Equipment, len(s.equipment))
	for k, v := range s.equipment {
		cp.equipment[k] = v
	}
	cp.payments = make(map[int32]domain.Payment, len(s.payments))
	for k, v := range s.payments {
		cp.payments[k] = v
	}
	cp.history = append([]domain.StatusChange(nil), s.history...)
	cp.pushes = append([]domain.SentPushNotification(nil), s.pushes...)
	return &cp
}

type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{state: newState(), now: time.Now}
}

type tx struct {
	st  *state
	now func() time.Time
}

func (t *tx) Rentals() repository.RentalRepository        { return &rentalRepo{tx: t} }
func (t *tx) Equipment() repository.EquipmentRepository   { return &equipmentRepo{tx: t} }
func (t *tx) Payments() repository.PaymentRepository      { return &paymentRepo{tx: t} }
func (t *tx) History() repository.StatusHistoryRepository { return &historyRepo{tx: t} }

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &tx{st: s.state.clone(), now: s.now}
	if err := fn(ctx, work); err != nil {
		return err
	}
	s.state = work.st
	return nil
}

// view runs fn against the committed state under the store lock.
func (s *Store) view(fn func(t *tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&tx{st: s.state, now: s.now})
}

// autoTx wraps a single repository call in its own transaction.
func (s *Store) autoTx(ctx context.Context, fn func(t repository.Tx) error) error {
	return s.WithinTx(ctx, func(_ context.Context, t repository.Tx) error { return fn(t) })
}

func (s *Store) Rentals() repository.RentalRepository                    { return &storeRentals{s: s} }
func (s *Store) Equipment() repository.EquipmentRepository               { return &storeEquipment{s: s} }
func (s *Store) Payments() repository.PaymentRepository                  { return &storePayments{s: s} }
func (s *Store) History() repository.StatusHistoryRepository             { return &storeHistory{s: s} }
func (s *Store) Users() repository.UserRepository                        { return &userRepo{s: s} }
func (s *Store) Permissions() repository.PermissionRepository            { return &permissionRepo{s: s} }
func (s *Store) PushNotifications() repository.PushNotificationRepository { return &pushRepo{s: s} }

// PutEquipment inserts or replaces an equipment row.
func (s *Store) PutEquipment(eq domain.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if eq.CreatedAt.IsZero() {
		eq.CreatedAt = s.now()
		eq.UpdatedAt = eq.CreatedAt
	}
	s.state.equipment[eq.ID] = eq
}

// PutRental inserts or replaces a rental row, bypassing the coordinator.
func (s *Store) PutRental(r domain.Rental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		s.state.nextRental++
		r.ID = s.state.nextRental
	} else if r.ID > s.state.nextRental {
		s.state.nextRental = r.ID
	}
	s.state.rentals[r.ID] = r
}

// PutPayment inserts or replaces a payment row, bypassing the coordinator.
func (s *Store) PutPayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.state.nextPayment++
		p.ID = s.state.nextPayment
	} else if p.ID > s.state.nextPayment {
		s.state.nextPayment = p.ID
	}
	s.state.payments[p.ID] = p
}

func (s *Store) PutUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID] = u
}

func (s *Store) AssignRole(userID int32, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.roles[userID] = append(s.state.roles[userID], role)
}

func (s *Store) GrantRolePermission(role domain.Role, caps ...domain.Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.rolePerms[role] == nil {
		s.state.rolePerms[role] = map[domain.Capability]bool{}
	}
	for _, c := range caps {
		s.state.rolePerms[role][c] = true
	}
}

func (s *Store) GrantUserPermission(userID int32, caps ...domain.Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.userPerms[userID] == nil {
		s.state.userPerms[userID] = map[domain.Capability]bool{}
	}
	for _, c := range caps {
		s.state.userPerms[userID][c] = true
	}
}

// SeedDefaultRoles grants the stock role permissions of the marketplace.
func (s *Store) SeedDefaultRoles() {
	s.GrantRolePermission(domain.RoleAdmin,
		domain.CapabilityManageRentals, domain.CapabilityCancelRentals, domain.CapabilityCreateOwnRentals,
		domain.CapabilityViewRentals, domain.CapabilityViewOwnRentals,
		domain.CapabilityManagePayments, domain.CapabilityViewPayments)
	s.GrantRolePermission(domain.RoleUser,
		domain.CapabilityCancelRentals, domain.CapabilityCreateOwnRentals,
		domain.CapabilityViewOwnRentals, domain.CapabilityViewPayments)
	s.GrantRolePermission(domain.RoleOwner,
		domain.CapabilityViewRentals, domain.CapabilityViewPayments)
}
