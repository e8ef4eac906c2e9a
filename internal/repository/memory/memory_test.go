package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

func int32Ptr(v int32) *int32 { return &v }

func newTestStore() *Store {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	s.PutEquipment(domain.Equipment{ID: 10, OwnerID: int32Ptr(2), Status: domain.EquipmentStatusAvailable, MaxRentalPeriodHours: 720})
	s.PutEquipment(domain.Equipment{ID: 11, OwnerID: int32Ptr(3), Status: domain.EquipmentStatusAvailable, MaxRentalPeriodHours: 720})
	return s
}

func TestWithinTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	err := s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := tx.Equipment().UpdateStatus(ctx, 10, domain.EquipmentStatusRented); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	eq, err := s.Equipment().GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentStatusAvailable, eq.Status)

	err = s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		return tx.Equipment().UpdateStatus(ctx, 10, domain.EquipmentStatusRented)
	})
	require.NoError(t, err)

	eq, err = s.Equipment().GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentStatusRented, eq.Status)
}

func TestWithinTx_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := newTestStore().WithinTx(ctx, func(context.Context, repository.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRentals(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	rentals := s.Rentals()

	for i, eqID := range []int32{10, 10, 11} {
		rt := &domain.Rental{RenterID: 1, EquipmentID: eqID, Status: domain.RentalStatusPendingApproval,
			TotalAmount: decimal.NewFromInt(int64(100 + i))}
		require.NoError(t, rentals.Create(ctx, rt))
		assert.Equal(t, int32(i+1), rt.ID)
	}

	t.Run("Not found", func(t *testing.T) {
		_, err := rentals.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
		err = rentals.UpdateStatus(ctx, &domain.Rental{ID: 99, Status: domain.RentalStatusActive})
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})

	t.Run("CountActiveByEquipment", func(t *testing.T) {
		require.NoError(t, rentals.UpdateStatus(ctx, &domain.Rental{ID: 1, Status: domain.RentalStatusActive, PaymentStatus: domain.RentalPaymentPaid}))
		require.NoError(t, rentals.UpdateStatus(ctx, &domain.Rental{ID: 2, Status: domain.RentalStatusActive, PaymentStatus: domain.RentalPaymentPaid}))

		n, err := rentals.CountActiveByEquipment(ctx, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(1), n)

		n, err = rentals.CountActiveByEquipment(ctx, 11, 0)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("List by owner newest first", func(t *testing.T) {
		out, total, err := rentals.List(ctx, domain.RentalFilter{OwnerID: 2}, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(2), total)
		require.Len(t, out, 1)
		assert.Equal(t, int32(2), out[0].ID)

		out, _, err = rentals.List(ctx, domain.RentalFilter{OwnerID: 2}, 3, 1)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("List by status", func(t *testing.T) {
		out, total, err := rentals.List(ctx, domain.RentalFilter{Status: domain.RentalStatusPendingApproval}, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Equal(t, int32(11), out[0].EquipmentID)
	})
}

func TestPayments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.PutRental(domain.Rental{ID: 5, RenterID: 1, EquipmentID: 11, Status: domain.RentalStatusApproved})
	payments := s.Payments()

	p := &domain.Payment{RentalID: 5, PayerID: 1, Amount: decimal.NewFromInt(50), Method: domain.PaymentMethodCard,
		TransactionID: "txn_1", Status: domain.PaymentStatusPending}
	require.NoError(t, payments.Create(ctx, p))

	t.Run("Duplicate transaction id", func(t *testing.T) {
		err := payments.Create(ctx, &domain.Payment{RentalID: 5, TransactionID: "txn_1"})
		assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	})

	t.Run("Lookup by transaction id", func(t *testing.T) {
		got, err := payments.LockByTransactionID(ctx, "txn_1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)

		_, err = payments.LockByTransactionID(ctx, "txn_unknown")
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("Update keeps the stored payload when none is given", func(t *testing.T) {
		require.NoError(t, payments.Update(ctx, &domain.Payment{ID: p.ID, Status: domain.PaymentStatusPaid,
			GatewayResponse: []byte(`{"status":"success"}`)}))
		require.NoError(t, payments.Update(ctx, &domain.Payment{ID: p.ID, Status: domain.PaymentStatusRefunded, AdminNotes: "goodwill"}))

		got, err := payments.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, got.Status)
		assert.Equal(t, "goodwill", got.AdminNotes)
		assert.JSONEq(t, `{"status":"success"}`, string(got.GatewayResponse))
	})

	t.Run("List by owner", func(t *testing.T) {
		out, total, err := payments.List(ctx, domain.PaymentFilter{OwnerID: 3}, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, out, 1)

		_, total, err = payments.List(ctx, domain.PaymentFilter{OwnerID: 2}, 1, 20)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	err := s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		for _, to := range []string{"approved", "active"} {
			if err := tx.History().Record(ctx, &domain.StatusChange{EntityType: domain.EntityRental, EntityID: 1,
				Field: "status", NewValue: to, Source: domain.SourceUser}); err != nil {
				return err
			}
		}
		return tx.History().Record(ctx, &domain.StatusChange{EntityType: domain.EntityEquipment, EntityID: 1,
			Field: "status", NewValue: "rented", Source: domain.SourceSystem})
	})
	require.NoError(t, err)

	changes, err := s.History().ListByEntity(ctx, domain.EntityRental, 1)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, "approved", changes[0].NewValue)
	assert.Equal(t, int64(2), changes[1].ID)
	assert.False(t, changes[1].CreatedAt.IsZero())
}

func TestPermissions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.SeedDefaultRoles()
	s.AssignRole(1, domain.RoleUser)
	s.AssignRole(2, domain.RoleOwner)
	s.GrantUserPermission(2, domain.CapabilityManagePayments)

	perms := s.Permissions()
	tests := []struct {
		user int32
		cap  domain.Capability
		want bool
	}{
		{1, domain.CapabilityCreateOwnRentals, true},
		{1, domain.CapabilityManagePayments, false},
		{2, domain.CapabilityViewRentals, true},
		{2, domain.CapabilityManagePayments, true},
		{2, domain.CapabilityManageRentals, false},
		{9, domain.CapabilityViewOwnRentals, false},
	}
	for _, tt := range tests {
		ok, err := perms.HasPermission(ctx, tt.user, tt.cap)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "user %d %s", tt.user, tt.cap)
	}

	roles, err := perms.ListRoles(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleOwner}, roles)
}

func TestUsersAndPushNotifications(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.PutUser(domain.User{ID: 1, Email: "renter@example.com"})

	u, err := s.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "renter@example.com", u.Email)
	_, err = s.Users().GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	push := s.PushNotifications()
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, push.Create(ctx, &domain.SentPushNotification{UserID: 1, Title: title}))
	}
	require.NoError(t, push.Create(ctx, &domain.SentPushNotification{UserID: 4, Title: "other"}))

	out, err := push.ListByUser(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "third", out[0].Title)

	out, err = push.ListByUser(ctx, 1, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}
