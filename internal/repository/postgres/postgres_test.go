package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

var equipmentCols = []string{"id", "category_id", "owner_id", "barcode_value", "status", "min_rental_period_hours",
	"max_rental_period_hours", "rewards_points_acceptable", "rental_counter", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestStore_WithinTx(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	opts := TxOptions{Attempts: 3, Delay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

	lockEquipment := func(ctx context.Context, tx repository.Tx) error {
		_, err := tx.Equipment().LockByID(ctx, 10)
		return err
	}

	t.Run("Commits on success", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewStoreWithOptions(db, opts)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM equipment WHERE id = \$1 FOR UPDATE`).WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows(equipmentCols).AddRow(10, 1, 2, "EQ-10", "available", 4, 720, false, 0, now, now))
		mock.ExpectCommit()

		assert.NoError(t, store.WithinTx(ctx, lockEquipment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back on error", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewStoreWithOptions(db, opts)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM equipment WHERE id = \$1 FOR UPDATE`).WithArgs(int32(10)).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := store.WithinTx(ctx, lockEquipment)
		assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Retries a serialization failure", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewStoreWithOptions(db, opts)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM equipment WHERE id = \$1 FOR UPDATE`).WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM equipment WHERE id = \$1 FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(equipmentCols).AddRow(10, 1, nil, "EQ-10", "rented", 4, 720, false, 3, now, now))
		mock.ExpectCommit()

		assert.NoError(t, store.WithinTx(ctx, lockEquipment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Gives up after the configured attempts", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewStoreWithOptions(db, TxOptions{Attempts: 2, Delay: time.Millisecond})

		for i := 0; i < 2; i++ {
			mock.ExpectBegin()
			mock.ExpectQuery(`FROM equipment`).WillReturnError(&pq.Error{Code: "40P01"})
			mock.ExpectRollback()
		}

		err := store.WithinTx(ctx, lockEquipment)
		assert.True(t, IsRetryableError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Domain errors are not retried", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewStoreWithOptions(db, opts)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
			return domain.ErrRentalTerminal
		})
		assert.ErrorIs(t, err, domain.ErrRentalTerminal)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryableError(&pq.Error{Code: "40P01"}))
	assert.False(t, IsRetryableError(&pq.Error{Code: "23505"}))
	assert.False(t, IsRetryableError(errors.New("boom")))
	assert.False(t, IsRetryableError(nil))
}

func TestRentalRepository(t *testing.T) {
	ctx := context.Background()
	rentalCols := []string{"id", "renter_id", "equipment_id", "start_datetime", "end_datetime", "total_amount",
		"status", "payment_status", "delivery_address", "pickup_address", "created_at", "updated_at"}

	t.Run("Create", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)
		now := time.Now()
		rt := &domain.Rental{
			RenterID:      1,
			EquipmentID:   10,
			StartDatetime: now.Add(time.Hour),
			EndDatetime:   now.Add(27 * time.Hour),
			TotalAmount:   decimal.RequireFromString("175"),
			Status:        domain.RentalStatusPendingApproval,
			PaymentStatus: domain.RentalPaymentPending,
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(int32(1), int32(10), rt.StartDatetime, rt.EndDatetime, sqlmock.AnyArg(), "pending_approval",
				"pending", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))

		require.NoError(t, repo.Create(ctx, rt))
		assert.Equal(t, int32(5), rt.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByID", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)
		now := time.Now()

		mock.ExpectQuery(`FROM rentals r WHERE r.id = \$1$`).WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows(rentalCols).
				AddRow(5, 1, 10, now, now.Add(26*time.Hour), "175.00", "approved", "paid", "1 Main St", nil, now, now))

		rt, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusApproved, rt.Status)
		assert.True(t, decimal.RequireFromString("175").Equal(rt.TotalAmount))
		require.NotNil(t, rt.DeliveryAddress)
		assert.Equal(t, "1 Main St", *rt.DeliveryAddress)
		assert.Nil(t, rt.PickupAddress)
	})

	t.Run("LockByID not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)

		mock.ExpectQuery(`FROM rentals r WHERE r.id = \$1 FOR UPDATE`).WithArgs(int32(99)).WillReturnError(sql.ErrNoRows)

		_, err := repo.LockByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, int32(99), de.EntityID)
	})

	t.Run("UpdateStatus missing row", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)

		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs("active", "paid", sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, &domain.Rental{ID: 5, Status: domain.RentalStatusActive, PaymentStatus: domain.RentalPaymentPaid})
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})

	t.Run("CountActiveByEquipment excludes the given rental", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM rentals WHERE equipment_id = \$1 AND status = \$2 AND id <> \$3`).
			WithArgs(int32(10), "active", int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		n, err := repo.CountActiveByEquipment(ctx, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(1), n)
	})

	t.Run("List builds filters", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRentalRepository(db)
		now := time.Now()

		mock.ExpectQuery(`SELECT count\(\*\) FROM rentals r JOIN equipment e ON e.id = r.equipment_id WHERE 1=1 AND e.owner_id = \$1 AND r.status = \$2`).
			WithArgs(int32(2), "active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
		mock.ExpectQuery(`ORDER BY r.created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs(int32(2), "active", int32(20), int32(20)).
			WillReturnRows(sqlmock.NewRows(rentalCols).
				AddRow(7, 1, 10, now, now.Add(5*time.Hour), "62.50", "active", "paid", nil, nil, now, now))

		rentals, total, err := repo.List(ctx, domain.RentalFilter{OwnerID: 2, Status: domain.RentalStatusActive}, 2, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(21), total)
		assert.Len(t, rentals, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()
	paymentCols := []string{"id", "rental_id", "payer_id", "amount", "payment_method", "transaction_id", "status",
		"gateway_response", "admin_notes", "created_at", "updated_at"}

	t.Run("Create duplicate transaction", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPaymentRepository(db)

		mock.ExpectQuery("INSERT INTO payments").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.Payment{RentalID: 5, PayerID: 1, Amount: decimal.NewFromInt(175),
			Method: domain.PaymentMethodCard, TransactionID: "txn_dup", Status: domain.PaymentStatusPending})
		assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	})

	t.Run("LockByTransactionID", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPaymentRepository(db)
		now := time.Now()

		mock.ExpectQuery(`FROM payments p WHERE p.transaction_id = \$1 FOR UPDATE`).WithArgs("txn_1").
			WillReturnRows(sqlmock.NewRows(paymentCols).
				AddRow(3, 5, 1, "175.00", "card", "txn_1", "paid", []byte(`{"status":"success"}`), "", now, now))

		p, err := repo.LockByTransactionID(ctx, "txn_1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, p.Status)
		assert.JSONEq(t, `{"status":"success"}`, string(p.GatewayResponse))
	})

	t.Run("LockByTransactionID unknown", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPaymentRepository(db)

		mock.ExpectQuery(`FROM payments p WHERE p.transaction_id = \$1 FOR UPDATE`).WithArgs("txn_none").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.LockByTransactionID(ctx, "txn_none")
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("Update keeps the stored payload when none is given", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPaymentRepository(db)

		mock.ExpectExec(`UPDATE payments SET status = \$1, gateway_response = COALESCE\(\$2::jsonb, gateway_response\)`).
			WithArgs("refunded", nil, "customer request", sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Payment{ID: 3, Status: domain.PaymentStatusRefunded, AdminNotes: "customer request"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEquipmentRepository_UpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEquipmentRepository(db)

	mock.ExpectExec(`UPDATE equipment SET status = \$1`).
		WithArgs("rented", sqlmock.AnyArg(), int32(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE equipment SET status = \$1`).
		WithArgs("available", sqlmock.AnyArg(), int32(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.EquipmentStatusRented))
	err := repo.UpdateStatus(context.Background(), 11, domain.EquipmentStatusAvailable)
	assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
}

func TestPermissionRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT ro.name FROM user_roles ur JOIN roles ro`).WithArgs(int32(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Admin").AddRow("Owner"))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int32(3), "manage_payments").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	roles, err := repo.ListRoles(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleOwner}, roles)

	ok, err := repo.HasPermission(ctx, 3, domain.CapabilityManagePayments)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStatusHistoryRepository_Record(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStatusHistoryRepository(db)
	actor := int32(2)

	mock.ExpectQuery("INSERT INTO status_history").
		WithArgs("rental", int32(5), "status", "pending_approval", "approved", sqlmock.AnyArg(), "user", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))

	c := &domain.StatusChange{
		EntityType: domain.EntityRental,
		EntityID:   5,
		Field:      "status",
		OldValue:   "pending_approval",
		NewValue:   "approved",
		ActorID:    &actor,
		Source:     domain.SourceUser,
	}
	require.NoError(t, repo.Record(context.Background(), c))
	assert.Equal(t, int64(40), c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}
