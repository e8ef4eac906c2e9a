package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	_ "github.com/lib/pq"

	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

// querier is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxOptions controls how WithinTx retries transactions that lost a
// serialization race.
type TxOptions struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

func defaultTxOptions() TxOptions {
	return TxOptions{Attempts: 3, Delay: 20 * time.Millisecond, MaxDelay: 500 * time.Millisecond}
}

type Store struct {
	db     *sql.DB
	txOpts TxOptions
	repository.UserRepository
	repository.PermissionRepository
	repository.RentalRepository
	repository.EquipmentRepository
	repository.PaymentRepository
	repository.StatusHistoryRepository
	repository.PushNotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return NewStoreWithOptions(db, defaultTxOptions())
}

func NewStoreWithOptions(db *sql.DB, opts TxOptions) *Store {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	return &Store{
		db:                         db,
		txOpts:                     opts,
		UserRepository:             NewUserRepository(db),
		PermissionRepository:       NewPermissionRepository(db),
		RentalRepository:           NewRentalRepository(db),
		EquipmentRepository:        NewEquipmentRepository(db),
		PaymentRepository:          NewPaymentRepository(db),
		StatusHistoryRepository:    NewStatusHistoryRepository(db),
		PushNotificationRepository: NewPushNotificationRepository(db),
	}
}

// DB exposes the underlying pool for jobs that run their own statements.
func (s *Store) DB() *sql.DB {
	return s.db
}

type txRepos struct {
	rentals   repository.RentalRepository
	equipment repository.EquipmentRepository
	payments  repository.PaymentRepository
	history   repository.StatusHistoryRepository
}

func (t *txRepos) Rentals() repository.RentalRepository        { return t.rentals }
func (t *txRepos) Equipment() repository.EquipmentRepository   { return t.equipment }
func (t *txRepos) Payments() repository.PaymentRepository      { return t.payments }
func (t *txRepos) History() repository.StatusHistoryRepository { return t.history }

func newTxRepos(q querier) *txRepos {
	return &txRepos{
		rentals:   &rentalRepository{q: q},
		equipment: &equipmentRepository{q: q},
		payments:  &paymentRepository{q: q},
		history:   &statusHistoryRepository{q: q},
	}
}

// WithinTx runs fn in a read-committed transaction. Row locks taken through the
// Lock* methods serialize concurrent writers; serialization failures and
// deadlocks roll back and run fn again.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	return retry.Do(
		func() error {
			return s.runTx(ctx, fn)
		},
		retry.Context(ctx),
		retry.Attempts(s.txOpts.Attempts),
		retry.Delay(s.txOpts.Delay),
		retry.MaxDelay(s.txOpts.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryableError),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Retrying transaction", "attempt", n+1, "error", err)
		}),
	)
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				logger.Error("Failed to roll back transaction", "error", rbErr)
			}
		}
	}()

	if err = fn(ctx, newTxRepos(sqlTx)); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
